package config

const (
	DefaultPrecision  = 6
	DefaultDebounceMS = 200
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Precision == nil {
		p := DefaultPrecision
		cfg.Output.Precision = &p
	}
	if cfg.Watch.DebounceMS == nil {
		d := DefaultDebounceMS
		cfg.Watch.DebounceMS = &d
	}
}
