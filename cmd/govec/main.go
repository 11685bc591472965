package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/govec/internal/config"
	"github.com/philipparndt/govec/pkg/analysis"
	"github.com/philipparndt/govec/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	debug      bool
	precision  int
	labels     bool

	cfg       *config.Config
	logger    = zap.NewNop()
	formatter = analysis.NewFormatter(config.DefaultPrecision, false)
)

var rootCmd = &cobra.Command{
	Use:   "govec",
	Short: "Vector algebra on the command line",
	Long: `govec computes sums, differences, inner and cross products and norms of
Cartesian vectors, and converts polar and homogeneous vectors to Cartesian form.

Vectors are written as comma separated components, for example 3,4 or [2,3,1].
Put -- before arguments that start with a minus sign.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", config.DefaultPrecision, "Decimals to print (-1 for shortest exact form)")
	rootCmd.PersistentFlags().BoolVar(&labels, "labels", false, "Print axis labels with each component")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("precision") {
		if precision < -1 {
			return fmt.Errorf("invalid precision %d: must be >= -1", precision)
		}
		cfg.Output.Precision = &precision
	}
	if flags.Changed("labels") {
		cfg.Output.Labels = labels
	}

	logger, err = newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	formatter = analysis.NewFormatter(cfg.Output.PrecisionOrDefault(), cfg.Output.Labels)

	logger.Debug("configuration loaded",
		zap.String("config", configPath),
		zap.Int("precision", formatter.Precision),
		zap.Bool("labels", formatter.Labels))
	return nil
}

// newLogger returns a human readable debug logger, or a JSON info logger
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
