package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/govec/pkg/geometry"
)

// Entry is one labeled value of a Record
type Entry struct {
	Label string
	Value float64
}

// Record is an ordered label -> value mapping built from a vector
type Record struct {
	Name    string
	Entries []Entry
}

// NewRecord creates a record from the components of a vector
func NewRecord(name string, v geometry.Vector) Record {
	components := v.Components()
	entries := make([]Entry, len(components))
	for i, c := range components {
		entries[i] = Entry{Label: c.Label, Value: c.Value}
	}
	return Record{Name: name, Entries: entries}
}

// Get returns the value stored under label
func (r Record) Get(label string) (float64, bool) {
	for _, e := range r.Entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return 0, false
}

// Labels returns the labels in order
func (r Record) Labels() []string {
	labels := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		labels[i] = e.Label
	}
	return labels
}

// Formatter renders scalars, vectors and records with a fixed precision
type Formatter struct {
	Precision int
	Labels    bool
}

// NewFormatter creates a formatter. A negative precision prints the
// shortest representation that round-trips.
func NewFormatter(precision int, labels bool) Formatter {
	return Formatter{Precision: precision, Labels: labels}
}

// FormatScalar formats a single value
func (f Formatter) FormatScalar(value float64) string {
	return strconv.FormatFloat(value, 'f', f.Precision, 64)
}

// FormatMeasurement formats a measurement with appropriate units
func (f Formatter) FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%s %s", f.FormatScalar(value), unit)
}

// FormatVector formats a vector as (x=.., y=..) or (.., ..)
func (f Formatter) FormatVector(v geometry.Vector) string {
	components := v.Components()
	parts := make([]string, len(components))
	for i, c := range components {
		if f.Labels {
			parts[i] = c.Label + "=" + f.FormatScalar(c.Value)
		} else {
			parts[i] = f.FormatScalar(c.Value)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// WriteRecord prints the record as a two column table, one entry per line
func (f Formatter) WriteRecord(w io.Writer, r Record) error {
	width := 0
	for _, e := range r.Entries {
		if len(e.Label) > width {
			width = len(e.Label)
		}
	}

	if r.Name != "" {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	for _, e := range r.Entries {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, e.Label, f.FormatScalar(e.Value)); err != nil {
			return err
		}
	}
	return nil
}
