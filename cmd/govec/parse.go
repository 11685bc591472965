package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseComponents parses "3,4", "(3, 4)" or "[3 4]" into its components.
// An empty list ("", "()", "[]") is the zero-dimensional vector.
func parseComponents(arg string) ([]float64, error) {
	s := strings.TrimSpace(arg)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid component %q in %q", f, arg)
		}
		values[i] = v
	}
	return values, nil
}

func parseScalar(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, arg)
	}
	return v, nil
}
