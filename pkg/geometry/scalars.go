package geometry

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// scalars is the ordered component storage shared by the Cartesian vectors.
// A scalars value is never written to after construction.
type scalars []float64

func newScalars(values []float64) scalars {
	s := make(scalars, len(values))
	copy(s, values)
	return s
}

// add and sub expect operands of equal length
func (s scalars) add(other scalars) scalars {
	dst := make(scalars, len(s))
	floats.AddTo(dst, s, other)
	return dst
}

func (s scalars) sub(other scalars) scalars {
	dst := make(scalars, len(s))
	floats.SubTo(dst, s, other)
	return dst
}

func (s scalars) scale(k float64) scalars {
	dst := newScalars(s)
	floats.Scale(k, dst)
	return dst
}

func (s scalars) dot(other scalars) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Dot(s, other)
}

func (s scalars) norm() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, 2)
}

func (s scalars) join() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = formatScalar(v)
	}
	return strings.Join(parts, ", ")
}

func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
