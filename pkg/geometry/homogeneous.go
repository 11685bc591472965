package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Homogeneous is an n-dimensional point stored as n+1 components, the last
// one being the scale factor w. Vectors built with NewHomogeneous always
// have w = 1.
type Homogeneous struct {
	s scalars
}

// NewHomogeneous creates a homogeneous vector from n Cartesian components
// and appends w = 1.
func NewHomogeneous(components ...float64) Homogeneous {
	s := make(scalars, len(components)+1)
	copy(s, components)
	s[len(components)] = 1
	return Homogeneous{s: s}
}

// Dim returns n, the dimension of the Cartesian point the vector stands for
func (h Homogeneous) Dim() int {
	if len(h.s) == 0 {
		return 0
	}
	return len(h.s) - 1
}

// W returns the scale factor. The zero value has w = 0.
func (h Homogeneous) W() float64 {
	if len(h.s) == 0 {
		return 0
	}
	return h.s[len(h.s)-1]
}

// Coordinates returns all n+1 components, w last
func (h Homogeneous) Coordinates() []float64 {
	return newScalars(h.s)
}

// Components returns x0..x(n-1) followed by w
func (h Homogeneous) Components() []Component {
	n := h.Dim()
	out := make([]Component, 0, n+1)
	for i, label := range AxisLabels(n) {
		out = append(out, Component{Label: label, Value: h.s[i]})
	}
	return append(out, Component{Label: "w", Value: h.W()})
}

// ToCartesian divides the first n components by w
func (h Homogeneous) ToCartesian() (VectorN, error) {
	w := h.W()
	if w == 0 {
		return VectorN{}, ErrDegenerateCoordinate
	}
	out := make(scalars, h.Dim())
	floats.ScaleTo(out, 1/w, h.s[:len(out)])
	return VectorN{s: out}, nil
}

func (h Homogeneous) String() string {
	return fmt.Sprintf("Homogeneous(%s)", h.s.join())
}
