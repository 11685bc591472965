package geometry

import "strconv"

// Component is one labeled scalar of a vector
type Component struct {
	Label string
	Value float64
}

// Vector is implemented by every vector representation that can be
// rendered as an ordered list of labeled components
type Vector interface {
	Dim() int
	Components() []Component
	String() string
}

// Cartesian is a Vector whose components are plain Cartesian coordinates
type Cartesian interface {
	Vector
	Scalars() []float64
}

// AxisLabels returns the component labels for a vector of dimension n:
// x, y for 2, x, y, z for 3 and x0..x(n-1) otherwise
func AxisLabels(n int) []string {
	switch n {
	case 2:
		return []string{"x", "y"}
	case 3:
		return []string{"x", "y", "z"}
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "x" + strconv.Itoa(i)
	}
	return labels
}

func labeled(values []float64) []Component {
	labels := AxisLabels(len(values))
	out := make([]Component, len(values))
	for i, v := range values {
		out[i] = Component{Label: labels[i], Value: v}
	}
	return out
}

// Add returns the componentwise sum of two Cartesian vectors of any representation
func Add(a, b Cartesian) (VectorN, error) {
	return NewVectorN(a.Scalars()...).Add(NewVectorN(b.Scalars()...))
}

// Sub returns the componentwise difference a - b
func Sub(a, b Cartesian) (VectorN, error) {
	return NewVectorN(a.Scalars()...).Sub(NewVectorN(b.Scalars()...))
}

// Dot returns the inner product of two Cartesian vectors
func Dot(a, b Cartesian) (float64, error) {
	return NewVectorN(a.Scalars()...).Dot(NewVectorN(b.Scalars()...))
}

// Norm returns the Euclidean length of a Cartesian vector
func Norm(a Cartesian) float64 {
	return scalars(a.Scalars()).norm()
}
