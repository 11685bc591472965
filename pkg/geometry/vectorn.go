package geometry

import "fmt"

// VectorN is a Cartesian vector whose dimension is fixed at construction
// and checked at run time. The zero value is the empty vector.
type VectorN struct {
	s scalars
}

// NewVectorN creates a vector from the given components. The slice is copied.
func NewVectorN(components ...float64) VectorN {
	return VectorN{s: newScalars(components)}
}

// Zero returns the zero vector of dimension n
func Zero(n int) VectorN {
	return VectorN{s: make(scalars, n)}
}

// Dim returns the number of components
func (v VectorN) Dim() int {
	return len(v.s)
}

// At returns the i-th component
func (v VectorN) At(i int) float64 {
	return v.s[i]
}

// Scalars returns a copy of the components
func (v VectorN) Scalars() []float64 {
	return newScalars(v.s)
}

// Components returns the labeled components
func (v VectorN) Components() []Component {
	return labeled(v.s)
}

// Add returns the componentwise sum
func (v VectorN) Add(other VectorN) (VectorN, error) {
	if err := checkSameDim(v.Dim(), other.Dim()); err != nil {
		return VectorN{}, err
	}
	return VectorN{s: v.s.add(other.s)}, nil
}

// Sub returns the componentwise difference
func (v VectorN) Sub(other VectorN) (VectorN, error) {
	if err := checkSameDim(v.Dim(), other.Dim()); err != nil {
		return VectorN{}, err
	}
	return VectorN{s: v.s.sub(other.s)}, nil
}

// Scale multiplies every component by k
func (v VectorN) Scale(k float64) VectorN {
	return VectorN{s: v.s.scale(k)}
}

// Dot returns the inner product
func (v VectorN) Dot(other VectorN) (float64, error) {
	if err := checkSameDim(v.Dim(), other.Dim()); err != nil {
		return 0, err
	}
	return v.s.dot(other.s), nil
}

// Norm returns the Euclidean length. The empty vector has norm 0.
func (v VectorN) Norm() float64 {
	return v.s.norm()
}

// Equal reports whether both vectors have the same dimension and components
func (v VectorN) Equal(other VectorN) bool {
	if v.Dim() != other.Dim() {
		return false
	}
	for i := range v.s {
		if v.s[i] != other.s[i] {
			return false
		}
	}
	return true
}

// AsVector2 narrows v to a Vector2
func (v VectorN) AsVector2() (Vector2, error) {
	if err := checkDim(2, v.Dim()); err != nil {
		return Vector2{}, err
	}
	return Vector2{X: v.s[0], Y: v.s[1]}, nil
}

// AsVector3 narrows v to a Vector3
func (v VectorN) AsVector3() (Vector3, error) {
	if err := checkDim(3, v.Dim()); err != nil {
		return Vector3{}, err
	}
	return Vector3{X: v.s[0], Y: v.s[1], Z: v.s[2]}, nil
}

// Cross is the cross product for vectors whose dimension is only known at
// run time. Both operands must have dimension 3.
func (v VectorN) Cross(other VectorN) (VectorN, error) {
	a, err := v.AsVector3()
	if err != nil {
		return VectorN{}, err
	}
	b, err := other.AsVector3()
	if err != nil {
		return VectorN{}, err
	}
	return a.Cross(b).ToN(), nil
}

func (v VectorN) String() string {
	return fmt.Sprintf("VectorN(%s)", v.s.join())
}
