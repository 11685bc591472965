package geometry

import "fmt"

// Vector3 represents a 3D Cartesian vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale multiplies the vector by a scalar
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Negate returns -v
func (v Vector3) Negate() Vector3 {
	return v.Scale(-1)
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Norm returns the magnitude of the vector. The sum of squares is scaled,
// so very small or very large components neither underflow nor overflow.
func (v Vector3) Norm() float64 {
	return scalars(v.Scalars()).norm()
}

// Dim is always 3
func (v Vector3) Dim() int { return 3 }

// Scalars returns x, y, z
func (v Vector3) Scalars() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Components returns the x, y, z components
func (v Vector3) Components() []Component {
	return labeled(v.Scalars())
}

// ToN widens the vector to a VectorN of dimension 3
func (v Vector3) ToN() VectorN {
	return NewVectorN(v.Scalars()...)
}

// String returns the vector as Vector3(x, y, z)
func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%s)", scalars(v.Scalars()).join())
}
