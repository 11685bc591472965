package geometry

import (
	"fmt"
	"math"
)

// Vector2 represents a 2D Cartesian vector
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Norm returns the magnitude of the vector
func (v Vector2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// ToPolar converts to polar form. The zero vector maps to r = 0, θ = 0.
func (v Vector2) ToPolar() Polar {
	return Polar{R: v.Norm(), Theta: math.Atan2(v.Y, v.X)}
}

// Dim is always 2
func (v Vector2) Dim() int { return 2 }

// Scalars returns x, y
func (v Vector2) Scalars() []float64 {
	return []float64{v.X, v.Y}
}

// Components returns the x, y components
func (v Vector2) Components() []Component {
	return labeled(v.Scalars())
}

// ToN widens the vector to a VectorN of dimension 2
func (v Vector2) ToN() VectorN {
	return NewVectorN(v.X, v.Y)
}

// String returns the vector as Vector2(x, y)
func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%s)", scalars(v.Scalars()).join())
}
