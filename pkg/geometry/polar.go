package geometry

import (
	"fmt"
	"math"
)

// Polar is a 2D vector given by a radius and an angle in radians.
// Neither value is normalized: a negative R or an angle outside
// (-π, π] is kept as given.
type Polar struct {
	R     float64
	Theta float64
}

// NewPolar creates a polar vector
func NewPolar(r, theta float64) Polar {
	return Polar{R: r, Theta: theta}
}

// ToCartesian returns (r·cos θ, r·sin θ)
func (p Polar) ToCartesian() Vector2 {
	sin, cos := math.Sincos(p.Theta)
	return Vector2{X: p.R * cos, Y: p.R * sin}
}

// Components returns r and theta
func (p Polar) Components() []Component {
	return []Component{{Label: "r", Value: p.R}, {Label: "theta", Value: p.Theta}}
}

func (p Polar) Dim() int { return 2 }

func (p Polar) String() string {
	return fmt.Sprintf("Polar(r=%s, θ=%s rad)", formatScalar(p.R), formatScalar(p.Theta))
}
