package cnum

import "math"

// Polar is the polar form of a complex number.
type Polar struct {
	R     float64 // Magnitude
	Theta float64 // Phase in radians, (-π, π]
}

// ToPolar converts z to polar form. The origin yields R=0, Theta=0.
func ToPolar(z Complex) Polar {
	return Polar{R: Magnitude(z), Theta: Phase(z)}
}

// FromPolar builds a complex number from magnitude r and phase theta.
func FromPolar(r, theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{Re: r * cos, Im: r * sin}
}

// Complex converts the polar form back to rectangular form.
func (p Polar) Complex() Complex {
	return FromPolar(p.R, p.Theta)
}
