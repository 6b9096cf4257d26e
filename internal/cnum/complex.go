// Package cnum provides a small complex-number library used for piece geometry.
// Every function is pure and total: division by a zero-magnitude value yields
// (+Inf, +Inf) instead of failing, so callers inside a render loop never need
// to handle errors.
package cnum

import (
	"fmt"
	"math"
)

// Complex is an immutable complex number. Always pass it by value.
type Complex struct {
	Re float64
	Im float64
}

// Common constants.
var (
	Zero = Complex{}
	One  = Complex{Re: 1}
	I    = Complex{Im: 1}
)

// New creates a complex number from its real and imaginary parts.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Subtract returns a - b.
func Subtract(a, b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Multiply returns a * b.
func Multiply(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Divide returns a / b.
// When b has zero magnitude the result is (+Inf, +Inf).
func Divide(a, b Complex) Complex {
	denom := b.Re*b.Re + b.Im*b.Im
	if denom == 0 {
		return Complex{Re: math.Inf(1), Im: math.Inf(1)}
	}
	return Complex{
		Re: (a.Re*b.Re + a.Im*b.Im) / denom,
		Im: (a.Im*b.Re - a.Re*b.Im) / denom,
	}
}

// Magnitude returns the Euclidean norm |z|.
func Magnitude(z Complex) float64 {
	return math.Hypot(z.Re, z.Im)
}

// Phase returns the argument of z in (-π, π].
func Phase(z Complex) float64 {
	return math.Atan2(z.Im, z.Re)
}

// RotateByI multiplies z by i: (re, im) -> (-im, re).
// In screen coordinates (y down) this looks like a clockwise quarter turn.
func RotateByI(z Complex) Complex {
	return Complex{Re: -z.Im, Im: z.Re}
}

// Rotate rotates z by angle radians.
func Rotate(z Complex, angle float64) Complex {
	sin, cos := math.Sincos(angle)
	return Complex{
		Re: z.Re*cos - z.Im*sin,
		Im: z.Re*sin + z.Im*cos,
	}
}

// Exp returns e^z.
func Exp(z Complex) Complex {
	r := math.Exp(z.Re)
	sin, cos := math.Sincos(z.Im)
	return Complex{Re: r * cos, Im: r * sin}
}

// Square returns z².
func Square(z Complex) Complex {
	return Multiply(z, z)
}

// Reciprocal returns 1/z, or (+Inf, +Inf) for the origin.
func Reciprocal(z Complex) Complex {
	return Divide(One, z)
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b Complex, t float64) Complex {
	return Complex{
		Re: a.Re + (b.Re-a.Re)*t,
		Im: a.Im + (b.Im-a.Im)*t,
	}
}

// Round snaps both parts to the nearest integer. Halves round toward +Inf,
// so -0.5 snaps to 0 and 0.5 snaps to 1.
func Round(z Complex) Complex {
	return Complex{Re: roundHalfUp(z.Re), Im: roundHalfUp(z.Im)}
}

// RoundInt rounds x to the nearest integer with halves toward +Inf.
func RoundInt(x float64) int {
	return int(roundHalfUp(x))
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// IsFinite reports whether neither part is infinite or NaN.
func IsFinite(z Complex) bool {
	return !math.IsInf(z.Re, 0) && !math.IsInf(z.Im, 0) &&
		!math.IsNaN(z.Re) && !math.IsNaN(z.Im)
}

// Approx reports whether a and b differ by at most eps in each part.
func Approx(a, b Complex, eps float64) bool {
	return math.Abs(a.Re-b.Re) <= eps && math.Abs(a.Im-b.Im) <= eps
}

// String formats z as "a+bi". Negative zero prints as 0.
func (z Complex) String() string {
	re, im := z.Re, z.Im
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	if math.Signbit(im) {
		return fmt.Sprintf("%g-%gi", re, -im)
	}
	return fmt.Sprintf("%g+%gi", re, im)
}
