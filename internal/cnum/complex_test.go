package cnum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)

	assert.Equal(t, New(4, 6), Add(a, b))
	assert.Equal(t, New(3, 4), Subtract(New(5, 7), New(2, 3)))
	// (1+2i)(3+4i) = -5+10i
	assert.Equal(t, New(-5, 10), Multiply(a, b))
}

func TestDivide(t *testing.T) {
	t.Run("one over i", func(t *testing.T) {
		got := Divide(One, I)
		assert.True(t, Approx(got, New(0, -1), eps), "got %v", got)
	})

	t.Run("z over z is one", func(t *testing.T) {
		for _, z := range []Complex{New(3, 4), New(-2, 0.5), New(0, -7), New(1e-3, 1e3)} {
			got := Divide(z, z)
			assert.InDelta(t, 0, Magnitude(Subtract(got, One)), eps, "z=%v", z)
		}
	})

	t.Run("by zero yields infinities", func(t *testing.T) {
		got := Divide(New(1, 0), Zero)
		assert.True(t, math.IsInf(got.Re, 1))
		assert.True(t, math.IsInf(got.Im, 1))
		assert.False(t, IsFinite(got))
	})
}

func TestMagnitudeAndPhase(t *testing.T) {
	assert.Equal(t, 5.0, Magnitude(New(3, 4)))
	assert.InDelta(t, math.Pi/4, Phase(New(1, 1)), eps)
	assert.InDelta(t, math.Pi, Phase(New(-1, 0)), eps)
	assert.InDelta(t, -math.Pi/2, Phase(New(0, -1)), eps)
	assert.Equal(t, 0.0, Phase(Zero))
}

func TestRotateByI(t *testing.T) {
	assert.Equal(t, New(0, 1), RotateByI(New(1, 0)))
	assert.Equal(t, New(-1, 0), RotateByI(RotateByI(New(1, 0))))

	for _, z := range []Complex{New(1, 0), New(2.5, -1.25), New(-3, 7), Zero} {
		got := RotateByI(RotateByI(RotateByI(RotateByI(z))))
		assert.True(t, Approx(got, z, eps), "four quarter turns of %v gave %v", z, got)
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(One, math.Pi/2)
	assert.True(t, Approx(got, I, eps), "got %v", got)

	z := New(2, -1)
	assert.True(t, Approx(Rotate(z, math.Pi/2), RotateByI(z), eps))
}

func TestAnalyticFunctions(t *testing.T) {
	// e^(iπ) = -1
	assert.True(t, Approx(Exp(New(0, math.Pi)), New(-1, 0), eps))
	// (1+i)² = 2i
	assert.True(t, Approx(Square(New(1, 1)), New(0, 2), eps))
	// 1/i = -i
	assert.True(t, Approx(Reciprocal(I), New(0, -1), eps))

	inf := Reciprocal(Zero)
	assert.True(t, math.IsInf(inf.Re, 1) && math.IsInf(inf.Im, 1))
}

func TestPolarRoundTrip(t *testing.T) {
	p := ToPolar(New(1, 1))
	assert.InDelta(t, math.Sqrt2, p.R, eps)
	assert.InDelta(t, math.Pi/4, p.Theta, eps)

	assert.True(t, Approx(FromPolar(1, math.Pi/2), I, eps))

	for _, z := range []Complex{New(3, 4), New(-1, -1), New(0.25, -8), New(-5, 0)} {
		assert.True(t, Approx(ToPolar(z).Complex(), z, 1e-12), "round trip of %v", z)
	}

	origin := ToPolar(Zero)
	assert.Equal(t, Polar{R: 0, Theta: 0}, origin)
}

func TestApplyFunction(t *testing.T) {
	tests := []struct {
		tag  string
		in   Complex
		want Complex
	}{
		{"rotation", New(1, 0), New(0, 1)},
		{"square", New(2, 0), New(4, 0)},
		{"exp", Zero, One},
		{"reciprocal", New(2, 0), New(0.5, 0)},
		{"unknown", New(2, 3), New(2, 3)},
		{"", New(-1, 4), New(-1, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			got := ApplyFunction(tc.tag, tc.in)
			assert.True(t, Approx(got, tc.want, eps), "ApplyFunction(%q, %v) = %v, expected %v", tc.tag, tc.in, got, tc.want)
		})
	}
}

func TestParseFuncRoundTrip(t *testing.T) {
	for _, f := range Funcs {
		require.Equal(t, f, ParseFunc(f.String()))
	}
	assert.Equal(t, FuncIdentity, ParseFunc("sinh"))
	assert.Equal(t, New(7, -2), Func(99).Apply(New(7, -2)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1+2i", New(1, 2).String())
	assert.Equal(t, "-1-0.5i", New(-1, -0.5).String())
	assert.Equal(t, "0+1i", RotateByI(New(1, 0)).String())
	assert.Equal(t, "0+0i", New(math.Copysign(0, -1), math.Copysign(0, -1)).String())
}

func TestRound(t *testing.T) {
	assert.Equal(t, New(1, 0), Round(New(0.5, -0.5)))
	assert.Equal(t, New(-2, 3), Round(New(-1.6, 2.5)))
	assert.Equal(t, -1, RoundInt(-0.51))
	assert.Equal(t, 7, RoundInt(7.389))

	inf := Round(Reciprocal(Zero))
	assert.False(t, IsFinite(inf))
}
