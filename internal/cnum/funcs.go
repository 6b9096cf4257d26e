package cnum

// Func identifies one of the named analytic functions usable as a transform.
type Func int

const (
	FuncIdentity Func = iota
	FuncRotation      // i·z
	FuncSquare        // z²
	FuncExp           // e^z
	FuncReciprocal    // 1/z
)

// Funcs lists the selectable transforms in display order.
var Funcs = []Func{FuncRotation, FuncSquare, FuncExp, FuncReciprocal}

// ParseFunc maps a tag ("rotation", "square", "exp", "reciprocal") to a Func.
// Unrecognized tags map to FuncIdentity.
func ParseFunc(tag string) Func {
	switch tag {
	case "rotation":
		return FuncRotation
	case "square":
		return FuncSquare
	case "exp":
		return FuncExp
	case "reciprocal":
		return FuncReciprocal
	default:
		return FuncIdentity
	}
}

// String returns the tag accepted by ParseFunc.
func (f Func) String() string {
	switch f {
	case FuncRotation:
		return "rotation"
	case FuncSquare:
		return "square"
	case FuncExp:
		return "exp"
	case FuncReciprocal:
		return "reciprocal"
	default:
		return "identity"
	}
}

// Symbol returns a short mathematical label for display.
func (f Func) Symbol() string {
	switch f {
	case FuncRotation:
		return "i·z"
	case FuncSquare:
		return "z²"
	case FuncExp:
		return "eᶻ"
	case FuncReciprocal:
		return "1/z"
	default:
		return "z"
	}
}

// Apply evaluates f at z. FuncIdentity and unknown values return z unchanged.
func (f Func) Apply(z Complex) Complex {
	switch f {
	case FuncRotation:
		return RotateByI(z)
	case FuncSquare:
		return Square(z)
	case FuncExp:
		return Exp(z)
	case FuncReciprocal:
		return Reciprocal(z)
	default:
		return z
	}
}

// ApplyFunction dispatches on a string tag; unknown tags are the identity.
func ApplyFunction(tag string, z Complex) Complex {
	return ParseFunc(tag).Apply(z)
}
