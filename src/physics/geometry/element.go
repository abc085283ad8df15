package geometry

import "golang.org/x/exp/constraints"

// Ring is any element type with +, -, * and the identities 0 and 1. Every
// Go type in the set also divides, so it doubles as the divisible tier.
type Ring interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Negatable element types have a unary minus. Unsigned integers are not
// negatable.
type Negatable interface {
	constraints.Signed | constraints.Float | constraints.Complex
}

// Signed element types have an absolute value.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Real element types convert to float64 without failing.
type Real interface {
	constraints.Integer | constraints.Float
}
