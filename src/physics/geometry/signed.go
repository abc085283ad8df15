package geometry

// Neg returns -v.
func Neg[E Negatable](v Vector3[E]) Vector3[E] {
	return Vector3[E]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Abs returns the componentwise absolute value of v.
func Abs[E Signed](v Vector3[E]) Vector3[E] {
	return Vector3[E]{X: abs(v.X), Y: abs(v.Y), Z: abs(v.Z)}
}

// AbsDot returns |u · v|.
func AbsDot[E Signed](u, v Vector3[E]) E {
	return abs(u.Dot(v))
}

// abs subtracts from zero rather than negating so that -0.0 comes out as
// +0.0. The most negative integer wraps to itself.
func abs[E Signed](x E) E {
	if x <= 0 {
		return 0 - x
	}
	return x
}
