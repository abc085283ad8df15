package geometry

// Zero returns the additive identity (0, 0, 0).
func Zero[E Ring]() Vector3[E] {
	return Vector3[E]{}
}

// UnitX, UnitY and UnitZ return the standard basis. They form a right-handed
// system: UnitX().Cross(UnitY()) == UnitZ().
func UnitX[E Ring]() Vector3[E] {
	return Vector3[E]{X: 1}
}

func UnitY[E Ring]() Vector3[E] {
	return Vector3[E]{Y: 1}
}

func UnitZ[E Ring]() Vector3[E] {
	return Vector3[E]{Z: 1}
}
