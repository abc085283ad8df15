package geometry

import "math"

// LengthSquared returns x² + y² + z², computed in E and then converted to
// float64. Integer elements accept E's overflow behavior.
func LengthSquared[E Real](v Vector3[E]) float64 {
	return float64(v.Dot(v))
}

// Length returns the Euclidean norm of v.
func Length[E Real](v Vector3[E]) float64 {
	return math.Sqrt(LengthSquared(v))
}
