package geometry

type (
	Point32  = Vector3[int32]
	Point64  = Vector3[int64]
	Vector3f = Vector3[float64]
)

// Convert changes the element type of v using Go's conversion rules for each
// component, so narrowing truncates and float to integer drops the fraction.
// Widening a Point32 before a product avoids 32-bit overflow:
//
//	n := Convert[int64](a).Cross(b)
func Convert[To, From Real](v Vector3[From]) Vector3[To] {
	return Vector3[To]{X: To(v.X), Y: To(v.Y), Z: To(v.Z)}
}
