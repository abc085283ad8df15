package geometry

import "fmt"

// Vector3 is a three component vector over the element type E. It is a plain
// value: copies are independent and the zero value is the zero vector.
type Vector3[E Ring] struct {
	X, Y, Z E
}

func NewVector3[E Ring](x, y, z E) Vector3[E] {
	return Vector3[E]{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum v + o.
func (v Vector3[E]) Add(o Vector3[E]) Vector3[E] {
	return Vector3[E]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub returns the componentwise difference v - o.
func (v Vector3[E]) Sub(o Vector3[E]) Vector3[E] {
	return Vector3[E]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

// AddAssign sets v to v + o.
func (v *Vector3[E]) AddAssign(o Vector3[E]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubAssign sets v to v - o.
func (v *Vector3[E]) SubAssign(o Vector3[E]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// Mul scales every component of v by s.
func (v Vector3[E]) Mul(s E) Vector3[E] {
	return Vector3[E]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div divides every component of v by s. Division by zero behaves as it does
// for E: integer elements panic, floating point elements yield Inf or NaN.
func (v Vector3[E]) Div(s E) Vector3[E] {
	return Vector3[E]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

func (v *Vector3[E]) MulAssign(s E) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

func (v *Vector3[E]) DivAssign(s E) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Dot returns the dot product of v and o, summed left to right. The explicit
// conversions round each product and keep the compiler from fusing the sum
// into FMA instructions.
func (v Vector3[E]) Dot(o Vector3[E]) E {
	return E(v.X*o.X) + E(v.Y*o.Y) + E(v.Z*o.Z)
}

// Cross returns the right-handed cross product v × o.
func (v Vector3[E]) Cross(o Vector3[E]) Vector3[E] {
	return Vector3[E]{
		X: v.Y*o.Z - v.Z*o.Y, // y * o.z - z * o.y
		Y: v.Z*o.X - v.X*o.Z, // z * o.x - x * o.z
		Z: v.X*o.Y - v.Y*o.X, // x * o.y - y * o.x
	}
}

func (v Vector3[E]) IsZero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Equal reports whether every component of v equals the matching component
// of o. It is the same as v == o.
func (v Vector3[E]) Equal(o Vector3[E]) bool {
	return (v.X == o.X) && (v.Y == o.Y) && (v.Z == o.Z)
}

func (v Vector3[E]) String() string {
	return fmt.Sprintf("Vector3{X: %v, Y: %v, Z: %v}", v.X, v.Y, v.Z)
}
