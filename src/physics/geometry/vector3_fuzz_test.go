package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// The identities below are polynomial identities over a commutative ring, so
// they hold exactly for int64 even when the arithmetic wraps.

func fuzzSeeds(f *testing.F) {
	f.Add(int64(1), int64(2), int64(3), int64(-3), int64(0), int64(5), int64(7), int64(-11), int64(13), int64(-2))
	f.Add(int64(1), int64(-2), int64(-3), int64(2), int64(4), int64(-6), int64(0), int64(0), int64(0), int64(0))
	f.Add(int64(math.MaxInt64), int64(math.MinInt64), int64(-1), int64(1), int64(math.MaxInt64), int64(2), int64(3), int64(math.MinInt64), int64(1), int64(math.MaxInt64))
}

func FuzzVector3Addition(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, ux, uy, uz, vx, vy, vz, wx, wy, wz, s int64) {
		u, v, w := vi(ux, uy, uz), vi(vx, vy, vz), vi(wx, wy, wz)

		require.Equal(t, u.Add(v), v.Add(u))
		require.Equal(t, u.Add(v).Add(w), u.Add(v.Add(w)))
		require.Equal(t, u, u.Add(Zero[int64]()))
		require.Equal(t, Zero[int64](), u.Add(Neg(u)))
		require.Equal(t, u.Add(Neg(v)), u.Sub(v))
		require.Equal(t, u.Add(v).Mul(s), u.Mul(s).Add(v.Mul(s)))

		u2 := u
		u2.AddAssign(v)
		require.Equal(t, u.Add(v), u2)

		u2 = u
		u2.SubAssign(v)
		require.Equal(t, u.Sub(v), u2)

		u2 = u
		u2.MulAssign(s)
		require.Equal(t, u.Mul(s), u2)

		if s != 0 {
			u2 = u
			u2.DivAssign(s)
			require.Equal(t, u.Div(s), u2)
		}
	})
}

func FuzzVector3Products(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, ux, uy, uz, vx, vy, vz, wx, wy, wz, _ int64) {
		u, v, w := vi(ux, uy, uz), vi(vx, vy, vz), vi(wx, wy, wz)

		require.Equal(t, u.Dot(v), v.Dot(u))
		require.Equal(t, u.Add(v).Dot(w), u.Dot(w)+v.Dot(w))
		require.Equal(t, ux*ux+uy*uy+uz*uz, u.Dot(u))

		c := u.Cross(v)
		require.Equal(t, Neg(v.Cross(u)), c)
		require.Equal(t, Zero[int64](), u.Cross(u))
		require.Zero(t, c.Dot(u))
		require.Zero(t, c.Dot(v))

		d := u.Dot(v)
		require.Equal(t, abs(d), AbsDot(u, v))
	})
}
