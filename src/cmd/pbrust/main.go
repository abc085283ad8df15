package main

import (
	"fmt"

	"pbrust/src/physics/geometry"
)

func main() {
	v1 := geometry.Point64{X: 1, Y: 2, Z: 3}
	v2 := geometry.NewVector3[int64](3, 4, 5)
	fmt.Println(v1)
	fmt.Println(v1.Add(v2))
	fmt.Println(v2)

	v3 := v2
	v3.AddAssign(v3)
	fmt.Println(v3)
	fmt.Println(v3.Sub(v1))

	neg := geometry.Neg(v1)
	fmt.Println(neg, geometry.Abs(neg))
}
