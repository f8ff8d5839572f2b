package safecast_test

import (
	"errors"
	"fmt"

	"go.dw1.io/safecast"
)

func ExampleRef() {
	type NormalPos struct{ X, Y, Z float32 }
	type ReversePos struct{ Z, Y, X float32 }

	np := NormalPos{X: 1, Y: 2, Z: 3}
	rp, err := safecast.Ref[ReversePos](&np)
	if err != nil {
		panic(err)
	}

	np.X = 10
	fmt.Println(rp.Z, rp.Y, rp.X)
	// Output: 10 2 3
}

func ExampleValue() {
	i, err := safecast.Value[int32](float32(12.45))
	if err != nil {
		panic(err)
	}

	fmt.Println(i)
	// Output: 12
}

func ExampleCast() {
	type X struct{ F float32 }

	g := float32(5456.5)
	r := safecast.MustCast[X](&g)

	fmt.Println(r.Mode(), r.Ref().F == g)
	// Output: reference true
}

func ExampleCheck() {
	err := safecast.Check[[2]float32, [3]float32]()
	fmt.Println(errors.Is(err, safecast.ErrIncompatible))
	// Output: true
}
