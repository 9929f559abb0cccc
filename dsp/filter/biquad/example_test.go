package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	for i := range 6 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := s.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
	// y[4] = -0.004400
	// y[5] = -0.002800
}

func ExampleCascade_SetOrder() {
	c, err := biquad.NewCascade(2)
	if err != nil {
		panic(err)
	}

	for _, order := range []int{4, 8, 5, 6} {
		if err := c.SetOrder(order); err != nil {
			fmt.Printf("order %d rejected\n", order)
			continue
		}
		fmt.Printf("order %d: %d active sections\n", order, c.ActiveCount())
	}
	// Output:
	// order 4: 2 active sections
	// order 8: 4 active sections
	// order 5 rejected
	// order 6: 3 active sections
}
