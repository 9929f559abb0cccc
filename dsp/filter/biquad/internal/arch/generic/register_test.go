package generic

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
)

func refProcess(c registry.Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	for i, x := range buf {
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		buf[i] = y
	}
	return d0, d1
}

func TestProcessBlockMatchesReference(t *testing.T) {
	c := registry.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	for _, n := range []int{0, 1, 2, 7, 8} {
		in := make([]float64, n)
		for i := range in {
			in[i] = math.Sin(float64(i))
		}
		got := append([]float64(nil), in...)
		want := append([]float64(nil), in...)

		gd0, gd1 := ProcessBlock(c, 0.1, -0.1, got)
		wd0, wd1 := refProcess(c, 0.1, -0.1, want)

		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-15 {
				t.Fatalf("n=%d sample %d: got %v want %v", n, i, got[i], want[i])
			}
		}
		if math.Abs(gd0-wd0) > 1e-15 || math.Abs(gd1-wd1) > 1e-15 {
			t.Fatalf("n=%d state mismatch: got (%v,%v) want (%v,%v)", n, gd0, gd1, wd0, wd1)
		}
	}
}
