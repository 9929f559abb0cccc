package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePower(t *testing.T) {
	in := []complex128{3 + 4i, -1, 2i, 0}

	mag := Magnitude(in)
	pow := Power(in)
	wantMag := []float64{5, 1, 2, 0}
	wantPow := []float64{25, 1, 4, 0}

	for i := range in {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Errorf("mag[%d] = %v, want %v", i, mag[i], wantMag[i])
		}
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Errorf("pow[%d] = %v, want %v", i, pow[i], wantPow[i])
		}
	}

	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatal("empty input should return nil")
	}
}

func TestInterpolateLinear(t *testing.T) {
	x := []float64{0, 10, 20}
	y := []float64{0, 1, 3}

	got, err := InterpolateLinear(x, y, []float64{-5, 5, 10, 15, 25})
	if err != nil {
		t.Fatalf("InterpolateLinear: %v", err)
	}
	want := []float64{0, 0.5, 1, 2, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInterpolateLinearErrors(t *testing.T) {
	if _, err := InterpolateLinear(nil, nil, []float64{1}); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := InterpolateLinear([]float64{0, 1}, []float64{0}, nil); err == nil {
		t.Error("expected error for length mismatch")
	}
	if _, err := InterpolateLinear([]float64{0, 0}, []float64{0, 1}, nil); err == nil {
		t.Error("expected error for non-increasing x")
	}
}
