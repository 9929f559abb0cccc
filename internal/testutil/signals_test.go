package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("quarter period = %v, want 1", s[12])
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 256)
	b := DeterministicNoise(42, 1.0, 256)
	RequireSliceNearlyEqual(t, a, b, 0)
	for i, v := range a {
		if v < -1 || v > 1 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(8, 3)
	for i, v := range x {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("x[%d] = %v, want %v", i, v, want)
		}
	}
	if y := Impulse(4, 9); y[0] != 0 || y[3] != 0 {
		t.Fatal("out-of-range position must give silence")
	}
}

func TestMultichannelIndependent(t *testing.T) {
	buf := Multichannel([]float64{1, 2, 3}, 2)
	buf[0][0] = 9
	if buf[1][0] != 1 {
		t.Fatal("channels share backing storage")
	}
	c := Clone(buf)
	c[1][1] = 7
	if buf[1][1] != 2 {
		t.Fatal("Clone shares backing storage")
	}
}

func TestBlocks(t *testing.T) {
	buf := Multichannel(make([]float64, 10), 2)
	var sizes []int
	Blocks(buf, 4, func(b [][]float64) {
		if len(b) != 2 || len(b[0]) != len(b[1]) {
			t.Fatalf("bad block shape")
		}
		sizes = append(sizes, len(b[0]))
	})
	if len(sizes) != 3 || sizes[0] != 4 || sizes[1] != 4 || sizes[2] != 2 {
		t.Fatalf("block sizes = %v, want [4 4 2]", sizes)
	}
}

func TestRMS(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1, 4800)
	if got := RMS(s); math.Abs(got-1/math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS = %v, want %v", got, 1/math.Sqrt2)
	}
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) != 0")
	}
}
