package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquaredMatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.6, A2: 0.2}
	for _, f := range []float64{10, 100, 1000, 5000, 20000} {
		want := cmplx.Abs(c.Response(f, 48000))
		got := math.Sqrt(c.MagnitudeSquared(f, 48000))
		if !almostEqual(got, want, 1e-12) {
			t.Fatalf("f=%v: closed form %v, complex %v", f, got, want)
		}
	}
}

func TestPassthroughResponseIsFlat(t *testing.T) {
	p := Passthrough()
	for _, f := range []float64{20, 1000, 20000} {
		if db := p.MagnitudeDB(f, 44100); !almostEqual(db, 0, 1e-12) {
			t.Fatalf("f=%v: %v dB, want 0", f, db)
		}
		if ph := p.Phase(f, 44100); !almostEqual(ph, 0, 1e-12) {
			t.Fatalf("f=%v: phase %v, want 0", f, ph)
		}
	}
}

func TestStable(t *testing.T) {
	if !lowpassish.Stable() {
		t.Fatal("lowpassish should be stable")
	}
	unstable := Coefficients{B0: 1, A1: -2.1, A2: 1.2}
	if unstable.Stable() {
		t.Fatal("poles outside unit circle reported stable")
	}
}

func TestBypassedSectionResponse(t *testing.T) {
	s := NewSection(lowpassish)
	s.SetEnabled(false)
	if s.Response(1000, 48000) != 1 {
		t.Fatal("bypassed section response should be 1")
	}
}

func TestCascadeResponseIsProduct(t *testing.T) {
	second := Coefficients{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1}
	var cc CascadeCoefficients
	cc.Push(lowpassish)
	cc.Push(second)
	c, err := NewCascade(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetCoefficients(cc); err != nil {
		t.Fatal(err)
	}

	f, sr := 3000.0, 48000.0
	want := lowpassish.Response(f, sr) * second.Response(f, sr)
	if got := c.Response(f, sr); cmplx.Abs(got-want) > 1e-12 {
		t.Fatalf("Response = %v, want %v", got, want)
	}
	wantDB := 20 * math.Log10(cmplx.Abs(want))
	if got := c.MagnitudeDB(f, sr); !almostEqual(got, wantDB, 1e-9) {
		t.Fatalf("MagnitudeDB = %v, want %v", got, wantDB)
	}
}

func TestImpulseResponsePreservesState(t *testing.T) {
	s := NewSection(lowpassish)
	s.ProcessSample(0.7)
	saved := s.State()

	ir := s.ImpulseResponse(4)
	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Fatalf("ir[%d] = %v, want %v", i, ir[i], want[i])
		}
	}
	if s.State() != saved {
		t.Fatal("ImpulseResponse modified section state")
	}
	if s.ImpulseResponse(0) != nil {
		t.Fatal("n=0 should return nil")
	}
}

func TestCascadeImpulseResponsePreservesState(t *testing.T) {
	c, err := NewCascade(2)
	if err != nil {
		t.Fatal(err)
	}
	var cc CascadeCoefficients
	cc.Push(lowpassish)
	if err := c.SetCoefficients(cc); err != nil {
		t.Fatal(err)
	}
	c.ProcessSample(1)
	saved := c.State()

	ir := c.ImpulseResponse(3)
	if !almostEqual(ir[0], 0.25, eps) || !almostEqual(ir[1], 0.55, eps) {
		t.Fatalf("unexpected IR %v", ir)
	}
	if c.State() != saved {
		t.Fatal("ImpulseResponse modified cascade state")
	}
}
