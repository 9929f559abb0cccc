package biquad

import "testing"

func TestSetOrderActivatesPrefix(t *testing.T) {
	for _, order := range []int{2, 4, 6, 8} {
		c, err := NewCascade(2)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.SetOrder(order); err != nil {
			t.Fatalf("SetOrder(%d): %v", order, err)
		}

		if c.ActiveCount() != order/2 || c.Order() != order {
			t.Fatalf("order %d: active=%d order=%d", order, c.ActiveCount(), c.Order())
		}
		for i := 0; i < MaxCascadeSections; i++ {
			want := i < order/2
			if c.Section(i).Enabled() != want {
				t.Fatalf("order %d: section %d enabled=%v, want %v", order, i, c.Section(i).Enabled(), want)
			}
		}
	}
}

func TestCascadeCoefficientsPushCapacity(t *testing.T) {
	var cc CascadeCoefficients
	for i := 0; i < MaxCascadeSections; i++ {
		if !cc.Push(Passthrough()) {
			t.Fatalf("push %d rejected", i)
		}
	}
	if cc.Push(Passthrough()) {
		t.Fatal("push beyond capacity accepted")
	}
	if cc.Order() != MaxOrder || len(cc.Slice()) != MaxCascadeSections {
		t.Fatalf("order=%d len=%d", cc.Order(), len(cc.Slice()))
	}
}

func TestZeroCascadeIsTransparent(t *testing.T) {
	var c Cascade
	impulse := []float64{1, 0, 0, 0}
	for i, x := range impulse {
		if y := c.ProcessSample(x); y != x {
			t.Fatalf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestCascadeMatchesSerialSections(t *testing.T) {
	second := Coefficients{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1}
	var cc CascadeCoefficients
	cc.Push(lowpassish)
	cc.Push(second)

	c, err := NewCascade(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Configure(cc); err != nil {
		t.Fatal(err)
	}

	s1, s2 := NewSection(lowpassish), NewSection(second)
	input := []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.5}
	block := append([]float64(nil), input...)
	c.ProcessBlock(block)

	c.Reset()
	for i, x := range input {
		want := s2.ProcessSample(s1.ProcessSample(x))
		if got := c.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("sample %d: ProcessSample=%v want %v", i, got, want)
		}
		if !almostEqual(block[i], want, eps) {
			t.Fatalf("sample %d: ProcessBlock=%v want %v", i, block[i], want)
		}
	}
}

func TestSetOrderResetsReactivatedSections(t *testing.T) {
	var cc CascadeCoefficients
	for i := 0; i < 4; i++ {
		cc.Push(lowpassish)
	}
	c, err := NewCascade(8)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetCoefficients(cc); err != nil {
		t.Fatal(err)
	}
	c.ProcessSample(1)

	if err := c.SetOrder(2); err != nil {
		t.Fatal(err)
	}
	if c.Section(3).State() == ([2]float64{}) {
		t.Fatal("expected bypassed section to keep its frozen state")
	}
	if err := c.SetOrder(8); err != nil {
		t.Fatal(err)
	}
	if c.Section(3).State() != ([2]float64{}) {
		t.Fatal("reactivated section was not reset")
	}
	if c.Section(0).State() == ([2]float64{}) {
		t.Fatal("continuously active section lost its state")
	}
}

func TestCascadeOrderChangeAllocs(t *testing.T) {
	c, err := NewCascade(2)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]float64, 128)
	var cc CascadeCoefficients
	cc.Push(lowpassish)
	cc.Push(lowpassish)

	allocs := testing.AllocsPerRun(100, func() {
		_ = c.Configure(cc)
		c.ProcessBlock(buf)
		_ = c.SetOrder(2)
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
}
