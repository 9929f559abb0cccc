//nolint:funcorder
package biquad

import (
	"sync"

	"github.com/cwbudde/algo-eq/dsp/core"
	archregistry "github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Passthrough returns the identity transfer function H(z) = 1.
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// IsPassthrough reports whether c is exactly the identity transfer function.
func (c Coefficients) IsPassthrough() bool {
	return c == Passthrough()
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
//
// A Section is not safe for concurrent use. Coefficient updates and
// processing must happen on the same goroutine (the audio callback).
type Section struct {
	Coefficients

	d0, d1 float64
	bypass bool
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSection returns an enabled Section initialized with the given
// coefficients and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// SetCoefficients replaces the active coefficients. The delay-line state is
// kept so a parameter change does not restart the filter from silence.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// SetEnabled enables or bypasses the section.
func (s *Section) SetEnabled(enabled bool) {
	s.bypass = !enabled
}

// Enabled reports whether the section is processing audio.
func (s *Section) Enabled() bool {
	return !s.bypass
}

// ProcessSample filters one input sample and returns the output.
// A bypassed section returns x unchanged and does not advance its state.
func (s *Section) ProcessSample(x float64) float64 {
	if s.bypass {
		return x
	}

	y := s.B0*x + s.d0
	s.d0 = core.FlushDenormals(s.B1*x - s.A1*y + s.d1)
	s.d1 = core.FlushDenormals(s.B2*x - s.A2*y)

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	if s.bypass || len(buf) == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := archregistry.Coefficients{
		B0: s.B0,
		B1: s.B1,
		B2: s.B2,
		A1: s.A1,
		A2: s.A2,
	}

	d0, d1 := processBlockImpl(coeffs, s.d0, s.d1, buf)
	s.d0, s.d1 = core.FlushDenormals(d0), core.FlushDenormals(d1)
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
