package eq

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// Stage is one element of the signal path.
type Stage interface {
	ProcessSample(x float64) float64
	ProcessBlock(buf []float64)
	Reset()
}

var (
	_ Stage = (*biquad.Cascade)(nil)
	_ Stage = (*biquad.Section)(nil)
)

// Chain is the per-channel signal path: low-cut, peak, high-cut.
type Chain struct {
	lowCut  biquad.Cascade
	peak    biquad.Section
	highCut biquad.Cascade
}

// NewChain returns a transparent chain: both cascades at order 2 and every
// section passthrough.
func NewChain() *Chain {
	c := &Chain{}
	c.peak.SetCoefficients(biquad.Passthrough())
	c.peak.SetEnabled(true)

	pass := biquad.CascadeCoefficients{N: 1}
	pass.Sections[0] = biquad.Passthrough()
	_ = c.lowCut.Configure(pass)
	_ = c.highCut.Configure(pass)

	return c
}

// Update applies cc to all three stages. For each cascade the order is set
// first and then the coefficients. A stage whose coefficients are rejected
// keeps its previous configuration; the others are still updated.
func (c *Chain) Update(cc ChainCoefficients) error {
	errLow := c.lowCut.Configure(cc.LowCut)
	c.peak.SetCoefficients(cc.Peak)
	errHigh := c.highCut.Configure(cc.HighCut)

	if errLow != nil || errHigh != nil {
		return errors.Join(errLow, errHigh)
	}
	return nil
}

// Stages returns the stages in processing order.
func (c *Chain) Stages() [3]Stage {
	return [3]Stage{&c.lowCut, &c.peak, &c.highCut}
}

// LowCut returns the low-cut cascade.
func (c *Chain) LowCut() *biquad.Cascade { return &c.lowCut }

// Peak returns the peak section.
func (c *Chain) Peak() *biquad.Section { return &c.peak }

// HighCut returns the high-cut cascade.
func (c *Chain) HighCut() *biquad.Cascade { return &c.highCut }

// ProcessSample filters one sample through every stage.
func (c *Chain) ProcessSample(x float64) float64 {
	x = c.lowCut.ProcessSample(x)
	x = c.peak.ProcessSample(x)
	return c.highCut.ProcessSample(x)
}

// ProcessBlock filters buf in place.
func (c *Chain) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}
	c.lowCut.ProcessBlock(buf)
	c.peak.ProcessBlock(buf)
	c.highCut.ProcessBlock(buf)
}

// Reset clears the delay state of every stage.
func (c *Chain) Reset() {
	for _, s := range c.Stages() {
		s.Reset()
	}
}

// Response returns the complex frequency response of the whole chain.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	return c.lowCut.Response(freqHz, sampleRate) *
		c.peak.Response(freqHz, sampleRate) *
		c.highCut.Response(freqHz, sampleRate)
}

// MagnitudeDB returns the chain's magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// ImpulseResponse returns the first n samples of the impulse response.
// The chain's state is preserved.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	low, peak, high := c.lowCut.State(), c.peak.State(), c.highCut.State()
	c.Reset()

	out := make([]float64, n)
	out[0] = 1
	c.ProcessBlock(out)

	c.lowCut.SetState(low)
	c.peak.SetState(peak)
	c.highCut.SetState(high)

	return out
}
