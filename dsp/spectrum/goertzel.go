package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Goertzel evaluates one DFT bin incrementally.
//
// The analyzer accumulates every sample since the last Reset. For a
// steady tone, choosing a block that spans an integer number of cycles
// avoids leakage into the measured bin.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	n          int
}

// NewGoertzel creates an analyzer for frequency in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}
	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessBlock accumulates input.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s0, s1 = x+coeff*s0-s1, s0
	}
	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Power returns |X[k]|^2 over the accumulated samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Amplitude estimates the peak amplitude of a sinusoid at the analyzer
// frequency: 2|X[k]|/N.
func (g *Goertzel) Amplitude() float64 {
	p := g.Power()
	if p <= 0 || g.n == 0 {
		return 0
	}
	return 2 * math.Sqrt(p) / float64(g.n)
}

// Frequency returns the analyzed frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// ToneGainDB returns the level of a tone at frequency in output relative to
// input, in dB.
func ToneGainDB(input, output []float64, frequency, sampleRate float64) (float64, error) {
	in, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}
	out, _ := NewGoertzel(frequency, sampleRate)

	in.ProcessBlock(input)
	out.ProcessBlock(output)

	ref := in.Power()
	if ref == 0 {
		return 0, fmt.Errorf("goertzel: no energy at %v Hz in the reference", frequency)
	}
	return core.LinearPowerToDB(out.Power() / ref), nil
}
