package freqresp

import (
	"errors"
	"math"
)

// Errors returned by sweep generation.
var (
	ErrInvalidFrequency = errors.New("freqresp: frequency must be positive")
	ErrInvalidDuration  = errors.New("freqresp: duration must be positive")
	ErrFrequencyOrder   = errors.New("freqresp: start frequency must be less than end frequency")
)

// LogSweep describes an exponential sine sweep. Each octave takes the same
// time, giving a pink excitation spectrum.
type LogSweep struct {
	StartFreq  float64 // start frequency in Hz
	EndFreq    float64 // end frequency in Hz
	Duration   float64 // sweep duration in seconds
	SampleRate float64 // sample rate in Hz
}

// Validate checks the sweep parameters.
func (s *LogSweep) Validate() error {
	if s.StartFreq <= 0 || s.EndFreq <= 0 {
		return ErrInvalidFrequency
	}
	if s.StartFreq >= s.EndFreq {
		return ErrFrequencyOrder
	}
	if s.Duration <= 0 {
		return ErrInvalidDuration
	}
	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// Len returns the number of samples Generate produces.
func (s *LogSweep) Len() int {
	return int(math.Round(s.Duration * s.SampleRate))
}

// Generate renders the sweep:
//
//	x(t) = sin(2π f1 T / ln(f2/f1) * (exp(t/T ln(f2/f1)) - 1))
func (s *LogSweep) Generate() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, s.Len())
	T := s.Duration
	lnRatio := math.Log(s.EndFreq / s.StartFreq)
	k := 2 * math.Pi * s.StartFreq * T / lnRatio

	for i := range out {
		t := float64(i) / s.SampleRate
		out[i] = math.Sin(k * (math.Exp(t/T*lnRatio) - 1))
	}
	return out, nil
}

// InstantaneousFrequency returns the sweep frequency at time t seconds.
func (s *LogSweep) InstantaneousFrequency(t float64) float64 {
	return s.StartFreq * math.Exp(t/s.Duration*math.Log(s.EndFreq/s.StartFreq))
}
