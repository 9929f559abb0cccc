package eq

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// PeakCoefficients designs the bell section. gainLinear is an amplitude
// ratio; 1.0 yields the identity section.
func PeakCoefficients(sampleRate, freq, q, gainLinear float64) biquad.Coefficients {
	return design.PeakLinear(freq, gainLinear, q, sampleRate)
}

// LowCutCoefficients designs a Butterworth highpass of the given even order
// as order/2 sections. Unsupported orders return an empty set.
func LowCutCoefficients(sampleRate, freq float64, order int) biquad.CascadeCoefficients {
	return design.ButterworthHPCascade(freq, order, sampleRate)
}

// HighCutCoefficients designs a Butterworth lowpass of the given even order
// as order/2 sections. Unsupported orders return an empty set.
func HighCutCoefficients(sampleRate, freq float64, order int) biquad.CascadeCoefficients {
	return design.ButterworthLPCascade(freq, order, sampleRate)
}

// ChainCoefficients holds everything a [Chain] needs for one block.
// It is a plain value and may be shared between channels.
type ChainCoefficients struct {
	LowCut  biquad.CascadeCoefficients
	Peak    biquad.Coefficients
	HighCut biquad.CascadeCoefficients
}

// ComputeChainCoefficients derives all three stages from s. Callers are
// expected to pass a sanitized snapshot.
func ComputeChainCoefficients(s Snapshot, sampleRate float64) ChainCoefficients {
	return ChainCoefficients{
		LowCut:  LowCutCoefficients(sampleRate, s.LowCutFreq, s.LowCutSlope.Order()),
		Peak:    PeakCoefficients(sampleRate, s.PeakFreq, s.PeakQuality, core.DBToLinear(s.PeakGainDB)),
		HighCut: HighCutCoefficients(sampleRate, s.HighCutFreq, s.HighCutSlope.Order()),
	}
}
