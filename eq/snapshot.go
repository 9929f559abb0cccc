package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Parameter ranges.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
	MinGainDB    = -24.0
	MaxGainDB    = 24.0
	MinQuality   = 0.1
	MaxQuality   = 10.0
)

// Defaults for a flat response.
const (
	DefaultLowCutFreq  = 20.0
	DefaultHighCutFreq = 20000.0
	DefaultPeakFreq    = 750.0
	DefaultPeakGainDB  = 0.0
	DefaultPeakQuality = 1.0
)

// nyquistGuard keeps sanitized frequencies strictly below Nyquist.
const nyquistGuard = 0.49

// Snapshot is a per-block read of the user-facing parameters.
type Snapshot struct {
	LowCutFreq   float64
	HighCutFreq  float64
	PeakFreq     float64
	PeakGainDB   float64
	PeakQuality  float64
	LowCutSlope  Slope
	HighCutSlope Slope
}

// DefaultSnapshot returns the parameter defaults.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		LowCutFreq:   DefaultLowCutFreq,
		HighCutFreq:  DefaultHighCutFreq,
		PeakFreq:     DefaultPeakFreq,
		PeakGainDB:   DefaultPeakGainDB,
		PeakQuality:  DefaultPeakQuality,
		LowCutSlope:  Slope12,
		HighCutSlope: Slope12,
	}
}

// Sanitize returns s with every field clamped into its declared range.
// Non-finite values fall back to their defaults and frequencies are kept
// below 0.49*sampleRate so the designers never see Nyquist or above.
func (s Snapshot) Sanitize(sampleRate float64) Snapshot {
	maxFreq := MaxFrequency
	if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
		maxFreq = math.Min(maxFreq, nyquistGuard*sampleRate)
	}

	freq := func(v, def float64) float64 {
		v = core.Clamp(core.OrDefault(v, def), MinFrequency, MaxFrequency)
		return math.Min(v, maxFreq)
	}

	return Snapshot{
		LowCutFreq:   freq(s.LowCutFreq, DefaultLowCutFreq),
		HighCutFreq:  freq(s.HighCutFreq, DefaultHighCutFreq),
		PeakFreq:     freq(s.PeakFreq, DefaultPeakFreq),
		PeakGainDB:   core.Clamp(core.OrDefault(s.PeakGainDB, DefaultPeakGainDB), MinGainDB, MaxGainDB),
		PeakQuality:  core.Clamp(core.OrDefault(s.PeakQuality, DefaultPeakQuality), MinQuality, MaxQuality),
		LowCutSlope:  SlopeFromIndex(int(s.LowCutSlope)),
		HighCutSlope: SlopeFromIndex(int(s.HighCutSlope)),
	}
}
