package param

// Parameter identifiers of the equalizer.
const (
	LowCutFreq   = "lowcut_freq"
	HighCutFreq  = "highcut_freq"
	PeakFreq     = "peak_freq"
	PeakGain     = "peak_gain"
	PeakQuality  = "peak_quality"
	LowCutSlope  = "lowcut_slope"
	HighCutSlope = "highcut_slope"
)

// SlopeChoices are the labels of the two slope parameters.
var SlopeChoices = []string{"12 dB/Oct", "24 dB/Oct", "36 dB/Oct", "48 dB/Oct"}

// NewEQLayout returns a store holding the seven equalizer parameters at
// their defaults.
func NewEQLayout() *Store {
	s, err := NewStore(
		NewParameter(LowCutFreq, "LowCut Freq", "Hz", 20, 20000, 20, 1),
		NewParameter(HighCutFreq, "HighCut Freq", "Hz", 20, 20000, 20000, 1),
		NewParameter(PeakFreq, "Peak Freq", "Hz", 20, 20000, 750, 1),
		NewParameter(PeakGain, "Peak Gain", "dB", -24, 24, 0, 0.5),
		NewParameter(PeakQuality, "Peak Quality", "", 0.1, 10, 1, 0.05),
		NewChoice(LowCutSlope, "LowCut Slope", SlopeChoices, 0),
		NewChoice(HighCutSlope, "HighCut Slope", SlopeChoices, 0),
	)
	if err != nil {
		panic(err)
	}
	return s
}
