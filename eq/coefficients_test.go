package eq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

func finite(c biquad.Coefficients) bool {
	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestPeakCoefficients_UnityIsIdentity(t *testing.T) {
	for _, f := range []float64{20, 750, 1000, 20000} {
		for _, q := range []float64{0.1, 1, 10} {
			c := PeakCoefficients(44100, f, q, 1)
			assert.True(t, c.IsPassthrough(), "f=%v q=%v: %+v", f, q, c)
		}
	}
}

func TestPeakCoefficients_CenterGain(t *testing.T) {
	c := PeakCoefficients(44100, 1000, 2, math.Pow(10, 12.0/20))
	assert.InDelta(t, 12.0, c.MagnitudeDB(1000, 44100), 1e-6)

	// Local maximum at the center.
	assert.Less(t, c.MagnitudeDB(900, 44100), 12.0)
	assert.Less(t, c.MagnitudeDB(1100, 44100), 12.0)

	// Far from the center the response approaches 0 dB.
	assert.InDelta(t, 0.0, c.MagnitudeDB(20, 44100), 0.05)
}

func TestPeakCoefficients_Cut(t *testing.T) {
	c := PeakCoefficients(48000, 2000, 1, math.Pow(10, -24.0/20))
	assert.InDelta(t, -24.0, c.MagnitudeDB(2000, 48000), 1e-6)
	assert.Greater(t, c.MagnitudeDB(1800, 48000), -24.0)
}

func TestPeakCoefficients_NarrowerWithQ(t *testing.T) {
	g := math.Pow(10, 12.0/20)
	wide := PeakCoefficients(48000, 1000, 0.5, g)
	narrow := PeakCoefficients(48000, 1000, 5, g)
	assert.Greater(t, wide.MagnitudeDB(2000, 48000), narrow.MagnitudeDB(2000, 48000))
}

func TestCutCoefficients_SectionCounts(t *testing.T) {
	for _, s := range []Slope{Slope12, Slope24, Slope36, Slope48} {
		lc := LowCutCoefficients(48000, 100, s.Order())
		hc := HighCutCoefficients(48000, 8000, s.Order())
		assert.Equal(t, s.Sections(), lc.N, s.String())
		assert.Equal(t, s.Sections(), hc.N, s.String())
	}

	assert.Zero(t, LowCutCoefficients(48000, 100, 5).N)
	assert.Zero(t, HighCutCoefficients(48000, 100, 10).N)
}

func TestCutCoefficients_Minus3dBAtCutoff(t *testing.T) {
	for _, s := range []Slope{Slope12, Slope24, Slope36, Slope48} {
		var c biquad.Cascade
		require.NoError(t, c.Configure(LowCutCoefficients(48000, 200, s.Order())))
		assert.InDelta(t, -3.0103, c.MagnitudeDB(200, 48000), 0.01, s.String())

		require.NoError(t, c.Configure(HighCutCoefficients(48000, 5000, s.Order())))
		assert.InDelta(t, -3.0103, c.MagnitudeDB(5000, 48000), 0.01, s.String())
	}
}

func TestCutCoefficients_AboveNyquistFinite(t *testing.T) {
	cc := HighCutCoefficients(32000, 20000, 8)
	require.Equal(t, 4, cc.N)
	for _, c := range cc.Slice() {
		assert.True(t, finite(c))
		assert.True(t, c.IsPassthrough())
	}
}

func TestComputeChainCoefficients_BoundariesFinite(t *testing.T) {
	freqs := []float64{MinFrequency, 1000, MaxFrequency}
	gains := []float64{MinGainDB, 0, MaxGainDB}
	qs := []float64{MinQuality, 1, MaxQuality}

	for _, sr := range []float64{44100, 48000, 96000} {
		for _, f := range freqs {
			for _, g := range gains {
				for _, q := range qs {
					s := Snapshot{
						LowCutFreq: f, HighCutFreq: f, PeakFreq: f,
						PeakGainDB: g, PeakQuality: q,
						LowCutSlope: Slope48, HighCutSlope: Slope12,
					}.Sanitize(sr)
					cc := ComputeChainCoefficients(s, sr)
					require.True(t, finite(cc.Peak), "sr=%v f=%v g=%v q=%v", sr, f, g, q)
					for _, c := range cc.LowCut.Slice() {
						require.True(t, finite(c) && c.Stable())
					}
					for _, c := range cc.HighCut.Slice() {
						require.True(t, finite(c) && c.Stable())
					}
					require.True(t, cc.Peak.Stable(), "peak unstable sr=%v f=%v g=%v q=%v", sr, f, g, q)
				}
			}
		}
	}
}
