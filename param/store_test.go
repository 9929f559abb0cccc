package param

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEQLayout_Defaults(t *testing.T) {
	s := NewEQLayout()

	want := map[string]float64{
		LowCutFreq:   20,
		HighCutFreq:  20000,
		PeakFreq:     750,
		PeakGain:     0,
		PeakQuality:  1,
		LowCutSlope:  0,
		HighCutSlope: 0,
	}
	got := s.Values()
	require.Len(t, got, len(want))
	for id, w := range want {
		assert.InDelta(t, w, got[id], 1e-12, id)
	}

	ids := make([]string, 0, 7)
	for _, p := range s.All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{
		LowCutFreq, HighCutFreq, PeakFreq, PeakGain, PeakQuality, LowCutSlope, HighCutSlope,
	}, ids)
}

func TestNewEQLayout_Steps(t *testing.T) {
	s := NewEQLayout()

	got, err := s.Set(PeakFreq, 1000.4)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got, 1e-9)

	got, err = s.Set(PeakGain, 12.2)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, 1e-9)

	got, err = s.Set(PeakQuality, 2.02)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)

	assert.Equal(t, "48 dB/Oct", s.Get(LowCutSlope).Choices[3])
}

func TestStore_SetErrors(t *testing.T) {
	s := NewEQLayout()

	_, err := s.Set("volume", 1)
	require.ErrorIs(t, err, ErrUnknownParameter)

	s.Set(PeakGain, 6)
	_, err = s.Set(PeakGain, math.NaN())
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.InDelta(t, 6.0, s.Value(PeakGain), 1e-12)

	assert.True(t, math.IsNaN(s.Value("volume")))
	assert.Nil(t, s.Get("volume"))
}

func TestStore_Reset(t *testing.T) {
	s := NewEQLayout()
	require.NoError(t, s.Apply(map[string]float64{
		PeakFreq:    1000,
		PeakGain:    12,
		LowCutSlope: 3,
	}))
	assert.Equal(t, 3, s.Get(LowCutSlope).Index())

	s.Reset()
	assert.InDelta(t, 750.0, s.Value(PeakFreq), 1e-12)
	assert.InDelta(t, 0.0, s.Value(PeakGain), 1e-12)
	assert.Equal(t, 0, s.Get(LowCutSlope).Index())
}

func TestNewStore_Duplicate(t *testing.T) {
	_, err := NewStore(
		NewParameter("a", "A", "", 0, 1, 0, 0),
		NewParameter("a", "A again", "", 0, 1, 0, 0),
	)
	require.ErrorIs(t, err, ErrDuplicateParameter)
}

func TestStore_AllIsCopy(t *testing.T) {
	s := NewEQLayout()
	all := s.All()
	all[0] = nil
	assert.NotNil(t, s.All()[0])
}
