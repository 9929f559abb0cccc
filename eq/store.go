package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/param"
)

// StoreSource reads snapshots from a [param.Store]. Parameters are resolved
// once at construction; Snapshot performs only atomic loads.
type StoreSource struct {
	lowCutFreq   *param.Parameter
	highCutFreq  *param.Parameter
	peakFreq     *param.Parameter
	peakGain     *param.Parameter
	peakQuality  *param.Parameter
	lowCutSlope  *param.Parameter
	highCutSlope *param.Parameter
}

// SnapshotFromStore binds the equalizer parameters of s.
func SnapshotFromStore(s *param.Store) (*StoreSource, error) {
	src := &StoreSource{}
	bind := []struct {
		id  string
		dst **param.Parameter
	}{
		{param.LowCutFreq, &src.lowCutFreq},
		{param.HighCutFreq, &src.highCutFreq},
		{param.PeakFreq, &src.peakFreq},
		{param.PeakGain, &src.peakGain},
		{param.PeakQuality, &src.peakQuality},
		{param.LowCutSlope, &src.lowCutSlope},
		{param.HighCutSlope, &src.highCutSlope},
	}
	for _, b := range bind {
		p, err := s.Lookup(b.id)
		if err != nil {
			return nil, fmt.Errorf("eq: bind store: %w", err)
		}
		*b.dst = p
	}
	return src, nil
}

// Snapshot loads the current parameter values.
func (s *StoreSource) Snapshot() Snapshot {
	return Snapshot{
		LowCutFreq:   s.lowCutFreq.Value(),
		HighCutFreq:  s.highCutFreq.Value(),
		PeakFreq:     s.peakFreq.Value(),
		PeakGainDB:   s.peakGain.Value(),
		PeakQuality:  s.peakQuality.Value(),
		LowCutSlope:  SlopeFromIndex(s.lowCutSlope.Index()),
		HighCutSlope: SlopeFromIndex(s.highCutSlope.Index()),
	}
}
