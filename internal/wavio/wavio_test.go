package wavio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestOpen_NonexistentFile(t *testing.T) {
	_, err := Open("/nonexistent/path/to/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpen_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestCreate_InvalidPath(t *testing.T) {
	_, err := Create("/nonexistent/dir/out.wav", 48000, 16, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	left := testutil.DeterministicSine(440, 44100, 0.5, 1000)
	right := testutil.DeterministicSine(880, 44100, 0.25, 1000)

	w, err := Create(path, 44100, 16, 2)
	require.NoError(t, err)
	require.NoError(t, w.WriteFrames([][]float64{left[:600], right[:600]}, 600))
	require.NoError(t, w.WriteFrames([][]float64{left[600:], right[600:]}, 400))
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	assert.Equal(t, 44100, r.Rate)
	assert.Equal(t, 2, r.Channels)
	assert.Equal(t, 16, r.BitDepth)

	got := core.NewChannels(2, 1000)
	total := 0
	block := core.NewChannels(2, 256)
	for {
		n, err := r.ReadFrames(block)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		for ch := range block {
			copy(got[ch][total:], block[ch][:n])
		}
		total += n
	}

	require.Equal(t, 1000, total)
	testutil.RequireSliceNearlyEqual(t, got[0], left, 1.0/32768)
	testutil.RequireSliceNearlyEqual(t, got[1], right, 1.0/32768)
}

func TestReadFrames_ChannelMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	w, err := Create(path, 48000, 16, 1)
	require.NoError(t, err)
	require.NoError(t, w.WriteFrames([][]float64{make([]float64, 64)}, 64))
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	_, err = r.ReadFrames(core.NewChannels(2, 64))
	require.Error(t, err)
}

func TestWriteFrames_Clips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	w, err := Create(path, 48000, 16, 1)
	require.NoError(t, err)
	require.NoError(t, w.WriteFrames([][]float64{{2, -2, 0}}, 3))
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	buf := core.NewChannels(1, 3)
	n, err := r.ReadFrames(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.InDelta(t, 32767.0/32768, buf[0][0], 1e-12)
	assert.InDelta(t, -32767.0/32768, buf[0][1], 1e-12)
	assert.InDelta(t, 0, buf[0][2], 0)
}

func TestFullScale(t *testing.T) {
	assert.InDelta(t, 128, FullScale(8), 0)
	assert.InDelta(t, 32768, FullScale(16), 0)
	assert.InDelta(t, 8388608, FullScale(24), 0)
	assert.InDelta(t, 2147483648, FullScale(32), 0)
	assert.InDelta(t, 32768, FullScale(12), 0)
}
