package core

import "math"

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// NewChannels allocates channels planar buffers of size samples each,
// backed by a single contiguous allocation.
func NewChannels(channels, size int) [][]float64 {
	if channels <= 0 || size < 0 {
		return nil
	}

	backing := make([]float64, channels*size)
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = backing[ch*size : (ch+1)*size : (ch+1)*size]
	}
	return out
}

// Deinterleave splits interleaved frames from src into the planar buffers in
// dst, scaling every sample by scale. It returns the number of frames written,
// bounded by the shortest destination channel.
func Deinterleave(dst [][]float64, src []int, scale float64) int {
	channels := len(dst)
	if channels == 0 {
		return 0
	}

	frames := len(src) / channels
	for _, ch := range dst {
		if len(ch) < frames {
			frames = len(ch)
		}
	}

	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := range dst {
			dst[ch][i] = float64(src[base+ch]) * scale
		}
	}
	return frames
}

// Interleave writes frames planar frames from src into dst as integers,
// scaling by scale and clipping to [-limit, limit]. It returns the number of
// integer samples written.
func Interleave(dst []int, src [][]float64, frames int, scale, limit float64) int {
	channels := len(src)
	if channels == 0 || frames <= 0 {
		return 0
	}
	if fit := len(dst) / channels; frames > fit {
		frames = fit
	}

	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := range src {
			v := Clamp(src[ch][i]*scale, -limit, limit)
			dst[base+ch] = int(math.Round(v))
		}
	}
	return frames * channels
}
