package testutil

import (
	"math"
	"math/rand"

	"github.com/tphakala/simd/f64"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Multichannel returns channels independent copies of signal, laid out the
// way a host hands a block to a processor.
func Multichannel(signal []float64, channels int) [][]float64 {
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = append([]float64(nil), signal...)
	}
	return out
}

// Clone returns a deep copy of a multichannel buffer.
func Clone(buf [][]float64) [][]float64 {
	out := make([][]float64, len(buf))
	for ch := range buf {
		out[ch] = append([]float64(nil), buf[ch]...)
	}
	return out
}

// Blocks calls fn with consecutive sub-buffers of at most size frames.
func Blocks(buf [][]float64, size int, fn func(block [][]float64)) {
	if len(buf) == 0 || size <= 0 {
		return
	}
	frames := len(buf[0])
	block := make([][]float64, len(buf))
	for off := 0; off < frames; off += size {
		end := min(off+size, frames)
		for ch := range buf {
			block[ch] = buf[ch][off:end]
		}
		fn(block)
	}
}

// RMS returns the root-mean-square level of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(f64.DotProduct(x, x) / float64(len(x)))
}
