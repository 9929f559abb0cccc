package freqresp

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

// Errors returned by measurements.
var (
	ErrInvalidSampleRate = errors.New("freqresp: sample rate must be positive")
	ErrEmptySignal       = errors.New("freqresp: signal is empty")
	ErrLengthMismatch    = errors.New("freqresp: input and output lengths differ")
)

// regularization keeps Transfer finite where the excitation has no energy.
const regularization = 1e-12

// Response is a sampled magnitude response over the FFT bins 0..N/2.
type Response struct {
	SampleRate float64
	FFTSize    int
	Freqs      []float64 // bin centre frequencies in Hz
	Mag        []float64 // linear magnitude per bin
}

// ImpulseResponder is a system that can report its impulse response.
type ImpulseResponder interface {
	ImpulseResponse(n int) []float64
}

// Measure takes n samples of sys's impulse response and transforms them.
func Measure(sys ImpulseResponder, n int, sampleRate float64) (*Response, error) {
	return FromImpulse(sys.ImpulseResponse(n), sampleRate)
}

// FromImpulse returns the magnitude response of an impulse response.
func FromImpulse(ir []float64, sampleRate float64) (*Response, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(ir) == 0 {
		return nil, ErrEmptySignal
	}

	size := nextPowerOf2(len(ir))
	bins, err := forward(ir, size)
	if err != nil {
		return nil, err
	}
	return newResponse(bins, size, sampleRate), nil
}

// Transfer estimates H = Y/X from an excitation and the system's output.
// Both signals are zero-padded to twice their length so the result is
// free of circular wrap-around.
func Transfer(input, output []float64, sampleRate float64) (*Response, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(input) == 0 {
		return nil, ErrEmptySignal
	}
	if len(input) != len(output) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(input), len(output))
	}

	size := nextPowerOf2(2 * len(input))
	x, err := forward(input, size)
	if err != nil {
		return nil, err
	}
	y, err := forward(output, size)
	if err != nil {
		return nil, err
	}

	for i := range y {
		den := real(x[i])*real(x[i]) + imag(x[i])*imag(x[i]) + regularization
		y[i] = y[i] * cmplx.Conj(x[i]) / complex(den, 0)
	}
	return newResponse(y, size, sampleRate), nil
}

func forward(signal []float64, size int) ([]complex128, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("freqresp: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, size)
	for i, v := range signal {
		src[i] = complex(v, 0)
	}
	dst := make([]complex128, size)
	if err := plan.Forward(dst, src); err != nil {
		return nil, fmt.Errorf("freqresp: forward FFT failed: %w", err)
	}
	return dst, nil
}

func newResponse(bins []complex128, size int, sampleRate float64) *Response {
	half := size/2 + 1
	freqs := make([]float64, half)
	binHz := sampleRate / float64(size)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}
	return &Response{
		SampleRate: sampleRate,
		FFTSize:    size,
		Freqs:      freqs,
		Mag:        spectrum.Magnitude(bins[:half]),
	}
}

// MagnitudeDB returns the per-bin magnitude in dB.
func (r *Response) MagnitudeDB() []float64 {
	out := make([]float64, len(r.Mag))
	for i, m := range r.Mag {
		out[i] = toDB(m)
	}
	return out
}

// At returns the linear magnitude at each frequency, interpolated
// between bins.
func (r *Response) At(freqs ...float64) []float64 {
	out, err := spectrum.InterpolateLinear(r.Freqs, r.Mag, freqs)
	if err != nil {
		// Freqs is strictly increasing by construction.
		panic(err)
	}
	return out
}

// AtDB returns the magnitude at freq in dB.
func (r *Response) AtDB(freq float64) float64 {
	return toDB(r.At(freq)[0])
}

// Sample returns the magnitude in dB on the given frequency grid.
func (r *Response) Sample(grid []float64) []float64 {
	mag := r.At(grid...)
	for i, m := range mag {
		mag[i] = toDB(m)
	}
	return mag
}

// Range returns the minimum and maximum magnitude in dB on a log grid of
// points between lo and hi. An empty grid yields (0, 0).
func (r *Response) Range(lo, hi float64, points int) (minDB, maxDB float64) {
	db := r.Sample(LogGrid(lo, hi, points))
	if len(db) == 0 {
		return 0, 0
	}
	return floats.Min(db), floats.Max(db)
}

// LogGrid returns n logarithmically spaced frequencies from lo to hi.
func LogGrid(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.LogSpan(make([]float64, n), lo, hi)
}

func toDB(m float64) float64 {
	if m <= 0 {
		return -300
	}
	return 20 * math.Log10(m)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
