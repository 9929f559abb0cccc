package spectrum

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func split(in []complex128) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	n := len(in)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	}
	re, im = buf.data[:n], buf.data[n:2*n]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// Magnitude returns |X[k]| for each bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// InterpolateLinear performs piecewise-linear interpolation of (x, y) at
// queryX. x must be strictly increasing; queries outside are held at the
// end values.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("interpolate: need equal non-empty x and y: %d, %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interpolate: x must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, len(queryX))
	last := len(x) - 1
	for i, q := range queryX {
		switch {
		case q <= x[0]:
			out[i] = y[0]
		case q >= x[last]:
			out[i] = y[last]
		default:
			j := sort.SearchFloat64s(x, q)
			t := (q - x[j-1]) / (x[j] - x[j-1])
			out[i] = y[j-1] + t*(y[j]-y[j-1])
		}
	}
	return out, nil
}
