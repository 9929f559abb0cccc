package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// ButterworthQ returns the quality factor of biquad section index (0-based)
// in an order-N Butterworth cascade: Q = 1 / (2 sin((2i+1)π / 2N)).
func ButterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}
	return 1 / (2 * s)
}

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, Lowpass(freq, ButterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, Highpass(freq, ButterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}
	return sections
}

// ButterworthLPInto writes the sections of [ButterworthLP] into dst and
// returns the number written. It returns 0 when dst is too short.
func ButterworthLPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) int {
	n := (order + 1) / 2
	if order <= 0 || len(dst) < n {
		return 0
	}
	k := 0
	for i := order/2 - 1; i >= 0; i-- {
		dst[k] = Lowpass(freq, ButterworthQ(order, i), sampleRate)
		k++
	}
	if order%2 != 0 {
		dst[k] = butterworthFirstOrderLP(freq, sampleRate)
		k++
	}
	return k
}

// ButterworthHPInto writes the sections of [ButterworthHP] into dst and
// returns the number written. It returns 0 when dst is too short.
func ButterworthHPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) int {
	n := (order + 1) / 2
	if order <= 0 || len(dst) < n {
		return 0
	}
	k := 0
	for i := order/2 - 1; i >= 0; i-- {
		dst[k] = Highpass(freq, ButterworthQ(order, i), sampleRate)
		k++
	}
	if order%2 != 0 {
		dst[k] = butterworthFirstOrderHP(freq, sampleRate)
		k++
	}
	return k
}

// ButterworthLPCascade is the fixed-capacity form of [ButterworthLP] for the
// even orders accepted by [biquad.ValidOrder]. Other orders return an empty set.
func ButterworthLPCascade(freq float64, order int, sampleRate float64) biquad.CascadeCoefficients {
	var cc biquad.CascadeCoefficients
	if biquad.ValidOrder(order) {
		cc.N = ButterworthLPInto(cc.Sections[:], freq, order, sampleRate)
	}
	return cc
}

// ButterworthHPCascade is the fixed-capacity form of [ButterworthHP] for the
// even orders accepted by [biquad.ValidOrder]. Other orders return an empty set.
func ButterworthHPCascade(freq float64, order int, sampleRate float64) biquad.CascadeCoefficients {
	var cc biquad.CascadeCoefficients
	if biquad.ValidOrder(order) {
		cc.N = ButterworthHPInto(cc.Sections[:], freq, order, sampleRate)
	}
	return cc
}

func butterworthFirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return biquad.Passthrough()
	}
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func butterworthFirstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return biquad.Passthrough()
	}
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
