// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ-style second-order designers
// ([Lowpass], [Highpass], [Peak], [PeakLinear]) and Butterworth cascades of
// arbitrary order ([ButterworthLP], [ButterworthHP]).
//
// The *Cascade variants return a fixed-capacity [biquad.CascadeCoefficients]
// by value and are safe to call from a real-time audio callback.
//
// Designers never return NaN or Inf coefficients. Parameters that cannot be
// realized (frequency at or above Nyquist, non-positive sample rate) yield
// the passthrough section.
package design
