// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. A section can be bypassed,
// in which case it passes audio through untouched and keeps its state frozen.
//
// A [Cascade] holds a fixed number of sections (see [MaxCascadeSections]) and
// activates the first N of them to realize an even filter order of 2N at
// runtime. Changing the order never allocates: unused sections stay resident
// and bypassed.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth, RBJ peaking EQ, etc.) lives in dsp/filter/design.
package biquad
