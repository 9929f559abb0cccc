// Package spectrum provides the spectral measurements used to verify the
// equalizer: SIMD magnitude/power of complex bins, linear interpolation
// over a frequency axis and a Goertzel single-bin tone meter.
package spectrum
