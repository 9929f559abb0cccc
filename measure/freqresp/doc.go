// Package freqresp measures magnitude responses of linear systems.
//
// A response is obtained either from an impulse response ([FromImpulse],
// [Measure]) or from an excitation/recording pair such as a logarithmic
// sweep ([LogSweep], [Transfer]). Spectra are computed with algo-fft and
// evaluated at arbitrary frequencies by interpolation over the FFT bins.
//
//	s := &freqresp.LogSweep{StartFreq: 10, EndFreq: 22000, Duration: 1, SampleRate: 44100}
//	x, _ := s.Generate()
//	y := process(x)
//	r, _ := freqresp.Transfer(x, y, s.SampleRate)
//	gain := r.AtDB(1000)
package freqresp
