// Package param provides a process-wide parameter store for the equalizer.
//
// Each parameter holds its plain value in an atomic cell. Writers (UI,
// automation, control API) call Set; the audio thread reads with Value,
// which is a single atomic load and never blocks. The id→parameter map is
// built once at construction and is read-only afterwards.
package param
