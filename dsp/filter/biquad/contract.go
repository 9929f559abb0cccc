//go:build !eqdebug

package biquad

// contractViolation hands a programming error back to the caller. Release
// builds keep the audio path running and leave the filter unchanged; build
// with -tags eqdebug to panic instead.
func contractViolation(err error) error {
	return err
}
