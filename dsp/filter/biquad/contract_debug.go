//go:build eqdebug

package biquad

func contractViolation(err error) error {
	panic(err)
}
