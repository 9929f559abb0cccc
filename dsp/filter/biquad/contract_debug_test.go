//go:build eqdebug

package biquad

import (
	"errors"
	"testing"
)

func TestContractViolationPanics(t *testing.T) {
	c, err := NewCascade(2)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		r := recover()
		perr, ok := r.(error)
		if !ok || !errors.Is(perr, ErrInvalidOrder) {
			t.Fatalf("recover() = %v, want ErrInvalidOrder panic", r)
		}
	}()

	_ = c.SetOrder(3)
}
