//go:build fastmath

package core

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln10Over20 converts dB to the natural-log exponent: 10^(db/20) = e^(db*ln10/20).
const ln10Over20 = math.Ln10 / 20

// dbToLinear uses the fast exponential approximation. It is called once per
// block for the peak gain, so the approximation error stays below the 0.5 dB
// parameter step.
func dbToLinear(db float64) float64 {
	return approx.FastExp(db * ln10Over20)
}
