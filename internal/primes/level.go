package primes

import "math"

// The trial-division level balances wheel pre-filtering cost against
// randomized-search yield. The step table below was calibrated empirically
// for small bit widths; above 70 bits the level follows the fitted
// exponential model exp(tdIntercept + tdSlope * bits).
const (
	tdIntercept = 1.69
	tdSlope     = 0.0971
)

var levelSteps = []struct {
	maxBits uint
	level   uint64
}{
	{58, 59},
	{60, 191},
	{62, 193},
	{64, 199},
	{66, 211},
	{68, 229},
	{70, 233},
}

// PickTrialDivisionLevel returns the largest prime value used for wheel
// exclusion when factoring an integer of the given bit width. A nonzero
// override wins unconditionally.
func PickTrialDivisionLevel(bits uint, override uint64) uint64 {
	if override > 0 {
		return override
	}
	for _, s := range levelSteps {
		if bits <= s.maxBits {
			return s.level
		}
	}
	return uint64(math.Exp(tdIntercept+tdSlope*float64(bits)) + 0.5)
}
