package scoring

import (
	"math"

	"github.com/poiesic/homematch/core"
)

// nearScore is the flat partial credit for a count mismatch inside the
// flexibility band. It is deliberately not interpolated: being "one off"
// is a fixed discount, not a proportional one.
const nearScore = 0.7

// toleranceScore compares a continuous value against a target under a
// fractional tolerance band.
//
// Returns (score, false) when either side is absent. With a non-positive
// tolerance only an exact match scores. A zero target matches only a zero
// actual, which avoids dividing by the target. Otherwise the score decays
// linearly from 1.0 at an exact match to 0.0 at the tolerance boundary.
func toleranceScore(target, actual core.Optional, tolerance float64) (float64, bool) {
	if !target.Defined || !actual.Defined {
		return 0, false
	}
	if tolerance <= 0 {
		if target.Val == actual.Val {
			return 1.0, true
		}
		return 0.0, true
	}
	if target.Val == 0 {
		if actual.Val == 0 {
			return 1.0, true
		}
		return 0.0, true
	}

	diffRatio := math.Abs(actual.Val-target.Val) / target.Val
	if diffRatio >= tolerance {
		return 0.0, true
	}
	return math.Max(0.0, 1.0-diffRatio/tolerance), true
}

// flexScore compares a discrete count against a preferred count.
//
// Exact match scores 1.0, a difference within the flexibility band scores
// nearScore, anything beyond scores 0.0. The result is always one of those
// three values.
func flexScore(preferred, actual core.Optional, flexibility int) (float64, bool) {
	if !preferred.Defined || !actual.Defined {
		return 0, false
	}
	diff := math.Abs(actual.Val - preferred.Val)
	if diff == 0 {
		return 1.0, true
	}
	if diff <= float64(flexibility) {
		return nearScore, true
	}
	return 0.0, true
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
