package inference

import (
	"math"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
)

// CriticalValue returns the two-sided normal critical value for confidence
func (e *Engine) CriticalValue(confidence float64) (float64, error) {
	if err := checkConfidence(confidence); err != nil {
		return 0, err
	}
	return e.twoSidedCritical(confidence)
}

// RejectionRegion returns the critical region at significance alpha. df == 0
// selects the standard normal, df >= 1 Student's t.
func (e *Engine) RejectionRegion(alpha float64, tail domain.TailMode, df int) (domain.CriticalRegion, error) {
	if err := firstErr(checkAlpha(alpha), checkTail(tail)); err != nil {
		return domain.CriticalRegion{}, err
	}
	if df < 0 {
		return domain.CriticalRegion{}, errors.InvalidInputf("degrees of freedom %d must be >= 0", df)
	}

	quantile := e.dist.NormalQuantile
	if df > 0 {
		quantile = func(p float64) (float64, error) { return e.dist.StudentTQuantile(p, df) }
	}

	region := domain.CriticalRegion{Tail: tail, Lower: math.Inf(-1), Upper: math.Inf(1)}
	switch tail {
	case domain.TwoSided:
		q, err := quantile(1 - alpha/2)
		if err != nil {
			return domain.CriticalRegion{}, errors.Wrap(err, "rejection region")
		}
		region.Lower, region.Upper = -q, q
	case domain.UpperTail:
		q, err := quantile(1 - alpha)
		if err != nil {
			return domain.CriticalRegion{}, errors.Wrap(err, "rejection region")
		}
		region.Upper = q
	case domain.LowerTail:
		q, err := quantile(alpha)
		if err != nil {
			return domain.CriticalRegion{}, errors.Wrap(err, "rejection region")
		}
		region.Lower = q
	}
	return region, nil
}
