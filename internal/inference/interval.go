package inference

import (
	"math"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
)

// MeanIntervalKnownVariance computes the z interval xbar +- z*sigma/sqrt(n)
func (e *Engine) MeanIntervalKnownVariance(xbar, sigma float64, n int, confidence float64) (domain.ConfidenceInterval, error) {
	if err := firstErr(
		checkFinite("sample mean", xbar),
		checkNonNegative("sigma", sigma),
		checkCount("n", n, 1),
		checkConfidence(confidence),
	); err != nil {
		return domain.ConfidenceInterval{}, err
	}

	z, err := e.twoSidedCritical(confidence)
	if err != nil {
		return domain.ConfidenceInterval{}, err
	}
	return symmetric(xbar, z*sigma/math.Sqrt(float64(n))), nil
}

// MeanIntervalUnknownVariance computes the t interval xbar +- t(n-1)*s/sqrt(n)
func (e *Engine) MeanIntervalUnknownVariance(xbar, s float64, n int, confidence float64) (domain.ConfidenceInterval, error) {
	if err := firstErr(
		checkFinite("sample mean", xbar),
		checkNonNegative("s", s),
		checkCount("n", n, 2),
		checkConfidence(confidence),
	); err != nil {
		return domain.ConfidenceInterval{}, err
	}

	df := n - 1
	t, err := e.dist.StudentTQuantile(1-(1-confidence)/2, df)
	if err != nil {
		return domain.ConfidenceInterval{}, errors.Wrapf(err, "t critical value (df=%d)", df)
	}
	return symmetric(xbar, t*s/math.Sqrt(float64(n))), nil
}

// ProportionInterval computes the Wald interval phat +- z*sqrt(phat(1-phat)/n)
// clamped to [0, 1].
//
// A sample proportion of exactly 0 or 1 would give a zero-width interval, so
// it is replaced by 0.5/n (or 1 - 0.5/n) before the centre and the standard
// error are computed.
func (e *Engine) ProportionInterval(phat float64, n int, confidence float64) (domain.ConfidenceInterval, error) {
	if err := firstErr(
		checkProportion("sample proportion", phat),
		checkCount("n", n, 1),
		checkConfidence(confidence),
	); err != nil {
		return domain.ConfidenceInterval{}, err
	}

	switch phat {
	case 0:
		phat = 0.5 / float64(n)
	case 1:
		phat = 1 - 0.5/float64(n)
	}

	z, err := e.twoSidedCritical(confidence)
	if err != nil {
		return domain.ConfidenceInterval{}, err
	}
	margin := z * math.Sqrt(phat*(1-phat)/float64(n))
	return domain.ConfidenceInterval{
		Lower:  math.Max(0, phat-margin),
		Upper:  math.Min(1, phat+margin),
		Margin: margin,
	}, nil
}

// ProportionIntervalFromCounts is ProportionInterval for successes out of n trials
func (e *Engine) ProportionIntervalFromCounts(successes, n int, confidence float64) (domain.ConfidenceInterval, error) {
	phat, err := proportionFromCounts(successes, n)
	if err != nil {
		return domain.ConfidenceInterval{}, err
	}
	return e.ProportionInterval(phat, n, confidence)
}

func proportionFromCounts(successes, n int) (float64, error) {
	if err := checkCount("n", n, 1); err != nil {
		return 0, err
	}
	if successes < 0 || successes > n {
		return 0, errors.InvalidInputf("successes = %d outside [0, %d]", successes, n)
	}
	return float64(successes) / float64(n), nil
}

func symmetric(centre, margin float64) domain.ConfidenceInterval {
	return domain.ConfidenceInterval{
		Lower:  centre - margin,
		Upper:  centre + margin,
		Margin: margin,
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
