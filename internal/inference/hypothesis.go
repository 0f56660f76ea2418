package inference

import (
	"math"

	domain "infstat/domain/inference"
)

// MeanTest tests H0: mu = mu0 from a sample mean.
//
// With varianceKnown the statistic (xbar-mu0)/(sigma/sqrt(n)) is referred to
// the standard normal; otherwise dispersion is the sample standard deviation
// and the statistic follows Student's t with n-1 degrees of freedom.
func (e *Engine) MeanTest(xbar, mu0, dispersion float64, n int, tail domain.TailMode, varianceKnown bool) (domain.HypothesisOutcome, error) {
	minN := 1
	if !varianceKnown {
		minN = 2
	}
	if err := firstErr(
		checkTail(tail),
		checkFinite("sample mean", xbar),
		checkFinite("hypothesized mean", mu0),
		checkPositive("dispersion", dispersion),
		checkCount("n", n, minN),
	); err != nil {
		return domain.HypothesisOutcome{}, err
	}

	se := dispersion / math.Sqrt(float64(n))
	if err := checkStandardError(se); err != nil {
		return domain.HypothesisOutcome{}, err
	}
	statistic := (xbar - mu0) / se
	if err := checkFinite("test statistic", statistic); err != nil {
		return domain.HypothesisOutcome{}, err
	}

	if varianceKnown {
		return e.normalOutcome(statistic, tail)
	}
	return e.studentOutcome(statistic, n-1, tail)
}

// ProportionTest tests H0: p = p0 with the normal approximation, using the
// null standard error sqrt(p0(1-p0)/n)
func (e *Engine) ProportionTest(phat, p0 float64, n int, tail domain.TailMode) (domain.HypothesisOutcome, error) {
	if err := firstErr(
		checkTail(tail),
		checkProportion("sample proportion", phat),
		checkOpenProportion("hypothesized proportion", p0),
		checkCount("n", n, 1),
	); err != nil {
		return domain.HypothesisOutcome{}, err
	}

	se := math.Sqrt(p0 * (1 - p0) / float64(n))
	if err := checkStandardError(se); err != nil {
		return domain.HypothesisOutcome{}, err
	}
	return e.normalOutcome((phat-p0)/se, tail)
}

// ProportionTestFromCounts is ProportionTest for successes out of n trials
func (e *Engine) ProportionTestFromCounts(successes, n int, p0 float64, tail domain.TailMode) (domain.HypothesisOutcome, error) {
	phat, err := proportionFromCounts(successes, n)
	if err != nil {
		return domain.HypothesisOutcome{}, err
	}
	return e.ProportionTest(phat, p0, n, tail)
}

// CheckNormalApproximation evaluates the n*p0 >= 5 and n*(1-p0) >= 5 rule
// that justifies ProportionTest's normal approximation
func CheckNormalApproximation(p0 float64, n int) (domain.NormalApproximation, error) {
	if err := firstErr(
		checkProportion("hypothesized proportion", p0),
		checkCount("n", n, 1),
	); err != nil {
		return domain.NormalApproximation{}, err
	}
	np := float64(n) * p0
	nq := float64(n) * (1 - p0)
	return domain.NormalApproximation{
		NP:    np,
		NQ:    nq,
		Holds: np >= 5 && nq >= 5,
	}, nil
}
