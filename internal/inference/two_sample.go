package inference

import (
	"math"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
)

// TwoMeanTest compares two population means from independent samples.
//
// The difference xbar1-xbar2 gets a two-sided normal interval with
// standard error sqrt(var1/n1 + var2/n2); the populations are said to differ
// when that interval excludes zero. The same standard error gives the z
// statistic and its p-value for the requested tail.
func (e *Engine) TwoMeanTest(xbar1, xbar2, var1 float64, n1 int, var2 float64, n2 int, tail domain.TailMode, confidence float64) (domain.TwoSampleOutcome, error) {
	if err := firstErr(
		checkTail(tail),
		checkFinite("mean 1", xbar1),
		checkFinite("mean 2", xbar2),
		checkNonNegative("variance 1", var1),
		checkNonNegative("variance 2", var2),
		checkCount("n1", n1, 1),
		checkCount("n2", n2, 1),
		checkConfidence(confidence),
	); err != nil {
		return domain.TwoSampleOutcome{}, err
	}
	return e.compare(xbar1-xbar2, var1/float64(n1)+var2/float64(n2), tail, confidence)
}

// TwoProportionTest is TwoMeanTest with p(1-p)/n variance terms
func (e *Engine) TwoProportionTest(p1 float64, n1 int, p2 float64, n2 int, tail domain.TailMode, confidence float64) (domain.TwoSampleOutcome, error) {
	if err := firstErr(
		checkTail(tail),
		checkProportion("proportion 1", p1),
		checkProportion("proportion 2", p2),
		checkCount("n1", n1, 1),
		checkCount("n2", n2, 1),
		checkConfidence(confidence),
	); err != nil {
		return domain.TwoSampleOutcome{}, err
	}
	v := p1*(1-p1)/float64(n1) + p2*(1-p2)/float64(n2)
	return e.compare(p1-p2, v, tail, confidence)
}

func (e *Engine) compare(diff, variance float64, tail domain.TailMode, confidence float64) (domain.TwoSampleOutcome, error) {
	se := math.Sqrt(variance)
	if err := checkStandardError(se); err != nil {
		return domain.TwoSampleOutcome{}, err
	}
	z, err := e.twoSidedCritical(confidence)
	if err != nil {
		return domain.TwoSampleOutcome{}, err
	}
	interval := symmetric(diff, z*se)

	test, err := e.normalOutcome(diff/se, tail)
	if err != nil {
		return domain.TwoSampleOutcome{}, errors.Wrap(err, "difference test")
	}
	return domain.TwoSampleOutcome{
		Difference:    diff,
		StandardError: se,
		Interval:      interval,
		Differs:       interval.ExcludesZero(),
		Test:          test,
	}, nil
}
