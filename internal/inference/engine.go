// Package inference computes confidence intervals, sample sizes and
// hypothesis tests from summary statistics. Every operation is a pure
// function of its arguments; the only collaborator is the injected
// DistributionProvider.
package inference

import (
	"math"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
	"infstat/ports"
)

// Engine binds the inference routines to a distribution backend
type Engine struct {
	dist ports.DistributionProvider
}

// New creates an engine over dist
func New(dist ports.DistributionProvider) *Engine {
	return &Engine{dist: dist}
}

// Distributions returns the backend the engine evaluates against
func (e *Engine) Distributions() ports.DistributionProvider {
	return e.dist
}

// twoSidedCritical returns the normal quantile at 1 - (1-confidence)/2
func (e *Engine) twoSidedCritical(confidence float64) (float64, error) {
	z, err := e.dist.NormalQuantile(1 - (1-confidence)/2)
	if err != nil {
		return 0, errors.Wrapf(err, "critical value for confidence %v", confidence)
	}
	return z, nil
}

// tailPValue evaluates the p-value of statistic under cdf. Upper tails use
// symmetry (P(X >= s) = CDF(-s)) so that the two-sided value is exactly twice
// the one-sided value on the statistic's side.
func tailPValue(statistic float64, tail domain.TailMode, cdf func(float64) (float64, error)) (float64, error) {
	var (
		p   float64
		err error
	)
	switch tail {
	case domain.LowerTail:
		p, err = cdf(statistic)
	case domain.UpperTail:
		p, err = cdf(-statistic)
	case domain.TwoSided:
		p, err = cdf(-math.Abs(statistic))
		p *= 2
	default:
		return 0, errors.InvalidInputf("unsupported tail mode %v", tail)
	}
	if err != nil {
		return 0, errors.Wrap(err, "p-value")
	}
	return clampUnit(p), nil
}

func (e *Engine) normalOutcome(statistic float64, tail domain.TailMode) (domain.HypothesisOutcome, error) {
	p, err := tailPValue(statistic, tail, e.dist.NormalCDF)
	if err != nil {
		return domain.HypothesisOutcome{}, err
	}
	return domain.HypothesisOutcome{
		Statistic:    statistic,
		PValue:       p,
		Tail:         tail,
		Distribution: domain.DistributionNormal,
	}, nil
}

func (e *Engine) studentOutcome(statistic float64, df int, tail domain.TailMode) (domain.HypothesisOutcome, error) {
	cdf := func(x float64) (float64, error) { return e.dist.StudentTCDF(x, df) }
	p, err := tailPValue(statistic, tail, cdf)
	if err != nil {
		return domain.HypothesisOutcome{}, err
	}
	return domain.HypothesisOutcome{
		Statistic:    statistic,
		PValue:       p,
		Tail:         tail,
		Distribution: domain.DistributionStudentT,
		DF:           df,
	}, nil
}

// ============================================================================
// argument checks
// ============================================================================

func checkConfidence(c float64) error {
	if math.IsNaN(c) || c <= 0 || c >= 1 {
		return errors.InvalidInputf("confidence level %v outside (0, 1)", c)
	}
	return nil
}

func checkAlpha(a float64) error {
	if math.IsNaN(a) || a <= 0 || a >= 1 {
		return errors.InvalidInputf("significance level %v outside (0, 1)", a)
	}
	return nil
}

func checkCount(name string, n, min int) error {
	if n < min {
		return errors.InvalidInputf("%s = %d, must be >= %d", name, n, min)
	}
	return nil
}

func checkFinite(name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errors.InvalidInputf("%s must be finite, got %v", name, x)
	}
	return nil
}

func checkNonNegative(name string, x float64) error {
	if err := checkFinite(name, x); err != nil {
		return err
	}
	if x < 0 {
		return errors.InvalidInputf("%s = %v, must be >= 0", name, x)
	}
	return nil
}

func checkPositive(name string, x float64) error {
	if err := checkFinite(name, x); err != nil {
		return err
	}
	if x <= 0 {
		return errors.InvalidInputf("%s = %v, must be > 0", name, x)
	}
	return nil
}

// checkProportion accepts [0, 1]
func checkProportion(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.InvalidInputf("%s = %v outside [0, 1]", name, p)
	}
	return nil
}

// checkOpenProportion accepts (0, 1)
func checkOpenProportion(name string, p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return errors.InvalidInputf("%s = %v outside (0, 1)", name, p)
	}
	return nil
}

func checkTail(tail domain.TailMode) error {
	if !tail.Valid() {
		return errors.InvalidInputf("unsupported tail mode %v", tail)
	}
	return nil
}

// checkStandardError rejects a zero or non-finite standard error before it
// turns a statistic into Inf or NaN
func checkStandardError(se float64) error {
	if se == 0 || math.IsNaN(se) || math.IsInf(se, 0) {
		return errors.InvalidInputf("standard error is degenerate (%v)", se)
	}
	return nil
}

func clampUnit(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}
