package inference

import (
	"math"

	domain "infstat/domain/inference"
)

// Standardize returns z = (x-mu)/sigma and P(Z <= z)
func (e *Engine) Standardize(x, mu, sigma float64) (domain.StandardScore, error) {
	if err := firstErr(
		checkFinite("x", x),
		checkFinite("mu", mu),
		checkPositive("sigma", sigma),
	); err != nil {
		return domain.StandardScore{}, err
	}
	z := (x - mu) / sigma
	p, err := e.dist.NormalCDF(z)
	if err != nil {
		return domain.StandardScore{}, err
	}
	return domain.StandardScore{Z: z, CumulativeProbability: p}, nil
}

// ZFromProbability returns the z with P(Z <= z) = p. Probabilities outside
// (0, 1) fail with the backend's domain error.
func (e *Engine) ZFromProbability(p float64) (float64, error) {
	return e.dist.NormalQuantile(p)
}

// StandardErrorMean returns s/sqrt(n)
func StandardErrorMean(s float64, n int) (float64, error) {
	if err := firstErr(
		checkNonNegative("standard deviation", s),
		checkCount("n", n, 1),
	); err != nil {
		return 0, err
	}
	return s / math.Sqrt(float64(n)), nil
}

// StandardErrorProportion returns sqrt(phat(1-phat)/n)
func StandardErrorProportion(phat float64, n int) (float64, error) {
	if err := firstErr(
		checkProportion("sample proportion", phat),
		checkCount("n", n, 1),
	); err != nil {
		return 0, err
	}
	return math.Sqrt(phat * (1 - phat) / float64(n)), nil
}

// TStatistic returns (xbar-mu)/(s/sqrt(n)) for n >= 2
func TStatistic(xbar, mu, s float64, n int) (float64, error) {
	if err := firstErr(
		checkFinite("sample mean", xbar),
		checkFinite("mu", mu),
		checkPositive("s", s),
		checkCount("n", n, 2),
	); err != nil {
		return 0, err
	}
	se, err := StandardErrorMean(s, n)
	if err != nil {
		return 0, err
	}
	if err := checkStandardError(se); err != nil {
		return 0, err
	}
	return (xbar - mu) / se, nil
}
