package inference

import (
	"math"

	"infstat/internal/errors"
)

// RequiredSampleSizeForProportion returns ceil(z^2 p(1-p) / e^2), the smallest
// n whose expected margin of error at the given confidence is at most e.
// Use p = 0.5 when nothing is known about the proportion.
func (e *Engine) RequiredSampleSizeForProportion(p, marginOfError, confidence float64) (int, error) {
	pq, z2, err := e.sampleSizeTerms(p, marginOfError, confidence)
	if err != nil {
		return 0, err
	}
	return sampleCount(math.Ceil(z2 * pq / (marginOfError * marginOfError)))
}

// RequiredSampleSizeFinitePopulation applies the finite population correction
//
//	n = N z^2 p q / (e^2 (N-1) + z^2 p q)
//
// rounded up and never above N. A non-positive denominator yields 0 rather
// than an error.
func (e *Engine) RequiredSampleSizeFinitePopulation(population int, p, marginOfError, confidence float64) (int, error) {
	if err := checkCount("population size", population, 1); err != nil {
		return 0, err
	}
	pq, z2, err := e.sampleSizeTerms(p, marginOfError, confidence)
	if err != nil {
		return 0, err
	}

	N := float64(population)
	denominator := marginOfError*marginOfError*(N-1) + z2*pq
	if denominator <= 0 {
		return 0, nil
	}
	n := math.Ceil(N * z2 * pq / denominator)
	if n > N {
		return population, nil
	}
	return sampleCount(n)
}

// sampleCount converts a rounded-up size to int, refusing values an int
// cannot hold
func sampleCount(n float64) (int, error) {
	if math.IsNaN(n) || n >= float64(math.MaxInt) {
		return 0, errors.InvalidInputf("required sample size overflows")
	}
	return int(n), nil
}

func (e *Engine) sampleSizeTerms(p, marginOfError, confidence float64) (pq, z2 float64, err error) {
	if err := firstErr(
		checkOpenProportion("estimated proportion", p),
		checkPositive("margin of error", marginOfError),
		checkConfidence(confidence),
	); err != nil {
		return 0, 0, err
	}
	z, err := e.twoSidedCritical(confidence)
	if err != nil {
		return 0, 0, err
	}
	return p * (1 - p), z * z, nil
}
