package distributions

import (
	"math"

	"infstat/internal/errors"
)

func checkFinite(name string, x float64) error {
	if math.IsNaN(x) {
		return errors.DomainErrorf("%s must not be NaN", name)
	}
	return nil
}

func checkProbability(p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return errors.DomainErrorf("probability %v outside (0, 1)", p)
	}
	return nil
}

func checkDF(df int) error {
	if df < 1 {
		return errors.DomainErrorf("degrees of freedom %d must be >= 1", df)
	}
	return nil
}
