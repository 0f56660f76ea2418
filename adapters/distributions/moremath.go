package distributions

import (
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"

	"infstat/ports"
)

// Moremath evaluates the distributions with aclements/go-moremath.
// go-moremath has no closed-form inverse for the t distribution, so
// StudentTQuantile inverts the CDF by bisection.
type Moremath struct{}

var _ ports.DistributionProvider = Moremath{}

// NewMoremath creates the alternate distribution backend
func NewMoremath() Moremath {
	return Moremath{}
}

// Name returns the backend name
func (Moremath) Name() string {
	return "moremath"
}

// NormalCDF computes P(Z <= z). NormalDist.CDF goes through 1+erf and
// rounds the far lower tail to zero, so the lower tail uses erfc directly.
func (Moremath) NormalCDF(z float64) (float64, error) {
	if err := checkFinite("z", z); err != nil {
		return 0, err
	}
	if z < 0 {
		return 0.5 * math.Erfc(-z/math.Sqrt2), nil
	}
	return stats.StdNormal.CDF(z), nil
}

// NormalQuantile computes the standard normal inverse CDF
func (Moremath) NormalQuantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return stats.StdNormal.InvCDF(p), nil
}

// StudentTCDF computes P(T <= t) with df degrees of freedom
func (Moremath) StudentTCDF(t float64, df int) (float64, error) {
	if err := checkFinite("t", t); err != nil {
		return 0, err
	}
	if err := checkDF(df); err != nil {
		return 0, err
	}
	if t < 0 {
		// Lower tail directly from I_x(v/2, 1/2) to avoid 1 - (1 - tiny).
		v := float64(df)
		return 0.5 * mathx.BetaInc(v/(v+t*t), v/2, 0.5), nil
	}
	return stats.TDist{V: float64(df)}.CDF(t), nil
}

// StudentTQuantile computes the inverse of StudentTCDF
func (Moremath) StudentTQuantile(p float64, df int) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if err := checkDF(df); err != nil {
		return 0, err
	}
	if p == 0.5 {
		return 0, nil
	}

	// Symmetric about zero: solve for the tail mass beyond |t|. For p > 0.5
	// the complement 1-p is exact, while for p < 0.5 it would lose the tail.
	if p < 0.5 {
		return -bisectTail(float64(df), p), nil
	}
	return bisectTail(float64(df), 1-p), nil
}

const (
	bisectMaxIter = 400
	bisectTol     = 1e-12
)

// tailMass is P(T >= x) for x >= 0
func tailMass(v, x float64) float64 {
	return 0.5 * mathx.BetaInc(v/(v+x*x), v/2, 0.5)
}

// bisectTail finds x >= 0 with P(T >= x) = q for q in (0, 0.5)
func bisectTail(v, q float64) float64 {
	lo, hi := 0.0, 1.0
	for tailMass(v, hi) > q && !math.IsInf(hi, 1) {
		lo = hi
		hi *= 2
	}
	for i := 0; i < bisectMaxIter; i++ {
		mid := lo + (hi-lo)/2
		if tailMass(v, mid) > q {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= bisectTol*math.Max(1, lo) {
			break
		}
	}
	return lo + (hi-lo)/2
}
