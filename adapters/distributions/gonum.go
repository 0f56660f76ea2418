package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"

	"infstat/ports"
)

// Gonum evaluates the normal and Student-t distributions with gonum's distuv
type Gonum struct{}

var _ ports.DistributionProvider = Gonum{}

// NewGonum creates the default distribution backend
func NewGonum() Gonum {
	return Gonum{}
}

// Name returns the backend name
func (Gonum) Name() string {
	return "gonum"
}

// NormalCDF computes cumulative distribution function for standard normal
func (Gonum) NormalCDF(z float64) (float64, error) {
	if err := checkFinite("z", z); err != nil {
		return 0, err
	}
	return distuv.UnitNormal.CDF(z), nil
}

// NormalQuantile computes quantile function for standard normal (inverse CDF)
func (Gonum) NormalQuantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	return distuv.UnitNormal.Quantile(p), nil
}

// StudentTCDF computes P(T <= t) with df degrees of freedom
func (Gonum) StudentTCDF(t float64, df int) (float64, error) {
	if err := checkFinite("t", t); err != nil {
		return 0, err
	}
	if err := checkDF(df); err != nil {
		return 0, err
	}
	return studentsT(df).CDF(t), nil
}

// StudentTQuantile computes the inverse of StudentTCDF
func (Gonum) StudentTQuantile(p float64, df int) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}
	if err := checkDF(df); err != nil {
		return 0, err
	}
	return studentsT(df).Quantile(p), nil
}

// studentsT builds a fresh standard t distribution per call; nothing is cached
func studentsT(df int) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
}
