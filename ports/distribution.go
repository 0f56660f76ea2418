package ports

// DistributionProvider evaluates the reference distributions used by the
// inference routines. Implementations must be safe for concurrent use and
// keep no mutable state between calls.
//
// Every method fails with an errors.CodeDomainError AppError when the
// argument is NaN, a probability lies outside (0, 1), or df < 1.
type DistributionProvider interface {
	// NormalCDF returns P(Z <= z) for the standard normal
	NormalCDF(z float64) (float64, error)
	// NormalQuantile returns z such that P(Z <= z) = p
	NormalQuantile(p float64) (float64, error)
	// StudentTCDF returns P(T <= t) for Student's t with df degrees of freedom
	StudentTCDF(t float64, df int) (float64, error)
	// StudentTQuantile returns t such that P(T <= t) = p
	StudentTQuantile(p float64, df int) (float64, error)
	// Name identifies the backend in reports and logs
	Name() string
}
