package inference

import (
	"fmt"
	"math"
	"strings"

	"infstat/internal/errors"
)

// ============================================================================
// INPUT PRIMITIVES
// ============================================================================

// SummaryStatistic is the (mean, dispersion, count) triple most procedures start from
// INVARIANTS:
// - Count > 0
// - Dispersion >= 0 (standard deviation or variance, per the caller's procedure)
type SummaryStatistic struct {
	Mean       float64 `json:"mean"`
	Dispersion float64 `json:"dispersion"`
	Count      int     `json:"count"`
}

// TailMode selects the rejection region of a hypothesis test
type TailMode int

const (
	TwoSided  TailMode = iota // H1: parameter != value
	LowerTail                 // H1: parameter < value
	UpperTail                 // H1: parameter > value
)

// String returns the canonical name of the tail mode
func (t TailMode) String() string {
	switch t {
	case TwoSided:
		return "two-sided"
	case LowerTail:
		return "lower"
	case UpperTail:
		return "upper"
	}
	return fmt.Sprintf("TailMode(%d)", int(t))
}

// Valid reports whether t is one of the three declared modes
func (t TailMode) Valid() bool {
	return t == TwoSided || t == LowerTail || t == UpperTail
}

// ParseTailMode maps user text to a TailMode. Unknown text is rejected rather
// than treated as two-sided.
func ParseTailMode(s string) (TailMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "two-sided", "two", "both", "bilateral":
		return TwoSided, nil
	case "lower", "left", "less", "izquierda":
		return LowerTail, nil
	case "upper", "right", "greater", "derecha":
		return UpperTail, nil
	}
	return TwoSided, errors.InvalidInputf("unknown tail mode %q (want two-sided, lower or upper)", s)
}

// DivisorMode chooses the variance denominator for descriptive statistics
type DivisorMode int

const (
	SampleDivisor     DivisorMode = iota // n - 1
	PopulationDivisor                    // n
)

func (d DivisorMode) String() string {
	if d == PopulationDivisor {
		return "population"
	}
	return "sample"
}

// ParseDivisorMode accepts "sample"/"muestral" and "population"/"poblacional"
func ParseDivisorMode(s string) (DivisorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sample", "muestral", "n-1":
		return SampleDivisor, nil
	case "population", "poblacional", "n":
		return PopulationDivisor, nil
	}
	return SampleDivisor, errors.InvalidInputf("unknown divisor mode %q (want sample or population)", s)
}

// ============================================================================
// RESULTS
// ============================================================================

// ConfidenceInterval is a two-sided interval estimate
// INVARIANTS:
// - Lower <= Upper
// - Margin >= 0 (the unclamped half-width)
// - proportion intervals lie within [0, 1]
type ConfidenceInterval struct {
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Margin float64 `json:"margin"`
}

// Contains reports whether x lies in the closed interval
func (ci ConfidenceInterval) Contains(x float64) bool {
	return ci.Lower <= x && x <= ci.Upper
}

// ExcludesZero is the interval-based "populations differ" rule
func (ci ConfidenceInterval) ExcludesZero() bool {
	return ci.Lower > 0 || ci.Upper < 0
}

// Reference distributions reported on HypothesisOutcome
const (
	DistributionNormal   = "normal"
	DistributionStudentT = "student-t"
)

// HypothesisOutcome is a test statistic and its p-value. It carries no
// decision: rejecting at alpha is the caller's comparison PValue < alpha.
type HypothesisOutcome struct {
	Statistic    float64  `json:"statistic"`
	PValue       float64  `json:"p_value"`      // in [0, 1]
	Tail         TailMode `json:"tail"`
	Distribution string   `json:"distribution"` // "normal" or "student-t"
	DF           int      `json:"df,omitempty"` // set for student-t only
}

// TwoSampleOutcome compares two populations both ways: an interval for the
// difference and a z-test of the difference against zero
type TwoSampleOutcome struct {
	Difference    float64            `json:"difference"`
	StandardError float64            `json:"standard_error"`
	Interval      ConfidenceInterval `json:"interval"`
	Differs       bool               `json:"differs"` // interval excludes zero
	Test          HypothesisOutcome  `json:"test"`
}

// Description summarises a raw sample
type Description struct {
	Count    int         `json:"count"`
	Mean     float64     `json:"mean"`
	Median   float64     `json:"median"`
	Mode     float64     `json:"mode"` // smallest of the most frequent values
	Variance float64     `json:"variance"`
	StdDev   float64     `json:"std_dev"`
	Min      float64     `json:"min"`
	Max      float64     `json:"max"`
	Divisor  DivisorMode `json:"divisor"`
}

// StandardScore is a standardized value and its lower-tail probability
type StandardScore struct {
	Z                     float64 `json:"z"`
	CumulativeProbability float64 `json:"cumulative_probability"` // P(Z <= z)
}

// CriticalRegion is the rejection region of a test at a fixed alpha.
// A statistic s is rejected when s <= Lower or s >= Upper; open sides are
// -Inf / +Inf.
type CriticalRegion struct {
	Tail  TailMode `json:"tail"`
	Lower float64  `json:"lower"`
	Upper float64  `json:"upper"`
}

// Rejects reports whether statistic falls in the region
func (r CriticalRegion) Rejects(statistic float64) bool {
	return statistic <= r.Lower || statistic >= r.Upper
}

// String renders the region the way a textbook states it
func (r CriticalRegion) String() string {
	switch {
	case math.IsInf(r.Lower, -1):
		return fmt.Sprintf("stat >= %.4f", r.Upper)
	case math.IsInf(r.Upper, 1):
		return fmt.Sprintf("stat <= %.4f", r.Lower)
	}
	return fmt.Sprintf("stat <= %.4f or stat >= %.4f", r.Lower, r.Upper)
}

// NormalApproximation reports the np >= 5 and n(1-p) >= 5 rule of thumb
type NormalApproximation struct {
	NP    float64 `json:"np"`
	NQ    float64 `json:"nq"`
	Holds bool    `json:"holds"`
}

// Sample is a named numeric column loaded from a tabular file
type Sample struct {
	Name    string    `json:"name"`
	Values  []float64 `json:"values"`
	Skipped int       `json:"skipped"` // cells that were empty or not numeric
}

// ColumnSummaries is the outcome of describing several columns
type ColumnSummaries struct {
	Columns    []ColumnDescription `json:"columns"`
	NonNumeric []string            `json:"non_numeric,omitempty"` // defaulted columns left out
}

// ColumnDescription pairs a column name with its summary
type ColumnDescription struct {
	Column      string      `json:"column"`
	Skipped     int         `json:"skipped"`
	Description Description `json:"description"`
}
