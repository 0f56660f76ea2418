package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	domain "infstat/domain/inference"
)

// Decision is the outcome of comparing a p-value with alpha
type Decision struct {
	Alpha  float64
	Reject bool
}

// Decide rejects the null hypothesis iff p < alpha
func Decide(pValue, alpha float64) Decision {
	return Decision{Alpha: alpha, Reject: pValue < alpha}
}

func (d Decision) line() string {
	return "Decision: " + d.String() + "."
}

func (d Decision) String() string {
	if d.Reject {
		return fmt.Sprintf("reject H0 at alpha = %s", num(d.Alpha))
	}
	return fmt.Sprintf("fail to reject H0 at alpha = %s", num(d.Alpha))
}

var keyValueHeader = []string{"quantity", "value"}

// Interval reports a confidence interval
func Interval(title string, ci domain.ConfidenceInterval, n int, confidence float64) *Report {
	r := &Report{Title: title, Header: keyValueHeader}
	r.AddRow("n", count(n))
	r.AddRow("confidence", percent(confidence))
	r.AddRow("lower", num(ci.Lower))
	r.AddRow("upper", num(ci.Upper))
	r.AddRow("margin", num(ci.Margin))
	return r
}

// SampleSize reports a required sample size. population is 0 for the
// infinite-population form.
func SampleSize(required, population int, p, margin, confidence float64) *Report {
	r := &Report{Title: "Required sample size", Header: keyValueHeader}
	if population > 0 {
		r.AddRow("population", count(population))
	}
	r.AddRow("p", num(p))
	r.AddRow("margin of error", num(margin))
	r.AddRow("confidence", percent(confidence))
	r.AddRow("n", count(required))
	if required == 0 {
		r.AddNote("No sample size satisfies these inputs.")
	}
	return r
}

// Hypothesis reports a one-sample test and its decision at alpha
func Hypothesis(title string, out domain.HypothesisOutcome, n int, alpha float64) *Report {
	r := &Report{Title: title, Header: keyValueHeader}
	r.AddRow("n", count(n))
	r.AddRow("tail", out.Tail.String())
	r.AddRow("distribution", distribution(out))
	r.AddRow("statistic", num(out.Statistic))
	r.AddRow("p-value", num(out.PValue))
	d := Decide(out.PValue, alpha)
	r.Verdict = &d
	return r
}

// NormalApproximationNote appends the np/nq rule-of-thumb check to r
func NormalApproximationNote(r *Report, approx domain.NormalApproximation) {
	if approx.Holds {
		return
	}
	r.AddNote("Warning: normal approximation is weak (np = %s, n(1-p) = %s; both should be >= 5).",
		num(approx.NP), num(approx.NQ))
}

// TwoSample reports a two-population comparison
func TwoSample(title string, out domain.TwoSampleOutcome, confidence, alpha float64) *Report {
	r := &Report{Title: title, Header: keyValueHeader}
	r.AddRow("difference", num(out.Difference))
	r.AddRow("standard error", num(out.StandardError))
	r.AddRow(fmt.Sprintf("%s interval", percent(confidence)),
		fmt.Sprintf("[%s, %s]", num(out.Interval.Lower), num(out.Interval.Upper)))
	r.AddRow("tail", out.Test.Tail.String())
	r.AddRow("z", num(out.Test.Statistic))
	r.AddRow("p-value", num(out.Test.PValue))
	if out.Differs {
		r.AddNote("The interval excludes zero: the populations differ.")
	} else {
		r.AddNote("The interval contains zero: no difference detected.")
	}
	d := Decide(out.Test.PValue, alpha)
	r.Verdict = &d
	return r
}

// Descriptions reports one summary row per column
func Descriptions(descs []domain.ColumnDescription) *Report {
	r := &Report{
		Title:  "Descriptive statistics",
		Header: []string{"column", "n", "mean", "median", "mode", "variance", "std dev", "min", "max"},
	}
	divisor := ""
	skipped := 0
	for _, cd := range descs {
		d := cd.Description
		r.AddRow(cd.Column, count(d.Count), num(d.Mean), num(d.Median), num(d.Mode),
			num(d.Variance), num(d.StdDev), num(d.Min), num(d.Max))
		divisor = d.Divisor.String()
		skipped += cd.Skipped
	}
	if divisor != "" {
		r.AddNote("Variance divisor: %s.", divisor)
	}
	if skipped > 0 {
		r.AddNote("Skipped %s non-numeric cells.", count(skipped))
	}
	return r
}

// NonNumericNote appends the columns left out of a description for lack
// of numeric values
func NonNumericNote(r *Report, columns []string) {
	if len(columns) == 0 {
		return
	}
	r.AddNote("Left out %s without numeric values: %s.",
		plural(len(columns), "column", "columns"), strings.Join(columns, ", "))
}

// Score reports a standardized value
func Score(x float64, score domain.StandardScore) *Report {
	r := &Report{Title: "Standard score", Header: keyValueHeader}
	r.AddRow("x", num(x))
	r.AddRow("z", num(score.Z))
	r.AddRow("P(Z <= z)", num(score.CumulativeProbability))
	return r
}

// Quantity reports a single named value
func Quantity(title, name string, value float64) *Report {
	r := &Report{Title: title, Header: keyValueHeader}
	r.AddRow(name, num(value))
	return r
}

// Region reports a rejection region, optionally checking a statistic
// against it
func Region(region domain.CriticalRegion, alpha float64, df int, statistic *float64) *Report {
	r := &Report{Title: "Rejection region", Header: keyValueHeader}
	r.AddRow("alpha", num(alpha))
	r.AddRow("tail", region.Tail.String())
	if df > 0 {
		r.AddRow("distribution", fmt.Sprintf("%s (df = %s)", domain.DistributionStudentT, count(df)))
	} else {
		r.AddRow("distribution", domain.DistributionNormal)
	}
	r.AddRow("region", region.String())
	if statistic != nil {
		r.AddRow("statistic", num(*statistic))
		if region.Rejects(*statistic) {
			r.AddNote("The statistic falls in the rejection region: reject H0.")
		} else {
			r.AddNote("The statistic falls outside the rejection region: fail to reject H0.")
		}
	}
	return r
}

func distribution(out domain.HypothesisOutcome) string {
	if out.Distribution == domain.DistributionStudentT {
		return fmt.Sprintf("%s (df = %s)", out.Distribution, count(out.DF))
	}
	return out.Distribution
}

func plural(n int, one, many string) string {
	if n == 1 {
		return count(n) + " " + one
	}
	return count(n) + " " + many
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

func percent(c float64) string {
	return strconv.FormatFloat(c*100, 'g', 6, 64) + "%"
}

// num prints four decimals, switching to scientific notation for values
// that would round to zero
func num(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	case x != 0 && math.Abs(x) < 1e-4:
		return strconv.FormatFloat(x, 'e', 3, 64)
	}
	return strconv.FormatFloat(x, 'f', 4, 64)
}
