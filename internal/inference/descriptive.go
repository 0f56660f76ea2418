package inference

import (
	"sort"

	"github.com/montanaflynn/stats"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
)

// Describe summarises a raw sample. With SampleDivisor the variance uses
// n-1 and needs at least two values; PopulationDivisor uses n.
func Describe(sample []float64, divisor domain.DivisorMode) (domain.Description, error) {
	if len(sample) == 0 {
		return domain.Description{}, errors.InvalidInput("cannot describe an empty sample")
	}
	if divisor != domain.SampleDivisor && divisor != domain.PopulationDivisor {
		return domain.Description{}, errors.InvalidInputf("unsupported divisor mode %d", int(divisor))
	}
	if divisor == domain.SampleDivisor && len(sample) < 2 {
		return domain.Description{}, errors.InvalidInput("sample variance needs at least two values")
	}
	for i, x := range sample {
		if err := checkFinite("value", x); err != nil {
			return domain.Description{}, errors.Wrapf(err, "sample[%d]", i)
		}
	}

	data := stats.Float64Data(sample)
	d := domain.Description{Count: len(sample), Divisor: divisor}

	var err error
	if d.Mean, err = stats.Mean(data); err != nil {
		return domain.Description{}, errors.Wrap(err, "mean")
	}
	if d.Median, err = stats.Median(data); err != nil {
		return domain.Description{}, errors.Wrap(err, "median")
	}
	if d.Min, err = stats.Min(data); err != nil {
		return domain.Description{}, errors.Wrap(err, "min")
	}
	if d.Max, err = stats.Max(data); err != nil {
		return domain.Description{}, errors.Wrap(err, "max")
	}

	if divisor == domain.SampleDivisor {
		d.Variance, err = stats.SampleVariance(data)
		if err == nil {
			d.StdDev, err = stats.StandardDeviationSample(data)
		}
	} else {
		d.Variance, err = stats.PopulationVariance(data)
		if err == nil {
			d.StdDev, err = stats.StandardDeviationPopulation(data)
		}
	}
	if err != nil {
		return domain.Description{}, errors.Wrap(err, "dispersion")
	}

	d.Mode = Mode(sample)
	return d, nil
}

// Mode returns the most frequent value of sample; ties, including the case
// where no value repeats, go to the smallest tied value. It returns 0 for an
// empty sample.
//
// stats.Mode is not used because it reports no mode at all when every value
// occurs equally often.
func Mode(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	mode, best := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		// Strictly greater keeps the earliest, i.e. smallest, value on ties.
		if j-i > best {
			mode, best = sorted[i], j-i
		}
		i = j
	}
	return mode
}
