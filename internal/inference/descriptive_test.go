package inference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
)

var describeSample = []float64{2, 4, 4, 4, 5, 5, 7, 9}

func TestDescribePopulation(t *testing.T) {
	d, err := Describe(describeSample, domain.PopulationDivisor)
	require.NoError(t, err)

	assert.Equal(t, 8, d.Count)
	assert.InDelta(t, 5, d.Mean, 1e-12)
	assert.InDelta(t, 4.5, d.Median, 1e-12)
	assert.Equal(t, 4.0, d.Mode)
	assert.InDelta(t, 4, d.Variance, 1e-12)
	assert.InDelta(t, 2, d.StdDev, 1e-12)
	assert.Equal(t, 2.0, d.Min)
	assert.Equal(t, 9.0, d.Max)
	assert.Equal(t, domain.PopulationDivisor, d.Divisor)
}

func TestDescribeSample(t *testing.T) {
	d, err := Describe(describeSample, domain.SampleDivisor)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7, d.Variance, 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7), d.StdDev, 1e-12)
}

func TestDescribeDoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_, err := Describe(in, domain.PopulationDivisor)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestDescribeErrors(t *testing.T) {
	_, err := Describe(nil, domain.SampleDivisor)
	assert.True(t, errors.IsInvalidInput(err))

	_, err = Describe([]float64{4}, domain.SampleDivisor)
	assert.True(t, errors.IsInvalidInput(err))

	d, err := Describe([]float64{4}, domain.PopulationDivisor)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Variance)
	assert.Equal(t, 4.0, d.Mode)

	_, err = Describe([]float64{1, math.NaN()}, domain.PopulationDivisor)
	assert.True(t, errors.IsInvalidInput(err))

	_, err = Describe([]float64{1, 2}, domain.DivisorMode(9))
	assert.True(t, errors.IsInvalidInput(err))
}

func TestModeTieBreaking(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"single most frequent", []float64{1, 7, 7, 3}, 7},
		{"tie picks smallest", []float64{3, 1, 2, 3, 1}, 1},
		{"no repeats picks smallest", []float64{5, 2, 9}, 2},
		{"all equal counts", []float64{8, 8, 6, 6}, 6},
		{"negative values", []float64{-1, -3, -3, -1, 0}, -3},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Mode(tc.in))
		})
	}
}
