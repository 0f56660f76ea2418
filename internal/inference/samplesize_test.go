package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infstat/internal/errors"
)

func TestRequiredSampleSizeForProportion(t *testing.T) {
	cases := []struct {
		p, e, c float64
		want    int
	}{
		{0.5, 0.03, 0.95, 1068},
		{0.5, 0.05, 0.95, 385},
		{0.5, 0.05, 0.90, 271},
		{0.2, 0.05, 0.95, 246},
	}
	for name, e := range engines() {
		for _, tc := range cases {
			n, err := e.RequiredSampleSizeForProportion(tc.p, tc.e, tc.c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n, "%s p=%v e=%v c=%v", name, tc.p, tc.e, tc.c)
		}
	}
}

func TestRequiredSampleSizeFinitePopulation(t *testing.T) {
	e := newEngine()

	n, err := e.RequiredSampleSizeFinitePopulation(1000, 0.5, 0.05, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 278, n)

	n, err = e.RequiredSampleSizeFinitePopulation(1, 0.5, 0.05, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A huge population approaches the infinite-population answer.
	inf, err := e.RequiredSampleSizeForProportion(0.5, 0.03, 0.95)
	require.NoError(t, err)
	big, err := e.RequiredSampleSizeFinitePopulation(100_000_000, 0.5, 0.03, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, inf, big, 1)
}

func TestFinitePopulationNeverExceedsPopulation(t *testing.T) {
	e := newEngine()
	for _, N := range []int{1, 2, 5, 30, 100, 999} {
		n, err := e.RequiredSampleSizeFinitePopulation(N, 0.5, 0.01, 0.99)
		require.NoError(t, err)
		assert.LessOrEqual(t, n, N)
		assert.Greater(t, n, 0)
	}
}

func TestSampleSizeInvalidInput(t *testing.T) {
	e := newEngine()
	cases := map[string]error{}

	_, cases["e=0"] = e.RequiredSampleSizeForProportion(0.5, 0, 0.95)
	_, cases["e<0"] = e.RequiredSampleSizeForProportion(0.5, -0.1, 0.95)
	_, cases["p=0"] = e.RequiredSampleSizeForProportion(0, 0.05, 0.95)
	_, cases["p=1"] = e.RequiredSampleSizeForProportion(1, 0.05, 0.95)
	_, cases["c=1.5"] = e.RequiredSampleSizeForProportion(0.5, 0.05, 1.5)
	_, cases["N=0"] = e.RequiredSampleSizeFinitePopulation(0, 0.5, 0.05, 0.95)
	_, cases["N<0"] = e.RequiredSampleSizeFinitePopulation(-10, 0.5, 0.05, 0.95)

	for name, err := range cases {
		assert.True(t, errors.IsInvalidInput(err), "%s: got %v", name, err)
	}
}

func TestSampleSizeOverflow(t *testing.T) {
	for name, e := range engines() {
		for _, margin := range []float64{1e-10, 1e-200} {
			n, err := e.RequiredSampleSizeForProportion(0.5, margin, 0.95)
			assert.True(t, errors.IsInvalidInput(err), "%s e=%v", name, margin)
			assert.Zero(t, n)
		}

		// Small but representable margins still give a positive size.
		n, err := e.RequiredSampleSizeForProportion(0.5, 1e-6, 0.95)
		require.NoError(t, err, name)
		assert.Greater(t, n, 0)

		// The finite form is bounded by the population.
		n, err = e.RequiredSampleSizeFinitePopulation(5000, 0.5, 1e-200, 0.95)
		require.NoError(t, err, name)
		assert.Equal(t, 5000, n)
	}
}
