package inference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
)

func TestCriticalValue(t *testing.T) {
	e := newEngine()
	for c, want := range map[float64]float64{
		0.90:  1.6448536,
		0.95:  1.9599640,
		0.975: 2.2414027,
		0.99:  2.5758293,
	} {
		got, err := e.CriticalValue(c)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-6, "confidence %v", c)
	}

	_, err := e.CriticalValue(1)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestRejectionRegion(t *testing.T) {
	e := newEngine()

	two, err := e.RejectionRegion(0.05, domain.TwoSided, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.959964, two.Lower, 1e-6)
	assert.InDelta(t, 1.959964, two.Upper, 1e-6)
	assert.True(t, two.Rejects(2.1))
	assert.True(t, two.Rejects(-2.1))
	assert.False(t, two.Rejects(1.5))

	up, err := e.RejectionRegion(0.05, domain.UpperTail, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(up.Lower, -1))
	assert.InDelta(t, 1.644854, up.Upper, 1e-6)

	low, err := e.RejectionRegion(0.05, domain.LowerTail, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.644854, low.Lower, 1e-6)
	assert.True(t, math.IsInf(low.Upper, 1))
	assert.Equal(t, "stat <= -1.6449", low.String())

	tUp, err := e.RejectionRegion(0.05, domain.UpperTail, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.812461, tUp.Upper, 1e-5)
}

func TestRejectionRegionAgreesWithPValue(t *testing.T) {
	e := newEngine()
	region, err := e.RejectionRegion(0.05, domain.LowerTail, 35)
	require.NoError(t, err)

	out, err := e.MeanTest(980, 1000, 80, 36, domain.LowerTail, false)
	require.NoError(t, err)
	assert.Equal(t, out.PValue < 0.05, region.Rejects(out.Statistic))
}

func TestRejectionRegionInvalidInput(t *testing.T) {
	e := newEngine()
	_, err := e.RejectionRegion(0, domain.TwoSided, 0)
	assert.True(t, errors.IsInvalidInput(err))
	_, err = e.RejectionRegion(0.05, domain.TwoSided, -1)
	assert.True(t, errors.IsInvalidInput(err))
	_, err = e.RejectionRegion(0.05, domain.TailMode(-1), 0)
	assert.True(t, errors.IsInvalidInput(err))
}
