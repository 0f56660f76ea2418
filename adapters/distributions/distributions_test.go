package distributions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infstat/internal/errors"
	"infstat/ports"
)

func backends() []ports.DistributionProvider {
	return []ports.DistributionProvider{NewGonum(), NewMoremath()}
}

func TestNormalReferenceValues(t *testing.T) {
	for _, d := range backends() {
		t.Run(d.Name(), func(t *testing.T) {
			q, err := d.NormalQuantile(0.975)
			require.NoError(t, err)
			assert.InDelta(t, 1.959963985, q, 1e-8)

			c, err := d.NormalCDF(0)
			require.NoError(t, err)
			assert.InDelta(t, 0.5, c, 1e-15)

			c, err = d.NormalCDF(-1.5)
			require.NoError(t, err)
			assert.InDelta(t, 0.0668072013, c, 1e-9)
		})
	}
}

func TestStudentTReferenceValues(t *testing.T) {
	cases := []struct {
		p    float64
		df   int
		want float64
	}{
		{0.975, 1, 12.7062047},
		{0.975, 10, 2.2281389},
		{0.975, 35, 2.0301079},
		{0.95, 30, 1.6972609},
		{0.025, 5, -2.5705818},
	}
	for _, d := range backends() {
		for _, tc := range cases {
			q, err := d.StudentTQuantile(tc.p, tc.df)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, q, 1e-5, "%s p=%v df=%d", d.Name(), tc.p, tc.df)
		}

		c, err := d.StudentTCDF(-1.5, 35)
		require.NoError(t, err)
		assert.InDelta(t, 0.0713, c, 5e-4, d.Name())
	}
}

func TestStudentTApproachesNormal(t *testing.T) {
	for _, d := range backends() {
		zq, err := d.NormalQuantile(0.975)
		require.NoError(t, err)
		tq, err := d.StudentTQuantile(0.975, 5000)
		require.NoError(t, err)
		assert.InDelta(t, zq, tq, 1e-3, d.Name())
	}
}

func TestTailsStableAtTenSigma(t *testing.T) {
	for _, d := range backends() {
		lo, err := d.NormalCDF(-10)
		require.NoError(t, err)
		assert.Greater(t, lo, 0.0, d.Name())
		assert.Less(t, lo, 1e-20, d.Name())

		hi, err := d.NormalCDF(10)
		require.NoError(t, err)
		assert.LessOrEqual(t, hi, 1.0, d.Name())
	}
}

func TestBackendsAgree(t *testing.T) {
	g, m := NewGonum(), NewMoremath()
	for _, df := range []int{1, 2, 5, 29, 120, 3000} {
		for _, x := range []float64{-6, -2.5, -1, -0.1, 0, 0.3, 1.7, 4} {
			a, err := g.StudentTCDF(x, df)
			require.NoError(t, err)
			b, err := m.StudentTCDF(x, df)
			require.NoError(t, err)
			assert.InDelta(t, a, b, 1e-6, "cdf x=%v df=%d", x, df)
		}
		for _, p := range []float64{0.005, 0.05, 0.5, 0.9, 0.995} {
			a, err := g.StudentTQuantile(p, df)
			require.NoError(t, err)
			b, err := m.StudentTQuantile(p, df)
			require.NoError(t, err)
			assert.InDelta(t, a, b, 1e-6*math.Max(1, math.Abs(a)), "quantile p=%v df=%d", p, df)
		}
	}
}

func TestBackendsAgreeInFarTails(t *testing.T) {
	g, m := NewGonum(), NewMoremath()
	for _, df := range []int{1, 5, 30} {
		for _, p := range []float64{1e-10, 1e-12, 1e-20} {
			a, err := g.StudentTQuantile(p, df)
			require.NoError(t, err)
			b, err := m.StudentTQuantile(p, df)
			require.NoError(t, err)
			assert.Less(t, b, 0.0)
			assert.InEpsilon(t, a, b, 1e-6, "quantile p=%v df=%d", p, df)

			if 1-p == 1 {
				continue
			}
			// Upper tail mirrors the lower one, up to the rounding of 1-p.
			c, err := m.StudentTQuantile(1-p, df)
			require.NoError(t, err)
			assert.InEpsilon(t, -b, c, 1e-3, "quantile 1-p with p=%v df=%d", p, df)
		}
	}
}

func TestDomainErrors(t *testing.T) {
	for _, d := range backends() {
		for _, p := range []float64{0, 1, -0.1, 1.2, math.NaN()} {
			_, err := d.NormalQuantile(p)
			assert.True(t, errors.IsDomainError(err), "%s NormalQuantile(%v)", d.Name(), p)
			_, err = d.StudentTQuantile(p, 3)
			assert.True(t, errors.IsDomainError(err), "%s StudentTQuantile(%v)", d.Name(), p)
		}
		_, err := d.StudentTCDF(1, 0)
		assert.True(t, errors.IsDomainError(err))
		_, err = d.StudentTQuantile(0.5, -2)
		assert.True(t, errors.IsDomainError(err))
		_, err = d.NormalCDF(math.NaN())
		assert.True(t, errors.IsDomainError(err))
	}
}

func TestByName(t *testing.T) {
	d, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, BackendGonum, d.Name())

	d, err = ByName("MoreMath")
	require.NoError(t, err)
	assert.Equal(t, BackendMoremath, d.Name())

	_, err = ByName("scipy")
	assert.True(t, errors.IsInvalidInput(err))
}
