package projection

import (
	"math"
	"testing"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceFutureValue(principal, ratePercent float64, periods, year int) float64 {
	r := ratePercent / 100 / float64(periods)
	return principal * (math.Pow(1+r, float64(periods*year)) - 1) / r
}

func TestProject_LengthAndOrder(t *testing.T) {
	tests := []struct {
		name   string
		params domain.Parameters
	}{
		{name: "defaults", params: domain.DefaultParameters()},
		{name: "single year", params: domain.Parameters{Principal: 100, AnnualRatePercent: 5, PeriodsPerYear: 1, Years: 1}},
		{name: "daily for a century", params: domain.Parameters{Principal: 1, AnnualRatePercent: 3, PeriodsPerYear: 365, Years: 100}},
		{name: "zero rate", params: domain.Parameters{Principal: 50, AnnualRatePercent: 0, PeriodsPerYear: 4, Years: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Project(tt.params)
			require.NoError(t, err)
			require.Len(t, records, tt.params.Years)

			for i, r := range records {
				assert.Equal(t, i+1, r.Year)
			}
		})
	}
}

func TestProject_PrincipalToDate(t *testing.T) {
	p := domain.Parameters{Principal: 1234.56, AnnualRatePercent: 7.5, PeriodsPerYear: 52, Years: 30}

	records, err := Project(p)
	require.NoError(t, err)

	for _, r := range records {
		assert.Equal(t, p.Principal*float64(r.Year)*float64(p.PeriodsPerYear), r.PrincipalToDate, "year %d", r.Year)
	}
}

func TestProject_ZeroRate(t *testing.T) {
	p := domain.Parameters{Principal: 300, AnnualRatePercent: 0, PeriodsPerYear: 12, Years: 15}

	records, err := Project(p)
	require.NoError(t, err)

	for _, r := range records {
		assert.False(t, math.IsNaN(r.FutureValue))
		assert.Equal(t, r.PrincipalToDate, r.FutureValue)
		assert.Zero(t, r.Gain)
	}
}

func TestProject_PositiveRateGrowth(t *testing.T) {
	p := domain.Parameters{Principal: 500, AnnualRatePercent: 4, PeriodsPerYear: 12, Years: 40}

	records, err := Project(p)
	require.NoError(t, err)

	prev := 0.0
	for _, r := range records {
		assert.GreaterOrEqual(t, r.FutureValue, r.PrincipalToDate)
		assert.GreaterOrEqual(t, r.Gain, 0.0)
		assert.Greater(t, r.FutureValue, prev)
		prev = r.FutureValue
	}
}

func TestProject_MatchesReference(t *testing.T) {
	p := domain.Parameters{Principal: 100000, AnnualRatePercent: 10, PeriodsPerYear: 12, Years: 20}

	records, err := Project(p)
	require.NoError(t, err)
	require.Len(t, records, 20)

	last := records[19]
	assert.Equal(t, 20, last.Year)
	assert.Equal(t, 24_000_000.0, last.PrincipalToDate)

	for _, r := range records {
		want := referenceFutureValue(p.Principal, p.AnnualRatePercent, p.PeriodsPerYear, r.Year)
		assert.InEpsilon(t, want, r.FutureValue, 1e-6, "year %d", r.Year)
		assert.InEpsilon(t, want-r.PrincipalToDate, r.Gain, 1e-6, "year %d", r.Year)
	}
}

func TestProject_EmptyHorizon(t *testing.T) {
	records, err := Project(domain.Parameters{Principal: 1, AnnualRatePercent: 1, PeriodsPerYear: 1, Years: 0})

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	_, ok := Final(records)
	assert.False(t, ok)
}

func TestProject_InvalidPeriods(t *testing.T) {
	_, err := Project(domain.Parameters{Principal: 1, AnnualRatePercent: 1, PeriodsPerYear: 0, Years: 5})

	assert.ErrorIs(t, err, domain.ErrInvalidDomain)
}

func TestProject_RateBelowMinusHundredPercent(t *testing.T) {
	_, err := Project(domain.Parameters{Principal: 100, AnnualRatePercent: -150, PeriodsPerYear: 1, Years: 5})

	assert.ErrorIs(t, err, domain.ErrInvalidDomain)
	assert.NotErrorIs(t, err, domain.ErrOverflow)
}

func TestProject_Overflow(t *testing.T) {
	_, err := Project(domain.Parameters{Principal: 1e300, AnnualRatePercent: 1000, PeriodsPerYear: 1, Years: 100})

	assert.ErrorIs(t, err, domain.ErrOverflow)
}

func TestFinal(t *testing.T) {
	records, err := Project(domain.DefaultParameters())
	require.NoError(t, err)

	last, ok := Final(records)
	require.True(t, ok)
	assert.Equal(t, records[len(records)-1], last)
}
