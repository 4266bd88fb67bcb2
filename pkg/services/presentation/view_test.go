package presentation

import (
	"testing"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []domain.YearRecord {
	return []domain.YearRecord{
		{Year: 1, FutureValue: 1050.5, PrincipalToDate: 1000, Gain: 50.5},
		{Year: 2, FutureValue: 2155.125, PrincipalToDate: 2000, Gain: 155.125},
		{Year: 3, FutureValue: 3310.9999, PrincipalToDate: 3000, Gain: 310.9999},
	}
}

func TestChart(t *testing.T) {
	chart := Chart(sampleRecords())
	require.NotNil(t, chart)

	assert.Equal(t, []string{"year 1", "year 2", "year 3"}, chart.Labels)
	require.Len(t, chart.Datasets, 2)

	assert.Equal(t, "Overall value", chart.Datasets[0].Label)
	assert.Equal(t, []float64{1050.5, 2155.125, 3310.9999}, chart.Datasets[0].Data)
	assert.True(t, chart.Datasets[0].Fill)

	assert.Equal(t, "Principal", chart.Datasets[1].Label)
	assert.Equal(t, []float64{1000, 2000, 3000}, chart.Datasets[1].Data)
	assert.True(t, chart.Datasets[1].Fill)
}

func TestChart_Empty(t *testing.T) {
	assert.Nil(t, Chart(nil))
	assert.Nil(t, Chart([]domain.YearRecord{}))
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleRecords())

	assert.False(t, summary.Empty)
	assert.Equal(t, "3,311.00", summary.FutureValue)
	assert.Equal(t, "3,000", summary.Principal)
	assert.Equal(t, "311.00", summary.Gain)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.Empty)
	assert.Equal(t, "Results will appear here.", summary.Placeholder)
	assert.Empty(t, summary.FutureValue)
}

func TestTable(t *testing.T) {
	rows := Table(sampleRecords())

	require.Len(t, rows, 3)
	assert.Equal(t, domain.TableRow{
		Year:        2,
		Label:       "year 2",
		Principal:   "2,000",
		Gain:        "155.13",
		FutureValue: "2,155.13",
	}, rows[1])
}

func TestTable_Empty(t *testing.T) {
	rows := Table(nil)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestDescribe(t *testing.T) {
	got := Describe(domain.DefaultParameters())

	assert.Equal(t, "At 10% a year, contributing 100,000 12 times a year for 20 years", got)
}

func TestBuild_EndToEnd(t *testing.T) {
	params := domain.Parameters{Principal: 100000, AnnualRatePercent: 10, PeriodsPerYear: 12, Years: 20}
	records, err := projection.Project(params)
	require.NoError(t, err)

	view := Build(params, records)

	assert.Equal(t, params, view.Parameters)
	assert.Len(t, view.Table, 20)
	require.NotNil(t, view.Chart)
	assert.Len(t, view.Chart.Labels, 20)
	assert.Equal(t, "year 20", view.Chart.Labels[19])
	assert.Equal(t, "24,000,000", view.Summary.Principal)
	assert.Equal(t, Fixed(records[19].FutureValue), view.Summary.FutureValue)
	assert.Equal(t, view.Summary.FutureValue, view.Table[19].FutureValue)
}
