// Package presentation shapes a projection into the summary, chart and table
// shown to the user.
package presentation

import (
	"strconv"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

// Build derives every view of a projection.
func Build(p domain.Parameters, records []domain.YearRecord) domain.View {
	return domain.View{
		Parameters:  p,
		Description: Describe(p),
		Summary:     Summarize(records),
		Chart:       Chart(records),
		Table:       Table(records),
		Records:     records,
	}
}

func Describe(p domain.Parameters) string {
	return printer().Sprintf(keyDescription,
		Humanize(p.AnnualRatePercent),
		Humanize(p.Principal),
		strconv.Itoa(p.PeriodsPerYear),
		strconv.Itoa(p.Years))
}

// YearLabel names the i-th year, counting from 1.
func YearLabel(year int) string {
	return printer().Sprintf(keyYearLabel, year)
}

// Summarize formats the final record. An empty projection yields the
// placeholder.
func Summarize(records []domain.YearRecord) domain.Summary {
	if len(records) == 0 {
		return domain.Summary{
			Empty:       true,
			Placeholder: printer().Sprintf(keyPlaceholder),
		}
	}

	last := records[len(records)-1]
	return domain.Summary{
		FutureValue: Fixed(last.FutureValue),
		Principal:   Humanize(last.PrincipalToDate),
		Gain:        Fixed(last.Gain),
	}
}

// Chart returns the overall value and principal series aligned with one
// label per year, or nil when there is nothing to plot.
func Chart(records []domain.YearRecord) *domain.ChartData {
	if len(records) == 0 {
		return nil
	}

	labels := make([]string, len(records))
	overall := make([]float64, len(records))
	principal := make([]float64, len(records))
	for i, r := range records {
		labels[i] = YearLabel(i + 1)
		overall[i] = r.FutureValue
		principal[i] = r.PrincipalToDate
	}

	p := printer()
	return &domain.ChartData{
		Labels: labels,
		Datasets: []domain.Dataset{
			{Label: p.Sprintf(keyOverall), Data: overall, Fill: true},
			{Label: p.Sprintf(keyPrincipal), Data: principal, Fill: true},
		},
	}
}

func Table(records []domain.YearRecord) []domain.TableRow {
	rows := make([]domain.TableRow, 0, len(records))
	for i, r := range records {
		rows = append(rows, domain.TableRow{
			Year:        i + 1,
			Label:       YearLabel(i + 1),
			Principal:   Humanize(r.PrincipalToDate),
			Gain:        Fixed(r.Gain),
			FutureValue: Fixed(r.FutureValue),
		})
	}
	return rows
}
