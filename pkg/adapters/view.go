package adapters

import (
	"github.com/de-tools/growth-atlas/pkg/models/api"
	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/input"
)

func MapViewDomainToApi(view domain.View, rejected []domain.Rejection) api.View {
	out := api.View{
		Parameters:  MapParametersDomainToApi(view.Parameters),
		Description: view.Description,
		Summary:     MapSummaryDomainToApi(view.Summary),
		Chart:       MapChartDomainToApi(view.Chart),
		Table:       []api.TableRow{},
		Rejected:    []api.Rejection{},
	}

	for _, row := range view.Table {
		out.Table = append(out.Table, api.TableRow{
			Year:        row.Year,
			Label:       row.Label,
			Principal:   row.Principal,
			Gain:        row.Gain,
			FutureValue: row.FutureValue,
		})
	}

	for _, r := range rejected {
		out.Rejected = append(out.Rejected, MapRejectionDomainToApi(r))
	}

	return out
}

func MapParametersDomainToApi(p domain.Parameters) api.Parameters {
	return api.Parameters{
		Rate:      p.AnnualRatePercent,
		Principal: p.Principal,
		Periods:   p.PeriodsPerYear,
		Years:     p.Years,
	}
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		Empty:       s.Empty,
		Placeholder: s.Placeholder,
		FutureValue: s.FutureValue,
		Principal:   s.Principal,
		Gain:        s.Gain,
	}
}

func MapChartDomainToApi(c *domain.ChartData) *api.ChartData {
	if c == nil {
		return nil
	}

	chart := &api.ChartData{
		Labels:   append([]string{}, c.Labels...),
		Datasets: []api.Dataset{},
	}
	for _, ds := range c.Datasets {
		chart.Datasets = append(chart.Datasets, api.Dataset{
			Label: ds.Label,
			Data:  append([]float64{}, ds.Data...),
			Fill:  ds.Fill,
		})
	}
	return chart
}

func MapRejectionDomainToApi(r domain.Rejection) api.Rejection {
	rejection := api.Rejection{
		Field: string(r.Field),
		Value: r.Raw,
	}
	if r.Err != nil {
		rejection.Error = r.Err.Error()
	}
	return rejection
}

func MapDescriptorToApi(d input.Descriptor) api.Field {
	return api.Field{
		Name:        string(d.Field),
		Label:       d.Label,
		Placeholder: d.Placeholder,
		Min:         d.Min,
		Max:         d.Max,
		Step:        d.Step,
	}
}
