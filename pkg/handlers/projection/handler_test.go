package projection

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/growth-atlas/pkg/models/api"
	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) Fields(ctx context.Context) []input.Descriptor {
	args := m.Called(ctx)
	return args.Get(0).([]input.Descriptor)
}

func (m *mockCalculator) Evaluate(
	ctx context.Context,
	updates []domain.Update,
) (domain.View, []domain.Rejection, error) {
	args := m.Called(ctx, updates)
	var rejected []domain.Rejection
	if args.Get(1) != nil {
		rejected = args.Get(1).([]domain.Rejection)
	}
	return args.Get(0).(domain.View), rejected, args.Error(2)
}

func TestListFields(t *testing.T) {
	calc := new(mockCalculator)
	calc.On("Fields", mock.Anything).Return([]input.Descriptor{
		{Field: domain.FieldRate, Label: "Annual rate (%)", Placeholder: "Annual rate", Min: 0, Max: 100, Step: 0.01},
	})

	req := httptest.NewRequest(http.MethodGet, "/fields", nil)
	rec := httptest.NewRecorder()

	NewHandler(calc).ListFields(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response []api.Field
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, []api.Field{{
		Name:        "rate",
		Label:       "Annual rate (%)",
		Placeholder: "Annual rate",
		Min:         0,
		Max:         100,
		Step:        0.01,
	}}, response)
	calc.AssertExpectations(t)
}

func TestGetProjection(t *testing.T) {
	view := domain.View{
		Parameters:  domain.Parameters{Principal: 10, AnnualRatePercent: 0, PeriodsPerYear: 1, Years: 1},
		Description: "At 0% a year, contributing 10 1 times a year for 1 years",
		Summary:     domain.Summary{FutureValue: "10.00", Principal: "10", Gain: "0.00"},
		Chart: &domain.ChartData{
			Labels: []string{"year 1"},
			Datasets: []domain.Dataset{
				{Label: "Overall value", Data: []float64{10}, Fill: true},
				{Label: "Principal", Data: []float64{10}, Fill: true},
			},
		},
		Table: []domain.TableRow{{Year: 1, Label: "year 1", Principal: "10", Gain: "0.00", FutureValue: "10.00"}},
	}

	tests := []struct {
		name            string
		query           string
		expectedUpdates []domain.Update
		rejected        []domain.Rejection
		err             error
		expectedStatus  int
		expectedBody    *api.View
	}{
		{
			name:  "successful response",
			query: "?rate=0&principal=10&periods=1&years=1&unknown=3",
			expectedUpdates: []domain.Update{
				{Field: domain.FieldRate, Raw: "0"},
				{Field: domain.FieldPrincipal, Raw: "10"},
				{Field: domain.FieldPeriods, Raw: "1"},
				{Field: domain.FieldYears, Raw: "1"},
			},
			expectedStatus: http.StatusOK,
			expectedBody: &api.View{
				Parameters:  api.Parameters{Rate: 0, Principal: 10, Periods: 1, Years: 1},
				Description: "At 0% a year, contributing 10 1 times a year for 1 years",
				Summary:     api.Summary{FutureValue: "10.00", Principal: "10", Gain: "0.00"},
				Chart: &api.ChartData{
					Labels: []string{"year 1"},
					Datasets: []api.Dataset{
						{Label: "Overall value", Data: []float64{10}, Fill: true},
						{Label: "Principal", Data: []float64{10}, Fill: true},
					},
				},
				Table:    []api.TableRow{{Year: 1, Label: "year 1", Principal: "10", Gain: "0.00", FutureValue: "10.00"}},
				Rejected: []api.Rejection{},
			},
		},
		{
			name:  "rejected values are reported",
			query: "?years=1&years=5000",
			expectedUpdates: []domain.Update{
				{Field: domain.FieldYears, Raw: "1"},
				{Field: domain.FieldYears, Raw: "5000"},
			},
			rejected: []domain.Rejection{{
				Field: domain.FieldYears,
				Raw:   "5000",
				Err:   fmt.Errorf("years: %w", domain.ErrOutOfBounds),
			}},
			expectedStatus: http.StatusOK,
			expectedBody: &api.View{
				Parameters:  api.Parameters{Rate: 0, Principal: 10, Periods: 1, Years: 1},
				Description: "At 0% a year, contributing 10 1 times a year for 1 years",
				Summary:     api.Summary{FutureValue: "10.00", Principal: "10", Gain: "0.00"},
				Chart: &api.ChartData{
					Labels: []string{"year 1"},
					Datasets: []api.Dataset{
						{Label: "Overall value", Data: []float64{10}, Fill: true},
						{Label: "Principal", Data: []float64{10}, Fill: true},
					},
				},
				Table: []api.TableRow{{Year: 1, Label: "year 1", Principal: "10", Gain: "0.00", FutureValue: "10.00"}},
				Rejected: []api.Rejection{{
					Field: "years",
					Value: "5000",
					Error: "years: value out of bounds",
				}},
			},
		},
		{
			name:            "calculator error",
			query:           "",
			expectedUpdates: []domain.Update{},
			err:             fmt.Errorf("failed to start session: %w", domain.ErrOutOfBounds),
			expectedStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := new(mockCalculator)
			result := view
			if tt.err != nil {
				result = domain.View{}
			}
			calc.On("Evaluate", mock.Anything, tt.expectedUpdates).Return(result, tt.rejected, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/projection"+tt.query, nil)
			rec := httptest.NewRecorder()

			NewHandler(calc).GetProjection(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != nil {
				var response api.View
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			calc.AssertExpectations(t)
		})
	}
}
