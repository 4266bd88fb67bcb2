// Package projection computes the growth of a periodic contribution plan.
package projection

import (
	"fmt"
	"math"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

// Project returns one record per year, in ascending order. Each record is
// evaluated from the closed-form future value of an ordinary annuity:
//
//	FV = P * ((1 + r/n)^(n*y) - 1) / (r/n)
//
// A zero rate degenerates to plain accumulation. Years < 1 yields an empty
// projection.
func Project(p domain.Parameters) ([]domain.YearRecord, error) {
	if p.PeriodsPerYear < 1 {
		return nil, fmt.Errorf("periods per year %d: %w", p.PeriodsPerYear, domain.ErrInvalidDomain)
	}
	if p.Years < 1 {
		return []domain.YearRecord{}, nil
	}

	ratePerPeriod := (p.AnnualRatePercent / 100) / float64(p.PeriodsPerYear)
	if ratePerPeriod < -1 {
		return nil, fmt.Errorf("rate per period %g below -100%%: %w", ratePerPeriod*100, domain.ErrInvalidDomain)
	}

	records := make([]domain.YearRecord, 0, p.Years)
	for year := 1; year <= p.Years; year++ {
		periods := float64(p.PeriodsPerYear * year)
		principal := p.Principal * float64(year) * float64(p.PeriodsPerYear)

		fv := principal
		if ratePerPeriod != 0 {
			// expm1/log1p keep (1+r)^n - 1 accurate for tiny rates
			fv = p.Principal * math.Expm1(periods*math.Log1p(ratePerPeriod)) / ratePerPeriod
		}
		if math.IsInf(fv, 0) || math.IsNaN(fv) {
			return nil, fmt.Errorf("year %d: %w", year, domain.ErrOverflow)
		}

		records = append(records, domain.YearRecord{
			Year:            year,
			FutureValue:     fv,
			PrincipalToDate: principal,
			Gain:            fv - principal,
		})
	}
	return records, nil
}

// Final returns the last record, or false when the projection is empty.
func Final(records []domain.YearRecord) (domain.YearRecord, bool) {
	if len(records) == 0 {
		return domain.YearRecord{}, false
	}
	return records[len(records)-1], true
}
