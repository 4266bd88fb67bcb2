package domain

import "fmt"

// Profile is a named set of seed parameters.
type Profile struct {
	Name       string
	Parameters Parameters
}

func (p Profile) String() string {
	return fmt.Sprintf("%s: rate=%g principal=%g periods=%d years=%d",
		p.Name,
		p.Parameters.AnnualRatePercent,
		p.Parameters.Principal,
		p.Parameters.PeriodsPerYear,
		p.Parameters.Years)
}
