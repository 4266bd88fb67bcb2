package domain

// YearRecord is the state of the investment at the end of a year.
type YearRecord struct {
	Year            int // 1-based
	FutureValue     float64
	PrincipalToDate float64
	Gain            float64 // FutureValue - PrincipalToDate
}

// Update is a raw value entered for a field.
type Update struct {
	Field Field
	Raw   string
}

// Rejection describes an input update that was discarded.
type Rejection struct {
	Field Field
	Raw   string
	Err   error
}
