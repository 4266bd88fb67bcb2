package domain

import "fmt"

type Field string

const (
	FieldRate      Field = "rate"
	FieldPrincipal Field = "principal"
	FieldPeriods   Field = "periods"
	FieldYears     Field = "years"
)

// Fields lists the inputs in the order they are presented.
var Fields = []Field{FieldRate, FieldPrincipal, FieldPeriods, FieldYears}

func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownField)
}

// Integral reports whether the field only accepts whole numbers.
func (f Field) Integral() bool {
	return f == FieldPeriods || f == FieldYears
}

// Parameters are the four inputs of a projection.
type Parameters struct {
	Principal         float64 // contribution per compounding period
	AnnualRatePercent float64 // 10 means 10%
	PeriodsPerYear    int     // 12 for monthly, 365 for daily
	Years             int
}

func DefaultParameters() Parameters {
	return Parameters{
		Principal:         100000,
		AnnualRatePercent: 10,
		PeriodsPerYear:    12,
		Years:             20,
	}
}

// Get returns the value of f as a float.
func (p Parameters) Get(f Field) float64 {
	switch f {
	case FieldRate:
		return p.AnnualRatePercent
	case FieldPrincipal:
		return p.Principal
	case FieldPeriods:
		return float64(p.PeriodsPerYear)
	case FieldYears:
		return float64(p.Years)
	}
	return 0
}

// With returns a copy of p with f set to v. Integral fields are truncated.
func (p Parameters) With(f Field, v float64) Parameters {
	switch f {
	case FieldRate:
		p.AnnualRatePercent = v
	case FieldPrincipal:
		p.Principal = v
	case FieldPeriods:
		p.PeriodsPerYear = int(v)
	case FieldYears:
		p.Years = int(v)
	}
	return p
}

// Bounds is a closed interval [Min, Max].
type Bounds struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.Min, b.Max)
}

// Check reports whether b is usable for field f. Rate, periods and years may
// only be narrowed from their default range; principal only needs a
// non-negative minimum.
func (b Bounds) Check(f Field) error {
	if b.Min > b.Max {
		return fmt.Errorf("bounds for %s: min %g > max %g: %w", f, b.Min, b.Max, ErrInvalidDomain)
	}
	if f == FieldPrincipal {
		if b.Min < 0 {
			return fmt.Errorf("bounds for %s: min %g below 0: %w", f, b.Min, ErrInvalidDomain)
		}
		return nil
	}
	limit, ok := DefaultBounds()[f]
	if !ok {
		return fmt.Errorf("%q: %w", f, ErrUnknownField)
	}
	if !limit.Contains(b.Min) || !limit.Contains(b.Max) {
		return fmt.Errorf("bounds for %s: %s not within %s: %w", f, b, limit, ErrInvalidDomain)
	}
	return nil
}

type BoundsSet map[Field]Bounds

func DefaultBounds() BoundsSet {
	return BoundsSet{
		FieldRate:      {Min: 0, Max: 100},
		FieldPrincipal: {Min: 0, Max: 100_000_000},
		FieldPeriods:   {Min: 1, Max: 1000},
		FieldYears:     {Min: 1, Max: 100},
	}
}
