// Package input validates raw user input and owns the session state it
// updates.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

// Normalize parses raw and checks it against the closed interval b.
func Normalize(raw string, b domain.Bounds) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", raw, domain.ErrUnparsable)
	}
	if !b.Contains(v) {
		return 0, fmt.Errorf("%g not in %s: %w", v, b, domain.ErrOutOfBounds)
	}
	return v, nil
}

// NormalizeField is Normalize plus the whole-number rule of integral fields.
func NormalizeField(f domain.Field, raw string, b domain.Bounds) (float64, error) {
	v, err := Normalize(raw, b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f, err)
	}
	if f.Integral() && v != math.Trunc(v) {
		return 0, fmt.Errorf("%s: %g: %w", f, v, domain.ErrNotInteger)
	}
	return v, nil
}

// Descriptor describes the input widget of a field.
type Descriptor struct {
	Field       domain.Field
	Label       string
	Placeholder string
	Min         float64
	Max         float64
	Step        float64
}

var labels = map[domain.Field]struct{ label, placeholder string }{
	domain.FieldRate:      {"Annual rate (%)", "Annual rate"},
	domain.FieldPrincipal: {"Contribution per period", "Contribution"},
	domain.FieldPeriods:   {"Contributions per year", "12 for monthly, 365 for daily"},
	domain.FieldYears:     {"Years", "Years"},
}

// Describe returns the widget descriptors of every field, in display order.
func Describe(bounds domain.BoundsSet) []Descriptor {
	out := make([]Descriptor, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		b := bounds[f]
		step := 0.01
		if f.Integral() {
			step = 1
		}
		out = append(out, Descriptor{
			Field:       f,
			Label:       labels[f].label,
			Placeholder: labels[f].placeholder,
			Min:         b.Min,
			Max:         b.Max,
			Step:        step,
		})
	}
	return out
}
