package input

import (
	"context"
	"fmt"
	"maps"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/presentation"
	"github.com/de-tools/growth-atlas/pkg/services/projection"
	"github.com/rs/zerolog"
)

type Options struct {
	Parameters domain.Parameters
	Bounds     domain.BoundsSet
}

// Session owns the parameters of one calculator session. Every accepted
// update recomputes the whole projection and notifies subscribers before
// returning. A Session is not safe for concurrent use.
type Session struct {
	logger    *zerolog.Logger
	params    domain.Parameters
	bounds    domain.BoundsSet
	view      domain.View
	observers []func(domain.View)
}

func NewSession(ctx context.Context, opts Options) (*Session, error) {
	for f, b := range opts.Bounds {
		if err := b.Check(f); err != nil {
			return nil, err
		}
	}
	bounds := domain.DefaultBounds()
	maps.Copy(bounds, opts.Bounds)

	for _, f := range domain.Fields {
		if v := opts.Parameters.Get(f); !bounds[f].Contains(v) {
			return nil, fmt.Errorf("seed %s=%g not in %s: %w", f, v, bounds[f], domain.ErrOutOfBounds)
		}
	}

	s := &Session{
		logger: zerolog.Ctx(ctx),
		params: opts.Parameters,
		bounds: bounds,
	}
	if err := s.recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Parameters() domain.Parameters { return s.params }

func (s *Session) Bounds() domain.BoundsSet { return maps.Clone(s.bounds) }

func (s *Session) View() domain.View { return s.view }

func (s *Session) Records() []domain.YearRecord { return s.view.Records }

// Subscribe registers fn to receive the view after every accepted update.
func (s *Session) Subscribe(fn func(domain.View)) {
	s.observers = append(s.observers, fn)
}

// Update validates raw for field f. A rejected value is logged and the prior
// value is kept.
func (s *Session) Update(f domain.Field, raw string) error {
	b, ok := s.bounds[f]
	if !ok {
		return fmt.Errorf("%q: %w", f, domain.ErrUnknownField)
	}

	v, err := NormalizeField(f, raw, b)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("field", string(f)).
			Str("raw", raw).
			Float64("kept", s.params.Get(f)).
			Msg("input rejected")
		return err
	}

	prev := s.params
	s.params = s.params.With(f, v)
	if err := s.recompute(); err != nil {
		s.params = prev
		s.logger.Error().
			Err(err).
			Str("field", string(f)).
			Msg("projection failed, keeping previous parameters")
		return err
	}

	for _, fn := range s.observers {
		fn(s.view)
	}
	return nil
}

// Binder returns the change handler of field f.
func (s *Session) Binder(f domain.Field) func(raw string) error {
	return func(raw string) error {
		return s.Update(f, raw)
	}
}

// Apply runs the updates in order and returns the ones that were rejected.
func (s *Session) Apply(updates []domain.Update) []domain.Rejection {
	var rejected []domain.Rejection
	for _, u := range updates {
		if err := s.Update(u.Field, u.Raw); err != nil {
			rejected = append(rejected, domain.Rejection{Field: u.Field, Raw: u.Raw, Err: err})
		}
	}
	return rejected
}

func (s *Session) recompute() error {
	records, err := projection.Project(s.params)
	if err != nil {
		return fmt.Errorf("failed to project: %w", err)
	}
	s.view = presentation.Build(s.params, records)
	return nil
}
