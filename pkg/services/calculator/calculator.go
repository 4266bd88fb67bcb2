package calculator

import (
	"context"
	"fmt"
	"maps"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/input"
)

// Service evaluates the calculator for one request. Each call starts a fresh
// session from the seed parameters.
type Service interface {
	Fields(ctx context.Context) []input.Descriptor
	Evaluate(ctx context.Context, updates []domain.Update) (domain.View, []domain.Rejection, error)
}

type defaultService struct {
	seed   domain.Parameters
	bounds domain.BoundsSet
}

func NewService(seed domain.Parameters, bounds domain.BoundsSet) Service {
	return &defaultService{seed: seed, bounds: bounds}
}

func (s *defaultService) Fields(_ context.Context) []input.Descriptor {
	b := domain.DefaultBounds()
	maps.Copy(b, s.bounds)
	return input.Describe(b)
}

func (s *defaultService) Evaluate(
	ctx context.Context,
	updates []domain.Update,
) (domain.View, []domain.Rejection, error) {
	session, err := input.NewSession(ctx, input.Options{Parameters: s.seed, Bounds: s.bounds})
	if err != nil {
		return domain.View{}, nil, fmt.Errorf("failed to start session: %w", err)
	}

	rejected := session.Apply(updates)
	return session.View(), rejected, nil
}
