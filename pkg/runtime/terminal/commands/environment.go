package commands

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/de-tools/growth-atlas/pkg/services/input"
)

type Reporter interface {
	Handle(view domain.View) error
}

// Environment is shared by every command. Settings and Registry are filled
// once the root flags are parsed.
type Environment struct {
	Settings  *config.Settings
	Registry  config.Registry
	Reporters map[string]Reporter
	In        io.Reader
	Out       io.Writer
}

func (e *Environment) reporter(format string) (Reporter, error) {
	r, ok := e.Reporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q. Supported formats: %v", format, e.formats())
	}
	return r, nil
}

func (e *Environment) formats() []string {
	formats := make([]string, 0, len(e.Reporters))
	for f := range e.Reporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// newSession seeds a session from the named profile, or from the settings
// when no profile is given.
func (e *Environment) newSession(ctx context.Context, profile string) (*input.Session, error) {
	seed := e.Settings.Parameters()
	if profile != "" {
		p, err := e.Registry.GetProfile(ctx, profile)
		if err != nil {
			return nil, err
		}
		seed = p.Parameters
	}

	session, err := input.NewSession(ctx, input.Options{
		Parameters: seed,
		Bounds:     e.Settings.BoundsSet(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return session, nil
}
