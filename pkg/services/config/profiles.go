package config

import (
	"context"
	"fmt"
	"sort"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const DefaultProfile = "default"

// Registry resolves named seed parameters.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, name string) (domain.Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewRegistry loads an INI file where every section is a profile:
//
//	[conservative]
//	rate = 3
//	principal = 20000
//	periods = 12
//	years = 30
//
// Keys missing from a section fall back to the default parameters.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

// NewEmptyRegistry returns a registry that only knows the default profile.
func NewEmptyRegistry() Registry {
	return &iniRegistry{cfg: ini.Empty()}
}

func (r *iniRegistry) GetProfiles(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		p, err := r.GetProfile(ctx, section.Name())
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.Profile, error) {
	defaults := domain.DefaultParameters()
	if name == "" || name == DefaultProfile && !r.cfg.HasSection(name) {
		return domain.Profile{Name: DefaultProfile, Parameters: defaults}, nil
	}

	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s not found: %w", name, err)
	}

	params := domain.Parameters{
		AnnualRatePercent: section.Key(string(domain.FieldRate)).MustFloat64(defaults.AnnualRatePercent),
		Principal:         section.Key(string(domain.FieldPrincipal)).MustFloat64(defaults.Principal),
		PeriodsPerYear:    section.Key(string(domain.FieldPeriods)).MustInt(defaults.PeriodsPerYear),
		Years:             section.Key(string(domain.FieldYears)).MustInt(defaults.Years),
	}
	return domain.Profile{Name: name, Parameters: params}, nil
}
