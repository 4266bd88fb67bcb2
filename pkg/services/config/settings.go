package config

import (
	"fmt"
	"maps"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// Settings tune the calculator: input bounds and the seed parameters.
type Settings struct {
	Bounds   map[string]domain.Bounds `mapstructure:"bounds"`
	Defaults Defaults                 `mapstructure:"defaults"`
}

type Defaults struct {
	Rate      float64 `mapstructure:"rate"`
	Principal float64 `mapstructure:"principal"`
	Periods   int     `mapstructure:"periods"`
	Years     int     `mapstructure:"years"`
}

func DefaultSettings() *Settings {
	p := domain.DefaultParameters()
	bounds := make(map[string]domain.Bounds)
	for f, b := range domain.DefaultBounds() {
		bounds[string(f)] = b
	}
	return &Settings{
		Bounds: bounds,
		Defaults: Defaults{
			Rate:      p.AnnualRatePercent,
			Principal: p.Principal,
			Periods:   p.PeriodsPerYear,
			Years:     p.Years,
		},
	}
}

// LoadSettings reads a YAML/TOML/JSON settings file on top of the defaults.
// An empty path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Settings
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	maps.Copy(cfg.Bounds, loaded.Bounds)
	if v.IsSet("defaults.rate") {
		cfg.Defaults.Rate = loaded.Defaults.Rate
	}
	if v.IsSet("defaults.principal") {
		cfg.Defaults.Principal = loaded.Defaults.Principal
	}
	if v.IsSet("defaults.periods") {
		cfg.Defaults.Periods = loaded.Defaults.Periods
	}
	if v.IsSet("defaults.years") {
		cfg.Defaults.Years = loaded.Defaults.Years
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Settings) validate() error {
	for name, b := range s.Bounds {
		f, err := domain.ParseField(name)
		if err != nil {
			return fmt.Errorf("invalid bounds: %w", err)
		}
		if err := b.Check(f); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}
	}
	return nil
}

// BoundsSet returns the bounds keyed by field.
func (s *Settings) BoundsSet() domain.BoundsSet {
	out := make(domain.BoundsSet, len(s.Bounds))
	for name, b := range s.Bounds {
		out[domain.Field(name)] = b
	}
	return out
}

// Parameters returns the configured seed parameters.
func (s *Settings) Parameters() domain.Parameters {
	return domain.Parameters{
		AnnualRatePercent: s.Defaults.Rate,
		Principal:         s.Defaults.Principal,
		PeriodsPerYear:    s.Defaults.Periods,
		Years:             s.Defaults.Years,
	}
}
