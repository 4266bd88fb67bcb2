package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server holds the web front end settings, read from the environment.
type Server struct {
	Host            string        `env:"SERVER_HOST"              envDefault:"127.0.0.1"`
	Port            string        `env:"SERVER_PORT"              envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"  envDefault:"10s"`
	RateLimit       int           `env:"SERVER_RATE_LIMIT"        envDefault:"120"`
	RateWindow      time.Duration `env:"SERVER_RATE_LIMIT_WINDOW" envDefault:"1m"`
}

func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// LoadServer parses the server settings. Files are loaded into the
// environment first with godotenv; missing files are ignored.
func LoadServer(envFiles ...string) (Server, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimit < 1 {
		return Server{}, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimit)
	}
	return cfg, nil
}
