package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/growth-atlas/pkg/handlers/page"
	"github.com/de-tools/growth-atlas/pkg/handlers/projection"
	"github.com/de-tools/growth-atlas/pkg/services/calculator"

	growthmiddleware "github.com/de-tools/growth-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	limiter         *growthmiddleware.RateLimiter
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Calculator calculator.Service
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	RateLimit       int
	RateWindow      time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the routes. A nil limiter disables rate limiting.
func ConfigureRouter(config Config, limiter *growthmiddleware.RateLimiter) *chi.Mux {
	logger := config.Dependencies.Logger
	pageHandler := page.NewHandler(config.Dependencies.Calculator)
	projectionHandler := projection.NewHandler(config.Dependencies.Calculator)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(growthmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(growthmiddleware.RateLimit(limiter))
		}

		r.Get("/", pageHandler.Index)
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/fields", projectionHandler.ListFields)
			r.Get("/projection", projectionHandler.GetProjection)
		})
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger

	var limiter *growthmiddleware.RateLimiter
	if config.RateLimit > 0 {
		limiter = growthmiddleware.NewRateLimiter(config.RateLimit, config.RateWindow)
	}

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	router := ConfigureRouter(config, limiter)
	return &WebAPI{
		router:          router,
		logger:          &logger,
		limiter:         limiter,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:         config.Addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	if w.limiter != nil {
		defer w.limiter.Stop()
	}

	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
