package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/sm8ta/webike_rental_service/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_service/internal/adapter/memory"
	"github.com/sm8ta/webike_rental_service/internal/adapter/prometheus"
	"github.com/sm8ta/webike_rental_service/internal/config"
	"github.com/sm8ta/webike_rental_service/internal/core/services"
)

type App struct {
	Config  *config.Container
	Logger  *logger.LoggerAdapter
	Metrics *prometheus.PrometheusAdapter
	Rental  *services.RentalService
}

type Option func(*options)

type options struct {
	clock  clockwork.Clock
	logger *logger.LoggerAdapter
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

func WithLogger(l *logger.LoggerAdapter) Option {
	return func(o *options) { o.logger = l }
}

func New(ctx context.Context, cfg *config.Container, opts ...Option) (*App, error) {
	o := &options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(o)
	}

	// Set logger
	loggerAdapter := o.logger
	if loggerAdapter == nil {
		loggerAdapter = logger.NewLoggerAdapter(cfg.App.Env)
	}
	if err := loggerAdapter.SetLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Observability
	metrics := prometheus.NewPrometheusAdapter(cfg.Metrics.Namespace)

	// Validate
	validate := validator.New()

	// Repositories
	userRepo := memory.NewUserRepository()
	bikeRepo := memory.NewBikeRepository()
	rentRepo := memory.NewRentRepository()

	// Services
	rentalService := services.NewRentalService(userRepo, bikeRepo, rentRepo, loggerAdapter, metrics, validate, o.clock)

	return &App{
		Config:  cfg,
		Logger:  loggerAdapter,
		Metrics: metrics,
		Rental:  rentalService,
	}, nil
}

// Stop logs what is still open; the collections live only as long as the
// process.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	active, err := a.Rental.ActiveRents(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active rents: %w", err)
	}
	if len(active) > 0 {
		a.Logger.Warn("Stopping with open rents", map[string]interface{}{
			"active_rents": len(active),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
