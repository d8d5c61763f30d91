package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aura-labs/aura/internal/api"
	"github.com/aura-labs/aura/internal/app/challenge"
	"github.com/aura-labs/aura/internal/app/habit"
	"github.com/aura-labs/aura/internal/app/reward"
	"github.com/aura-labs/aura/internal/domain"
	"github.com/aura-labs/aura/internal/health"
	_ "github.com/aura-labs/aura/internal/infra/metrics" // Register Prometheus metrics
	"github.com/aura-labs/aura/internal/infra/store"
)

// Version is stamped by the build; "dev" otherwise.
var Version = "dev"

// Daemon is the core aura runtime. It wires together all services.
type Daemon struct {
	Config  Config
	Store   *store.Store
	Habits  *habit.Service
	Rewards *reward.Service
	Health  *health.Checker
	Server  *api.Server
	cancel  context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dataDir := cfg.Storage.Dir
	if dataDir == "" {
		dataDir = DefaultConfig().Storage.Dir
	}

	st, err := store.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	settings := domain.HabitSettings{
		AllowRetroactive: cfg.Habit.AllowRetroactive,
		GracePeriodHours: cfg.Habit.GracePeriodHours,
	}
	habits := habit.NewService(st, settings)
	rewards := reward.NewService(st, challenge.NewGenerator())
	checker := health.NewChecker(st, dataDir)

	srv := api.NewServer(habits, rewards, checker, Version)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:  cfg,
		Store:   st,
		Habits:  habits,
		Rewards: rewards,
		Health:  checker,
		Server:  srv,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.Store.Close()
	}()

	fmt.Printf("Aura serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.Store != nil {
		_ = d.Store.Close()
	}
}
