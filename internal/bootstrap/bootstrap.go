// Package bootstrap runs long-lived processes until they stop or the process is signalled.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds the time all shutdown hooks get together.
const DefaultShutdownTimeout = 10 * time.Second

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

// App runs a process and tears its resources down in reverse order of registration.
type App struct {
	mu              sync.Mutex
	hooks           []hook
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func New(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// AddShutdownHook registers fn under name. Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook{name: name, fn: fn})
}

// AddCloser registers a Close method that takes no context, such as a database handle.
func (a *App) AddCloser(name string, closeFn func() error) {
	a.AddShutdownHook(name, func(context.Context) error {
		return closeFn()
	})
}

// Run executes run until it returns or the process receives SIGINT or SIGTERM.
// Shutdown hooks run in both cases; an error of run is joined with hook errors.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancelShutdown()
	return errors.Join(runErr, a.shutdown(shutdownCtx))
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		if err := h.fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed", zap.String("hook", h.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", h.name, err))
		}
	}
	return errors.Join(errs...)
}
