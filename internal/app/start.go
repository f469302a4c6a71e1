package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Start runs the ATM session in the background. The returned channel is
// closed once the session ends or a termination signal arrives.
func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})

	var once sync.Once
	terminate := func() {
		once.Do(func() {
			if a.cancel != nil {
				a.cancel()
			}
			close(terminateChan)
		})
	}

	a.goroutine.Go(a.ctx, func(ctx context.Context) error {
		defer terminate()
		return a.controller.Run(ctx)
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigint)

		select {
		case <-sigint:
			slog.Info("termination signal received")
			terminate()
		case <-terminateChan:
		}
	}()

	return terminateChan
}

// Stop waits for the session to finish, bounded by ctx, then releases
// resources. It returns the error the session ended with, if any.
func (a *App) Stop(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
	}

	done := make(chan error, 1)
	go func() { done <- a.goroutine.Wait() }()

	var runErr error
	select {
	case runErr = <-done:
		if runErr != nil {
			slog.ErrorContext(ctx, "session ended with error", "error", runErr)
		}
	case <-ctx.Done():
		// the session is still blocked reading input
		slog.WarnContext(ctx, "session did not finish before shutdown deadline")
	}

	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application shutdown")

	return runErr
}
