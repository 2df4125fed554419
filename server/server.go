// Package server runs an HTTP handler until the context is cancelled.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run serves srv on its address and shuts down gracefully once ctx is done.
func Run(ctx context.Context, srv *http.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("shutting down", "addr", srv.Addr)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
