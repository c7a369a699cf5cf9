package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/goglobe/config"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// Run serves handler on cfg.Address and blocks until ctx is canceled or the
// server fails. On cancellation in-flight requests get shutdownTimeout to finish.
func Run(ctx context.Context, cfg config.HTTPConfig, handler http.Handler) error {
	lis, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", cfg.Address, err)
	}
	return Serve(ctx, lis, handler)
}

func Serve(ctx context.Context, lis net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", lis.Addr().String()).Info("http server started")
		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logrus.Info("http server stopped")
		return nil
	}
}
