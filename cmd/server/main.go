package main // Entry point package

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simbaid/backend/internal/app"
	"github.com/simbaid/backend/internal/config"
	"github.com/simbaid/backend/internal/logging"
	"github.com/simbaid/backend/internal/service"
	"github.com/simbaid/backend/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	settings := config.Init(config.DefaultEnvFile) // the only settings load of the process
	logger := logging.New(settings.Env, settings.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []app.Option{app.WithLogger(logger)}
	if rdb := config.NewRedisClient(ctx, settings.Redis); rdb != nil {
		defer func() { _ = rdb.Close() }()
		opts = append(opts, app.WithRedis(rdb))
		logger.Info("rate limiter backed by redis", "addr", settings.Redis.Addr)
	} else if settings.Redis.Enabled() {
		logger.Warn("redis unreachable, rate limiting disabled", "addr", settings.Redis.Addr)
	}

	e := app.New(settings, service.NewFactory(settings), opts...)

	addr := ":" + settings.Port
	logger.Info("listening",
		"service", version.Name,
		"version", version.Version,
		"addr", addr,
		"env", settings.Env,
		"ai_client", settings.HasCredential(),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
