package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"guide-backend/internal/bootstrap"
	"guide-backend/internal/shared/config"
	"guide-backend/internal/shared/server"
	"guide-backend/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		telemetry.L().Fatal("config error", zap.Error(err))
	}
	telemetry.SetLogger(telemetry.New(cfg.Log.Level, cfg.Log.Format))
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.L().Fatal("bootstrap error", zap.Error(err))
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		telemetry.Info("server.start", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			telemetry.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Error("server.shutdown", map[string]any{"error": err})
	}
	telemetry.Info("server.stopped", nil)
}
