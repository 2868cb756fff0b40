package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"stock-pulse/config"
	"stock-pulse/logging"
	"stock-pulse/metrics"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *config.Config
	Log    *logging.Logger
	Server *http.Server
}

func main() {
	metrics.Init()

	a, cleanup, err := InitializeApp()
	if err != nil {
		logging.Fatal("failed to initialize", "error", err)
	}
	defer cleanup()

	go func() {
		a.Log.Info("server listening", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatal("server", "error", err)
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		a.Log.Error("shutdown", "error", err)
	}
	a.Log.Info("shutdown complete")
}
