// Command exampro-ui serves the ExamPro Scheduler component preview: the
// role-based navbar and footer, the admin sidebar, the notification
// offcanvas, and the network status indicator, wired with fixture data.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/internal/config"
	"github.com/Zookegger/ExamPro-Scheduler-sub003/internal/logging"
	"github.com/Zookegger/ExamPro-Scheduler-sub003/internal/preview"
)

func main() {
	configPath := flag.String("config", "exampro-ui.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New("development", "info").Fatal("failed to load config", zap.Error(err))
	}

	logger := logging.New(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	server := preview.NewServer(logger, preview.ServerOptions{
		FullName:    cfg.FullName,
		Development: cfg.Development(),
	})
	server.StartHub()

	httpServer := &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("preview server listening",
			zap.String("address", cfg.ListenAddress),
			zap.String("environment", cfg.Environment),
		)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}
