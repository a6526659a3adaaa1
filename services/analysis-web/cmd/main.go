package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/nimeshabuddhika/fraud-analysis-web/services/analysis-web/app"
	"go.uber.org/zap"
)

func main() {
	logger := pkg.InitLogger("analysis-web")
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, cfg, cleanup, err := app.NewApp(ctx, logger)
	if err != nil {
		logger.Fatal("failed_to_start", zap.Error(err))
	}
	defer cleanup()

	go func() {
		logger.Info("analysis web started", zap.String("addr", srv.Addr), zap.String("predictor_url", cfg.PredictorURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Handle shutdown signals (SIGINT, SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
