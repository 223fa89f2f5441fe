package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"flixapi/internal/api"
	"flixapi/internal/clock/system"
	"flixapi/internal/config"
	"flixapi/internal/enrich"
	collyfetcher "flixapi/internal/fetcher/colly"
	"flixapi/internal/logging"
	"flixapi/internal/metrics"
	"flixapi/internal/refresher"
	"flixapi/internal/scheduler"
	"flixapi/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()

	catalogStore := store.New()
	clock := system.New()
	fetcher := collyfetcher.New(collyfetcher.Config{Timeout: cfg.FetchTimeout()})
	enricher := enrich.New(fetcher, catalogStore, logger.Named("enrich"))
	refresh := refresher.New(
		fetcher,
		catalogStore,
		enricher,
		clock,
		cfg.Locales,
		logger.Named("refresher"),
	)
	sched := scheduler.New(refresh, cfg.RefreshInterval(), logger.Named("scheduler"))

	accessLogger := logging.NewAccess(cfg.Logging.AccessLog)
	apiServer := api.NewServer(catalogStore, sched, cfg, accessLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("scheduler started", zap.Duration("interval", cfg.RefreshInterval()))
		sched.Run(ctx)
	}()

	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
