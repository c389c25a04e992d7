package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profit_leak/leakdetector/api"
	"profit_leak/leakdetector/internal/alerts"
	"profit_leak/leakdetector/internal/analysis"
	"profit_leak/leakdetector/internal/auth"
	"profit_leak/leakdetector/internal/config"
	"profit_leak/leakdetector/internal/handler"
	"profit_leak/leakdetector/internal/handlers"
	"profit_leak/leakdetector/internal/logging"
	"profit_leak/leakdetector/internal/monitoring"
	"profit_leak/leakdetector/internal/mq"
	"profit_leak/leakdetector/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

func main() {
	// ---------------------------------------------------------
	// 1. CONFIGURATION
	// ---------------------------------------------------------
	bootLogger := logging.NewLoggerWithService("leakdetector", os.Getenv("LOG_LEVEL"))
	config.LoadEnv(bootLogger, ".env", "leakdetector/.env")

	cfg, err := config.FromEnv()
	if err != nil {
		bootLogger.Fatalf("❌ Invalid configuration: %v", err)
	}
	logger := logging.NewLoggerWithService("leakdetector", cfg.LogLevel)

	thresholds, err := config.LoadThresholds(cfg.ThresholdsFile)
	if err != nil {
		logger.Fatalf("❌ Failed to load thresholds: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"max_discount_pct":     thresholds.MaxDiscountPct,
		"max_return_pct":       thresholds.MaxReturnPct,
		"min_gross_margin_pct": thresholds.MinGrossMarginPct,
	}).Info("✅ Thresholds loaded")

	// ---------------------------------------------------------
	// 2. AUTH + METRICS
	// ---------------------------------------------------------
	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		logger.Fatalf("❌ Failed to init token manager: %v", err)
	}
	clients := auth.NewClientRegistry(cfg.APIClients)
	if clients.Len() == 0 {
		logger.Warn("⚠️  API_CLIENTS not set, login is disabled")
	}
	metrics := monitoring.NewMetricsCollector("leakdetector")

	// ---------------------------------------------------------
	// 3. ALERTS (Redis dedupe + ZMQ publisher, both optional)
	// ---------------------------------------------------------
	opts := []analysis.Option{analysis.WithRecorder(metrics)}

	var dedupe alerts.Deduper
	if cfg.RedisAddr != "" {
		alertStore := store.NewAlertStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer alertStore.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := alertStore.Ping(pingCtx); err != nil {
			logger.WithError(err).Warn("⚠️  Redis unreachable, alerts will not be deduplicated")
		} else {
			logger.WithField("addr", cfg.RedisAddr).Info("✅ Connected to Redis")
		}
		cancel()
		dedupe = alertStore
	}

	if cfg.AlertBindAddr != "" {
		publisher, err := mq.NewPublisher(cfg.AlertBindAddr)
		if err != nil {
			logger.Fatalf("❌ Failed to bind alert publisher: %v", err)
		}
		defer publisher.Close()
		logger.WithField("addr", cfg.AlertBindAddr).Info("📡 Leak alerts publishing")

		notifier := alerts.NewNotifier(publisher, dedupe, cfg.AlertDedupeTTL, logger)
		opts = append(opts, analysis.WithNotifier(notifier))
	}

	engine := analysis.NewEngine(thresholds, cfg.TopN, logger, opts...)

	// ---------------------------------------------------------
	// 4. gRPC SERVER
	// ---------------------------------------------------------
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		logger.Fatalf("❌ Failed to listen on %s: %v", cfg.GRPCPort, err)
	}
	grpcServer := grpc.NewServer()
	api.RegisterLeakDetectorServiceServer(grpcServer, handler.NewLeakDetectorHandler(engine, logger))

	// ---------------------------------------------------------
	// 5. HTTP SERVER
	// ---------------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	router := handlers.NewRouter(engine, clients, tokens, metrics, logger)
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// ---------------------------------------------------------
	// 6. START + GRACEFUL SHUTDOWN
	// ---------------------------------------------------------
	errCh := make(chan error, 2)
	go func() {
		logger.WithField("port", cfg.GRPCPort).Info("🚀 Leak Detector gRPC running")
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		logger.WithField("port", cfg.HTTPPort).Info("🚀 Leak Detector HTTP running")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.WithField("signal", sig.String()).Info("shutting down")
	case err := <-errCh:
		logger.WithError(err).Error("❌ Server crashed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("http shutdown")
	}
	grpcServer.GracefulStop()
	logger.Info("👋 Leak Detector stopped")
}
