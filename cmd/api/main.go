package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-monitor/internal/core/cache"
	"shipment-monitor/internal/core/clock"
	"shipment-monitor/internal/core/config"
	"shipment-monitor/internal/core/httpclient"
	"shipment-monitor/internal/core/logger"
	"shipment-monitor/internal/core/server"
	ackadapter "shipment-monitor/internal/features/acknowledgements/adapters"
	ackhandler "shipment-monitor/internal/features/acknowledgements/handler"
	ackservice "shipment-monitor/internal/features/acknowledgements/service"
	alertadapter "shipment-monitor/internal/features/alerts/adapters"
	"shipment-monitor/internal/features/alerts/engine"
	alerthandler "shipment-monitor/internal/features/alerts/handler"
	"shipment-monitor/internal/features/alerts/ports"
	"shipment-monitor/internal/features/alerts/rules"
	alertservice "shipment-monitor/internal/features/alerts/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Shipment Monitor API
// @version 1.0
// @description Delay and risk alerts for in-flight shipments.
// @contact.name Logistics Platform Team
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("shipment_source", cfg.Shipments.Source),
	)

	riskRules := rules.Default()
	if cfg.Risk.RulesFile != "" {
		if riskRules, err = rules.Load(cfg.Risk.RulesFile); err != nil {
			l.Fatal("Failed to load risk rules", zap.String("path", cfg.Risk.RulesFile), zap.Error(err))
		}
	}
	l.Info("Risk rules loaded", zap.Int("version", riskRules.Version))

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to configure Redis", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		// Alerts are still served without acknowledgements; /health reports the outage.
		l.Warn("Redis unreachable at startup", zap.Error(err))
	}
	cancelPing()

	source, reload := newShipmentSource(cfg, l)

	// Initialize Acknowledgement Store
	ackRepo := ackadapter.NewRedisAcknowledgementRepository(redisCache, cfg.Redis.AckKeyPrefix)

	// Initialize Alert Service & Handler
	alertSvc := alertservice.NewAlertService(source, ackRepo, engine.New(riskRules), clock.System{}, cfg.Risk.AssessConcurrency)
	alertHdl := alerthandler.NewAlertHandler(alertSvc)

	// Initialize Acknowledgement Service & Handler
	ackSvc := ackservice.NewAcknowledgementService(ackRepo, alertSvc, clock.System{})
	ackHdl := ackhandler.NewAcknowledgementHandler(ackSvc)

	srv := server.New(cfg, redisCache)
	srv.Register(alertHdl, ackHdl)

	go handleSignals(srv, reload, l)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// newShipmentSource builds the configured source. reload is nil unless the
// source can re-read its backing data.
func newShipmentSource(cfg *config.AppConfig, l *zap.Logger) (ports.ShipmentSource, func() error) {
	switch cfg.Shipments.Source {
	case config.SourceHTTP:
		src := alertadapter.NewHTTPSource(cfg.Shipments.APIURL, httpclient.NewClient(cfg.Shipments.APITimeout()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Shipments.APITimeout())
		defer cancel()
		if err := src.HealthCheck(ctx); err != nil {
			l.Fatal("Shipment API health check failed", zap.String("url", cfg.Shipments.APIURL), zap.Error(err))
		}
		l.Info("Shipment API connection verified")
		return src, nil

	default:
		src, err := alertadapter.NewFileSource(cfg.Shipments.SeedFile)
		if err != nil {
			l.Fatal("Failed to load shipment seed file", zap.String("path", cfg.Shipments.SeedFile), zap.Error(err))
		}
		l.Info("Shipment seed loaded", zap.String("path", cfg.Shipments.SeedFile), zap.Int("shipments", src.Len()))
		return src, src.Reload
	}
}

// handleSignals reloads the seed file on SIGHUP and shuts the server down on
// SIGINT or SIGTERM.
func handleSignals(srv *server.Server, reload func() error, l *zap.Logger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range sigs {
		if sig == syscall.SIGHUP {
			if reload == nil {
				l.Info("Reload requested but the shipment source has nothing to reload")
				continue
			}
			if err := reload(); err != nil {
				l.Error("Shipment seed reload failed", zap.Error(err))
				continue
			}
			l.Info("Shipment seed reloaded")
			continue
		}

		l.Info("Shutdown signal received", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := srv.Shutdown(ctx); err != nil {
			l.Error("Graceful shutdown failed", zap.Error(err))
		}
		cancel()
		return
	}
}
