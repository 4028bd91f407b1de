package server

import (
	"context"
	"fmt"
	"time"

	"shipment-monitor/internal/core/config"
	"shipment-monitor/internal/core/logger"
	"shipment-monitor/internal/core/metrics"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "shipment-monitor/docs/swagger"
)

// healthTimeout bounds the dependency ping behind /health.
const healthTimeout = 2 * time.Second

// Pinger is a dependency probed by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouteRegistrar mounts a feature's routes.
type RouteRegistrar interface {
	Register(router fiber.Router)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// cache is pinged by /health; nil skips the probe.
	cache Pinger
}

// New creates a new Server instance with configured middleware and the
// operational routes (/health, /metrics, /swagger).
func New(cfg *config.AppConfig, cache Pinger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               logger.ServiceName,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Use(metrics.Middleware())

	s := &Server{
		App:   app,
		cfg:   cfg,
		cache: cache,
	}

	app.Get("/health", s.health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	return s
}

// Register mounts feature routes on the root router.
func (s *Server) Register(registrars ...RouteRegistrar) {
	for _, r := range registrars {
		r.Register(s.App)
	}
}

// health godoc
// @Summary Health check
// @Description Reports whether the acknowledgement store is reachable.
// @Tags ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (s *Server) health(c *fiber.Ctx) error {
	if s.cache == nil {
		return c.JSON(HealthResponse{Status: "ok"})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := s.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
			Status: "degraded",
			Error:  err.Error(),
		})
	}

	return c.JSON(HealthResponse{Status: "ok"})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Get().Info("Shutting down server")
	return s.App.ShutdownWithContext(ctx)
}
