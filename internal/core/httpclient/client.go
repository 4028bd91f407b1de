package httpclient

import (
	"net/http"
	"strconv"
	"time"

	"shipment-monitor/internal/core/logger"
	"shipment-monitor/internal/core/metrics"

	"go.uber.org/zap"
)

// UserAgent identifies this service to upstream APIs.
const UserAgent = "shipment-monitor/1.0"

// LoggingRoundTripper logs and times every upstream call.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request, logs details and records its latency.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	start := time.Now()
	log := logger.Get().With(
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	)
	log.Debug("Upstream request started")

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		metrics.ObserveUpstream(req.Method, "error", duration.Seconds())
		log.Error("Upstream request failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	metrics.ObserveUpstream(req.Method, strconv.Itoa(resp.StatusCode), duration.Seconds())
	log.Debug("Upstream request completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}
