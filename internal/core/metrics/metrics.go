// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shipmon"

var (
	assessmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_total",
		Help:      "Shipment assessments by resulting severity",
	}, []string{"severity"})

	riskReasonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "risk_reasons_total",
		Help:      "Risk reasons raised across all assessments",
	}, []string{"reason"})

	assessmentSkipsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessment_skips_total",
		Help:      "Shipments left out of list responses",
	}, []string{"cause"}) // cause=validation

	acknowledgementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "acknowledgements_total",
		Help:      "Acknowledgement store operations by outcome",
	}, []string{"op", "outcome"}) // op=ack|clear outcome=success|failure

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of calls to the shipment upstream",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// RecordAssessment counts one assessment and every reason it raised.
func RecordAssessment(severity string, reasons []string) {
	assessmentsTotal.WithLabelValues(label(severity)).Inc()
	for _, r := range reasons {
		riskReasonsTotal.WithLabelValues(label(r)).Inc()
	}
}

// RecordSkip counts a shipment dropped from a list response.
func RecordSkip(cause string) {
	assessmentSkipsTotal.WithLabelValues(label(cause)).Inc()
}

// RecordAcknowledgement counts an acknowledgement store operation.
func RecordAcknowledgement(op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	acknowledgementsTotal.WithLabelValues(label(op), outcome).Inc()
}

// ObserveUpstream records one upstream round trip. status is "error" when no
// response arrived.
func ObserveUpstream(method, status string, seconds float64) {
	upstreamRequestDuration.WithLabelValues(strings.ToUpper(method), label(status)).Observe(seconds)
}

// label keeps empty values from producing blank label series.
func label(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "unknown"
	}
	return v
}
