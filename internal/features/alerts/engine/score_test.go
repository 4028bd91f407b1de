package engine

import (
	"testing"
	"time"

	"shipment-monitor/internal/features/alerts/domain"
	"shipment-monitor/internal/features/alerts/rules"

	"github.com/stretchr/testify/assert"
)

func TestDetectors_UniqueReasonsCoverEnum(t *testing.T) {
	seen := make(map[domain.RiskReason]bool)
	for _, d := range detectors {
		assert.False(t, seen[d.reason], "duplicate detector for %s", d.reason)
		seen[d.reason] = true
	}
	assert.Len(t, seen, len(domain.RiskReasons))
}

func TestAggregate_MonotoneAndBounded(t *testing.T) {
	r := rules.Default()

	var all []finding
	for _, d := range detectors {
		if d.reason == domain.ReasonLost {
			continue
		}
		all = append(all, finding{reason: d.reason, weight: r.Weight(d.reason)})
	}

	prev := 0
	for i := 0; i <= len(all); i++ {
		score, _, reasons := aggregate(all[:i], r)
		assert.GreaterOrEqual(t, score, prev)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
		assert.Len(t, reasons, i)
		prev = score
	}
	assert.Equal(t, 100, prev)
}

func TestAggregate_Empty(t *testing.T) {
	score, severity, reasons := aggregate(nil, rules.Default())

	assert.Equal(t, 0, score)
	assert.Equal(t, domain.SeverityLow, severity)
	assert.NotNil(t, reasons)
	assert.Empty(t, reasons)
}

func TestAggregate_LostOverride(t *testing.T) {
	found := []finding{
		{reason: domain.ReasonLost, weight: 0},
		{reason: domain.ReasonWeatherAlert, weight: 5},
	}

	score, severity, reasons := aggregate(found, rules.Default())

	assert.Equal(t, 100, score)
	assert.Equal(t, domain.SeverityHigh, severity)
	assert.Equal(t, []domain.RiskReason{domain.ReasonWeatherAlert, domain.ReasonLost}, reasons)
}

func TestAggregate_StableTieBreak(t *testing.T) {
	found := []finding{
		{reason: domain.ReasonHubCongestion, weight: 10},
		{reason: domain.ReasonLongDwell, weight: 10},
		{reason: domain.ReasonCapacityShortage, weight: 5},
		{reason: domain.ReasonWeatherAlert, weight: 5},
		{reason: domain.ReasonDocsMissing, weight: 10},
	}

	_, _, reasons := aggregate(found, rules.Default())

	assert.Equal(t, []domain.RiskReason{
		domain.ReasonHubCongestion,
		domain.ReasonLongDwell,
		domain.ReasonDocsMissing,
		domain.ReasonCapacityShortage,
		domain.ReasonWeatherAlert,
	}, reasons)
}

func TestSeverityFor(t *testing.T) {
	cutoffs := rules.SeverityCutoffs{High: 70, Medium: 40}

	assert.Equal(t, domain.SeverityLow, severityFor(0, cutoffs))
	assert.Equal(t, domain.SeverityLow, severityFor(39, cutoffs))
	assert.Equal(t, domain.SeverityMedium, severityFor(40, cutoffs))
	assert.Equal(t, domain.SeverityMedium, severityFor(69, cutoffs))
	assert.Equal(t, domain.SeverityHigh, severityFor(70, cutoffs))
	assert.Equal(t, domain.SeverityHigh, severityFor(100, cutoffs))
}

func TestNormalizeHistory(t *testing.T) {
	events := []domain.ShipmentEvent{
		ev(2, "Arrived at Hub"),
		ev(9, "Arrived at Hub"),
		{Stage: "garbled"},
		ev(10, "Picked up"),
		ev(6, " arrived at hub "),
		ev(1, "Departed hub"),
	}

	h := normalizeHistory(events, now)

	assert.Len(t, h.events, 5)
	assert.Equal(t, "Picked up", h.events[0].Stage)
	assert.Equal(t, "Departed hub", h.last.Stage)
	assert.InDelta(t, 1.0, h.daysSinceLast, 1e-9)
	assert.Equal(t, 4*day, h.dwell["arrived at hub"])
	assert.NotContains(t, h.dwell, "picked up")
	assert.Zero(t, h.lastDwellDays())
}

func TestNormalizeHistory_Empty(t *testing.T) {
	h := normalizeHistory(nil, now)

	assert.False(t, h.hasEvents())
	assert.Empty(t, h.events)
	assert.Zero(t, h.lastDwellDays())
}

func TestDisplayDays(t *testing.T) {
	assert.Equal(t, 0.0, displayDays(0))
	assert.Equal(t, 0.5, displayDays(12*time.Hour))
	assert.Equal(t, 2.3, displayDays(2*day+8*time.Hour+24*time.Minute))
	assert.Equal(t, -0.1, displayDays(-time.Nanosecond))
	assert.Equal(t, -2.4, displayDays(-(2*day + 8*time.Hour + 24*time.Minute)))
}

func TestResolveStatus(t *testing.T) {
	base := newShipment(domain.ModeAir, domain.LifecycleInTransit, 2, 2)
	future := newShipment(domain.ModeAir, domain.LifecycleOrdered, -1, 5)
	delivered := base
	delivered.Lifecycle = domain.LifecycleDelivered
	canceled := future
	canceled.Lifecycle = domain.LifecycleCanceled

	assert.Equal(t, domain.StatusInProgress, ResolveStatus(base, false, now))
	assert.Equal(t, domain.StatusFuture, ResolveStatus(future, false, now))
	assert.Equal(t, domain.StatusInProgress, ResolveStatus(future, true, now))
	assert.Equal(t, domain.StatusCompleted, ResolveStatus(delivered, false, now))
	assert.Equal(t, domain.StatusCanceled, ResolveStatus(canceled, false, now))
}
