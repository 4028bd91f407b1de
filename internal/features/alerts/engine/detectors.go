package engine

import (
	"time"

	"shipment-monitor/internal/features/alerts/domain"
	"shipment-monitor/internal/features/alerts/rules"
)

// input is what every detector sees. Detectors must not modify it.
type input struct {
	shipment domain.ShipmentRecord
	history  history
	now      time.Time
	rules    *rules.Rules
}

func (in *input) daysSinceOrder() float64 {
	return daysBetween(in.shipment.OrderDate, in.now)
}

func (in *input) lostConditionMet() bool {
	return in.history.hasEvents() &&
		in.history.daysSinceLast > in.rules.Thresholds.LostDays &&
		!in.shipment.Lifecycle.Terminal()
}

func (in *input) anyStage(cat rules.Category) bool {
	for _, e := range in.history.events {
		if in.rules.Match(cat, e.Stage) {
			return true
		}
	}
	return false
}

// detector is a single risk rule.
type detector struct {
	reason  domain.RiskReason
	trigger func(in *input) bool
}

// detectors run in this order, which is also the tie-break for reasons of equal weight.
var detectors = []detector{
	{reason: domain.ReasonLost, trigger: detectLost},
	{reason: domain.ReasonStaleStatus, trigger: detectStaleStatus},
	{reason: domain.ReasonNoPickup, trigger: detectNoPickup},
	{reason: domain.ReasonMissedDeparture, trigger: detectMissedDeparture},
	{reason: domain.ReasonCustomsHold, trigger: detectCustomsHold},
	{reason: domain.ReasonPortCongestion, trigger: detectPortCongestion},
	{reason: domain.ReasonHubCongestion, trigger: detectHubCongestion},
	{reason: domain.ReasonLongDwell, trigger: detectLongDwell},
	{reason: domain.ReasonDocsMissing, trigger: detectDocsMissing},
	{reason: domain.ReasonCapacityShortage, trigger: detectCapacityShortage},
	{reason: domain.ReasonWeatherAlert, trigger: detectWeatherAlert},
}

func detectLost(in *input) bool {
	return in.lostConditionMet()
}

func detectStaleStatus(in *input) bool {
	if !in.history.hasEvents() || in.shipment.Lifecycle.Terminal() || in.lostConditionMet() {
		return false
	}
	return in.history.daysSinceLast > in.rules.StaleDays(in.shipment.Mode)
}

func detectNoPickup(in *input) bool {
	if in.anyStage(rules.CategoryPickup) {
		return false
	}
	return in.daysSinceOrder() > in.rules.Thresholds.NoPickupDays
}

// detectMissedDeparture only applies once the shipment has milestones;
// a shipment with no events at all is covered by NoPickup.
func detectMissedDeparture(in *input) bool {
	if !in.history.hasEvents() || in.anyStage(rules.CategoryDeparture) {
		return false
	}
	window := in.rules.DepartureWindowDays(in.shipment.Mode, in.shipment.ServiceLevel)
	return in.daysSinceOrder() > window
}

func detectCustomsHold(in *input) bool {
	if !in.history.hasEvents() {
		return false
	}
	if in.rules.Match(rules.CategoryCustomsHold, in.history.last.Stage) {
		return true
	}
	for stage, d := range in.history.dwell {
		if in.rules.Match(rules.CategoryCustoms, stage) && d.Hours()/24 > in.rules.Thresholds.CustomsDwellDays {
			return true
		}
	}
	return false
}

func detectPortCongestion(in *input) bool {
	if in.shipment.Mode != domain.ModeSea || !in.history.hasEvents() {
		return false
	}
	return in.rules.Match(rules.CategoryPort, in.history.last.Stage) &&
		in.history.lastDwellDays() > in.rules.Thresholds.PortDwellDays
}

func detectHubCongestion(in *input) bool {
	if in.shipment.Mode == domain.ModeSea || !in.history.hasEvents() {
		return false
	}
	return in.rules.Match(rules.CategoryHub, in.history.last.Stage) &&
		in.history.lastDwellDays() > in.rules.Thresholds.HubDwellDays
}

// detectLongDwell skips terminal stages and stages whose dwell is already
// scored by the customs, port or hub detector for this mode.
func detectLongDwell(in *input) bool {
	for stage, d := range in.history.dwell {
		if d.Hours()/24 <= in.rules.Thresholds.LongDwellDays {
			continue
		}
		if in.rules.Match(rules.CategoryTerminal, stage) || ownedByStageDetector(in, stage) {
			continue
		}
		return true
	}
	return false
}

func ownedByStageDetector(in *input, stage string) bool {
	if in.rules.Match(rules.CategoryCustoms, stage) {
		return true
	}
	switch in.shipment.Mode {
	case domain.ModeSea:
		return in.rules.Match(rules.CategoryPort, stage)
	case domain.ModeAir, domain.ModeRoad:
		return in.rules.Match(rules.CategoryHub, stage)
	}
	return false
}

func detectDocsMissing(in *input) bool {
	if !in.history.hasEvents() {
		return false
	}
	return in.rules.Match(rules.CategoryDocs, in.history.last.Stage, in.history.last.Description)
}

func detectCapacityShortage(in *input) bool {
	if !in.history.hasEvents() {
		return false
	}
	return in.rules.Match(rules.CategoryCapacity, in.history.last.Stage, in.history.last.Description)
}

func detectWeatherAlert(in *input) bool {
	if !in.history.hasEvents() {
		return false
	}
	return in.rules.Match(rules.CategoryWeather, in.history.last.Description, in.history.last.Location)
}
