// Package engine implements delay and risk assessment for a single shipment.
//
// Assess is a pure function of its inputs: it keeps no state between calls and
// never retains the slices it is given, so one Engine can serve any number of
// goroutines.
package engine

import (
	"time"

	"shipment-monitor/internal/features/alerts/domain"
	"shipment-monitor/internal/features/alerts/rules"
)

// Engine assesses shipments against an immutable rules table.
type Engine struct {
	rules *rules.Rules
}

// New creates an Engine. A nil table selects the embedded defaults.
func New(r *rules.Rules) *Engine {
	if r == nil {
		r = rules.Default()
	}
	return &Engine{rules: r}
}

// Assess scores one shipment against its milestone history at the instant now.
// It returns a *domain.ValidationError before running any detector when the
// shipment lacks a required field.
func (e *Engine) Assess(s domain.ShipmentRecord, events []domain.ShipmentEvent, now time.Time) (domain.AlertShipment, error) {
	if err := s.Validate(); err != nil {
		return domain.AlertShipment{}, err
	}

	h := normalizeHistory(events, now)
	status := ResolveStatus(s, h.hasEvents(), now)

	score, severity, reasons := 0, domain.SeverityLow, []domain.RiskReason{}
	if !skipsDetection(status) {
		in := &input{shipment: s, history: h, now: now, rules: e.rules}
		score, severity, reasons = aggregate(evaluate(in), e.rules)
	}

	orderDate := s.OrderDate
	alert := domain.AlertShipment{
		ID:           s.ID,
		Origin:       s.Origin.String(),
		Destination:  s.Destination.String(),
		Mode:         s.Mode,
		Carrier:      s.Carrier,
		ServiceLevel: s.ServiceLevel,
		CurrentStage: currentStage(status, h),
		PlannedETA:   s.ExpectedDelivery,
		DaysToETA:    displayDays(s.ExpectedDelivery.Sub(now)),
		OrderDate:    &orderDate,
		RiskScore:    score,
		Severity:     severity,
		RiskReasons:  reasons,
		Owner:        s.Owner,
		Steps:        milestones(h.events),
	}

	if status != domain.StatusFuture {
		alert.Status = status
	}

	if h.last != nil {
		last := h.last.Timestamp
		age := displayDays(now.Sub(last))
		alert.LastUpdate = &last
		alert.LastUpdateDays = &age
	}

	return alert, nil
}

func milestones(events []domain.ShipmentEvent) []domain.Milestone {
	if len(events) == 0 {
		return nil
	}
	steps := make([]domain.Milestone, len(events))
	for i, e := range events {
		steps[i] = domain.Milestone{
			Stage:       e.Stage,
			Timestamp:   e.Timestamp,
			Description: e.Description,
			Location:    e.Location,
		}
	}
	return steps
}

// displayDays floors a duration to tenths of a day. For non-negative values
// this is truncation; negative values stay negative down to -0.1.
func displayDays(d time.Duration) float64 {
	const tenth = day / 10
	q := d / tenth
	if d%tenth != 0 && d < 0 {
		q--
	}
	return float64(q) / 10
}
