package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"shipment-monitor/internal/core/clock"
	"shipment-monitor/internal/core/logger"
	"shipment-monitor/internal/core/metrics"
	"shipment-monitor/internal/features/alerts/domain"
	"shipment-monitor/internal/features/alerts/engine"
	"shipment-monitor/internal/features/alerts/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel assessments when none is configured.
const DefaultConcurrency = 8

// AlertServiceImpl implements ports.AlertService.
type AlertServiceImpl struct {
	source      ports.ShipmentSource
	acks        ports.AcknowledgementReader
	engine      *engine.Engine
	clock       clock.Clock
	concurrency int
}

// NewAlertService creates a new AlertServiceImpl.
func NewAlertService(source ports.ShipmentSource, acks ports.AcknowledgementReader, eng *engine.Engine, c clock.Clock, concurrency int) *AlertServiceImpl {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &AlertServiceImpl{
		source:      source,
		acks:        acks,
		engine:      eng,
		clock:       c,
		concurrency: concurrency,
	}
}

// ListAlerts assesses every shipment at one shared instant, then filters and
// sorts by risk score descending and ID ascending. Shipments that fail
// validation, or vanish between listing and fetching their events, are
// logged and left out. Any other source error fails the whole request.
func (s *AlertServiceImpl) ListAlerts(ctx context.Context, q domain.AlertQuery) ([]domain.AlertShipment, error) {
	records, err := s.source.ListShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list shipments: %w", err)
	}

	now := s.clock.Now()
	assessed := make([]*domain.AlertShipment, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, rec := range records {
		g.Go(func() error {
			alert, err := s.assess(gctx, rec, now)
			switch {
			case errors.Is(err, domain.ErrInvalidShipment):
				s.skip(rec.ID, "validation", err)
				return nil
			case errors.Is(err, domain.ErrShipmentNotFound):
				s.skip(rec.ID, "not_found", err)
				return nil
			case err != nil:
				return err
			}
			assessed[i] = &alert
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	alerts := make([]domain.AlertShipment, 0, len(assessed))
	for _, a := range assessed {
		if a != nil && q.Matches(*a) {
			alerts = append(alerts, *a)
		}
	}

	slices.SortFunc(alerts, func(a, b domain.AlertShipment) int {
		if c := cmp.Compare(b.RiskScore, a.RiskScore); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return alerts, nil
}

// GetAlert assesses a single shipment.
func (s *AlertServiceImpl) GetAlert(ctx context.Context, id string) (domain.AlertShipment, error) {
	rec, err := s.source.GetShipment(ctx, id)
	if err != nil {
		return domain.AlertShipment{}, fmt.Errorf("service: failed to get shipment %s: %w", id, err)
	}

	return s.assess(ctx, rec, s.clock.Now())
}

// ShipmentExists reports domain.ErrShipmentNotFound for unknown identifiers.
func (s *AlertServiceImpl) ShipmentExists(ctx context.Context, id string) error {
	if _, err := s.source.GetShipment(ctx, id); err != nil {
		return fmt.Errorf("service: failed to get shipment %s: %w", id, err)
	}
	return nil
}

func (s *AlertServiceImpl) assess(ctx context.Context, rec domain.ShipmentRecord, now time.Time) (domain.AlertShipment, error) {
	// Validate before the event fetch so bad records cost no upstream call.
	if err := rec.Validate(); err != nil {
		return domain.AlertShipment{}, err
	}

	events, err := s.source.GetEvents(ctx, rec.ID)
	if err != nil {
		return domain.AlertShipment{}, fmt.Errorf("service: failed to get events for %s: %w", rec.ID, err)
	}

	alert, err := s.engine.Assess(rec, events, now)
	if err != nil {
		return domain.AlertShipment{}, err
	}
	metrics.RecordAssessment(string(alert.Severity), reasonLabels(alert.RiskReasons))

	return s.attachAcknowledgement(ctx, alert), nil
}

// attachAcknowledgement degrades to an unacknowledged alert when the store is
// unreachable; risk data is still worth serving.
func (s *AlertServiceImpl) attachAcknowledgement(ctx context.Context, alert domain.AlertShipment) domain.AlertShipment {
	if s.acks == nil {
		return alert
	}

	ack, err := s.acks.Get(ctx, alert.ID)
	if err != nil {
		logger.Get().Warn("Acknowledgement lookup failed",
			zap.String("shipment_id", alert.ID),
			zap.Error(err),
		)
		return alert
	}
	if ack == nil {
		return alert
	}

	return alert.WithAcknowledgement(ack.User, ack.At)
}

func (s *AlertServiceImpl) skip(id, cause string, err error) {
	metrics.RecordSkip(cause)
	logger.Get().Warn("Shipment skipped",
		zap.String("shipment_id", id),
		zap.String("cause", cause),
		zap.Error(err),
	)
}

func reasonLabels(reasons []domain.RiskReason) []string {
	labels := make([]string, len(reasons))
	for i, r := range reasons {
		labels[i] = string(r)
	}
	return labels
}
