package service

import (
	"context"
	"fmt"

	"shipment-monitor/internal/core/clock"
	"shipment-monitor/internal/core/metrics"
	"shipment-monitor/internal/features/acknowledgements/domain"
	"shipment-monitor/internal/features/acknowledgements/ports"
)

// AcknowledgementServiceImpl implements ports.AcknowledgementService.
type AcknowledgementServiceImpl struct {
	repo      ports.AcknowledgementRepository
	shipments ports.ShipmentLookup
	clock     clock.Clock
}

// NewAcknowledgementService creates a new AcknowledgementServiceImpl.
func NewAcknowledgementService(repo ports.AcknowledgementRepository, shipments ports.ShipmentLookup, c clock.Clock) *AcknowledgementServiceImpl {
	return &AcknowledgementServiceImpl{
		repo:      repo,
		shipments: shipments,
		clock:     c,
	}
}

// Acknowledge stamps the shipment as seen by user at the current instant.
// Errors from the shipment lookup are returned wrapped, so callers can match
// the source's not-found sentinel.
func (s *AcknowledgementServiceImpl) Acknowledge(ctx context.Context, shipmentID, user string) (*domain.Acknowledgement, error) {
	ack, err := domain.NewAcknowledgement(shipmentID, user, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.shipments.ShipmentExists(ctx, ack.ShipmentID); err != nil {
		return nil, fmt.Errorf("service: cannot acknowledge %s: %w", ack.ShipmentID, err)
	}

	err = s.repo.Save(ctx, ack)
	metrics.RecordAcknowledgement("ack", err)
	if err != nil {
		return nil, fmt.Errorf("service: failed to save acknowledgement: %w", err)
	}

	return ack, nil
}

// Get retrieves the acknowledgement for a shipment, nil when there is none.
func (s *AcknowledgementServiceImpl) Get(ctx context.Context, shipmentID string) (*domain.Acknowledgement, error) {
	ack, err := s.repo.Get(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get acknowledgement: %w", err)
	}

	return ack, nil
}

// Clear drops every acknowledgement and reports how many were removed.
func (s *AcknowledgementServiceImpl) Clear(ctx context.Context) (int, error) {
	n, err := s.repo.Clear(ctx)
	metrics.RecordAcknowledgement("clear", err)
	if err != nil {
		return n, fmt.Errorf("service: failed to clear acknowledgements: %w", err)
	}

	return n, nil
}
