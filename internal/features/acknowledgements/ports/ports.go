package ports

import (
	"context"

	"shipment-monitor/internal/features/acknowledgements/domain"
)

// AcknowledgementService defines the primary port for acknowledgement operations.
type AcknowledgementService interface {
	Acknowledge(ctx context.Context, shipmentID, user string) (*domain.Acknowledgement, error)
	Get(ctx context.Context, shipmentID string) (*domain.Acknowledgement, error)
	Clear(ctx context.Context) (int, error)
}

// AcknowledgementRepository defines the secondary port for acknowledgement storage.
// Get returns nil, nil when the shipment was never acknowledged.
type AcknowledgementRepository interface {
	Save(ctx context.Context, ack *domain.Acknowledgement) error
	Get(ctx context.Context, shipmentID string) (*domain.Acknowledgement, error)
	Clear(ctx context.Context) (int, error)
}

// ShipmentLookup confirms a shipment exists before it can be acknowledged.
type ShipmentLookup interface {
	ShipmentExists(ctx context.Context, shipmentID string) error
}
