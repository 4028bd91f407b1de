package ports

import (
	"context"

	ackdomain "shipment-monitor/internal/features/acknowledgements/domain"
	"shipment-monitor/internal/features/alerts/domain"
)

// ShipmentSource defines the secondary port for shipment records and their events.
// Unknown identifiers yield domain.ErrShipmentNotFound.
type ShipmentSource interface {
	ListShipments(ctx context.Context) ([]domain.ShipmentRecord, error)
	GetShipment(ctx context.Context, id string) (domain.ShipmentRecord, error)
	GetEvents(ctx context.Context, id string) ([]domain.ShipmentEvent, error)
}

// AcknowledgementReader looks up who acknowledged a shipment. A nil result
// means nobody has.
type AcknowledgementReader interface {
	Get(ctx context.Context, shipmentID string) (*ackdomain.Acknowledgement, error)
}

// AlertService defines the primary port for alert queries.
type AlertService interface {
	ListAlerts(ctx context.Context, q domain.AlertQuery) ([]domain.AlertShipment, error)
	GetAlert(ctx context.Context, id string) (domain.AlertShipment, error)
}
