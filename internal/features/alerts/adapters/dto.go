package adapters

import (
	"strings"
	"time"

	"shipment-monitor/internal/core/logger"
	"shipment-monitor/internal/features/alerts/domain"

	"go.uber.org/zap"
)

// timestampLayouts are tried in order. Upstream feeds mix full RFC3339,
// zone-less local times and bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime tolerates the timestamp spellings seen upstream. Anything it
// cannot parse becomes the zero instant, which the engine treats as missing.
type flexTime time.Time

// UnmarshalJSON never fails on a bad value so one broken event cannot sink a
// whole shipment.
func (t *flexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	*t = flexTime(parseTimestamp(s))
	return nil
}

func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC()
		}
	}
	logger.Get().Warn("Unparseable timestamp", zap.String("value", s))
	return time.Time{}
}

type placeDTO struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type eventDTO struct {
	Timestamp   flexTime `json:"timestamp"`
	Stage       string   `json:"stage"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
}

// shipmentDTO is the wire shape shared by the upstream API and the seed file.
// Events is only populated in seed files.
type shipmentDTO struct {
	ID               string     `json:"id"`
	OrderDate        flexTime   `json:"order_date"`
	ExpectedDelivery flexTime   `json:"expected_delivery"`
	Status           string     `json:"status"`
	Carrier          string     `json:"carrier"`
	Mode             string     `json:"mode"`
	Origin           placeDTO   `json:"origin"`
	Destination      placeDTO   `json:"destination"`
	ServiceLevel     string     `json:"service_level"`
	Owner            string     `json:"owner"`
	Events           []eventDTO `json:"events,omitempty"`
}

func (d shipmentDTO) toDomain() domain.ShipmentRecord {
	return domain.ShipmentRecord{
		ID:               strings.TrimSpace(d.ID),
		OrderDate:        time.Time(d.OrderDate),
		ExpectedDelivery: time.Time(d.ExpectedDelivery),
		Lifecycle:        domain.ParseLifecycle(d.Status),
		Carrier:          d.Carrier,
		Mode:             domain.ParseTransportMode(d.Mode),
		Origin:           domain.Place{City: d.Origin.City, Country: d.Origin.Country},
		Destination:      domain.Place{City: d.Destination.City, Country: d.Destination.Country},
		ServiceLevel:     d.ServiceLevel,
		Owner:            d.Owner,
	}
}

func eventsToDomain(dtos []eventDTO) []domain.ShipmentEvent {
	events := make([]domain.ShipmentEvent, 0, len(dtos))
	for _, e := range dtos {
		events = append(events, domain.ShipmentEvent{
			Timestamp:   time.Time(e.Timestamp),
			Stage:       strings.TrimSpace(e.Stage),
			Description: e.Description,
			Location:    e.Location,
		})
	}
	return events
}
