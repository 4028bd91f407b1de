package domain

import (
	"strings"
	"time"
)

// TransportMode is the way a shipment moves between origin and destination.
type TransportMode string

const (
	// ModeAir indicates an air freight shipment.
	ModeAir TransportMode = "Air"
	// ModeSea indicates an ocean freight shipment.
	ModeSea TransportMode = "Sea"
	// ModeRoad indicates a trucking shipment.
	ModeRoad TransportMode = "Road"
)

// Valid reports whether m is one of the known transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeAir, ModeSea, ModeRoad:
		return true
	}
	return false
}

// ParseTransportMode maps loose upstream spellings to a TransportMode.
// Unknown values return an empty mode, which fails validation.
func ParseTransportMode(raw string) TransportMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "air":
		return ModeAir
	case "sea", "ocean":
		return ModeSea
	case "road", "truck":
		return ModeRoad
	}
	return ""
}

// Lifecycle is the canonical state of a shipment as recorded by the operator.
type Lifecycle string

const (
	// LifecycleOrdered indicates the order exists but nothing has moved yet.
	LifecycleOrdered Lifecycle = "Ordered"
	// LifecycleInTransit indicates the carrier has the shipment.
	LifecycleInTransit Lifecycle = "InTransit"
	// LifecycleDelivered indicates the shipment reached the consignee.
	LifecycleDelivered Lifecycle = "Delivered"
	// LifecycleCanceled indicates the order was canceled.
	LifecycleCanceled Lifecycle = "Canceled"
)

// Valid reports whether l is one of the known lifecycle codes.
func (l Lifecycle) Valid() bool {
	switch l {
	case LifecycleOrdered, LifecycleInTransit, LifecycleDelivered, LifecycleCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further risk assessment applies.
func (l Lifecycle) Terminal() bool {
	return l == LifecycleDelivered || l == LifecycleCanceled
}

// ParseLifecycle maps loose upstream spellings to a Lifecycle.
func ParseLifecycle(raw string) Lifecycle {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)

	switch s {
	case "ordered":
		return LifecycleOrdered
	case "intransit":
		return LifecycleInTransit
	case "delivered":
		return LifecycleDelivered
	case "canceled", "cancelled":
		return LifecycleCanceled
	}
	return ""
}

// Place is a city/country pair.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// String renders the place as "City, Country".
func (p Place) String() string {
	switch {
	case p.City == "":
		return p.Country
	case p.Country == "":
		return p.City
	}
	return p.City + ", " + p.Country
}

// ShipmentRecord is the caller-owned input describing one shipment.
type ShipmentRecord struct {
	ID               string        `json:"id"`
	OrderDate        time.Time     `json:"order_date"`
	ExpectedDelivery time.Time     `json:"expected_delivery"`
	Lifecycle        Lifecycle     `json:"lifecycle"`
	Carrier          string        `json:"carrier"`
	Mode             TransportMode `json:"mode"`
	Origin           Place         `json:"origin"`
	Destination      Place         `json:"destination"`
	ServiceLevel     string        `json:"service_level"`
	Owner            string        `json:"owner"`
}

// Validate checks the fields the risk engine depends on.
func (s ShipmentRecord) Validate() error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return &ValidationError{Field: "id", Reason: "is required"}
	case s.OrderDate.IsZero():
		return &ValidationError{ShipmentID: s.ID, Field: "order_date", Reason: "is required"}
	case s.ExpectedDelivery.IsZero():
		return &ValidationError{ShipmentID: s.ID, Field: "expected_delivery", Reason: "is required"}
	case s.ExpectedDelivery.Before(s.OrderDate):
		return &ValidationError{ShipmentID: s.ID, Field: "expected_delivery", Reason: "is before order_date"}
	case !s.Mode.Valid():
		return &ValidationError{ShipmentID: s.ID, Field: "mode", Reason: "must be Air, Sea or Road"}
	case !s.Lifecycle.Valid():
		return &ValidationError{ShipmentID: s.ID, Field: "lifecycle", Reason: "is not a known lifecycle code"}
	}
	return nil
}

// ShipmentEvent is a single milestone in a shipment's history.
type ShipmentEvent struct {
	// Timestamp is when the milestone happened. A zero value marks an unparseable timestamp.
	Timestamp   time.Time `json:"timestamp"`
	Stage       string    `json:"stage"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
}
