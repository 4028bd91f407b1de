package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUserRequired       = errors.New("acknowledging user is required")
	ErrShipmentIDRequired = errors.New("shipment id is required")
)

// Acknowledgement records that a user has seen a shipment's alert.
type Acknowledgement struct {
	ShipmentID string    `json:"shipment_id"`
	User       string    `json:"acknowledged_by"`
	At         time.Time `json:"acknowledged_at"`
}

// NewAcknowledgement trims its inputs and rejects blank ones.
func NewAcknowledgement(shipmentID, user string, at time.Time) (*Acknowledgement, error) {
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return nil, ErrShipmentIDRequired
	}

	user = strings.TrimSpace(user)
	if user == "" {
		return nil, ErrUserRequired
	}

	return &Acknowledgement{
		ShipmentID: shipmentID,
		User:       user,
		At:         at.UTC(),
	}, nil
}
