package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShipment matches every ValidationError.
	ErrInvalidShipment = errors.New("invalid shipment")
	// ErrShipmentNotFound is returned by shipment sources for unknown identifiers.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrInvalidStatusFilter is returned for unsupported status filter spellings.
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	// ErrInvalidSeverity is returned for unsupported severity filter spellings.
	ErrInvalidSeverity = errors.New("invalid severity")
)

// ValidationError reports a missing or malformed required shipment field.
type ValidationError struct {
	ShipmentID string
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.ShipmentID == "" {
		return fmt.Sprintf("invalid shipment: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid shipment %s: %s %s", e.ShipmentID, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidShipment) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidShipment
}
