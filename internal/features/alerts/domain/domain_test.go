package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipment() ShipmentRecord {
	ordered := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return ShipmentRecord{
		ID:               "SHP-1",
		OrderDate:        ordered,
		ExpectedDelivery: ordered.Add(10 * 24 * time.Hour),
		Lifecycle:        LifecycleInTransit,
		Carrier:          "Maersk",
		Mode:             ModeSea,
	}
}

func TestShipmentRecord_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShipmentRecord)
		field  string
	}{
		{name: "Valid", mutate: func(*ShipmentRecord) {}},
		{name: "MissingID", mutate: func(s *ShipmentRecord) { s.ID = " " }, field: "id"},
		{name: "MissingOrderDate", mutate: func(s *ShipmentRecord) { s.OrderDate = time.Time{} }, field: "order_date"},
		{name: "MissingExpectedDelivery", mutate: func(s *ShipmentRecord) { s.ExpectedDelivery = time.Time{} }, field: "expected_delivery"},
		{name: "DeliveryBeforeOrder", mutate: func(s *ShipmentRecord) { s.ExpectedDelivery = s.OrderDate.Add(-time.Hour) }, field: "expected_delivery"},
		{name: "UnknownMode", mutate: func(s *ShipmentRecord) { s.Mode = "Rail" }, field: "mode"},
		{name: "UnknownLifecycle", mutate: func(s *ShipmentRecord) { s.Lifecycle = "Lost" }, field: "lifecycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShipment()
			tt.mutate(&s)

			err := s.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidShipment)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{ShipmentID: "SHP-9", Field: "mode", Reason: "must be Air, Sea or Road"}
	assert.Equal(t, "invalid shipment SHP-9: mode must be Air, Sea or Road", err.Error())

	err = &ValidationError{Field: "id", Reason: "is required"}
	assert.Equal(t, "invalid shipment: id is required", err.Error())
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		raw      string
		expected StatusFilter
		wantErr  bool
	}{
		{raw: "", expected: FilterAll},
		{raw: "ALL", expected: FilterAll},
		{raw: "completed", expected: FilterCompleted},
		{raw: "in_progress", expected: FilterInProgress},
		{raw: "in-progress", expected: FilterInProgress},
		{raw: "InProgress", expected: FilterInProgress},
		{raw: "canceled", expected: FilterCanceled},
		{raw: " Cancelled ", expected: FilterCanceled},
		{raw: "future", expected: FilterFuture},
		{raw: "done", wantErr: true},
		{raw: "in progress", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatusFilter(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatusFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStatusFilter_Matches(t *testing.T) {
	inProgress := AlertShipment{Status: StatusInProgress}
	future := AlertShipment{}

	assert.True(t, FilterAll.Matches(inProgress))
	assert.True(t, FilterAll.Matches(future))
	assert.True(t, FilterInProgress.Matches(inProgress))
	assert.False(t, FilterInProgress.Matches(future))
	assert.True(t, FilterFuture.Matches(future))
	assert.False(t, FilterCanceled.Matches(inProgress))
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("HIGH")
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, s)

	_, err = ParseSeverity("critical")
	assert.ErrorIs(t, err, ErrInvalidSeverity)

	assert.Greater(t, SeverityHigh.Rank(), SeverityMedium.Rank())
	assert.Greater(t, SeverityMedium.Rank(), SeverityLow.Rank())
}

func TestParseLifecycle(t *testing.T) {
	assert.Equal(t, LifecycleOrdered, ParseLifecycle("ordered"))
	assert.Equal(t, LifecycleInTransit, ParseLifecycle("In Transit"))
	assert.Equal(t, LifecycleInTransit, ParseLifecycle("in_transit"))
	assert.Equal(t, LifecycleDelivered, ParseLifecycle("DELIVERED"))
	assert.Equal(t, LifecycleCanceled, ParseLifecycle("cancelled"))
	assert.Equal(t, Lifecycle(""), ParseLifecycle("returned"))

	assert.True(t, LifecycleDelivered.Terminal())
	assert.True(t, LifecycleCanceled.Terminal())
	assert.False(t, LifecycleInTransit.Terminal())
}

func TestParseTransportMode(t *testing.T) {
	assert.Equal(t, ModeAir, ParseTransportMode("AIR"))
	assert.Equal(t, ModeSea, ParseTransportMode("ocean"))
	assert.Equal(t, ModeRoad, ParseTransportMode("truck"))
	assert.Equal(t, TransportMode(""), ParseTransportMode("rail"))
}

func TestPlace_String(t *testing.T) {
	assert.Equal(t, "Rotterdam, NL", Place{City: "Rotterdam", Country: "NL"}.String())
	assert.Equal(t, "NL", Place{Country: "NL"}.String())
	assert.Equal(t, "Rotterdam", Place{City: "Rotterdam"}.String())
}

func TestAlertShipment_WithAcknowledgement(t *testing.T) {
	at := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	original := AlertShipment{ID: "SHP-1"}

	acked := original.WithAcknowledgement("ops@example.com", at)

	assert.Equal(t, "ops@example.com", acked.AcknowledgedBy)
	require.NotNil(t, acked.AcknowledgedAt)
	assert.Equal(t, at, *acked.AcknowledgedAt)
	assert.Empty(t, original.AcknowledgedBy)
	assert.Nil(t, original.AcknowledgedAt)
}
