package domain

import (
	"strings"
	"time"
)

// RiskReason tags one triggered risk detector.
type RiskReason string

const (
	ReasonStaleStatus      RiskReason = "StaleStatus"
	ReasonPortCongestion   RiskReason = "PortCongestion"
	ReasonCustomsHold      RiskReason = "CustomsHold"
	ReasonMissedDeparture  RiskReason = "MissedDeparture"
	ReasonLongDwell        RiskReason = "LongDwell"
	ReasonNoPickup         RiskReason = "NoPickup"
	ReasonHubCongestion    RiskReason = "HubCongestion"
	ReasonWeatherAlert     RiskReason = "WeatherAlert"
	ReasonCapacityShortage RiskReason = "CapacityShortage"
	ReasonDocsMissing      RiskReason = "DocsMissing"
	ReasonLost             RiskReason = "Lost"
)

// RiskReasons lists every reason tag.
var RiskReasons = []RiskReason{
	ReasonStaleStatus,
	ReasonPortCongestion,
	ReasonCustomsHold,
	ReasonMissedDeparture,
	ReasonLongDwell,
	ReasonNoPickup,
	ReasonHubCongestion,
	ReasonWeatherAlert,
	ReasonCapacityShortage,
	ReasonDocsMissing,
	ReasonLost,
}

// Severity is the coarse risk bucket shown on the dashboard.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Rank orders severities: High > Medium > Low.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// ParseSeverity accepts "high", "medium" or "low" in any case.
func ParseSeverity(raw string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return SeverityHigh, nil
	case "medium":
		return SeverityMedium, nil
	case "low":
		return SeverityLow, nil
	}
	return "", ErrInvalidSeverity
}

// LifecycleStatus is the display bucket derived from the lifecycle code and dates.
type LifecycleStatus string

const (
	StatusCompleted  LifecycleStatus = "completed"
	StatusInProgress LifecycleStatus = "in_progress"
	StatusCanceled   LifecycleStatus = "canceled"
	// StatusFuture is never serialized; future alerts carry an empty status.
	StatusFuture LifecycleStatus = "future"
)

// StatusFilter selects alerts by lifecycle status.
type StatusFilter string

const (
	FilterAll        StatusFilter = "all"
	FilterCompleted  StatusFilter = "completed"
	FilterInProgress StatusFilter = "in_progress"
	FilterCanceled   StatusFilter = "canceled"
	FilterFuture     StatusFilter = "future"
)

// ParseStatusFilter normalizes the accepted spellings of a status filter.
// An empty value means all. Anything else is rejected.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return FilterAll, nil
	case "completed":
		return FilterCompleted, nil
	case "in_progress", "in-progress", "inprogress":
		return FilterInProgress, nil
	case "canceled", "cancelled":
		return FilterCanceled, nil
	case "future":
		return FilterFuture, nil
	}
	return "", ErrInvalidStatusFilter
}

// Matches reports whether the alert falls in the filtered bucket.
func (f StatusFilter) Matches(a AlertShipment) bool {
	if f == FilterAll {
		return true
	}
	return string(a.Lifecycle()) == string(f)
}

// Milestone is a display row of the shipment's step list.
type Milestone struct {
	Stage       string    `json:"stage"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
}

// AlertShipment is the assessed record served to the dashboard.
type AlertShipment struct {
	ID             string          `json:"id"`
	Origin         string          `json:"origin"`
	Destination    string          `json:"destination"`
	Mode           TransportMode   `json:"mode"`
	Carrier        string          `json:"carrier"`
	ServiceLevel   string          `json:"service_level"`
	CurrentStage   string          `json:"current_stage"`
	PlannedETA     time.Time       `json:"planned_eta"`
	DaysToETA      float64         `json:"days_to_eta"`
	LastUpdate     *time.Time      `json:"last_update,omitempty"`
	LastUpdateDays *float64        `json:"last_update_days,omitempty"`
	OrderDate      *time.Time      `json:"order_date,omitempty"`
	RiskScore      int             `json:"risk_score"`
	Severity       Severity        `json:"severity"`
	RiskReasons    []RiskReason    `json:"risk_reasons"`
	Owner          string          `json:"owner"`
	Status         LifecycleStatus `json:"status,omitempty"`
	Steps          []Milestone     `json:"steps,omitempty"`

	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

// Lifecycle returns the resolved status, mapping the unserialized future case back.
func (a AlertShipment) Lifecycle() LifecycleStatus {
	if a.Status == "" {
		return StatusFuture
	}
	return a.Status
}

// WithAcknowledgement returns a copy carrying the acknowledgement fields.
func (a AlertShipment) WithAcknowledgement(user string, at time.Time) AlertShipment {
	a.AcknowledgedBy = user
	a.AcknowledgedAt = &at
	return a
}

// AlertQuery narrows a list request. An empty Severity matches every tier.
type AlertQuery struct {
	Status   StatusFilter
	Severity Severity
}

// Matches reports whether the alert passes both filters.
func (q AlertQuery) Matches(a AlertShipment) bool {
	if q.Severity != "" && a.Severity != q.Severity {
		return false
	}
	status := q.Status
	if status == "" {
		status = FilterAll
	}
	return status.Matches(a)
}
