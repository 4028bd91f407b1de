package engine

import (
	"time"

	"shipment-monitor/internal/features/alerts/domain"
)

// Stage labels shown when a shipment has no milestones yet.
const (
	StageNotYetShipped = "Not yet shipped"
	StageOrderPlaced   = "Order placed"
	StageDelivered     = "Delivered"
	StageCanceled      = "Canceled"
)

// ResolveStatus derives the display status from the lifecycle code, the
// order date and whether any milestone exists.
func ResolveStatus(s domain.ShipmentRecord, hasEvents bool, now time.Time) domain.LifecycleStatus {
	switch {
	case s.Lifecycle == domain.LifecycleDelivered:
		return domain.StatusCompleted
	case s.Lifecycle == domain.LifecycleCanceled:
		return domain.StatusCanceled
	case s.OrderDate.After(now) && !hasEvents:
		return domain.StatusFuture
	}
	return domain.StatusInProgress
}

func currentStage(status domain.LifecycleStatus, h history) string {
	if h.last != nil {
		return h.last.Stage
	}

	switch status {
	case domain.StatusFuture:
		return StageNotYetShipped
	case domain.StatusCompleted:
		return StageDelivered
	case domain.StatusCanceled:
		return StageCanceled
	}
	return StageOrderPlaced
}

// skipsDetection reports whether the status supersedes risk assessment.
func skipsDetection(status domain.LifecycleStatus) bool {
	return status != domain.StatusInProgress
}
