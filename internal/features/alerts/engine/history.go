package engine

import (
	"slices"
	"strings"
	"time"

	"shipment-monitor/internal/features/alerts/domain"
)

const day = 24 * time.Hour

// history is the normalized, read-only view of a shipment's milestone events.
type history struct {
	// events are sorted ascending by timestamp; zero timestamps are dropped.
	events []domain.ShipmentEvent
	// last is the latest event. Ties keep input order, the last one wins.
	last *domain.ShipmentEvent
	// daysSinceLast is only meaningful when last is set.
	daysSinceLast float64
	// dwell maps a normalized stage label to its longest gap between
	// adjacent events carrying that label.
	dwell map[string]time.Duration
}

func normalizeHistory(raw []domain.ShipmentEvent, now time.Time) history {
	events := make([]domain.ShipmentEvent, 0, len(raw))
	for _, e := range raw {
		if e.Timestamp.IsZero() {
			continue
		}
		events = append(events, e)
	}

	slices.SortStableFunc(events, func(a, b domain.ShipmentEvent) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	h := history{
		events: events,
		dwell:  make(map[string]time.Duration),
	}

	if len(events) == 0 {
		return h
	}

	h.last = &events[len(events)-1]
	h.daysSinceLast = daysBetween(h.last.Timestamp, now)

	for i := 1; i < len(events); i++ {
		prev, cur := stageKey(events[i-1].Stage), stageKey(events[i].Stage)
		if prev != cur {
			continue
		}
		if d := events[i].Timestamp.Sub(events[i-1].Timestamp); d > h.dwell[cur] {
			h.dwell[cur] = d
		}
	}

	return h
}

func (h history) hasEvents() bool {
	return h.last != nil
}

// lastDwellDays returns the dwell of the latest event's stage in days.
func (h history) lastDwellDays() float64 {
	if h.last == nil {
		return 0
	}
	return h.dwell[stageKey(h.last.Stage)].Hours() / 24
}

func stageKey(stage string) string {
	return strings.ToLower(strings.TrimSpace(stage))
}

// daysBetween returns (to - from) in fractional days.
func daysBetween(from, to time.Time) float64 {
	return float64(to.Sub(from)) / float64(day)
}
