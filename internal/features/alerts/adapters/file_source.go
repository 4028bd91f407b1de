package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"shipment-monitor/internal/features/alerts/domain"
)

// seedFile is the on-disk shape: shipments with their events inlined.
type seedFile struct {
	Shipments []shipmentDTO `json:"shipments"`
}

// FileSource implements ports.ShipmentSource from a JSON seed file held in memory.
type FileSource struct {
	path string

	mu        sync.RWMutex
	order     []string
	shipments map[string]domain.ShipmentRecord
	events    map[string][]domain.ShipmentEvent
}

// NewFileSource reads the seed file at path.
func NewFileSource(path string) (*FileSource, error) {
	s := &FileSource{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the seed file. On failure the previous contents stay active.
func (s *FileSource) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to decode seed file %s: %w", s.path, err)
	}

	order := make([]string, 0, len(seed.Shipments))
	shipments := make(map[string]domain.ShipmentRecord, len(seed.Shipments))
	events := make(map[string][]domain.ShipmentEvent, len(seed.Shipments))

	for i, dto := range seed.Shipments {
		rec := dto.toDomain()
		if rec.ID == "" {
			return fmt.Errorf("seed file %s: shipment #%d has no id", s.path, i)
		}
		if _, dup := shipments[rec.ID]; dup {
			return fmt.Errorf("seed file %s: duplicate shipment id %s", s.path, rec.ID)
		}
		order = append(order, rec.ID)
		shipments[rec.ID] = rec
		events[rec.ID] = eventsToDomain(dto.Events)
	}

	s.mu.Lock()
	s.order, s.shipments, s.events = order, shipments, events
	s.mu.Unlock()

	return nil
}

// Len returns how many shipments are loaded.
func (s *FileSource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// ListShipments returns every shipment in seed file order.
func (s *FileSource) ListShipments(ctx context.Context) ([]domain.ShipmentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.ShipmentRecord, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.shipments[id])
	}
	return records, nil
}

// GetShipment returns one shipment.
func (s *FileSource) GetShipment(ctx context.Context, id string) (domain.ShipmentRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShipmentRecord{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.shipments[id]
	if !ok {
		return domain.ShipmentRecord{}, fmt.Errorf("%s: %w", id, domain.ErrShipmentNotFound)
	}
	return rec, nil
}

// GetEvents returns a copy of one shipment's events.
func (s *FileSource) GetEvents(ctx context.Context, id string) ([]domain.ShipmentEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	events, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrShipmentNotFound)
	}
	return slices.Clone(events), nil
}
