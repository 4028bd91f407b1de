package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-monitor/internal/core/cache"
	"shipment-monitor/internal/features/acknowledgements/domain"
)

// DefaultKeyPrefix namespaces acknowledgement keys when none is configured.
const DefaultKeyPrefix = "ack:"

// RedisAcknowledgementRepository implements ports.AcknowledgementRepository on the cache port.
// Acknowledgements never expire; they live until Clear.
type RedisAcknowledgementRepository struct {
	cache  cache.Cache
	prefix string
}

// NewRedisAcknowledgementRepository creates a new RedisAcknowledgementRepository.
func NewRedisAcknowledgementRepository(c cache.Cache, prefix string) *RedisAcknowledgementRepository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisAcknowledgementRepository{
		cache:  c,
		prefix: prefix,
	}
}

func (r *RedisAcknowledgementRepository) key(shipmentID string) string {
	return r.prefix + shipmentID
}

// Save stores the acknowledgement, replacing any earlier one for the shipment.
func (r *RedisAcknowledgementRepository) Save(ctx context.Context, ack *domain.Acknowledgement) error {
	data, err := json.Marshal(ack)
	if err != nil {
		return fmt.Errorf("failed to marshal acknowledgement: %w", err)
	}

	if err := r.cache.Set(ctx, r.key(ack.ShipmentID), data, 0); err != nil {
		return fmt.Errorf("failed to save acknowledgement to cache: %w", err)
	}

	return nil
}

// Get retrieves the acknowledgement for a shipment.
func (r *RedisAcknowledgementRepository) Get(ctx context.Context, shipmentID string) (*domain.Acknowledgement, error) {
	data, err := r.cache.Get(ctx, r.key(shipmentID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get acknowledgement from cache: %w", err)
	}

	var ack domain.Acknowledgement
	if err := json.Unmarshal(data, &ack); err != nil {
		return nil, fmt.Errorf("failed to unmarshal acknowledgement: %w", err)
	}

	return &ack, nil
}

// Clear removes every acknowledgement under the prefix.
func (r *RedisAcknowledgementRepository) Clear(ctx context.Context) (int, error) {
	n, err := r.cache.DeleteByPrefix(ctx, r.prefix)
	if err != nil {
		return n, fmt.Errorf("failed to clear acknowledgements: %w", err)
	}
	return n, nil
}
