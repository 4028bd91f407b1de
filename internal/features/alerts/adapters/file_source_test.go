package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shipment-monitor/internal/features/alerts/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = `{
	"shipments": [
		{
			"id": "SHP-2",
			"order_date": "2026-03-01",
			"expected_delivery": "2026-03-05",
			"status": "InTransit",
			"mode": "Air",
			"events": [{"timestamp": "2026-03-02T10:00:00Z", "stage": "Picked up"}]
		},
		{
			"id": "SHP-1",
			"order_date": "2026-03-01",
			"expected_delivery": "2026-03-09",
			"status": "Ordered",
			"mode": "Road"
		}
	]
}`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shipments.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Load(t *testing.T) {
	src, err := NewFileSource(writeSeed(t, seed))
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, 2, src.Len())

	records, err := src.ListShipments(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "SHP-2", records[0].ID)
	assert.Equal(t, "SHP-1", records[1].ID)

	rec, err := src.GetShipment(ctx, "SHP-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeRoad, rec.Mode)

	events, err := src.GetEvents(ctx, "SHP-2")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Picked up", events[0].Stage)

	none, err := src.GetEvents(ctx, "SHP-1")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileSource_EventsAreCopies(t *testing.T) {
	src, err := NewFileSource(writeSeed(t, seed))
	require.NoError(t, err)
	ctx := context.Background()

	events, err := src.GetEvents(ctx, "SHP-2")
	require.NoError(t, err)
	events[0].Stage = "tampered"

	again, err := src.GetEvents(ctx, "SHP-2")
	require.NoError(t, err)
	assert.Equal(t, "Picked up", again[0].Stage)
}

func TestFileSource_NotFound(t *testing.T) {
	src, err := NewFileSource(writeSeed(t, seed))
	require.NoError(t, err)

	_, err = src.GetShipment(context.Background(), "SHP-404")
	assert.ErrorIs(t, err, domain.ErrShipmentNotFound)

	_, err = src.GetEvents(context.Background(), "SHP-404")
	assert.ErrorIs(t, err, domain.ErrShipmentNotFound)
}

func TestFileSource_InvalidSeeds(t *testing.T) {
	tests := map[string]string{
		"Malformed":   `{"shipments": [`,
		"MissingID":   `{"shipments": [{"id": " "}]}`,
		"DuplicateID": `{"shipments": [{"id": "SHP-1"}, {"id": "SHP-1"}]}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFileSource(writeSeed(t, content))
			assert.Error(t, err)
		})
	}

	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFileSource_ReloadKeepsPreviousOnError(t *testing.T) {
	path := writeSeed(t, seed)
	src, err := NewFileSource(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"shipments": [{"id": "SHP-9"}]}`), 0o644))
	require.NoError(t, src.Reload())
	assert.Equal(t, 1, src.Len())

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	assert.Error(t, src.Reload())
	assert.Equal(t, 1, src.Len())
}

func TestFileSource_CanceledContext(t *testing.T) {
	src, err := NewFileSource(writeSeed(t, seed))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.ListShipments(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
