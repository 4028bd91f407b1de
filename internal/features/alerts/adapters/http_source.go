package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shipment-monitor/internal/features/alerts/domain"
)

// maxErrorBody caps how much of an upstream error body ends up in an error.
const maxErrorBody = 512

// HTTPSource implements ports.ShipmentSource against the upstream shipment API:
//
//	GET {base}/shipments
//	GET {base}/shipments/{id}
//	GET {base}/shipments/{id}/events
type HTTPSource struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the API root without a trailing slash.
	baseURL string
}

// NewHTTPSource creates a new HTTPSource.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	return &HTTPSource{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListShipments fetches every shipment the upstream knows about.
func (s *HTTPSource) ListShipments(ctx context.Context) ([]domain.ShipmentRecord, error) {
	var dtos []shipmentDTO
	if err := s.getJSON(ctx, "/shipments", &dtos); err != nil {
		return nil, err
	}

	records := make([]domain.ShipmentRecord, 0, len(dtos))
	for _, d := range dtos {
		records = append(records, d.toDomain())
	}
	return records, nil
}

// GetShipment fetches one shipment.
func (s *HTTPSource) GetShipment(ctx context.Context, id string) (domain.ShipmentRecord, error) {
	var dto shipmentDTO
	if err := s.getJSON(ctx, "/shipments/"+url.PathEscape(id), &dto); err != nil {
		return domain.ShipmentRecord{}, err
	}
	return dto.toDomain(), nil
}

// GetEvents fetches the milestone history of one shipment.
func (s *HTTPSource) GetEvents(ctx context.Context, id string) ([]domain.ShipmentEvent, error) {
	var dtos []eventDTO
	if err := s.getJSON(ctx, "/shipments/"+url.PathEscape(id)+"/events", &dtos); err != nil {
		return nil, err
	}
	return eventsToDomain(dtos), nil
}

// HealthCheck verifies that the upstream API is reachable.
func (s *HTTPSource) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.baseURL+"/shipments", nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

func (s *HTTPSource) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, domain.ErrShipmentNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("shipment API returned status %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}
	return nil
}
