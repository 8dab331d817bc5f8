package flightclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"travel/internal/flight"
)

// SupplierClient fetches one supplier's raw search payload.
type SupplierClient interface {
	Supplier() flight.Supplier
	Search(ctx context.Context, req flight.SearchRequest) (*flight.RawSearchResponse, error)
}

// StatusError is returned when a supplier answers with a non-200 status.
type StatusError struct {
	Supplier   flight.Supplier
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned non-200 status: %d", e.Supplier, e.StatusCode)
}

func postJSON(ctx context.Context, httpClient *http.Client, supplier flight.Supplier, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", supplier, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Supplier: supplier, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", supplier, err)
	}
	return nil
}
