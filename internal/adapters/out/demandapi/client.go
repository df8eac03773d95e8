// Package demandapi is the HTTP client for the external demand-listing
// backend. It implements ports.DemandSource.
package demandapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/ports"
	"hatbazar/internal/pkg/errs"
)

const (
	collaboratorName = "demand api"
	defaultTimeout   = 10 * time.Second
)

// Client calls the demand backend over HTTP. Failures of any kind (transport,
// non-200 status, malformed body) surface as errs.ErrExternalCallFailed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.DemandSource = &Client{}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type demandResponse struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	ExpiresInHours float64   `json:"expiresInHours"`
	Lat            *float64  `json:"lat,omitempty"`
	Lng            *float64  `json:"lng,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListDemands fetches the full current demand snapshot. Records that fail
// domain validation are dropped rather than failing the whole snapshot.
func (c *Client) ListDemands(ctx context.Context) ([]demand.Demand, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/demands", nil)
	if err != nil {
		return nil, errs.NewExternalCallError(collaboratorName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewExternalCallError(collaboratorName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewExternalCallError(collaboratorName,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	var records []demandResponse
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, errs.NewExternalCallError(collaboratorName,
			fmt.Errorf("failed to decode response: %w", err))
	}

	demands := make([]demand.Demand, 0, len(records))
	for _, record := range records {
		d, err := toDomain(record)
		if err != nil {
			continue
		}
		demands = append(demands, d)
	}
	return demands, nil
}

func toDomain(record demandResponse) (demand.Demand, error) {
	d := demand.Demand{
		ID:             record.ID,
		Category:       demand.Category(record.Category),
		Quantity:       record.Quantity,
		ExpiresInHours: record.ExpiresInHours,
		CreatedAt:      record.CreatedAt,
	}
	if record.Lat != nil && record.Lng != nil {
		pt, err := kernel.NewGeoPoint(*record.Lat, *record.Lng)
		if err != nil {
			return demand.Demand{}, err
		}
		d.Location = &pt
	}
	if err := d.Validate(); err != nil {
		return demand.Demand{}, err
	}
	return d, nil
}
