// Package vendorapi is the HTTP client for the remote vendor-side order
// service. It implements ports.VendorBackend.
package vendorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/ports"
	"hatbazar/internal/pkg/errs"
)

const (
	collaboratorName = "vendor api"
	defaultTimeout   = 10 * time.Second

	// DefaultNearestLimit is how many nearby demands are requested when the
	// caller does not ask for a specific count.
	DefaultNearestLimit = 5
)

// Client calls the vendor backend over HTTP. Failures surface as
// errs.ErrExternalCallFailed; the caller decides whether the local state
// machine may proceed without the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.VendorBackend = &Client{}

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

// AcceptOrder asks the backend to accept the order.
func (c *Client) AcceptOrder(ctx context.Context, orderID string) error {
	return c.post(ctx, fmt.Sprintf("/api/orders/%s/accept", url.PathEscape(orderID)))
}

// DeliverOrder asks the backend to mark the order delivered.
func (c *Client) DeliverOrder(ctx context.Context, orderID string) error {
	return c.post(ctx, fmt.Sprintf("/api/orders/%s/deliver", url.PathEscape(orderID)))
}

type nearbyDemandResponse struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	ExpiresInHours float64   `json:"expiresInHours"`
	Lat            *float64  `json:"lat,omitempty"`
	Lng            *float64  `json:"lng,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	DistanceMeters float64   `json:"distanceMeters"`
}

// NearestDemands returns up to limit demands closest to the given point,
// nearest first as ordered by the backend. A non-positive limit falls back to
// DefaultNearestLimit.
func (c *Client) NearestDemands(ctx context.Context, at kernel.GeoPoint, limit int) ([]ports.NearbyDemand, error) {
	if err := at.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultNearestLimit
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(at.Lat(), 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(at.Lng(), 'f', -1, 64))
	query.Set("limit", strconv.Itoa(limit))

	endpoint := c.baseURL + "/api/demands/nearest?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
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

	var records []nearbyDemandResponse
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, errs.NewExternalCallError(collaboratorName,
			fmt.Errorf("failed to decode response: %w", err))
	}

	nearby := make([]ports.NearbyDemand, 0, limit)
	for _, record := range records {
		if len(nearby) == limit {
			break
		}
		d, err := toDomain(record)
		if err != nil {
			continue
		}
		nearby = append(nearby, ports.NearbyDemand{Demand: d, DistanceMeters: record.DistanceMeters})
	}
	return nearby, nil
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return errs.NewExternalCallError(collaboratorName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewExternalCallError(collaboratorName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewExternalCallError(collaboratorName,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}
	return nil
}

func toDomain(record nearbyDemandResponse) (demand.Demand, error) {
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
