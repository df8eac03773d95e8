package queries

import (
	"context"
	"errors"
	"math"

	"hatbazar/internal/core/ports"
	"hatbazar/internal/pkg/errs"
)

// ErrVendorBackendNotConfigured reports a nearest-demands lookup in a
// deployment without a vendor backend.
var ErrVendorBackendNotConfigured = errors.New("vendor backend is not configured")

// GetNearestDemandsQueryHandler serves a vendor's nearby-demands lookup
// through the remote vendor backend.
type GetNearestDemandsQueryHandler struct {
	backend ports.VendorBackend
}

// NewGetNearestDemandsQueryHandler creates a handler over the vendor backend.
// backend may be nil when no remote vendor service is configured; Handle then
// fails with an external-call error instead of serving the lookup.
func NewGetNearestDemandsQueryHandler(backend ports.VendorBackend) GetNearestDemandsQueryHandler {
	return GetNearestDemandsQueryHandler{backend: backend}
}

// Handle returns up to query.Limit demands closest to query.At, in the
// backend's order (nearest first), with distances rounded for display.
func (h GetNearestDemandsQueryHandler) Handle(
	ctx context.Context,
	query GetNearestDemandsQuery,
) ([]NearbyDemandResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.backend == nil {
		return nil, errs.NewExternalCallError("vendor api", ErrVendorBackendNotConfigured)
	}

	nearby, err := h.backend.NearestDemands(ctx, query.At(), query.Limit())
	if err != nil {
		return nil, err
	}

	responses := make([]NearbyDemandResponse, 0, len(nearby))
	for _, n := range nearby {
		responses = append(responses, NearbyDemandResponse{
			Demand:         n.Demand,
			Urgency:        n.Demand.Urgency(),
			DistanceMeters: math.Round(n.DistanceMeters*100) / 100,
		})
	}
	return responses, nil
}
