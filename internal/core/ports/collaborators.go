package ports

import (
	"context"

	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/kernel"
)

// DemandSource is the external demand-listing collaborator. The core treats
// every call as fire-once: failures surface as errs.ErrExternalCallFailed
// and are never retried here.
type DemandSource interface {
	// ListDemands returns the full current demand snapshot.
	ListDemands(ctx context.Context) ([]demand.Demand, error)
}

// NearbyDemand is a demand annotated with its distance from the querying
// vendor, as reported by the backend's geo lookup.
type NearbyDemand struct {
	Demand         demand.Demand
	DistanceMeters float64
}

// VendorBackend is the remote vendor-side order service. When configured,
// its outcome is the authority for vendor-driven transitions: the local
// engine mirrors a successful remote call and refuses to advance on failure.
type VendorBackend interface {
	// AcceptOrder asks the backend to accept the order.
	AcceptOrder(ctx context.Context, orderID string) error

	// DeliverOrder asks the backend to mark the order dispatched/delivered.
	DeliverOrder(ctx context.Context, orderID string) error

	// NearestDemands returns up to limit demands closest to the given point.
	NearestDemands(ctx context.Context, at kernel.GeoPoint, limit int) ([]NearbyDemand, error)
}
