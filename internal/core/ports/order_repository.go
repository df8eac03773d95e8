// Package ports defines the interfaces between the application core and the
// outside world: repositories, the durable key-value store, external
// collaborators, and small ambient dependencies (clock, sound).
package ports

import (
	"context"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
)

// OrderRepository provides access to the order collection within a unit of
// work. Get returns an isolated working copy; changes become visible to other
// readers only after Update and a successful commit.
type OrderRepository interface {
	// Add registers a new order in the collection.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stages the new state of an existing order.
	// Returns errs.ErrObjectNotFound when the order was never added.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns a working copy of the order.
	// Returns errs.ErrObjectNotFound when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderReader provides read-only access to committed order state for query
// handlers. Implementations return copies safe to use without a unit of work.
type OrderReader interface {
	// GetAll returns all orders in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
