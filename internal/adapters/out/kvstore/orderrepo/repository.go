package orderrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"
	"hatbazar/internal/pkg/errs"
)

// StorageKey is the single key under which the whole order collection lives.
const StorageKey = "orders"

// Store keeps the committed order collection in memory and mirrors it to a
// key-value store as one JSON document, rewritten wholesale on every commit.
//
// Mutations go through units of work (see NewUnitOfWork); reads of committed
// state go through GetAll. The store-wide mutex serializes units of work
// against each other, so a unit of work observes and produces consistent
// state for its whole read-modify-write section.
type Store struct {
	kv     ports.KeyValueStore
	logger *slog.Logger

	mu   sync.Mutex
	ids  []string
	byID map[string]*order.Order
}

// NewStore loads the committed collection from the key-value store. A missing
// key yields an empty collection. A document that cannot be parsed is logged
// and discarded, the store starts empty rather than failing startup;
// individual records that cannot be restored are skipped the same way.
func NewStore(ctx context.Context, kv ports.KeyValueStore, logger *slog.Logger) (*Store, error) {
	s := &Store{
		kv:     kv,
		logger: logger,
		byID:   make(map[string]*order.Order),
	}

	raw, found, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load order collection: %w", err)
	}
	if !found {
		return s, nil
	}

	var dtos []orderDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		logger.Warn("order collection is corrupt, starting empty", "error", err)
		return s, nil
	}

	for _, dto := range dtos {
		aggregate, err := orderFromDTO(dto)
		if err != nil {
			logger.Warn("skipping unrestorable order record", "orderId", dto.ID, "error", err)
			continue
		}
		id := aggregate.ID().String()
		if _, exists := s.byID[id]; exists {
			logger.Warn("skipping duplicate order record", "orderId", id)
			continue
		}
		s.ids = append(s.ids, id)
		s.byID[id] = aggregate
	}

	return s, nil
}

// GetAll returns working copies of all committed orders in insertion order.
func (s *Store) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*order.Order, 0, len(s.ids))
	for _, id := range s.ids {
		copied, err := cloneOrder(s.byID[id])
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}
	return orders, nil
}

// cloneOrder deep-copies an aggregate by round-tripping it through the
// storage representation.
func cloneOrder(aggregate *order.Order) (*order.Order, error) {
	return orderFromDTO(orderToDTO(aggregate))
}

// Repository stages changes against the store within one unit of work.
// Staged aggregates are only visible through this repository until commit.
type Repository struct {
	store      *Store
	pending    map[string]*order.Order
	pendingIDs []string
}

var _ ports.OrderRepository = &Repository{}

// Add registers a new order. Adding an id that already exists, committed or
// staged, is rejected.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, exists := r.store.byID[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("order %s already exists", id))
	}
	if _, staged := r.pending[id]; staged {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("order %s already exists", id))
	}

	staged, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	r.pending[id] = staged
	r.pendingIDs = append(r.pendingIDs, id)
	return nil
}

// Update stages the new state of an existing order.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	_, committed := r.store.byID[id]
	_, staged := r.pending[id]
	if !committed && !staged {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	copied, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	r.pending[id] = copied
	return nil
}

// Get returns a working copy of the order, preferring staged state over
// committed state.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	key := id.String()
	if staged, ok := r.pending[key]; ok {
		return cloneOrder(staged)
	}
	if committed, ok := r.store.byID[key]; ok {
		return cloneOrder(committed)
	}
	return nil, errs.NewObjectNotFoundError("orderId", key)
}
