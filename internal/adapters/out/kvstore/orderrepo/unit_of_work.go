package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"
)

// ErrUnitOfWorkNotActive is returned when Commit is called outside a
// Begin/Commit window or the repository is requested before Begin.
var ErrUnitOfWorkNotActive = errors.New("unit of work is not active")

// UnitOfWork is one atomic mutation of the order collection. Begin takes the
// store-wide mutex, Commit persists the merged collection wholesale and only
// then applies the staged changes to memory, Rollback discards them. Either
// way the mutex is released exactly once.
type UnitOfWork struct {
	store  *Store
	repo   *Repository
	active bool
}

var _ ports.UnitOfWork = &UnitOfWork{}

// NewUnitOfWork creates a unit of work over the store. It does not take any
// locks; call Begin to start the mutation window.
func (s *Store) NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{store: s}
}

// Begin acquires exclusive ownership of the collection.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return errors.New("unit of work already began")
	}

	u.store.mu.Lock()
	u.repo = &Repository{
		store:   u.store,
		pending: make(map[string]*order.Order),
	}
	u.active = true
	return nil
}

// Commit writes the merged collection to the key-value store and, only after
// the write succeeds, applies the staged changes to the in-memory state. On a
// failed write nothing is applied; the caller may retry or roll back.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrUnitOfWorkNotActive
	}

	mergedIDs := make([]string, 0, len(u.store.ids)+len(u.repo.pendingIDs))
	mergedIDs = append(mergedIDs, u.store.ids...)
	mergedIDs = append(mergedIDs, u.repo.pendingIDs...)

	dtos := make([]orderDTO, 0, len(mergedIDs))
	for _, id := range mergedIDs {
		aggregate, staged := u.repo.pending[id]
		if !staged {
			aggregate = u.store.byID[id]
		}
		dtos = append(dtos, orderToDTO(aggregate))
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return fmt.Errorf("serialize order collection: %w", err)
	}
	if err := u.store.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("persist order collection: %w", err)
	}

	for id, aggregate := range u.repo.pending {
		u.store.byID[id] = aggregate
	}
	u.store.ids = mergedIDs

	u.release()
	return nil
}

// Rollback discards staged changes and releases ownership. Calling it after a
// successful Commit, or on a unit of work that never began, is a no-op. This
// permits the deferred-rollback idiom.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.release()
	return nil
}

// OrderRepository returns the repository bound to this unit of work.
// It is nil outside a Begin/Commit window.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	if !u.active {
		return nil
	}
	return u.repo
}

func (u *UnitOfWork) release() {
	u.repo = nil
	u.active = false
	u.store.mu.Unlock()
}
