package ports

import "context"

// UnitOfWork scopes one atomic mutation of the order collection.
//
// Begin acquires exclusive ownership of the collection, Commit persists the
// staged changes wholesale and releases ownership, Rollback discards staged
// changes and releases ownership. Rollback after a successful Commit is a
// no-op, which permits the deferred-rollback idiom:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	repo := uow.OrderRepository()
//	// ... read-modify-write with no suspension between read and write
//
//	return uow.Commit(ctx)
//
// Because Begin serializes units of work against each other, the entire
// read-modify-write section observes and produces consistent state; two
// interleaved mutations of the same order cannot race past each other.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository returns the repository bound to this unit of work.
	// Only valid between Begin and Commit/Rollback.
	OrderRepository() OrderRepository
}
