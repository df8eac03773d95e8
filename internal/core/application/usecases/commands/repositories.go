// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// unit-of-work management, and persistence.
package commands

import (
	"context"

	"hatbazar/internal/core/domain/model/notification"
	"hatbazar/internal/core/ports"
)

// Unit of Work interfaces provide atomic mutation scopes for command handlers.
type (
	// TxManager handles the unit-of-work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages one atomic mutation of the order collection.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Notifier receives the alerts command handlers emit as side effects of
// successful state changes. Satisfied by the notification dispatcher.
type Notifier interface {
	Add(ctx context.Context, n notification.Notification) notification.Notification
}
