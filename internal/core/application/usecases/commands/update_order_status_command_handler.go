package commands

import (
	"context"
	"fmt"

	"hatbazar/internal/core/domain/model/notification"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"
)

// UpdateOrderStatusCommandHandler drives the order lifecycle state machine.
//
// When a vendor backend is configured, vendor-driven transitions (accepted,
// out_for_delivery) are mirrored: the remote call decides first, the local
// engine applies the same transition only after the backend agreed. A remote
// failure surfaces as an external-call error and local state is untouched.
// The order's existence and the transition's legality are verified locally
// before the remote call, so a request the local engine would reject never
// mutates the backend.
//
// Successful terminal transitions emit alerts: delivered a success alert,
// cancelled a warning alert.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	clock      ports.Clock

	// vendorBackend is optional; nil means the engine runs standalone.
	vendorBackend ports.VendorBackend
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
// vendorBackend may be nil when no remote vendor service is configured.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock ports.Clock,
	vendorBackend ports.VendorBackend,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		clock:         clock,
		vendorBackend: vendorBackend,
	}
}

// Handle processes the status change. Rejected transitions leave the order
// unchanged; successful ones are persisted wholesale before any alert fires.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// The remote backend is the authority for vendor-driven transitions;
	// ask it before touching local state. Check the order exists and the
	// transition is legal first, so a doomed request never mutates the
	// backend.
	if h.mirrorsToVendor(cmd.Next()) {
		if err := h.precheckTransition(ctx, cmd); err != nil {
			return err
		}
		if err := h.mirrorToVendor(ctx, cmd); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Next(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyOutcome(ctx, cmd)
	return nil
}

func (h *UpdateOrderStatusCommandHandler) mirrorsToVendor(next order.Status) bool {
	return h.vendorBackend != nil && (next == order.Accepted || next == order.OutForDelivery)
}

// precheckTransition verifies, without mutating anything, that the order
// exists and the requested transition is legal. It runs in its own short
// unit of work so the remote call stays outside any critical section; the
// definitive check still happens inside the mutating transaction.
func (h *UpdateOrderStatusCommandHandler) precheckTransition(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if current := aggregate.Status(); !current.CanTransitionTo(cmd.Next()) {
		return fmt.Errorf("%w: %s -> %s", order.ErrInvalidStatusTransition, current, cmd.Next())
	}
	return nil
}

func (h *UpdateOrderStatusCommandHandler) mirrorToVendor(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	switch cmd.Next() {
	case order.Accepted:
		return h.vendorBackend.AcceptOrder(ctx, cmd.OrderID().String())
	case order.OutForDelivery:
		return h.vendorBackend.DeliverOrder(ctx, cmd.OrderID().String())
	default:
		return nil
	}
}

func (h *UpdateOrderStatusCommandHandler) notifyOutcome(ctx context.Context, cmd UpdateOrderStatusCommand) {
	shortID := cmd.OrderID().String()[:8]

	switch cmd.Next() {
	case order.Delivered:
		h.notifier.Add(ctx, notification.New(
			notification.TypeSuccess,
			notification.PriorityMedium,
			"Order Delivered",
			fmt.Sprintf("Order #%s has been delivered", shortID),
		))
	case order.Cancelled:
		h.notifier.Add(ctx, notification.New(
			notification.TypeWarning,
			notification.PriorityMedium,
			"Order Cancelled",
			fmt.Sprintf("Order #%s has been cancelled", shortID),
		))
	}
}
