package commands

import (
	"context"
	"fmt"

	"hatbazar/internal/core/domain/model/notification"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"
)

// ConfirmDeliveryCommandHandler coordinates dual-party delivery confirmation.
//
// The confirm-then-maybe-advance sequence runs inside one unit of work, so
// two interleaved confirmations serialize: the later one observes the
// earlier write and the outcome is the same whichever party confirms first.
// When both parties have confirmed and the order is out for delivery, it
// advances to delivered within the same commit.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	clock      ports.Clock
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmations.
func NewConfirmDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock ports.Clock,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle records the confirmation and auto-completes the delivery when both
// parties have attested and the order is out for delivery. The delivered
// alert fires only after the commit succeeded.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	now := h.clock.Now()
	if err = aggregate.Confirm(cmd.Party(), now, cmd.Location()); err != nil {
		return err
	}

	completed := aggregate.BothPartiesConfirmed() && aggregate.Status() == order.OutForDelivery
	if completed {
		if err = aggregate.ChangeStatus(order.Delivered, now); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if completed {
		h.notifier.Add(ctx, notification.New(
			notification.TypeSuccess,
			notification.PriorityMedium,
			"Order Delivered",
			fmt.Sprintf("Order #%s confirmed by both parties", cmd.OrderID().String()[:8]),
		))
	}
	return nil
}
