package commands

import (
	"errors"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents one party's attestation that delivery
// happened, optionally with the coordinates it was made from.
//
// Example:
//
//	cmd, err := NewConfirmDeliveryCommand(orderID, order.Customer, &location)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// If the vendor had already confirmed and the order was out for
//	// delivery, it is now delivered.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	party    order.Party
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a confirmation command. Validates the
// order ID, the party, and the location when one is supplied.
func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	party order.Party,
	location *kernel.GeoPoint,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParty(party),
		cmd.setLocation(location),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Party returns who is attesting.
func (c ConfirmDeliveryCommand) Party() order.Party {
	return c.party
}

// Location returns where the attestation was made from, nil when unreported.
func (c ConfirmDeliveryCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setParty(party order.Party) error {
	if err := party.Validate(); err != nil {
		return err
	}
	c.party = party
	return nil
}

func (c *ConfirmDeliveryCommand) setLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	c.location = location
	return nil
}
