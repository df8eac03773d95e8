package order

import (
	"fmt"
	"time"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/pkg/errs"
)

// Party identifies which side of the transaction is acting: the customer who
// requested the order or the vendor who fulfils it.
type Party int

const (
	// UnknownParty represents an invalid or undefined party.
	UnknownParty Party = iota

	// Customer is the requester side of the transaction.
	Customer

	// Vendor is the fulfiller side of the transaction.
	Vendor
)

// PartyFromString parses the wire representation ("customer" or "vendor").
func PartyFromString(s string) (Party, error) {
	switch s {
	case "customer":
		return Customer, nil
	case "vendor":
		return Vendor, nil
	default:
		return UnknownParty, errs.NewValueIsInvalidErrorWithCause("party",
			fmt.Errorf("%q is not a valid party", s))
	}
}

// Validate checks if the Party value is Customer or Vendor.
func (p Party) Validate() error {
	if p != Customer && p != Vendor {
		return errs.NewValueIsInvalidErrorWithCause("party",
			fmt.Errorf("%d is not a valid party", p))
	}
	return nil
}

// String returns the wire name of the party.
func (p Party) String() string {
	switch p {
	case Customer:
		return "customer"
	case Vendor:
		return "vendor"
	default:
		return "unknown"
	}
}

// Other returns the opposite party. Other of an invalid party is UnknownParty.
func (p Party) Other() Party {
	switch p {
	case Customer:
		return Vendor
	case Vendor:
		return Customer
	default:
		return UnknownParty
	}
}

// Confirmation records one party's attestation that delivery happened.
// A confirmation only ever flips Confirmed from false to true; re-confirming
// refreshes the timestamp and location but never reverses the flag.
type Confirmation struct {
	confirmed bool
	timestamp *time.Time
	location  *kernel.GeoPoint
}

// Confirmed reports whether the party attested delivery.
func (c Confirmation) Confirmed() bool {
	return c.confirmed
}

// Timestamp returns when the party confirmed, nil if not confirmed.
func (c Confirmation) Timestamp() *time.Time {
	return c.timestamp
}

// Location returns where the party confirmed, nil when not reported.
func (c Confirmation) Location() *kernel.GeoPoint {
	return c.location
}

// RestoreConfirmation rebuilds a Confirmation from persisted state.
func RestoreConfirmation(confirmed bool, timestamp *time.Time, location *kernel.GeoPoint) Confirmation {
	return Confirmation{confirmed: confirmed, timestamp: timestamp, location: location}
}
