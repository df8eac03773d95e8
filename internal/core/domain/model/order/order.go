package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/pkg/errs"
)

// DefaultPaymentMethod is applied when an order is created without an
// explicit payment method (cash on delivery).
const DefaultPaymentMethod = "cod"

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Item is one line of an order: a named good and how many units of it.
type Item struct {
	Name     string
	Quantity int
}

// Details carries the caller-supplied attributes of a new order. Identity
// references and timestamps are passed separately; everything here is
// payload. Zero values are acceptable for every optional field.
type Details struct {
	// DemandID references the demand the order answers; empty when the
	// order was placed directly.
	DemandID string

	// Items is the ordered list of goods; each entry needs a non-empty
	// name and a positive quantity.
	Items []Item

	// TotalAmount is the agreed price, non-negative.
	TotalAmount float64

	// PaymentMethod defaults to DefaultPaymentMethod when empty.
	PaymentMethod string

	// DeliveryLocation is where the goods should arrive, when known.
	DeliveryLocation *kernel.GeoPoint

	// Notes is free-form text from the customer.
	Notes string

	// EstimatedDistance is the projected delivery distance in km, non-negative.
	EstimatedDistance float64

	// CarbonSaved is the projected CO2 saving in kg, non-negative.
	CarbonSaved float64
}

// Order represents a commerce transaction between a customer and a vendor,
// tracked through the delivery lifecycle. It is the aggregate root that owns
// the status state machine and the dual delivery confirmations.
//
// Order follows these invariants:
//   - Status only advances along the transition table (see Status)
//   - Delivery confirmations only flip from unconfirmed to confirmed
//   - UpdatedAt is monotonically non-decreasing and refreshed on every mutation
//   - Orders are never deleted; history is retained
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all mutations go
// through validated methods.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	vendorID   kernel.UUID

	details Details
	status  Status

	customerConfirmation Confirmation
	vendorConfirmation   Confirmation

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in Pending status with zeroed confirmations and
// now as both creation and update timestamp. The payment method defaults to
// DefaultPaymentMethod when unspecified.
//
// Returns a validation error if any identity reference is invalid, any item
// is malformed, or a monetary/metric field is negative.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	details Details,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if details.PaymentMethod == "" {
		details.PaymentMethod = DefaultPaymentMethod
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state, including its status,
// confirmations, and timestamps. Used by repositories when loading the
// collection; the same invariants as NewOrder apply, plus the status must be
// a valid lifecycle state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	details Details,
	status Status,
	customerConfirmation Confirmation,
	vendorConfirmation Confirmation,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		customerConfirmation: customerConfirmation,
		vendorConfirmation:   vendorConfirmation,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setDetails(details),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the requester's identity reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the fulfiller's identity reference.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// DemandID returns the originating demand reference, empty when absent.
func (o *Order) DemandID() string {
	return o.details.DemandID
}

// Items returns a copy of the ordered goods list.
func (o *Order) Items() []Item {
	return slices.Clone(o.details.Items)
}

// TotalAmount returns the agreed price.
func (o *Order) TotalAmount() float64 {
	return o.details.TotalAmount
}

// PaymentMethod returns the payment method, never empty.
func (o *Order) PaymentMethod() string {
	return o.details.PaymentMethod
}

// DeliveryLocation returns the destination, nil when not provided.
func (o *Order) DeliveryLocation() *kernel.GeoPoint {
	return o.details.DeliveryLocation
}

// Notes returns the customer's free-form notes.
func (o *Order) Notes() string {
	return o.details.Notes
}

// EstimatedDistance returns the projected delivery distance in km.
func (o *Order) EstimatedDistance() float64 {
	return o.details.EstimatedDistance
}

// CarbonSaved returns the projected CO2 saving in kg.
func (o *Order) CarbonSaved() float64 {
	return o.details.CarbonSaved
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation instant.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Confirmation returns the delivery confirmation of the given party.
// An invalid party yields a zero (unconfirmed) Confirmation.
func (o *Order) Confirmation(party Party) Confirmation {
	switch party {
	case Customer:
		return o.customerConfirmation
	case Vendor:
		return o.vendorConfirmation
	default:
		return Confirmation{}
	}
}

// BothPartiesConfirmed reports whether customer and vendor both attested delivery.
func (o *Order) BothPartiesConfirmed() bool {
	return o.customerConfirmation.confirmed && o.vendorConfirmation.confirmed
}

// ChangeStatus moves the order to next according to the transition table.
//
// On success the status is updated and UpdatedAt is refreshed. On failure
// (error wrapping ErrInvalidStatusTransition, or an invalid target value)
// the order is left completely unchanged.
//
// Example:
//
//	if err := o.ChangeStatus(order.Accepted, time.Now()); err != nil {
//	    // transition rejected, o still holds its previous status
//	}
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// Confirm records the party's delivery attestation at the given instant,
// optionally with the coordinates it was made from. Confirming again
// refreshes the timestamp and location; the confirmed flag never reverses.
//
// Confirm does not advance the status by itself; deciding whether both
// confirmations complete the delivery belongs to the coordinating use case.
func (o *Order) Confirm(party Party, at time.Time, location *kernel.GeoPoint) error {
	if err := party.Validate(); err != nil {
		return err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	ts := at
	confirmation := Confirmation{confirmed: true, timestamp: &ts, location: location}
	switch party {
	case Customer:
		o.customerConfirmation = confirmation
	case Vendor:
		o.vendorConfirmation = confirmation
	}

	o.touch(at)
	return nil
}

// touch refreshes updatedAt, keeping it monotonically non-decreasing even if
// the supplied clock reads slightly behind a previous mutation.
func (o *Order) touch(now time.Time) {
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	o.vendorID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.TotalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%v is negative", details.TotalAmount))
	}
	if details.EstimatedDistance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDistance",
			fmt.Errorf("%v is negative", details.EstimatedDistance))
	}
	if details.CarbonSaved < 0 {
		return errs.NewValueIsInvalidErrorWithCause("carbonSaved",
			fmt.Errorf("%v is negative", details.CarbonSaved))
	}
	for i, item := range details.Items {
		if item.Name == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].name", i))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	if details.DeliveryLocation != nil {
		if err := details.DeliveryLocation.Validate(); err != nil {
			return err
		}
	}

	details.Items = slices.Clone(details.Items)
	o.details = details
	return nil
}
