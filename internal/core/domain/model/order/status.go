package order

import (
	"errors"
	"fmt"

	"hatbazar/internal/pkg/errs"
)

// ErrInvalidStatusTransition is the sentinel for any status change requested
// outside the transition table. Wrap-compatible with errors.Is; the order is
// left unchanged whenever this is returned.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the delivery workflow both parties agreed to.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──┬──> OutForDelivery ──> Delivered
//	          │               │
//	          └──> Cancelled <┘
//
// Delivered and Cancelled are terminal. Status is a value object that
// validates transitions and provides the string representation used for
// persistence and API payloads.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for the vendor's decision.
	Pending

	// Accepted indicates the vendor agreed to fulfil the order.
	Accepted

	// OutForDelivery indicates the vendor dispatched the order.
	// Dual delivery confirmation only applies in this status.
	OutForDelivery

	// Delivered indicates both parties attested delivery.
	// Terminal state.
	Delivered

	// Cancelled indicates the order was withdrawn before dispatch.
	// Terminal state.
	Cancelled
)

// getStatusStrings returns the wire/persistence representation for every
// Status, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Accepted:       "accepted",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Accepted:       "accepted",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// transitionTargets returns the allowed moves out of each status.
// Delivered and Cancelled have no entries: they are terminal.
func transitionTargets() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Accepted, Cancelled},
		Accepted:       {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
	}
}

// StatusFromString parses the persistence/wire representation of a status.
// Returns an error for any string outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the valid lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, e.g. "out_for_delivery".
// Safe to call on any Status value; invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the move from s to next is allowed by the
// transition table, without performing it.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitionTargets()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the move from s to next.
//
// Returns:
//   - (next, nil) when the transition table allows the move
//   - (0, error wrapping ErrInvalidStatusTransition) otherwise
//
// The error message names both endpoints, e.g.
// "invalid status transition: accepted -> delivered".
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, next)
	}
	return next, nil
}
