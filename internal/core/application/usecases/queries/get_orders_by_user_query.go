// Package queries contains read-only operations over committed state.
// Query handlers never open a unit of work; they read through the
// repository's reader interface or call external collaborators directly.
package queries

import (
	"errors"
	"time"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/pkg/errs"
	"hatbazar/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery retrieves all orders one actor participates in,
// as customer or as vendor depending on role.
//
// Example:
//
//	query, err := NewGetOrdersByUserQuery(userID, order.Customer)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   order.Party

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for one actor's orders. Validates
// the user ID and that role names a valid party.
func NewGetOrdersByUserQuery(userID kernel.UUID, role order.Party) (GetOrdersByUserQuery, error) {
	q := GetOrdersByUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setUserID(userID),
		q.setRole(role),
	); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByUserQueryIsNotConstructed if validation fails.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the actor whose orders are requested.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns which side of the transaction the actor is on.
func (q GetOrdersByUserQuery) Role() order.Party {
	return q.role
}

func (q *GetOrdersByUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	q.userID = userID
	return nil
}

func (q *GetOrdersByUserQuery) setRole(role order.Party) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}

// ConfirmationResponse is one party's delivery attestation as exposed to
// read models.
type ConfirmationResponse struct {
	Confirmed bool
	Timestamp *time.Time
	Location  *kernel.GeoPoint
}

// OrderResponse is the read-model representation of one order.
type OrderResponse struct {
	ID                   kernel.UUID
	CustomerID           kernel.UUID
	VendorID             kernel.UUID
	DemandID             string
	Items                []order.Item
	TotalAmount          float64
	PaymentMethod        string
	DeliveryLocation     *kernel.GeoPoint
	Notes                string
	EstimatedDistance    float64
	CarbonSaved          float64
	Status               order.Status
	CustomerConfirmation ConfirmationResponse
	VendorConfirmation   ConfirmationResponse
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:                   aggregate.ID(),
		CustomerID:           aggregate.CustomerID(),
		VendorID:             aggregate.VendorID(),
		DemandID:             aggregate.DemandID(),
		Items:                aggregate.Items(),
		TotalAmount:          aggregate.TotalAmount(),
		PaymentMethod:        aggregate.PaymentMethod(),
		DeliveryLocation:     aggregate.DeliveryLocation(),
		Notes:                aggregate.Notes(),
		EstimatedDistance:    aggregate.EstimatedDistance(),
		CarbonSaved:          aggregate.CarbonSaved(),
		Status:               aggregate.Status(),
		CustomerConfirmation: toConfirmationResponse(aggregate.Confirmation(order.Customer)),
		VendorConfirmation:   toConfirmationResponse(aggregate.Confirmation(order.Vendor)),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

func toConfirmationResponse(c order.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		Confirmed: c.Confirmed(),
		Timestamp: c.Timestamp(),
		Location:  c.Location(),
	}
}
