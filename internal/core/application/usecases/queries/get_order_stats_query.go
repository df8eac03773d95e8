package queries

import (
	"errors"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/pkg/errs"
	"hatbazar/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves aggregate statistics over one actor's orders:
// lifecycle counts plus the summed environmental metrics.
type GetOrderStatsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   order.Party

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a stats query for one actor.
func NewGetOrderStatsQuery(userID kernel.UUID, role order.Party) (GetOrderStatsQuery, error) {
	q := GetOrderStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setUserID(userID),
		q.setRole(role),
	); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// UserID returns the actor whose stats are requested.
func (q GetOrderStatsQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns which side of the transaction the actor is on.
func (q GetOrderStatsQuery) Role() order.Party {
	return q.role
}

func (q *GetOrderStatsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	q.userID = userID
	return nil
}

func (q *GetOrderStatsQuery) setRole(role order.Party) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}

// OrderStatsResponse summarizes one actor's orders. Active covers accepted
// and out-for-delivery orders; completed counts delivered ones. The summed
// metrics cover all of the actor's orders regardless of status.
type OrderStatsResponse struct {
	Total            int
	Pending          int
	Active           int
	Completed        int
	TotalCarbonSaved float64
	TotalDistance    float64
}
