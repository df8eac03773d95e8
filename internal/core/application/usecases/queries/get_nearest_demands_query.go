package queries

import (
	"errors"

	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/pkg/guard"
)

var ErrGetNearestDemandsQueryIsNotConstructed = errors.New(
	"GetNearestDemandsQuery must be created via NewGetNearestDemandsQuery constructor",
)

// DefaultNearestDemandsLimit is how many nearby demands a vendor sees when
// no explicit limit is requested.
const DefaultNearestDemandsLimit = 5

// GetNearestDemandsQuery asks the vendor backend for the demands closest to
// a vendor's position. The geo lookup is a remote black box; this core only
// shapes the result.
type GetNearestDemandsQuery struct { //nolint:recvcheck //using for validation
	at    kernel.GeoPoint
	limit int

	guard guard.ConstructorGuard
}

// NewGetNearestDemandsQuery creates a nearest-demands query. A non-positive
// limit falls back to DefaultNearestDemandsLimit.
func NewGetNearestDemandsQuery(at kernel.GeoPoint, limit int) (GetNearestDemandsQuery, error) {
	q := GetNearestDemandsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAt(at); err != nil {
		return GetNearestDemandsQuery{}, err
	}
	q.setLimit(limit)

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearestDemandsQueryIsNotConstructed if validation fails.
func (q GetNearestDemandsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearestDemandsQueryIsNotConstructed)
}

// At returns the position to search around.
func (q GetNearestDemandsQuery) At() kernel.GeoPoint {
	return q.at
}

// Limit returns the maximum number of results.
func (q GetNearestDemandsQuery) Limit() int {
	return q.limit
}

func (q *GetNearestDemandsQuery) setAt(at kernel.GeoPoint) error {
	if err := at.Validate(); err != nil {
		return err
	}
	q.at = at
	return nil
}

func (q *GetNearestDemandsQuery) setLimit(limit int) {
	if limit <= 0 {
		limit = DefaultNearestDemandsLimit
	}
	q.limit = limit
}

// NearbyDemandResponse is one demand near the queried position. Distance is
// in meters, rounded to two decimal places.
type NearbyDemandResponse struct {
	Demand         demand.Demand
	Urgency        demand.Urgency
	DistanceMeters float64
}
