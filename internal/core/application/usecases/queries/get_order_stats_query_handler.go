package queries

import (
	"context"

	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"
)

// GetOrderStatsQueryHandler computes lifecycle counts and summed metrics
// over one actor's orders.
type GetOrderStatsQueryHandler struct {
	reader ports.OrderReader
}

// NewGetOrderStatsQueryHandler creates a handler over the committed order
// collection.
func NewGetOrderStatsQueryHandler(reader ports.OrderReader) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{reader: reader}
}

// Handle computes the statistics in one pass over the collection.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (OrderStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsResponse{}, err
	}

	all, err := h.reader.GetAll(ctx)
	if err != nil {
		return OrderStatsResponse{}, err
	}

	var stats OrderStatsResponse
	for _, aggregate := range all {
		if !participantID(aggregate, query.Role()).IsEqual(query.UserID()) {
			continue
		}

		stats.Total++
		switch aggregate.Status() {
		case order.Pending:
			stats.Pending++
		case order.Accepted, order.OutForDelivery:
			stats.Active++
		case order.Delivered:
			stats.Completed++
		}
		stats.TotalCarbonSaved += aggregate.CarbonSaved()
		stats.TotalDistance += aggregate.EstimatedDistance()
	}

	return stats, nil
}
