package queries

import (
	"context"
	"slices"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"
)

// GetOrdersByUserQueryHandler retrieves the orders an actor participates in.
type GetOrdersByUserQueryHandler struct {
	reader ports.OrderReader
}

// NewGetOrdersByUserQueryHandler creates a handler over the committed order
// collection.
func NewGetOrdersByUserQueryHandler(reader ports.OrderReader) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{reader: reader}
}

// Handle returns the actor's orders, newest first.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0)
	for _, aggregate := range all {
		if participantID(aggregate, query.Role()).IsEqual(query.UserID()) {
			responses = append(responses, toOrderResponse(aggregate))
		}
	}

	slices.SortStableFunc(responses, func(a, b OrderResponse) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return responses, nil
}

func participantID(aggregate *order.Order, role order.Party) kernel.UUID {
	if role == order.Vendor {
		return aggregate.VendorID()
	}
	return aggregate.CustomerID()
}
