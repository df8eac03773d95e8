package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hatbazar/internal/core/application/usecases/queries"
	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"
	"hatbazar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockVendorBackend struct{ mock.Mock }

func (m *MockVendorBackend) AcceptOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockVendorBackend) DeliverOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockVendorBackend) NearestDemands(
	ctx context.Context, at kernel.GeoPoint, limit int,
) ([]ports.NearbyDemand, error) {
	args := m.Called(ctx, at, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.NearbyDemand), args.Error(1)
}

var baseTime = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type orderSpec struct {
	customerID kernel.UUID
	vendorID   kernel.UUID
	status     order.Status
	carbon     float64
	distance   float64
	createdAt  time.Time
}

func buildOrder(t *testing.T, spec orderSpec) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		spec.customerID,
		spec.vendorID,
		order.Details{
			Items:             []order.Item{{Name: "Rice", Quantity: 1}},
			TotalAmount:       100,
			CarbonSaved:       spec.carbon,
			EstimatedDistance: spec.distance,
		},
		spec.createdAt,
	)
	require.NoError(t, err)

	steps := map[order.Status][]order.Status{
		order.Pending:        {},
		order.Accepted:       {order.Accepted},
		order.OutForDelivery: {order.Accepted, order.OutForDelivery},
		order.Delivered:      {order.Accepted, order.OutForDelivery, order.Delivered},
		order.Cancelled:      {order.Cancelled},
	}
	for _, next := range steps[spec.status] {
		require.NoError(t, aggregate.ChangeStatus(next, spec.createdAt))
	}
	return aggregate
}

func TestGetOrdersByUserQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	older := buildOrder(t, orderSpec{
		customerID: customerID, vendorID: vendorID,
		status: order.Pending, createdAt: baseTime,
	})
	newer := buildOrder(t, orderSpec{
		customerID: customerID, vendorID: otherID,
		status: order.Accepted, createdAt: baseTime.Add(time.Hour),
	})
	foreign := buildOrder(t, orderSpec{
		customerID: otherID, vendorID: vendorID,
		status: order.Pending, createdAt: baseTime,
	})

	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return([]*order.Order{older, newer, foreign}, nil)

	handler := queries.NewGetOrdersByUserQueryHandler(reader)

	t.Run("filters by customer role, newest first", func(t *testing.T) {
		query, err := queries.NewGetOrdersByUserQuery(customerID, order.Customer)
		require.NoError(t, err)

		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.True(t, responses[0].ID.IsEqual(newer.ID()))
		assert.True(t, responses[1].ID.IsEqual(older.ID()))
	})

	t.Run("filters by vendor role", func(t *testing.T) {
		query, err := queries.NewGetOrdersByUserQuery(vendorID, order.Vendor)
		require.NoError(t, err)

		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 2)
		for _, r := range responses {
			assert.True(t, r.VendorID.IsEqual(vendorID))
		}
	})

	t.Run("unknown user yields empty result", func(t *testing.T) {
		query, err := queries.NewGetOrdersByUserQuery(kernel.NewUUID(), order.Customer)
		require.NoError(t, err)

		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetOrdersByUserQuery{})

		assert.ErrorIs(t, err, queries.ErrGetOrdersByUserQueryIsNotConstructed)
	})
}

func TestGetOrderStatsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	orders := []*order.Order{
		buildOrder(t, orderSpec{customerID: customerID, vendorID: vendorID,
			status: order.Pending, carbon: 1.5, distance: 2, createdAt: baseTime}),
		buildOrder(t, orderSpec{customerID: customerID, vendorID: vendorID,
			status: order.Accepted, carbon: 0.5, distance: 3, createdAt: baseTime}),
		buildOrder(t, orderSpec{customerID: customerID, vendorID: vendorID,
			status: order.OutForDelivery, carbon: 1, distance: 1, createdAt: baseTime}),
		buildOrder(t, orderSpec{customerID: customerID, vendorID: vendorID,
			status: order.Delivered, carbon: 2, distance: 4, createdAt: baseTime}),
		buildOrder(t, orderSpec{customerID: customerID, vendorID: vendorID,
			status: order.Cancelled, createdAt: baseTime}),
		// Another customer's order must not leak into the stats.
		buildOrder(t, orderSpec{customerID: kernel.NewUUID(), vendorID: vendorID,
			status: order.Delivered, carbon: 99, distance: 99, createdAt: baseTime}),
	}

	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return(orders, nil)

	handler := queries.NewGetOrderStatsQueryHandler(reader)

	query, err := queries.NewGetOrderStatsQuery(customerID, order.Customer)
	require.NoError(t, err)

	stats, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Completed)
	assert.InDelta(t, 5.0, stats.TotalCarbonSaved, 0.0001)
	assert.InDelta(t, 10.0, stats.TotalDistance, 0.0001)
}

func TestGetOrderStatsQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("GetAll", ctx).Return(nil, errors.New("storage error"))

	handler := queries.NewGetOrderStatsQueryHandler(reader)
	query, err := queries.NewGetOrderStatsQuery(kernel.NewUUID(), order.Vendor)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)

	require.EqualError(t, err, "storage error")
}

func TestGetNearestDemandsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	at, err := kernel.NewGeoPoint(23.81, 90.41)
	require.NoError(t, err)

	t.Run("shapes the backend result", func(t *testing.T) {
		backend := new(MockVendorBackend)
		backend.On("NearestDemands", ctx, at, 5).Return([]ports.NearbyDemand{
			{
				Demand:         demand.Demand{ID: "d1", Category: demand.Medicine, Quantity: 1, ExpiresInHours: 2},
				DistanceMeters: 120.456,
			},
			{
				Demand:         demand.Demand{ID: "d2", Category: demand.Fruits, Quantity: 2, ExpiresInHours: 30},
				DistanceMeters: 900.001,
			},
		}, nil).Once()

		handler := queries.NewGetNearestDemandsQueryHandler(backend)
		query, err := queries.NewGetNearestDemandsQuery(at, 0) // defaults to 5
		require.NoError(t, err)

		responses, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, demand.High, responses[0].Urgency)
		assert.InDelta(t, 120.46, responses[0].DistanceMeters, 0.0001)
		assert.Equal(t, demand.Low, responses[1].Urgency)
		assert.InDelta(t, 900.0, responses[1].DistanceMeters, 0.0001)
		backend.AssertExpectations(t)
	})

	t.Run("backend failure surfaces as external call error", func(t *testing.T) {
		backend := new(MockVendorBackend)
		backend.On("NearestDemands", ctx, at, 5).
			Return(nil, errs.NewExternalCallError("vendor api", errors.New("down"))).Once()

		handler := queries.NewGetNearestDemandsQueryHandler(backend)
		query, err := queries.NewGetNearestDemandsQuery(at, 5)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrExternalCallFailed)
	})

	t.Run("unconstructed point is rejected", func(t *testing.T) {
		_, err := queries.NewGetNearestDemandsQuery(kernel.GeoPoint{}, 5)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no backend configured fails as an external call", func(t *testing.T) {
		handler := queries.NewGetNearestDemandsQueryHandler(nil)
		query, err := queries.NewGetNearestDemandsQuery(at, 5)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrExternalCallFailed)
		assert.ErrorContains(t, err, queries.ErrVendorBackendNotConfigured.Error())
	})
}
