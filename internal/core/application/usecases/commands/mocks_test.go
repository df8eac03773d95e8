package commands_test

import (
	"context"
	"time"

	"hatbazar/internal/core/application/usecases/commands"
	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/notification"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Add(ctx context.Context, n notification.Notification) notification.Notification {
	args := m.Called(ctx, n)
	return args.Get(0).(notification.Notification)
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

type MockDemandSource struct{ mock.Mock }

func (m *MockDemandSource) ListDemands(ctx context.Context) ([]demand.Demand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]demand.Demand), args.Error(1)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestOrderWithStatus(status order.Status) (*order.Order, error) {
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.Details{
			Items:       []order.Item{{Name: "Rice", Quantity: 2}},
			TotalAmount: 150,
		},
		testNow,
	)
	if err != nil {
		return nil, err
	}

	steps := map[order.Status][]order.Status{
		order.Pending:        {},
		order.Accepted:       {order.Accepted},
		order.OutForDelivery: {order.Accepted, order.OutForDelivery},
		order.Delivered:      {order.Accepted, order.OutForDelivery, order.Delivered},
		order.Cancelled:      {order.Cancelled},
	}
	for _, next := range steps[status] {
		if err = aggregate.ChangeStatus(next, testNow); err != nil {
			return nil, err
		}
	}
	return aggregate, nil
}
