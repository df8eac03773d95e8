package commands_test

import (
	"errors"
	"testing"

	"hatbazar/internal/core/application/usecases/commands"
	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/notification"
	"hatbazar/internal/core/domain/services"
	"hatbazar/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func demandOf(id string, category demand.Category, expiresInHours float64) demand.Demand {
	return demand.Demand{ID: id, Category: category, Quantity: 1, ExpiresInHours: expiresInHours}
}

func vegetablesSnapshot(n int) []demand.Demand {
	demands := make([]demand.Demand, 0, n)
	for i := 0; i < n; i++ {
		demands = append(demands, demandOf(string(rune('a'+i)), demand.Vegetables, 10))
	}
	return demands
}

func newRefreshHandler(source *MockDemandSource, notifier *MockNotifier) *commands.RefreshDemandsCommandHandler {
	return commands.NewRefreshDemandsCommandHandler(
		source, services.NewDemandAggregator(), notifier, services.DefaultHotspotThreshold)
}

func expectAdd(notifier *MockNotifier, match func(notification.Notification) bool) *mock.Call {
	return notifier.On("Add", mock.Anything, mock.MatchedBy(match)).
		Return(notification.Notification{})
}

func TestRefreshDemandsCommandHandler_Handle_UrgentAlertsOncePerDemand(t *testing.T) {
	ctx := t.Context()
	snapshot := []demand.Demand{
		demandOf("d1", demand.Medicine, 2),
		demandOf("d2", demand.Fruits, 48),
	}

	source := new(MockDemandSource)
	source.On("ListDemands", ctx).Return(snapshot, nil).Twice()

	notifier := new(MockNotifier)
	expectAdd(notifier, func(n notification.Notification) bool {
		return n.Type == notification.TypeUrgent
	}).Once()

	handler := newRefreshHandler(source, notifier)

	// Given the same snapshot twice, the urgent alert fires only once.
	require.NoError(t, handler.Handle(ctx, commands.NewRefreshDemandsCommand()))
	require.NoError(t, handler.Handle(ctx, commands.NewRefreshDemandsCommand()))

	notifier.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "Add", 1)
}

func TestRefreshDemandsCommandHandler_Handle_HotspotThreshold(t *testing.T) {
	t.Run("four demands of one category stay quiet", func(t *testing.T) {
		ctx := t.Context()
		source := new(MockDemandSource)
		source.On("ListDemands", ctx).Return(vegetablesSnapshot(4), nil).Once()

		notifier := new(MockNotifier)

		handler := newRefreshHandler(source, notifier)
		require.NoError(t, handler.Handle(ctx, commands.NewRefreshDemandsCommand()))

		notifier.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("five demands fire exactly one hotspot alert", func(t *testing.T) {
		ctx := t.Context()
		source := new(MockDemandSource)
		source.On("ListDemands", ctx).Return(vegetablesSnapshot(5), nil).Once()

		notifier := new(MockNotifier)
		expectAdd(notifier, func(n notification.Notification) bool {
			return n.Type == notification.TypeInfo
		}).Once()

		handler := newRefreshHandler(source, notifier)
		require.NoError(t, handler.Handle(ctx, commands.NewRefreshDemandsCommand()))

		notifier.AssertExpectations(t)
		notifier.AssertNumberOfCalls(t, "Add", 1)
	})
}

func TestRefreshDemandsCommandHandler_Handle_HotspotRearmsAfterCoolingDown(t *testing.T) {
	ctx := t.Context()

	source := new(MockDemandSource)
	mock.InOrder(
		source.On("ListDemands", ctx).Return(vegetablesSnapshot(5), nil).Once(), // hot: alert
		source.On("ListDemands", ctx).Return(vegetablesSnapshot(6), nil).Once(), // still hot: quiet
		source.On("ListDemands", ctx).Return(vegetablesSnapshot(2), nil).Once(), // cooled: re-arm
		source.On("ListDemands", ctx).Return(vegetablesSnapshot(5), nil).Once(), // hot again: alert
	)

	notifier := new(MockNotifier)
	expectAdd(notifier, func(n notification.Notification) bool {
		return n.Type == notification.TypeInfo
	}).Twice()

	handler := newRefreshHandler(source, notifier)
	for range 4 {
		require.NoError(t, handler.Handle(ctx, commands.NewRefreshDemandsCommand()))
	}

	notifier.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "Add", 2)
}

func TestRefreshDemandsCommandHandler_Handle_SourceFailure(t *testing.T) {
	ctx := t.Context()

	source := new(MockDemandSource)
	source.On("ListDemands", ctx).
		Return(nil, errs.NewExternalCallError("demand api", errors.New("timeout"))).Once()

	notifier := new(MockNotifier)

	handler := newRefreshHandler(source, notifier)
	err := handler.Handle(ctx, commands.NewRefreshDemandsCommand())

	require.ErrorIs(t, err, errs.ErrExternalCallFailed)
	notifier.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRefreshDemandsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	source := new(MockDemandSource)

	handler := newRefreshHandler(source, new(MockNotifier))
	err := handler.Handle(ctx, commands.RefreshDemandsCommand{}) // not constructed properly

	require.ErrorIs(t, err, commands.ErrRefreshDemandsCommandIsNotConstructed)
	source.AssertNotCalled(t, "ListDemands", mock.Anything)
}
