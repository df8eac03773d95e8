package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	httpin "hatbazar/internal/adapters/in/http"
	"hatbazar/internal/adapters/out/kvstore/orderrepo"
	"hatbazar/internal/core/application/usecases/commands"
	"hatbazar/internal/core/application/usecases/queries"
	"hatbazar/internal/core/domain/services"
	"hatbazar/internal/core/ports"
	"hatbazar/internal/jobs"
	"hatbazar/internal/notifications"
)

// CompositionRoot wires adapters into use-case handlers. Handlers are cheap
// to create; the stateful pieces (order store, dispatcher, refresh handler)
// are built once and shared.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	orderStore *orderrepo.Store
	dispatcher *notifications.Dispatcher
	clock      ports.Clock

	// Remote collaborators; nil when not configured.
	demandSource  ports.DemandSource
	vendorBackend ports.VendorBackend

	refreshHandler *commands.RefreshDemandsCommandHandler
}

// NewCompositionRoot assembles the application over the given key-value
// store. Loading the persisted order collection happens here; a corrupt
// snapshot is logged and skipped, an unreachable store fails startup.
func NewCompositionRoot(
	ctx context.Context,
	configs Config,
	kv ports.KeyValueStore,
	alerter ports.SoundAlerter,
	demandSource ports.DemandSource,
	vendorBackend ports.VendorBackend,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	clock := ports.SystemClock{}

	orderStore, err := orderrepo.NewStore(ctx, kv, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load order store: %w", err)
	}

	dispatcher := notifications.NewDispatcher(clock, alerter, logger)

	root := &CompositionRoot{
		config:        configs,
		logger:        logger,
		orderStore:    orderStore,
		dispatcher:    dispatcher,
		clock:         clock,
		demandSource:  demandSource,
		vendorBackend: vendorBackend,
	}

	if demandSource != nil {
		root.refreshHandler = commands.NewRefreshDemandsCommandHandler(
			demandSource,
			services.NewDemandAggregator(),
			dispatcher,
			services.DefaultHotspotThreshold,
		)
	}

	return root, nil
}

// Dispatcher returns the shared notification dispatcher.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.orderStore.NewUnitOfWork()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(), c.dispatcher, c.clock, c.vendorBackend)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory(), c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateGetOrdersByUserQueryHandler() queries.GetOrdersByUserQueryHandler {
	return queries.NewGetOrdersByUserQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetNearestDemandsQueryHandler() queries.GetNearestDemandsQueryHandler {
	return queries.NewGetNearestDemandsQueryHandler(c.vendorBackend)
}

// CreateHTTPServer builds the API surface over the shared handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateGetOrdersByUserQueryHandler(),
		c.CreateGetOrderStatsQueryHandler(),
		c.CreateGetNearestDemandsQueryHandler(),
		c.dispatcher,
	)
}

// CreateJobManager builds the background job layer. Returns nil when no
// demand backend is configured: there is nothing to poll.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.refreshHandler == nil {
		c.logger.Warn("demand api not configured, demand refresh job disabled")
		return nil
	}
	return jobs.NewJobManager(c.refreshHandler, c.config.DemandRefreshSpec, c.logger)
}

// Close releases the composition root's long-lived resources.
func (c *CompositionRoot) Close() {
	c.dispatcher.Close()
}

// NewLogger builds the process-wide structured logger.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
