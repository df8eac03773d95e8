// Package http exposes the marketplace core over a JSON HTTP API.
package http

import (
	"errors"
	"net/http"

	"hatbazar/internal/core/application/usecases/commands"
	"hatbazar/internal/core/application/usecases/queries"
	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
	"hatbazar/internal/notifications"
	"hatbazar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler

	// Query handlers
	getOrdersByUserHandler   queries.GetOrdersByUserQueryHandler
	getOrderStatsHandler     queries.GetOrderStatsQueryHandler
	getNearestDemandsHandler queries.GetNearestDemandsQueryHandler

	dispatcher *notifications.Dispatcher
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the notification dispatcher.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	getNearestDemandsHandler queries.GetNearestDemandsQueryHandler,
	dispatcher *notifications.Dispatcher,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		confirmDeliveryHandler:   confirmDeliveryHandler,
		getOrdersByUserHandler:   getOrdersByUserHandler,
		getOrderStatsHandler:     getOrderStatsHandler,
		getNearestDemandsHandler: getNearestDemandsHandler,
		dispatcher:               dispatcher,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders", s.GetOrders)
	e.GET("/api/orders/stats", s.GetOrderStats)
	e.PATCH("/api/orders/:id/status", s.UpdateOrderStatus)
	e.POST("/api/orders/:id/confirmations", s.ConfirmDelivery)

	e.GET("/api/demands/nearby", s.GetNearbyDemands)

	e.GET("/api/notifications", s.GetNotifications)
	e.GET("/api/notifications/unread-count", s.GetUnreadCount)
	e.PATCH("/api/notifications/:id/read", s.MarkNotificationRead)
	e.DELETE("/api/notifications/:id", s.RemoveNotification)
	e.DELETE("/api/notifications", s.ClearNotifications)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customerId: "+err.Error())
	}
	vendorID, err := kernel.UUIDFromString(body.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendorId: "+err.Error())
	}

	details := toOrderDetails(body)
	if body.DeliveryLocation != nil {
		location, locErr := kernel.NewGeoPoint(body.DeliveryLocation.Lat, body.DeliveryLocation.Lng)
		if locErr != nil {
			return badRequest(ctx, "Invalid deliveryLocation: "+locErr.Error())
		}
		details.DeliveryLocation = &location
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, vendorID, details)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// GetOrders handles GET /api/orders - lists one actor's orders, newest first.
// Requires userId and role query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := userScopedQuery(ctx, queries.NewGetOrdersByUserQuery)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toWireOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/orders/stats - lifecycle counts and summed
// metrics for one actor.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	query, err := userScopedQuery(ctx, queries.NewGetOrderStatsQuery)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStats{
		Total:            stats.Total,
		Pending:          stats.Pending,
		Active:           stats.Active,
		Completed:        stats.Completed,
		TotalCarbonSaved: stats.TotalCarbonSaved,
		TotalDistance:    stats.TotalDistance,
	})
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body UpdateOrderStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/orders/:id/confirmations - records one
// party's delivery attestation.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body ConfirmDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	party, err := order.PartyFromString(body.Party)
	if err != nil {
		return badRequest(ctx, "Invalid party: "+err.Error())
	}

	var location *kernel.GeoPoint
	if body.Location != nil {
		point, locErr := kernel.NewGeoPoint(body.Location.Lat, body.Location.Lng)
		if locErr != nil {
			return badRequest(ctx, "Invalid location: "+locErr.Error())
		}
		location = &point
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, party, location)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNearbyDemands handles GET /api/demands/nearby - demands closest to a
// vendor's position. Requires lat and lng query parameters; limit is
// optional.
func (s *Server) GetNearbyDemands(ctx echo.Context) error {
	var params struct {
		Lat   float64 `query:"lat"`
		Lng   float64 `query:"lng"`
		Limit int     `query:"limit"`
	}
	if err := ctx.Bind(&params); err != nil {
		return badRequest(ctx, "Invalid query parameters")
	}

	at, err := kernel.NewGeoPoint(params.Lat, params.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	query, err := queries.NewGetNearestDemandsQuery(at, params.Limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	nearby, err := s.getNearestDemandsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]NearbyDemand, len(nearby))
	for i, n := range nearby {
		var location *GeoPoint
		if n.Demand.Location != nil {
			location = &GeoPoint{Lat: n.Demand.Location.Lat(), Lng: n.Demand.Location.Lng()}
		}
		response[i] = NearbyDemand{
			ID:             n.Demand.ID,
			Category:       string(n.Demand.Category),
			Quantity:       n.Demand.Quantity,
			ExpiresInHours: n.Demand.ExpiresInHours,
			Urgency:        n.Urgency.String(),
			DistanceMeters: n.DistanceMeters,
			Location:       location,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/notifications - lists the active alerts.
func (s *Server) GetNotifications(ctx echo.Context) error {
	active := s.dispatcher.List()
	response := make([]Notification, len(active))
	for i, n := range active {
		response[i] = toWireNotification(n)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetUnreadCount handles GET /api/notifications/unread-count.
func (s *Server) GetUnreadCount(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, UnreadCount{Count: s.dispatcher.UnreadCount()})
}

// MarkNotificationRead handles PATCH /api/notifications/:id/read. Marking an
// alert that is already gone succeeds.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	s.dispatcher.MarkRead(ctx.Param("id"))
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveNotification handles DELETE /api/notifications/:id. Removal is
// idempotent.
func (s *Server) RemoveNotification(ctx echo.Context) error {
	s.dispatcher.Remove(ctx.Param("id"))
	return ctx.NoContent(http.StatusNoContent)
}

// ClearNotifications handles DELETE /api/notifications - dismisses every
// active alert.
func (s *Server) ClearNotifications(ctx echo.Context) error {
	s.dispatcher.ClearAll()
	return ctx.NoContent(http.StatusNoContent)
}

// userScopedQuery parses the userId and role query parameters shared by the
// order read endpoints and builds the query through the given constructor.
func userScopedQuery[T any](
	ctx echo.Context,
	construct func(kernel.UUID, order.Party) (T, error),
) (T, error) {
	var zero T

	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return zero, errors.New("invalid userId: " + err.Error())
	}
	role, err := order.PartyFromString(ctx.QueryParam("role"))
	if err != nil {
		return zero, errors.New("invalid role: " + err.Error())
	}

	return construct(userID, role)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates use-case failures into HTTP status codes: missing
// aggregates are 404, lifecycle violations 409, validation failures 400,
// collaborator outages 502, everything else 500.
func mapError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStatusTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrExternalCallFailed):
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
