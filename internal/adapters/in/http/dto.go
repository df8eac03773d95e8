package http

import (
	"time"

	"hatbazar/internal/core/application/usecases/queries"
	"hatbazar/internal/core/domain/model/notification"
	"hatbazar/internal/core/domain/model/order"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPoint is the wire form of a coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OrderItem is one line of an order on the wire.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	CustomerID        string      `json:"customerId"`
	VendorID          string      `json:"vendorId"`
	DemandID          string      `json:"demandId,omitempty"`
	Items             []OrderItem `json:"items"`
	TotalAmount       float64     `json:"totalAmount"`
	PaymentMethod     string      `json:"paymentMethod,omitempty"`
	DeliveryLocation  *GeoPoint   `json:"deliveryLocation,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	EstimatedDistance float64     `json:"estimatedDistance,omitempty"`
	CarbonSaved       float64     `json:"carbonSaved,omitempty"`
}

// OrderCreated is the response body for a successfully placed order.
type OrderCreated struct {
	ID string `json:"id"`
}

// UpdateOrderStatus is the request body for a status change.
type UpdateOrderStatus struct {
	Status string `json:"status"`
}

// ConfirmDelivery is the request body for one party's delivery attestation.
type ConfirmDelivery struct {
	Party    string    `json:"party"`
	Location *GeoPoint `json:"location,omitempty"`
}

// Confirmation is one party's attestation on the wire.
type Confirmation struct {
	Confirmed bool       `json:"confirmed"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Location  *GeoPoint  `json:"location,omitempty"`
}

// DeliveryConfirmations groups both parties' attestations.
type DeliveryConfirmations struct {
	Customer Confirmation `json:"customer"`
	Vendor   Confirmation `json:"vendor"`
}

// Order is the read-model representation of one order on the wire.
type Order struct {
	ID                    string                `json:"id"`
	CustomerID            string                `json:"customerId"`
	VendorID              string                `json:"vendorId"`
	DemandID              string                `json:"demandId,omitempty"`
	Items                 []OrderItem           `json:"items"`
	TotalAmount           float64               `json:"totalAmount"`
	PaymentMethod         string                `json:"paymentMethod"`
	DeliveryLocation      *GeoPoint             `json:"deliveryLocation,omitempty"`
	Notes                 string                `json:"notes,omitempty"`
	EstimatedDistance     float64               `json:"estimatedDistance"`
	CarbonSaved           float64               `json:"carbonSaved"`
	Status                string                `json:"status"`
	DeliveryConfirmations DeliveryConfirmations `json:"deliveryConfirmations"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

// OrderStats summarizes one actor's orders.
type OrderStats struct {
	Total            int     `json:"total"`
	Pending          int     `json:"pending"`
	Active           int     `json:"active"`
	Completed        int     `json:"completed"`
	TotalCarbonSaved float64 `json:"totalCarbonSaved"`
	TotalDistance    float64 `json:"totalDistance"`
}

// NearbyDemand is one demand near the queried position.
type NearbyDemand struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	ExpiresInHours float64   `json:"expiresInHours"`
	Urgency        string    `json:"urgency"`
	DistanceMeters float64   `json:"distanceMeters"`
	Location       *GeoPoint `json:"location,omitempty"`
}

// Notification is one active alert on the wire. Duration is in milliseconds.
type Notification struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Priority   string    `json:"priority"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
	AutoRemove bool      `json:"autoRemove"`
	DurationMs int64     `json:"durationMs"`
	Location   string    `json:"location,omitempty"`
}

// UnreadCount is the response body of the unread-count endpoint.
type UnreadCount struct {
	Count int `json:"count"`
}

func toWireOrder(r queries.OrderResponse) Order {
	items := make([]OrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = OrderItem{Name: item.Name, Quantity: item.Quantity}
	}

	var location *GeoPoint
	if r.DeliveryLocation != nil {
		location = &GeoPoint{Lat: r.DeliveryLocation.Lat(), Lng: r.DeliveryLocation.Lng()}
	}

	return Order{
		ID:                r.ID.String(),
		CustomerID:        r.CustomerID.String(),
		VendorID:          r.VendorID.String(),
		DemandID:          r.DemandID,
		Items:             items,
		TotalAmount:       r.TotalAmount,
		PaymentMethod:     r.PaymentMethod,
		DeliveryLocation:  location,
		Notes:             r.Notes,
		EstimatedDistance: r.EstimatedDistance,
		CarbonSaved:       r.CarbonSaved,
		Status:            r.Status.String(),
		DeliveryConfirmations: DeliveryConfirmations{
			Customer: toWireConfirmation(r.CustomerConfirmation),
			Vendor:   toWireConfirmation(r.VendorConfirmation),
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toWireConfirmation(c queries.ConfirmationResponse) Confirmation {
	var location *GeoPoint
	if c.Location != nil {
		location = &GeoPoint{Lat: c.Location.Lat(), Lng: c.Location.Lng()}
	}
	return Confirmation{
		Confirmed: c.Confirmed,
		Timestamp: c.Timestamp,
		Location:  location,
	}
}

func toWireNotification(n notification.Notification) Notification {
	return Notification{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		Priority:   string(n.Priority),
		Timestamp:  n.Timestamp,
		Read:       n.Read,
		AutoRemove: n.AutoRemove,
		DurationMs: n.Duration.Milliseconds(),
		Location:   n.Location,
	}
}

func toOrderDetails(body NewOrder) order.Details {
	items := make([]order.Item, len(body.Items))
	for i, item := range body.Items {
		items[i] = order.Item{Name: item.Name, Quantity: item.Quantity}
	}
	return order.Details{
		DemandID:          body.DemandID,
		Items:             items,
		TotalAmount:       body.TotalAmount,
		PaymentMethod:     body.PaymentMethod,
		Notes:             body.Notes,
		EstimatedDistance: body.EstimatedDistance,
		CarbonSaved:       body.CarbonSaved,
	}
}
