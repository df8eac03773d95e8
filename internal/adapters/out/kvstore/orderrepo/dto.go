package orderrepo

import (
	"time"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"
)

// The collection is serialized as a JSON array of these records. The shape is
// the external contract of the store: status and parties travel as their wire
// strings, confirmations sit under deliveryConfirmations keyed by party.

type geoDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type itemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type confirmationDTO struct {
	Confirmed bool       `json:"confirmed"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Location  *geoDTO    `json:"location,omitempty"`
}

type confirmationsDTO struct {
	Customer confirmationDTO `json:"customer"`
	Vendor   confirmationDTO `json:"vendor"`
}

type orderDTO struct {
	ID                    string           `json:"id"`
	CustomerID            string           `json:"customerId"`
	VendorID              string           `json:"vendorId"`
	DemandID              string           `json:"demandId,omitempty"`
	Items                 []itemDTO        `json:"items"`
	TotalAmount           float64          `json:"totalAmount"`
	PaymentMethod         string           `json:"paymentMethod"`
	DeliveryLocation      *geoDTO          `json:"deliveryLocation,omitempty"`
	Notes                 string           `json:"notes,omitempty"`
	EstimatedDistance     float64          `json:"estimatedDistance,omitempty"`
	CarbonSaved           float64          `json:"carbonSaved,omitempty"`
	Status                string           `json:"status"`
	DeliveryConfirmations confirmationsDTO `json:"deliveryConfirmations"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

func geoToDTO(pt *kernel.GeoPoint) *geoDTO {
	if pt == nil {
		return nil
	}
	return &geoDTO{Lat: pt.Lat(), Lng: pt.Lng()}
}

func geoFromDTO(dto *geoDTO) (*kernel.GeoPoint, error) {
	if dto == nil {
		return nil, nil
	}
	pt, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func confirmationToDTO(c order.Confirmation) confirmationDTO {
	return confirmationDTO{
		Confirmed: c.Confirmed(),
		Timestamp: c.Timestamp(),
		Location:  geoToDTO(c.Location()),
	}
}

func confirmationFromDTO(dto confirmationDTO) (order.Confirmation, error) {
	location, err := geoFromDTO(dto.Location)
	if err != nil {
		return order.Confirmation{}, err
	}
	return order.RestoreConfirmation(dto.Confirmed, dto.Timestamp, location), nil
}

func orderToDTO(aggregate *order.Order) orderDTO {
	items := aggregate.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemDTO{Name: item.Name, Quantity: item.Quantity})
	}

	return orderDTO{
		ID:                aggregate.ID().String(),
		CustomerID:        aggregate.CustomerID().String(),
		VendorID:          aggregate.VendorID().String(),
		DemandID:          aggregate.DemandID(),
		Items:             itemDTOs,
		TotalAmount:       aggregate.TotalAmount(),
		PaymentMethod:     aggregate.PaymentMethod(),
		DeliveryLocation:  geoToDTO(aggregate.DeliveryLocation()),
		Notes:             aggregate.Notes(),
		EstimatedDistance: aggregate.EstimatedDistance(),
		CarbonSaved:       aggregate.CarbonSaved(),
		Status:            aggregate.Status().String(),
		DeliveryConfirmations: confirmationsDTO{
			Customer: confirmationToDTO(aggregate.Confirmation(order.Customer)),
			Vendor:   confirmationToDTO(aggregate.Confirmation(order.Vendor)),
		},
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func orderFromDTO(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromString(dto.VendorID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryLocation, err := geoFromDTO(dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}
	customerConfirmation, err := confirmationFromDTO(dto.DeliveryConfirmations.Customer)
	if err != nil {
		return nil, err
	}
	vendorConfirmation, err := confirmationFromDTO(dto.DeliveryConfirmations.Vendor)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{Name: item.Name, Quantity: item.Quantity})
	}

	return order.RestoreOrder(
		id,
		customerID,
		vendorID,
		order.Details{
			DemandID:          dto.DemandID,
			Items:             items,
			TotalAmount:       dto.TotalAmount,
			PaymentMethod:     dto.PaymentMethod,
			DeliveryLocation:  deliveryLocation,
			Notes:             dto.Notes,
			EstimatedDistance: dto.EstimatedDistance,
			CarbonSaved:       dto.CarbonSaved,
		},
		status,
		customerConfirmation,
		vendorConfirmation,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
