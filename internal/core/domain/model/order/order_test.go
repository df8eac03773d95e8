package order_test

import (
	"testing"
	"time"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	return order.Details{
		DemandID:    "demand-42",
		Items:       []order.Item{{Name: "Tomatoes", Quantity: 3}},
		TotalAmount: 120.50,
		Notes:       "leave at the gate",
	}
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, vendorID, validDetails(), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.VendorID().IsEqual(vendorID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "demand-42", o.DemandID())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.False(t, o.Confirmation(order.Customer).Confirmed())
		assert.False(t, o.Confirmation(order.Vendor).Confirmed())
	})

	t.Run("should default payment method to cod", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, vendorID, validDetails(), now)

		require.NoError(t, err)
		assert.Equal(t, order.DefaultPaymentMethod, o.PaymentMethod())
	})

	t.Run("should keep explicit payment method", func(t *testing.T) {
		details := validDetails()
		details.PaymentMethod = "mobile_banking"

		o, err := order.NewOrder(id, customerID, vendorID, details, now)

		require.NoError(t, err)
		assert.Equal(t, "mobile_banking", o.PaymentMethod())
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		var invalid kernel.UUID

		o, err := order.NewOrder(id, invalid, vendorID, validDetails(), now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with negative total amount", func(t *testing.T) {
		details := validDetails()
		details.TotalAmount = -1

		o, err := order.NewOrder(id, customerID, vendorID, details, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "totalAmount")
	})

	t.Run("should accept zero total amount", func(t *testing.T) {
		details := validDetails()
		details.TotalAmount = 0

		_, err := order.NewOrder(id, customerID, vendorID, details, now)

		require.NoError(t, err)
	})

	t.Run("should fail with nameless item", func(t *testing.T) {
		details := validDetails()
		details.Items = []order.Item{{Name: "", Quantity: 1}}

		_, err := order.NewOrder(id, customerID, vendorID, details, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items[0].name")
	})

	t.Run("should fail with non-positive item quantity", func(t *testing.T) {
		details := validDetails()
		details.Items = []order.Item{{Name: "Milk", Quantity: 0}}

		_, err := order.NewOrder(id, customerID, vendorID, details, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items[0].quantity")
	})

	t.Run("should fail with negative distance or carbon metrics", func(t *testing.T) {
		details := validDetails()
		details.EstimatedDistance = -2
		details.CarbonSaved = -1

		_, err := order.NewOrder(id, customerID, vendorID, details, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "estimatedDistance")
	})

	t.Run("caller mutations of the details slice do not leak in", func(t *testing.T) {
		details := validDetails()

		o, err := order.NewOrder(id, customerID, vendorID, details, now)
		require.NoError(t, err)

		details.Items[0].Name = "changed"
		assert.Equal(t, "Tomatoes", o.Items()[0].Name)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero-value order fails validation", func(t *testing.T) {
		o := &order.Order{}

		require.Error(t, o.Validate())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)
		require.NoError(t, err)
		return o
	}

	t.Run("allowed transition updates status and timestamp", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Accepted, later)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("rejected transition leaves order unchanged", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Accepted, later))

		err := o.ChangeStatus(order.Delivered, later.Add(time.Minute))

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("updatedAt never moves backwards", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Accepted, later))

		// Clock skew: a subsequent mutation reports an earlier instant.
		require.NoError(t, o.ChangeStatus(order.OutForDelivery, later.Add(-time.Second)))

		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("full lifecycle to delivered", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Accepted, later))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery, later))
		require.NoError(t, o.ChangeStatus(order.Delivered, later))

		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Confirm(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	confirmedAt := now.Add(time.Hour)
	loc, _ := kernel.NewGeoPoint(23.8103, 90.4125)

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)
		require.NoError(t, err)
		return o
	}

	t.Run("records one party without touching the other", func(t *testing.T) {
		o := newOrder(t)

		err := o.Confirm(order.Customer, confirmedAt, &loc)

		require.NoError(t, err)
		c := o.Confirmation(order.Customer)
		assert.True(t, c.Confirmed())
		require.NotNil(t, c.Timestamp())
		assert.Equal(t, confirmedAt, *c.Timestamp())
		require.NotNil(t, c.Location())
		assert.True(t, loc.IsEqual(*c.Location()))
		assert.False(t, o.Confirmation(order.Vendor).Confirmed())
		assert.False(t, o.BothPartiesConfirmed())
	})

	t.Run("both parties confirmed after the second attestation", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Confirm(order.Vendor, confirmedAt, nil))
		require.NoError(t, o.Confirm(order.Customer, confirmedAt.Add(time.Minute), nil))

		assert.True(t, o.BothPartiesConfirmed())
	})

	t.Run("re-confirming refreshes but never reverses", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Confirm(order.Customer, confirmedAt, nil))

		again := confirmedAt.Add(time.Minute)
		require.NoError(t, o.Confirm(order.Customer, again, &loc))

		c := o.Confirmation(order.Customer)
		assert.True(t, c.Confirmed())
		assert.Equal(t, again, *c.Timestamp())
	})

	t.Run("rejects invalid party", func(t *testing.T) {
		o := newOrder(t)

		err := o.Confirm(order.UnknownParty, confirmedAt, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "party")
	})

	t.Run("rejects unconstructed location", func(t *testing.T) {
		o := newOrder(t)
		var badLoc kernel.GeoPoint

		err := o.Confirm(order.Customer, confirmedAt, &badLoc)

		require.Error(t, err)
		assert.False(t, o.Confirmation(order.Customer).Confirmed())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	ts := now.Add(time.Hour)
	loc, _ := kernel.NewGeoPoint(1, 2)

	t.Run("rebuilds aggregate state from persistence", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(),
			validDetails(),
			order.OutForDelivery,
			order.RestoreConfirmation(true, &ts, &loc),
			order.RestoreConfirmation(false, nil, nil),
			now, ts,
		)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.True(t, o.Confirmation(order.Customer).Confirmed())
		assert.False(t, o.Confirmation(order.Vendor).Confirmed())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, ts, o.UpdatedAt())
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validDetails(),
			order.Unknown,
			order.Confirmation{}, order.Confirmation{},
			now, now,
		)

		require.Error(t, err)
	})
}

func TestParty(t *testing.T) {
	t.Run("parses wire names", func(t *testing.T) {
		c, err := order.PartyFromString("customer")
		require.NoError(t, err)
		assert.Equal(t, order.Customer, c)

		v, err := order.PartyFromString("vendor")
		require.NoError(t, err)
		assert.Equal(t, order.Vendor, v)

		_, err = order.PartyFromString("courier")
		require.Error(t, err)
	})

	t.Run("other flips sides", func(t *testing.T) {
		assert.Equal(t, order.Vendor, order.Customer.Other())
		assert.Equal(t, order.Customer, order.Vendor.Other())
		assert.Equal(t, order.UnknownParty, order.UnknownParty.Other())
	})
}
