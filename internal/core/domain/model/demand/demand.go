// Package demand contains the Demand entity posted by the community and the
// urgency classification derived from its expiry horizon. Demands are created
// by an external collaborator and read-only to this core.
package demand

import (
	"fmt"
	"time"

	"hatbazar/internal/core/domain/model/kernel"
	"hatbazar/internal/pkg/errs"
)

// Category is the fixed set of demand categories the community posts under.
type Category string

// Fixed demand categories. New categories are a product decision, not data.
const (
	Vegetables        Category = "Vegetables"
	Fruits            Category = "Fruits"
	MilkAndDairy      Category = "Milk & Dairy"
	GrainsAndCereals  Category = "Grains & Cereals"
	WaterAndBeverages Category = "Water & Beverages"
	GroceryEssentials Category = "Grocery & Essentials"
	Medicine          Category = "Medicine & Healthcare"
	RepairServices    Category = "Repair Services"
	GasAndFuel        Category = "Gas & Fuel"
	Clothing          Category = "Clothing"
	Electronics       Category = "Electronics"
	FoodDelivery      Category = "Food Delivery"
	Other             Category = "Other"
)

// Categories returns the full fixed category set.
func Categories() []Category {
	return []Category{
		Vegetables, Fruits, MilkAndDairy, GrainsAndCereals, WaterAndBeverages,
		GroceryEssentials, Medicine, RepairServices, GasAndFuel, Clothing,
		Electronics, FoodDelivery, Other,
	}
}

// IsValid reports whether c belongs to the fixed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Urgency classifies a demand by how soon it expires.
type Urgency int

const (
	// Low urgency: more than a day until expiry.
	Low Urgency = iota

	// Medium urgency: expires within a day.
	Medium

	// High urgency: expires within six hours.
	High
)

// Expiry horizons, in hours, for the urgency classes.
const (
	highUrgencyHorizon   = 6
	mediumUrgencyHorizon = 24
)

// String returns the wire name of the urgency class.
func (u Urgency) String() string {
	switch u {
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// ClassifyUrgency derives the urgency class from the remaining hours before
// expiry. Boundaries are inclusive: exactly 6 hours is high, exactly 24 is
// medium.
func ClassifyUrgency(expiresInHours float64) Urgency {
	switch {
	case expiresInHours <= highUrgencyHorizon:
		return High
	case expiresInHours <= mediumUrgencyHorizon:
		return Medium
	default:
		return Low
	}
}

// Demand is a community-posted request for goods or services. It originates
// in the external demand backend; this core never mutates one.
type Demand struct {
	ID             string
	Category       Category
	Quantity       int
	ExpiresInHours float64
	Location       *kernel.GeoPoint
	CreatedAt      time.Time
}

// Urgency returns the classification derived from the expiry horizon.
// It is computed, never stored.
func (d Demand) Urgency() Urgency {
	return ClassifyUrgency(d.ExpiresInHours)
}

// Validate checks the demand satisfies the documented constraints:
// non-empty id, known category, positive quantity, non-negative expiry.
func (d Demand) Validate() error {
	if d.ID == "" {
		return errs.NewValueIsRequiredError("demand id")
	}
	if !d.Category.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%q is not a known category", d.Category))
	}
	if d.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", d.Quantity))
	}
	if d.ExpiresInHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("expiresInHours",
			fmt.Errorf("%v is negative", d.ExpiresInHours))
	}
	if d.Location != nil {
		if err := d.Location.Validate(); err != nil {
			return err
		}
	}
	return nil
}
