package models

import "time"

// Add-on pricing types.
const (
	AddOnFlat   = "flat"    // fixed price per unit, independent of duration
	AddOnPerDay = "per_day" // tiered by billable rental days
)

// AddOnTier maps a range of rental days to a price for one unit.
type AddOnTier struct {
	MinDays int     `bson:"min_days" json:"min_days"`
	MaxDays int     `bson:"max_days" json:"max_days"`
	Price   float64 `bson:"price" json:"price"`
}

// AddOn is an optional extra on a reservation (trolley, blankets, extra driver).
type AddOn struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	PricingType string      `bson:"pricing_type" json:"pricing_type"`
	FlatPrice   float64     `bson:"flat_price,omitempty" json:"flat_price,omitempty"`
	DayTiers    []AddOnTier `bson:"day_tiers,omitempty" json:"day_tiers,omitempty"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// AddOnLine is one requested add-on with quantity, as it appears on a
// reservation request before pricing.
type AddOnLine struct {
	AddOnID  string `bson:"addon_id" json:"addon_id"`
	Quantity int    `bson:"quantity" json:"quantity"`
}
