package models

import "time"

// PricingTier maps a contiguous range of rental hours to a single hourly rate.
// Tiers for one category must be contiguous and non-overlapping, covering the
// whole positive-duration range the category is rentable for.
type PricingTier struct {
	MinHours     int     `bson:"min_hours" json:"min_hours"`
	MaxHours     int     `bson:"max_hours" json:"max_hours"`
	PricePerHour float64 `bson:"price_per_hour" json:"price_per_hour"`
}

// Category is a rentable vehicle class (e.g. "L2H2 panel van").
type Category struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	CargoVolumeM3 float64       `bson:"cargo_volume_m3" json:"cargo_volume_m3"`
	PayloadKg     float64       `bson:"payload_kg" json:"payload_kg"`
	Seats         int           `bson:"seats" json:"seats"`
	CargoLengthM  float64       `bson:"cargo_length_m,omitempty" json:"cargo_length_m,omitempty"`
	MinDriverAge  int           `bson:"min_driver_age" json:"min_driver_age"`
	RateTable     []PricingTier `bson:"rate_table" json:"rate_table"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}
