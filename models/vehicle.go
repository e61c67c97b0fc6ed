package models

import "time"

// Vehicle statuses.
const (
	VehicleActive      = "active"
	VehicleMaintenance = "maintenance"
	VehicleRetired     = "retired"
)

// Vehicle is a single physical van assigned to an office and a category.
type Vehicle struct {
	ID         string    `bson:"id" json:"id"`
	CategoryID string    `bson:"category_id" json:"category_id"`
	OfficeID   string    `bson:"office_id" json:"office_id"`
	Model      string    `bson:"model" json:"model"`
	Plate      string    `bson:"plate" json:"plate"`
	Year       int       `bson:"year,omitempty" json:"year,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
