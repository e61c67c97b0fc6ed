package models

import "time"

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCanceled  = "canceled"
	ReservationDelivered = "delivered"
	ReservationCompleted = "completed"
)

// ReservationAddOn is a priced add-on line stored on a reservation.
type ReservationAddOn struct {
	AddOnID   string  `bson:"addon_id" json:"addon_id"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	LineTotal float64 `bson:"line_total" json:"line_total"`
}

// Reservation is a confirmed rental booking.
type Reservation struct {
	ID         string             `bson:"id" json:"id"`
	OfficeID   string             `bson:"office_id" json:"office_id"`
	CategoryID string             `bson:"category_id" json:"category_id"`
	VehicleID  string             `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	UserID     string             `bson:"user_id" json:"user_id"`
	StartDate  time.Time          `bson:"start_date" json:"start_date"`
	EndDate    time.Time          `bson:"end_date" json:"end_date"`
	DriverAge  int                `bson:"driver_age" json:"driver_age"`
	TotalPrice float64            `bson:"total_price" json:"total_price"`
	AddOns     []ReservationAddOn `bson:"addons,omitempty" json:"addons,omitempty"`
	Message    string             `bson:"message,omitempty" json:"message,omitempty"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// Window is a [start,end) time interval used for availability checks.
type Window struct {
	Start time.Time `bson:"start_date" json:"start"`
	End   time.Time `bson:"end_date" json:"end"`
}
