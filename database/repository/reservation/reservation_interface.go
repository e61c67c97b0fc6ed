package reservationRepo

import (
	"time"

	"vango/models"
)

// ReservationFilter narrows GetAll queries.
type ReservationFilter struct {
	OfficeID   string
	CategoryID string
	UserID     string
	Status     string
}

// StatusCount is one bucket of the status aggregate.
type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int    `bson:"count" json:"count"`
}

// RevenueBucket is one bucket of the revenue aggregate.
type RevenueBucket struct {
	Key     string  `bson:"_id" json:"key"`
	Count   int     `bson:"count" json:"count"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// GetByID retrieves a reservation by its unique ID.
	GetByID(id string) (*models.Reservation, error)
	// GetAll retrieves reservations matching the filter.
	GetAll(filter ReservationFilter) ([]models.Reservation, error)
	// FindOverlapping returns the windows of non-canceled reservations for an
	// office and category that overlap the [start,end) interval.
	FindOverlapping(officeID, categoryID string, start, end time.Time) ([]models.Window, error)
	// Create inserts a new reservation record.
	Create(reservation *models.Reservation) error
	// UpdateStatus changes a reservation's status.
	UpdateStatus(id, status string) error
	// Delete removes a reservation record by its ID.
	Delete(id string) error
	// CountByStatus aggregates reservation counts per status.
	CountByStatus() ([]StatusCount, error)
	// RevenueByCategory aggregates count and revenue per category over
	// non-canceled reservations.
	RevenueByCategory() ([]RevenueBucket, error)
	// RevenueByOffice aggregates count and revenue per office over
	// non-canceled reservations.
	RevenueByOffice() ([]RevenueBucket, error)
}
