package reservation

import (
	"context"
	"time"

	reservationRepo "vango/database/repository/reservation"
	"vango/models"
	"vango/services/notification"
)

// Service manages reservation lifecycle: availability checks, conflict-safe
// creation, and status transitions.
type Service interface {
	// CheckAvailability returns the conflicting windows for the requested
	// slot; an empty result means the slot is free.
	CheckAvailability(ctx context.Context, officeID, categoryID string, start, end time.Time) ([]models.Window, error)
	// Create inserts a reservation after re-checking the slot under a lock.
	// Returns *ConflictError when the slot was taken in the meantime.
	Create(ctx context.Context, res *models.Reservation) error
	// UpdateStatus applies a lifecycle transition and notifies the customer.
	UpdateStatus(ctx context.Context, id, status string) error
	// GetByID retrieves one reservation.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// List retrieves reservations matching the filter.
	List(ctx context.Context, filter reservationRepo.ReservationFilter) ([]models.Reservation, error)
	// Delete removes a reservation outright (admin only).
	Delete(ctx context.Context, id string) error
}

// DefaultReservationService implements Service.
type DefaultReservationService struct {
	Repo     reservationRepo.ReservationRepository
	Locks    SlotLocker
	Notifier notification.NotificationService
}
