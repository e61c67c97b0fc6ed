package reservation

import (
	"context"
	"fmt"
	"time"

	reservationRepo "vango/database/repository/reservation"
	"vango/models"
	"vango/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// slotLockTTL bounds how long a confirmation may hold a slot. Generous enough
// to cover the insert, short enough that a crashed confirmation frees the
// slot quickly.
const slotLockTTL = 15 * time.Second

// allowedTransitions is the reservation lifecycle.
var allowedTransitions = map[string][]string{
	models.ReservationPending:   {models.ReservationConfirmed, models.ReservationCanceled},
	models.ReservationConfirmed: {models.ReservationDelivered, models.ReservationCanceled},
	models.ReservationDelivered: {models.ReservationCompleted},
}

// CheckAvailability returns the conflicting windows for the requested slot.
func (s *DefaultReservationService) CheckAvailability(ctx context.Context, officeID, categoryID string, start, end time.Time) ([]models.Window, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("availability check requires end after start")
	}
	return s.Repo.FindOverlapping(officeID, categoryID, start, end)
}

// Create inserts a reservation. The overlap check runs again here, under a
// slot lock, because the caller's earlier availability check leaves a
// check-to-use gap two concurrent confirmations could slip through.
func (s *DefaultReservationService) Create(ctx context.Context, res *models.Reservation) error {
	logger := utils.GetLogger()

	key := SlotKey(res.OfficeID, res.CategoryID, res.StartDate, res.EndDate)
	acquired, err := s.Locks.Acquire(ctx, key, slotLockTTL)
	if err != nil {
		return fmt.Errorf("failed to lock slot: %w", err)
	}
	if !acquired {
		logger.Warn("slot lock contention on reservation create", zap.String("slot", key))
		return &ConflictError{}
	}
	defer func() {
		if err := s.Locks.Release(context.Background(), key); err != nil {
			logger.Warn("failed to release slot lock", zap.String("slot", key), zap.Error(err))
		}
	}()

	conflicts, err := s.Repo.FindOverlapping(res.OfficeID, res.CategoryID, res.StartDate, res.EndDate)
	if err != nil {
		return fmt.Errorf("failed to re-check availability: %w", err)
	}
	if len(conflicts) > 0 {
		return &ConflictError{Windows: conflicts}
	}

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.Status == "" {
		res.Status = models.ReservationPending
	}
	if err := s.Repo.Create(res); err != nil {
		return err
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyReservationCreated(ctx, res); err != nil {
			logger.Warn("reservation-created notification failed",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}
	return nil
}

// UpdateStatus applies a lifecycle transition and notifies the customer.
func (s *DefaultReservationService) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	allowed := false
	for _, next := range allowedTransitions[res.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return &TransitionError{From: res.Status, To: status}
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return err
	}

	previous := res.Status
	res.Status = status
	if s.Notifier != nil {
		if err := s.Notifier.NotifyStatusChange(ctx, res, previous); err != nil {
			utils.GetLogger().Warn("status-change notification failed",
				zap.String("reservationID", id), zap.Error(err))
		}
	}
	return nil
}

// GetByID retrieves one reservation.
func (s *DefaultReservationService) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	return s.Repo.GetByID(id)
}

// List retrieves reservations matching the filter.
func (s *DefaultReservationService) List(ctx context.Context, filter reservationRepo.ReservationFilter) ([]models.Reservation, error) {
	return s.Repo.GetAll(filter)
}

// Delete removes a reservation outright.
func (s *DefaultReservationService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}
