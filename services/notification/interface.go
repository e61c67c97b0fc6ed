package notification

import (
	"context"

	"vango/models"
)

// NotificationService delivers customer-facing notices for reservation
// lifecycle events. Delivery transports (SMS, email) plug in behind this
// interface.
type NotificationService interface {
	// NotifyReservationCreated is sent once when a reservation is first created.
	NotifyReservationCreated(ctx context.Context, res *models.Reservation) error
	// NotifyStatusChange is sent whenever a reservation's status changes.
	NotifyStatusChange(ctx context.Context, res *models.Reservation, previous string) error
}
