package notification

import (
	"context"

	"vango/models"
	"vango/utils"

	"go.uber.org/zap"
)

// LogNotificationService records notifications to the application log instead
// of delivering them. Used wherever no real transport is configured.
type LogNotificationService struct{}

func (s *LogNotificationService) NotifyReservationCreated(ctx context.Context, res *models.Reservation) error {
	utils.GetLogger().Info("reservation created",
		zap.String("reservationID", res.ID),
		zap.String("userID", res.UserID),
		zap.Time("start", res.StartDate),
		zap.Time("end", res.EndDate),
	)
	return nil
}

func (s *LogNotificationService) NotifyStatusChange(ctx context.Context, res *models.Reservation, previous string) error {
	utils.GetLogger().Info("reservation status changed",
		zap.String("reservationID", res.ID),
		zap.String("from", previous),
		zap.String("to", res.Status),
	)
	return nil
}
