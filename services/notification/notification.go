// Package notification delivers booking status pushes over FCM.
package notification

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	profileRepo "taskhive/database/repository/profile"
	"taskhive/models"
	"taskhive/utils"
)

// statusDisplay maps wire statuses to user-facing copy.
var statusDisplay = map[models.BookingStatus]string{
	models.BookingPending:    "Waiting for Provider",
	models.BookingAccepted:   "Provider Accepted",
	models.BookingInProgress: "Service in Progress",
	models.BookingCompleted:  "Service Completed",
	models.BookingCancelled:  "Cancelled",
	models.BookingDeclined:   "Declined by Provider",
}

// StatusDisplay returns the user-facing label for a status.
func StatusDisplay(s models.BookingStatus) string {
	if label, ok := statusDisplay[s]; ok {
		return label
	}
	return string(s)
}

// NotificationService defines methods for sending booking pushes.
type NotificationService interface {
	NotifyBookingStatus(ctx context.Context, booking *models.Booking) error
}

// FCMNotificationService is the production implementation. With no FCM
// client configured it degrades to a no-op.
type FCMNotificationService struct {
	Profiles profileRepo.ProfileRepository
	Logger   *zap.Logger
}

func NewFCMNotificationService(profiles profileRepo.ProfileRepository, logger *zap.Logger) *FCMNotificationService {
	return &FCMNotificationService{Profiles: profiles, Logger: logger}
}

// NotifyBookingStatus pushes the booking's current status to the customer
// and, when assigned, the tasker. Delivery failures are logged per
// recipient; the first one is returned.
func (s *FCMNotificationService) NotifyBookingStatus(ctx context.Context, booking *models.Booking) error {
	if utils.FCMClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	title := booking.ServiceName
	body := StatusDisplay(booking.Status)
	data := map[string]string{
		"booking_id": booking.ID,
		"status":     string(booking.Status),
	}

	var firstErr error
	recipients := []string{booking.CustomerID}
	if booking.TaskerID != nil {
		recipients = append(recipients, *booking.TaskerID)
	}
	for _, id := range recipients {
		if err := s.sendTo(ctx, id, title, body, data); err != nil {
			s.Logger.Warn("push delivery failed",
				zap.String("profile_id", id),
				zap.String("booking_id", booking.ID),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *FCMNotificationService) sendTo(ctx context.Context, profileID, title, body string, data map[string]string) error {
	p, err := s.Profiles.GetByID(ctx, profileID)
	if err != nil {
		return fmt.Errorf("could not find profile %s: %w", profileID, err)
	}
	if p.FCMToken == "" {
		// Profile never registered a device; nothing to deliver.
		return nil
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
