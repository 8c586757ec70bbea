package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskhive/models"
)

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Waiting for Provider", StatusDisplay(models.BookingPending))
	assert.Equal(t, "Provider Accepted", StatusDisplay(models.BookingAccepted))
	assert.Equal(t, "Service in Progress", StatusDisplay(models.BookingInProgress))
	assert.Equal(t, "Service Completed", StatusDisplay(models.BookingCompleted))
	assert.Equal(t, "Cancelled", StatusDisplay(models.BookingCancelled))
	assert.Equal(t, "Declined by Provider", StatusDisplay(models.BookingDeclined))

	// Unknown values pass through untouched.
	assert.Equal(t, "archived", StatusDisplay(models.BookingStatus("archived")))
}

func TestNotifyBookingStatusNoopWithoutClient(t *testing.T) {
	svc := NewFCMNotificationService(nil, zap.NewNop())

	booking := &models.Booking{ID: "b1", CustomerID: "c1", Status: models.BookingPending}
	require.NoError(t, svc.NotifyBookingStatus(context.Background(), booking))
}
