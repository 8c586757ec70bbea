package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	for _, raw := range []string{"pending", "accepted", "in-progress", "completed", "cancelled", "declined"} {
		status, ok := ParseBookingStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, raw, string(status))
	}

	for _, raw := range []string{"", "PENDING", "in_progress", "done"} {
		_, ok := ParseBookingStatus(raw)
		assert.False(t, ok, raw)
	}
}

func TestTerminalStates(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingAccepted.Terminal())
	assert.False(t, BookingInProgress.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.True(t, BookingDeclined.Terminal())
}

func TestCanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingPending, BookingAccepted},
		{BookingPending, BookingDeclined},
		{BookingPending, BookingCancelled},
		{BookingAccepted, BookingInProgress},
		{BookingAccepted, BookingCancelled},
		{BookingInProgress, BookingCompleted},
		{BookingInProgress, BookingCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to BookingStatus }{
		{BookingPending, BookingInProgress},
		{BookingPending, BookingCompleted},
		{BookingAccepted, BookingCompleted},
		{BookingAccepted, BookingDeclined},
		{BookingInProgress, BookingAccepted},
		{BookingCompleted, BookingCancelled},
		{BookingCancelled, BookingPending},
		{BookingDeclined, BookingAccepted},
		{BookingCompleted, BookingCompleted},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
