package booking

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"taskhive/models"
)

// validateTransition checks the transition table. It rejects any move out of
// a terminal state and any edge the table does not allow.
func validateTransition(current, next models.BookingStatus) error {
	if !current.CanTransitionTo(next) {
		return &InvalidTransitionError{From: current, To: next}
	}
	return nil
}

// transitionUpdate builds the repository $set document for a validated
// transition. Every transition stamps status_updated_at; the per-status
// timestamp column is set alongside it.
func transitionUpdate(next models.BookingStatus, now time.Time) bson.M {
	set := bson.M{
		"status":            next,
		"status_updated_at": now,
	}
	switch next {
	case models.BookingAccepted:
		set["accepted_at"] = now
	case models.BookingInProgress:
		set["started_at"] = now
	case models.BookingCompleted:
		set["completed_at"] = now
	case models.BookingCancelled:
		set["cancelled_at"] = now
	}
	return set
}

// applyTransition mirrors transitionUpdate on the in-memory record so the
// caller gets back the state the datastore now holds.
func applyTransition(b *models.Booking, next models.BookingStatus, now time.Time) {
	b.Status = next
	b.StatusUpdatedAt = now
	switch next {
	case models.BookingAccepted:
		b.AcceptedAt = &now
	case models.BookingInProgress:
		b.StartedAt = &now
	case models.BookingCompleted:
		b.CompletedAt = &now
	case models.BookingCancelled:
		b.CancelledAt = &now
	}
}
