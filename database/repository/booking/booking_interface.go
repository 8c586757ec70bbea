package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"taskhive/models"
)

// BookingRepository defines booking data access. UpdateStatus is the only
// write path for lifecycle transitions: it performs an atomic
// compare-and-set on (id, expected status) so that two concurrent
// accept/cancel attempts cannot both succeed.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByCustomer returns a customer's bookings, newest first.
	GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// GetByTasker returns a tasker's bookings, newest first.
	GetByTasker(ctx context.Context, taskerID string) ([]models.Booking, error)
	// UpdateStatus applies the given update iff the booking still holds the
	// expected status. It reports whether the compare-and-set matched.
	UpdateStatus(ctx context.Context, id string, expected models.BookingStatus, set bson.M) (bool, error)
	// UpdateFields patches arbitrary booking fields outside the lifecycle,
	// e.g. payment status after checkout.
	UpdateFields(ctx context.Context, id string, set bson.M) error
}
