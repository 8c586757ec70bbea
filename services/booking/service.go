// Package booking owns the booking lifecycle: creation, the status state
// machine, pricing estimates and checkout.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskhive/config"
	bookingRepo "taskhive/database/repository/booking"
	profileRepo "taskhive/database/repository/profile"
	taskRepo "taskhive/database/repository/task"
	"taskhive/models"
	"taskhive/services/catalog"
	"taskhive/services/notification"
)

// ExpiryScheduler enqueues a deferred auto-decline for a pending booking.
type ExpiryScheduler interface {
	ScheduleExpiry(ctx context.Context, bookingID string, after time.Duration) error
}

// CreateBookingInput carries the fields a customer submits when placing a
// booking.
type CreateBookingInput struct {
	TaskID              string  `json:"task_id"`
	ServiceID           string  `json:"service_id"`
	CustomerID          string  `json:"customer_id"`
	TaskerID            string  `json:"tasker_id,omitempty"`
	ScheduledDate       string  `json:"scheduled_date,omitempty"`
	ScheduledTime       string  `json:"scheduled_time,omitempty"`
	EstimatedDuration   int     `json:"estimated_duration,omitempty"`
	EstimatedPrice      float64 `json:"estimated_price,omitempty"`
	Priority            string  `json:"priority,omitempty"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// BookingService defines the booking lifecycle operations.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error)
	TaskerBookings(ctx context.Context, taskerID string) ([]models.Booking, error)
	Accept(ctx context.Context, bookingID, taskerID string) (*models.Booking, error)
	Decline(ctx context.Context, bookingID string) (*models.Booking, error)
	Start(ctx context.Context, bookingID string) (*models.Booking, error)
	Complete(ctx context.Context, bookingID string, finalPrice float64) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)
	ExpirePending(ctx context.Context, bookingID string) error
	Stats(ctx context.Context, userID, role string) (models.BookingStats, error)
	Search(ctx context.Context, userID, role, query string) ([]models.Booking, error)
	Checkout(ctx context.Context, bookingID, method string) (*PaymentResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Profiles profileRepo.ProfileRepository
	Tasks    taskRepo.TaskRepository
	Catalog  *catalog.Catalog
	Notifier notification.NotificationService
	Expiry   ExpiryScheduler
	Logger   *zap.Logger
}

// CreateBooking validates the request against the catalog, denormalises
// customer and service details onto the record and persists it in pending.
// A deferred auto-decline is scheduled so the booking cannot sit in pending
// forever.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	def, ok := s.Catalog.Get(input.ServiceID)
	if !ok {
		return nil, &ValidationError{Message: "unknown service id: " + input.ServiceID}
	}
	if input.CustomerID == "" {
		return nil, &ValidationError{Message: "customer_id is required"}
	}

	customer, err := s.Profiles.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			return nil, &ValidationError{Message: "unknown customer: " + input.CustomerID}
		}
		return nil, &UpstreamError{Op: "fetch customer", Err: err}
	}

	// The requested tasker's rate anchors the price estimate. A booking may
	// also be created unassigned and picked up from the open feed.
	var hourlyRate float64
	var taskerName, taskerPhone string
	var taskerID *string
	if input.TaskerID != "" {
		tasker, err := s.Profiles.GetByID(ctx, input.TaskerID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrNotFound) {
				return nil, &ValidationError{Message: "unknown tasker: " + input.TaskerID}
			}
			return nil, &UpstreamError{Op: "fetch tasker", Err: err}
		}
		hourlyRate = tasker.HourlyRate
		taskerName = tasker.Name
		taskerPhone = tasker.Phone
		id := tasker.ID
		taskerID = &id
	}

	if input.TaskID != "" && s.Tasks != nil {
		if _, err := s.Tasks.GetByID(ctx, input.TaskID); err != nil {
			if errors.Is(err, taskRepo.ErrNotFound) {
				return nil, &ValidationError{Message: "unknown task: " + input.TaskID}
			}
			return nil, &UpstreamError{Op: "fetch task", Err: err}
		}
	}

	durationMins, price := input.EstimatedDuration, input.EstimatedPrice
	if durationMins == 0 && price == 0 {
		durationMins, price = ComputeEstimate(def, hourlyRate)
	}
	if err := ValidateEstimate(def, hourlyRate, durationMins, price); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	now := time.Now()
	booking := &models.Booking{
		ID:                    uuid.New().String(),
		TaskID:                input.TaskID,
		ServiceID:             def.ID,
		ServiceName:           def.Label,
		CustomerID:            customer.ID,
		CustomerName:          customer.Name,
		CustomerPhone:         customer.Phone,
		CustomerAddress:       customer.Address,
		TaskerID:              taskerID,
		TaskerName:            taskerName,
		TaskerPhone:           taskerPhone,
		Status:                models.BookingPending,
		CreatedAt:             now,
		StatusUpdatedAt:       now,
		ScheduledDate:         input.ScheduledDate,
		ScheduledTime:         input.ScheduledTime,
		EstimatedDurationMins: durationMins,
		EstimatedPrice:        price,
		PaymentStatus:         models.PaymentPending,
		Priority:              priority,
		SpecialInstructions:   input.SpecialInstructions,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, &UpstreamError{Op: "create booking", Err: err}
	}

	if s.Expiry != nil {
		if err := s.Expiry.ScheduleExpiry(ctx, booking.ID, config.PendingTimeout()); err != nil {
			// The booking exists either way; a tasker can still decline it.
			s.Logger.Warn("failed to schedule pending expiry",
				zap.String("booking_id", booking.ID), zap.Error(err))
		}
	}

	s.notify(booking)
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, err
		}
		return nil, &UpstreamError{Op: "fetch booking", Err: err}
	}
	return booking, nil
}

func (s *DefaultBookingService) CustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, &UpstreamError{Op: "list customer bookings", Err: err}
	}
	return bookings, nil
}

func (s *DefaultBookingService) TaskerBookings(ctx context.Context, taskerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByTasker(ctx, taskerID)
	if err != nil {
		return nil, &UpstreamError{Op: "list tasker bookings", Err: err}
	}
	return bookings, nil
}

// Accept moves pending → accepted and assigns the accepting tasker.
func (s *DefaultBookingService) Accept(ctx context.Context, bookingID, taskerID string) (*models.Booking, error) {
	if taskerID == "" {
		return nil, &ValidationError{Message: "tasker_id is required to accept"}
	}
	tasker, err := s.Profiles.GetByID(ctx, taskerID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			return nil, &ValidationError{Message: "unknown tasker: " + taskerID}
		}
		return nil, &UpstreamError{Op: "fetch tasker", Err: err}
	}

	return s.transition(ctx, bookingID, models.BookingAccepted, func(b *models.Booking, now time.Time, set map[string]interface{}) error {
		set["tasker_id"] = tasker.ID
		set["tasker_name"] = tasker.Name
		set["tasker_phone"] = tasker.Phone
		b.TaskerID = &tasker.ID
		b.TaskerName = tasker.Name
		b.TaskerPhone = tasker.Phone
		return nil
	})
}

// Decline moves pending → declined (tasker declined or the pending timer
// fired).
func (s *DefaultBookingService) Decline(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingDeclined, nil)
}

// Start moves accepted → in-progress.
func (s *DefaultBookingService) Start(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingInProgress, nil)
}

// Complete moves in-progress → completed. The final price must be supplied
// and the booking must have passed through accepted.
func (s *DefaultBookingService) Complete(ctx context.Context, bookingID string, finalPrice float64) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingCompleted, func(b *models.Booking, now time.Time, set map[string]interface{}) error {
		if finalPrice <= 0 {
			return &PreconditionFailedError{Message: "final_price must be set to complete a booking"}
		}
		if b.AcceptedAt == nil {
			return &PreconditionFailedError{Message: "booking was never accepted"}
		}
		set["final_price"] = finalPrice
		b.FinalPrice = finalPrice
		return nil
	})
}

// Cancel moves pending, accepted or in-progress → cancelled.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingCancelled, nil)
}

// ExpirePending declines a booking iff it is still pending. A booking that
// already moved on is left untouched; the compare-and-set makes the race
// with a concurrent accept harmless.
func (s *DefaultBookingService) ExpirePending(ctx context.Context, bookingID string) error {
	_, err := s.Decline(ctx, bookingID)
	var invalid *InvalidTransitionError
	if errors.As(err, &invalid) {
		s.Logger.Debug("pending expiry skipped, booking already moved",
			zap.String("booking_id", bookingID),
			zap.String("status", string(invalid.From)))
		return nil
	}
	return err
}

// transition is the single write path for lifecycle changes: validate
// against the state machine, apply the per-transition mutation, then
// compare-and-set on the expected current status.
func (s *DefaultBookingService) transition(
	ctx context.Context,
	bookingID string,
	next models.BookingStatus,
	mutate func(b *models.Booking, now time.Time, set map[string]interface{}) error,
) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := validateTransition(booking.Status, next); err != nil {
		return nil, err
	}

	now := time.Now()
	set := transitionUpdate(next, now)
	if mutate != nil {
		if err := mutate(booking, now, set); err != nil {
			return nil, err
		}
	}

	current := booking.Status
	matched, err := s.Repo.UpdateStatus(ctx, bookingID, current, set)
	if err != nil {
		return nil, &UpstreamError{Op: "update booking status", Err: err}
	}
	if !matched {
		// A concurrent writer won the compare-and-set.
		return nil, &InvalidTransitionError{From: current, To: next}
	}

	applyTransition(booking, next, now)
	s.notify(booking)

	s.Logger.Info("booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(current)),
		zap.String("to", string(next)))
	return booking, nil
}

// notify pushes the new status, bounded by its own timeout so a slow FCM
// call never blocks the transition response.
func (s *DefaultBookingService) notify(booking *models.Booking) {
	if s.Notifier == nil {
		return
	}
	go func(b models.Booking) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Notifier.NotifyBookingStatus(ctx, &b); err != nil {
			s.Logger.Warn("booking notification failed",
				zap.String("booking_id", b.ID), zap.Error(err))
		}
	}(*booking)
}

// Stats aggregates a user's bookings by status for the dashboard.
func (s *DefaultBookingService) Stats(ctx context.Context, userID, role string) (models.BookingStats, error) {
	bookings, err := s.bookingsForRole(ctx, userID, role)
	if err != nil {
		return models.BookingStats{}, err
	}

	stats := models.BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending:
			stats.Pending++
		case models.BookingAccepted:
			stats.Accepted++
		case models.BookingInProgress:
			stats.InProgress++
		case models.BookingCompleted:
			stats.Completed++
		case models.BookingCancelled:
			stats.Cancelled++
		case models.BookingDeclined:
			stats.Declined++
		}
	}
	return stats, nil
}

// Search filters a user's bookings by a case-insensitive text match over
// service, customer and tasker names.
func (s *DefaultBookingService) Search(ctx context.Context, userID, role, query string) ([]models.Booking, error) {
	bookings, err := s.bookingsForRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	filtered := make([]models.Booking, 0)
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.ServiceName), q) ||
			strings.Contains(strings.ToLower(b.CustomerName), q) ||
			strings.Contains(strings.ToLower(b.TaskerName), q) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *DefaultBookingService) bookingsForRole(ctx context.Context, userID, role string) ([]models.Booking, error) {
	if role == models.RoleTasker {
		return s.TaskerBookings(ctx, userID)
	}
	return s.CustomerBookings(ctx, userID)
}
