package models

import "time"

// BookingStatus is the closed set of booking lifecycle states. The wire
// values are lowercase with a hyphenated "in-progress".
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAccepted   BookingStatus = "accepted"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingDeclined   BookingStatus = "declined"
)

// bookingTransitions maps each state to the states it may move to.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingAccepted, BookingDeclined, BookingCancelled},
	BookingAccepted:   {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
	BookingCompleted:  {},
	BookingCancelled:  {},
	BookingDeclined:   {},
}

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	_, ok := bookingTransitions[status]
	return status, ok
}

// Terminal reports whether no further transitions are allowed from this state.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus values for a booking.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Priority values for a booking.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Booking represents a booking record, denormalised with customer, service
// and tasker details the way the dashboards consume it.
type Booking struct {
	ID        string `bson:"id" json:"id"`
	TaskID    string `bson:"task_id" json:"task_id"`
	ServiceID string `bson:"service_id" json:"service_id"`

	CustomerID      string `bson:"customer_id" json:"customer_id"`
	CustomerName    string `bson:"customer_name" json:"customer_name"`
	CustomerPhone   string `bson:"customer_phone" json:"customer_phone"`
	CustomerAddress string `bson:"customer_address" json:"customer_address"`

	// TaskerID stays nil until a tasker accepts the booking.
	TaskerID    *string `bson:"tasker_id,omitempty" json:"tasker_id,omitempty"`
	TaskerName  string  `bson:"tasker_name,omitempty" json:"tasker_name,omitempty"`
	TaskerPhone string  `bson:"tasker_phone,omitempty" json:"tasker_phone,omitempty"`

	ServiceName string `bson:"service_name" json:"service_name"`

	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	StatusUpdatedAt time.Time     `bson:"status_updated_at" json:"status_updated_at"`
	AcceptedAt      *time.Time    `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
	StartedAt       *time.Time    `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt     *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CancelledAt     *time.Time    `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`

	ScheduledDate string `bson:"scheduled_date,omitempty" json:"scheduled_date,omitempty"` // "YYYY-MM-DD"
	ScheduledTime string `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"` // "HH:MM"

	EstimatedDurationMins int     `bson:"estimated_duration" json:"estimated_duration"`
	EstimatedPrice        float64 `bson:"estimated_price" json:"estimated_price"`
	FinalPrice            float64 `bson:"final_price,omitempty" json:"final_price,omitempty"`

	PaymentStatus string `bson:"payment_status" json:"payment_status"`
	PaymentMethod string `bson:"payment_method,omitempty" json:"payment_method,omitempty"`

	Priority            string `bson:"priority" json:"priority"`
	SpecialInstructions string `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
}

// BookingStats aggregates a user's bookings by status.
type BookingStats struct {
	Total      int `json:"total_bookings"`
	Pending    int `json:"pending"`
	Accepted   int `json:"accepted"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Declined   int `json:"declined"`
}
