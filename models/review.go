package models

import "time"

// Review is a customer's rating of a completed booking.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	TaskerID   string    `bson:"tasker_id" json:"tasker_id"`
	Rating     int       `bson:"rating" json:"rating"` // 1-5
	ReviewText string    `bson:"review_text,omitempty" json:"review_text,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
