package models

import "time"

// Task is a customer's service request before it becomes a booking.
type Task struct {
	ID          string    `bson:"id" json:"id"`
	CustomerID  string    `bson:"customer_id" json:"customer_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ServiceID   string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Status      string    `bson:"status" json:"status"` // open, in-progress, completed
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
