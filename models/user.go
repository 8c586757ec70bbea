package models

import "time"

// Roles stored on a profile.
const (
	RoleCustomer = "customer"
	RoleTasker   = "tasker"
)

// Profile is a customer or tasker account record.
type Profile struct {
	ID           string    `bson:"id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`

	// Tasker-only fields.
	Skills      []string `bson:"skills,omitempty" json:"skills,omitempty"`
	HourlyRate  float64  `bson:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	IsAvailable bool     `bson:"is_available,omitempty" json:"is_available,omitempty"`
	Rating      float64  `bson:"rating,omitempty" json:"rating,omitempty"`
}
