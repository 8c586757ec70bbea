package profileRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"taskhive/models"
)

// ProfileRepository defines profile data access for customers and taskers.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	// GetTaskers returns available taskers, optionally filtered by skill.
	GetTaskers(ctx context.Context, skill string) ([]models.Profile, error)
	Update(ctx context.Context, id string, set bson.M) error
}
