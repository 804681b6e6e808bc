package services

import (
	"context"

	"pugorugh/models"
)

// Store is the record store the matcher runs on. Implementations must make
// ReplacePreference atomic: the preference write and the deletion of the
// user's decisions either both happen or neither does.
type Store interface {
	ListDogs(ctx context.Context, filter *DogFilter) ([]models.Dog, error)
	GetDog(ctx context.Context, id uint) (*models.Dog, error)
	CountDogs(ctx context.Context) (int64, error)
	CreateDogs(ctx context.Context, dogs []models.Dog) error

	GetPreference(ctx context.Context, userID string) (*models.UserPref, error)
	ReplacePreference(ctx context.Context, pref *models.UserPref) error

	ListDecisions(ctx context.Context, userID string) ([]models.UserDog, error)
	UpsertDecision(ctx context.Context, entry *models.UserDog) error
	PruneOrphanDecisions(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
}
