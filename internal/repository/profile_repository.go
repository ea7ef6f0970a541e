package repository

import (
	"context"

	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
)

// ProfileRepository defines data access for user profiles.
type ProfileRepository interface {
	// Get returns ErrNotFound when the user has never saved a profile.
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, userID string, profile *domain.Profile) error
}

type profileRepository struct {
	client *redis.Client
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(client *redis.Client) ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := getJSON(ctx, r.client, key(kindProfile, userID), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, userID string, profile *domain.Profile) error {
	return setJSON(ctx, r.client, key(kindProfile, userID), profile, 0)
}
