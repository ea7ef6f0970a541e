package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
)

// SocialRepository defines data access for social connection flags. The
// record is current-state-only and fully overwritten on every save.
type SocialRepository interface {
	// Get returns the all-disconnected state when nothing was ever saved.
	Get(ctx context.Context, userID string) (domain.SocialConnections, error)
	Save(ctx context.Context, userID string, connections domain.SocialConnections) error
}

type socialRepository struct {
	client *redis.Client
}

// NewSocialRepository creates a new instance of SocialRepository.
func NewSocialRepository(client *redis.Client) SocialRepository {
	return &socialRepository{client: client}
}

func (r *socialRepository) Get(ctx context.Context, userID string) (domain.SocialConnections, error) {
	var connections domain.SocialConnections
	if err := getJSON(ctx, r.client, key(kindSocial, userID), &connections); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.SocialConnections{}, nil
		}
		return domain.SocialConnections{}, err
	}
	return connections, nil
}

func (r *socialRepository) Save(ctx context.Context, userID string, connections domain.SocialConnections) error {
	return setJSON(ctx, r.client, key(kindSocial, userID), connections, 0)
}
