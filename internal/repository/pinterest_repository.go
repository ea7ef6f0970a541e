package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
)

// StateTTL bounds how long an in-flight OAuth redirect stays valid.
const StateTTL = 10 * time.Minute

// PinterestRepository defines data access for Pinterest OAuth credentials
// and in-flight authorization state.
type PinterestRepository interface {
	// GetToken returns ErrNotFound when Pinterest is not connected.
	GetToken(ctx context.Context, userID string) (*domain.PinterestToken, error)
	SaveToken(ctx context.Context, userID string, token *domain.PinterestToken) error
	DeleteToken(ctx context.Context, userID string) error

	// SaveState stores a redirect state entry that expires after StateTTL.
	SaveState(ctx context.Context, state string, record *domain.PinterestState) error
	// GetState returns ErrNotFound for unknown or expired states.
	GetState(ctx context.Context, state string) (*domain.PinterestState, error)
	DeleteState(ctx context.Context, state string) error
}

type pinterestRepository struct {
	client *redis.Client
}

// NewPinterestRepository creates a new instance of PinterestRepository.
func NewPinterestRepository(client *redis.Client) PinterestRepository {
	return &pinterestRepository{client: client}
}

func (r *pinterestRepository) GetToken(ctx context.Context, userID string) (*domain.PinterestToken, error) {
	var token domain.PinterestToken
	if err := getJSON(ctx, r.client, key(kindPinterestToken, userID), &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *pinterestRepository) SaveToken(ctx context.Context, userID string, token *domain.PinterestToken) error {
	return setJSON(ctx, r.client, key(kindPinterestToken, userID), token, 0)
}

func (r *pinterestRepository) DeleteToken(ctx context.Context, userID string) error {
	return del(ctx, r.client, key(kindPinterestToken, userID))
}

func (r *pinterestRepository) SaveState(ctx context.Context, state string, record *domain.PinterestState) error {
	return setJSON(ctx, r.client, key(kindPinterestState, state), record, StateTTL)
}

func (r *pinterestRepository) GetState(ctx context.Context, state string) (*domain.PinterestState, error) {
	var record domain.PinterestState
	if err := getJSON(ctx, r.client, key(kindPinterestState, state), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *pinterestRepository) DeleteState(ctx context.Context, state string) error {
	return del(ctx, r.client, key(kindPinterestState, state))
}
