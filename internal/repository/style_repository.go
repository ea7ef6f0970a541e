package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
)

// StyleRepository defines data access for the user's style analysis and
// saved inspiration set.
type StyleRepository interface {
	// GetAnalysis returns ErrNotFound when no analysis has been computed yet.
	GetAnalysis(ctx context.Context, userID string) (*domain.StyleAnalysis, error)
	SaveAnalysis(ctx context.Context, userID string, analysis *domain.StyleAnalysis) error

	// GetInspiration returns ErrNotFound when the user has no saved set.
	GetInspiration(ctx context.Context, userID string) (*domain.Inspiration, error)
	// SaveInspiration stores the image set, stamping UpdatedAt.
	SaveInspiration(ctx context.Context, userID string, images []string) (*domain.Inspiration, error)
}

type styleRepository struct {
	client *redis.Client
}

// NewStyleRepository creates a new instance of StyleRepository.
func NewStyleRepository(client *redis.Client) StyleRepository {
	return &styleRepository{client: client}
}

func (r *styleRepository) GetAnalysis(ctx context.Context, userID string) (*domain.StyleAnalysis, error) {
	var analysis domain.StyleAnalysis
	if err := getJSON(ctx, r.client, key(kindStyle, userID), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *styleRepository) SaveAnalysis(ctx context.Context, userID string, analysis *domain.StyleAnalysis) error {
	return setJSON(ctx, r.client, key(kindStyle, userID), analysis, 0)
}

func (r *styleRepository) GetInspiration(ctx context.Context, userID string) (*domain.Inspiration, error) {
	var inspiration domain.Inspiration
	if err := getJSON(ctx, r.client, key(kindInspiration, userID), &inspiration); err != nil {
		return nil, err
	}
	return &inspiration, nil
}

func (r *styleRepository) SaveInspiration(ctx context.Context, userID string, images []string) (*domain.Inspiration, error) {
	inspiration := &domain.Inspiration{
		Images:    images,
		UpdatedAt: time.Now().UTC(),
	}
	if err := setJSON(ctx, r.client, key(kindInspiration, userID), inspiration, 0); err != nil {
		return nil, err
	}
	return inspiration, nil
}
