package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
)

// MoodboardRepository defines data access for a user's moodboard collection.
// The backing store only supports whole-collection delete; per-board delete
// is deliberately absent.
type MoodboardRepository interface {
	List(ctx context.Context, userID string) ([]domain.Moodboard, error)
	Append(ctx context.Context, userID string, board domain.Moodboard) error
	DeleteAll(ctx context.Context, userID string) error
}

type moodboardRepository struct {
	client *redis.Client
}

// NewMoodboardRepository creates a new instance of MoodboardRepository.
func NewMoodboardRepository(client *redis.Client) MoodboardRepository {
	return &moodboardRepository{client: client}
}

func (r *moodboardRepository) List(ctx context.Context, userID string) ([]domain.Moodboard, error) {
	var boards []domain.Moodboard
	if err := getJSON(ctx, r.client, key(kindMoodboards, userID), &boards); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []domain.Moodboard{}, nil
		}
		return nil, err
	}
	return boards, nil
}

func (r *moodboardRepository) Append(ctx context.Context, userID string, board domain.Moodboard) error {
	existing, err := r.List(ctx, userID)
	if err != nil {
		return err
	}
	return setJSON(ctx, r.client, key(kindMoodboards, userID), append(existing, board), 0)
}

func (r *moodboardRepository) DeleteAll(ctx context.Context, userID string) error {
	return del(ctx, r.client, key(kindMoodboards, userID))
}
