package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylevault/internal/domain"
	"stylevault/internal/moodboard"
	"stylevault/internal/repository"
)

// MoodboardService defines the interface for moodboard business logic. The
// generator itself is pure; this service owns loading the inventory,
// stamping identity and persisting the result.
type MoodboardService interface {
	// Create builds a board around the user's selection. Returns
	// moodboard.ErrEmptySelection when selected is empty.
	Create(ctx context.Context, userID string, selected []domain.WardrobeItem, inspirationImages []string) (*domain.Moodboard, error)
	// QuickCreate builds a complete outfit with no prior selection. Returns
	// moodboard.ErrInsufficientInventory when no outfit anchor exists.
	QuickCreate(ctx context.Context, userID string) (*domain.Moodboard, error)
	List(ctx context.Context, userID string) ([]domain.Moodboard, error)
	DeleteAll(ctx context.Context, userID string) error
}

type moodboardService struct {
	orders     repository.OrderRepository
	moodboards repository.MoodboardRepository
	styles     repository.StyleRepository
	generator  *moodboard.Generator
	now        func() time.Time
}

// NewMoodboardService creates a new instance of MoodboardService.
func NewMoodboardService(
	orders repository.OrderRepository,
	moodboards repository.MoodboardRepository,
	styles repository.StyleRepository,
	generator *moodboard.Generator,
) MoodboardService {
	return &moodboardService{
		orders:     orders,
		moodboards: moodboards,
		styles:     styles,
		generator:  generator,
		now:        time.Now,
	}
}

func (s *moodboardService) Create(ctx context.Context, userID string, selected []domain.WardrobeItem, inspirationImages []string) (*domain.Moodboard, error) {
	inventory, err := s.inventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	board, err := s.generator.Generate(inventory, selected)
	if err != nil {
		return nil, err
	}

	if len(inspirationImages) == 0 {
		inspirationImages, err = s.savedInspiration(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	board.InspirationImages = inspirationImages

	return s.store(ctx, userID, board)
}

func (s *moodboardService) QuickCreate(ctx context.Context, userID string) (*domain.Moodboard, error) {
	inventory, err := s.inventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	board, err := s.generator.QuickCreate(inventory)
	if err != nil {
		return nil, err
	}

	board.InspirationImages, err = s.savedInspiration(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.store(ctx, userID, board)
}

func (s *moodboardService) List(ctx context.Context, userID string) ([]domain.Moodboard, error) {
	return s.moodboards.List(ctx, userID)
}

func (s *moodboardService) DeleteAll(ctx context.Context, userID string) error {
	return s.moodboards.DeleteAll(ctx, userID)
}

// inventory flattens the user's order history into the wardrobe the
// generator draws from.
func (s *moodboardService) inventory(ctx context.Context, userID string) ([]domain.WardrobeItem, error) {
	orders, err := s.orders.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}

	var items []domain.WardrobeItem
	for _, order := range orders {
		items = append(items, order.Items...)
	}
	return items, nil
}

// savedInspiration falls back to the user's stored inspiration set; a user
// without one gets an empty list.
func (s *moodboardService) savedInspiration(ctx context.Context, userID string) ([]string, error) {
	inspiration, err := s.styles.GetInspiration(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return inspiration.Images, nil
}

// store stamps identity and persists the board. Ids are millisecond
// timestamps, matching the shape of boards written by earlier clients.
func (s *moodboardService) store(ctx context.Context, userID string, board domain.Moodboard) (*domain.Moodboard, error) {
	now := s.now().UTC()
	board.ID = now.UnixMilli()
	board.CreatedAt = now
	if board.InspirationImages == nil {
		board.InspirationImages = []string{}
	}

	if err := s.moodboards.Append(ctx, userID, board); err != nil {
		return nil, fmt.Errorf("failed to save moodboard: %w", err)
	}
	return &board, nil
}
