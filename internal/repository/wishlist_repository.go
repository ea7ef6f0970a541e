package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
)

// WishlistRepository defines data access for the user's wishlist.
type WishlistRepository interface {
	Get(ctx context.Context, userID string) (domain.Wishlist, error)
	Save(ctx context.Context, userID string, wishlist domain.Wishlist) error
}

type wishlistRepository struct {
	client *redis.Client
}

// NewWishlistRepository creates a new instance of WishlistRepository.
func NewWishlistRepository(client *redis.Client) WishlistRepository {
	return &wishlistRepository{client: client}
}

func (r *wishlistRepository) Get(ctx context.Context, userID string) (domain.Wishlist, error) {
	var wishlist domain.Wishlist
	if err := getJSON(ctx, r.client, key(kindWishlist, userID), &wishlist); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Wishlist{}, nil
		}
		return nil, err
	}
	return wishlist, nil
}

func (r *wishlistRepository) Save(ctx context.Context, userID string, wishlist domain.Wishlist) error {
	return setJSON(ctx, r.client, key(kindWishlist, userID), wishlist, 0)
}
