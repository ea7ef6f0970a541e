package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
)

// OrderRepository defines data access for a user's order history.
type OrderRepository interface {
	// List returns the user's orders, oldest first. A user with no history
	// gets an empty list, not an error.
	List(ctx context.Context, userID string) ([]domain.Order, error)
	// Append adds orders to the end of the user's history.
	Append(ctx context.Context, userID string, orders ...domain.Order) error
}

type orderRepository struct {
	client *redis.Client
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(client *redis.Client) OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) List(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := getJSON(ctx, r.client, key(kindOrders, userID), &orders); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []domain.Order{}, nil
		}
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Append(ctx context.Context, userID string, orders ...domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	existing, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	// Last write wins; the store offers no transactional guarantee.
	return setJSON(ctx, r.client, key(kindOrders, userID), append(existing, orders...), 0)
}
