// Package repository persists per-user entities as JSON blobs in the
// key-value store, keyed as <entity-kind>:<userId>.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("record not found")

// Entity kinds used as key prefixes.
const (
	kindProfile        = "profile"
	kindOrders         = "orders"
	kindSocial         = "social"
	kindMoodboards     = "moodboards"
	kindWishlist       = "wishlist"
	kindStyle          = "style"
	kindInspiration    = "inspiration"
	kindPinterestToken = "pinterest_token"
	kindPinterestState = "pinterest_state"
)

func key(kind, id string) string {
	return fmt.Sprintf("%s:%s", kind, id)
}

func getJSON(ctx context.Context, client *redis.Client, key string, dest interface{}) error {
	raw, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func setJSON(ctx context.Context, client *redis.Client, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, client *redis.Client, key string) error {
	if err := client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
