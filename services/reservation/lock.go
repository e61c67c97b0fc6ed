package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotLocker serializes confirmation of one (office, category, window) slot
// so two customers cannot book it at the same instant.
type SlotLocker interface {
	// Acquire returns false when another confirmation already holds the slot.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release frees the slot early; the TTL is the backstop if this never runs.
	Release(ctx context.Context, key string) error
}

const slotLockPrefix = "slot:lock:"

// RedisSlotLocker implements SlotLocker with SET NX and a TTL.
type RedisSlotLocker struct {
	client *redis.Client
}

func NewRedisSlotLocker(client *redis.Client) *RedisSlotLocker {
	return &RedisSlotLocker{client: client}
}

func (l *RedisSlotLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, slotLockPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire slot lock %s: %w", key, err)
	}
	return ok, nil
}

func (l *RedisSlotLocker) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, slotLockPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release slot lock %s: %w", key, err)
	}
	return nil
}

// SlotKey builds the lock key for one office/category/window combination.
func SlotKey(officeID, categoryID string, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%d:%d", officeID, categoryID, start.Unix(), end.Unix())
}
