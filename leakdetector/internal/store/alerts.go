package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// AlertStore keeps short-lived markers for alerts already published.
type AlertStore struct {
	client *redis.Client
}

// NewAlertStore creates a redis-backed alert marker store.
func NewAlertStore(addr string, password string, db int) *AlertStore {
	return &AlertStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// NewAlertStoreWithClient wraps an existing client.
func NewAlertStoreWithClient(client *redis.Client) *AlertStore {
	return &AlertStore{client: client}
}

// Ping verifies connectivity and credentials.
func (s *AlertStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// TryMarkAlerted sets a one-time marker using SETNX semantics. It returns
// true only for the first caller within ttl.
func (s *AlertStore) TryMarkAlerted(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, "1", ttl).Result()
}

// ClearAlert removes a marker so the next alert for key is published.
func (s *AlertStore) ClearAlert(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close releases the underlying connection pool.
func (s *AlertStore) Close() error {
	return s.client.Close()
}
