package selection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
	redisclient "github.com/primelogicsol/artstay-booking/internal/infrastructure/clients/redis"
)

// RedisStore is a SelectionStore that keeps selections as JSON values with a
// session TTL, so an in-progress booking survives instance restarts and is
// shared across instances behind a load balancer.
type RedisStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed selection store. The TTL bounds the
// booking session: an abandoned selection expires on its own.
func NewRedisStore(client *redisclient.Client, ttl time.Duration) providers.SelectionStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) redisKey(sessionID string, vertical entities.Vertical) string {
	return fmt.Sprintf("selection:%s:%s", sessionID, vertical)
}

// Get returns the current selection, or the empty selection when none exists.
func (s *RedisStore) Get(ctx context.Context, sessionID string, vertical entities.Vertical) (*entities.Selection, error) {
	raw, err := s.client.Client().Get(ctx, s.redisKey(sessionID, vertical)).Bytes()
	if err == redis.Nil {
		return entities.EmptySelection(vertical), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	var sel entities.Selection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, fmt.Errorf("failed to decode selection: %w", err)
	}
	return &sel, nil
}

// Merge applies a shallow partial update and writes the result back with a
// refreshed TTL. Reads and writes happen on the single UI-driven request
// path, so read-modify-write per key is sufficient here.
func (s *RedisStore) Merge(ctx context.Context, sessionID string, vertical entities.Vertical, patch entities.SelectionPatch) (*entities.Selection, error) {
	sel, err := s.Get(ctx, sessionID, vertical)
	if err != nil {
		return nil, err
	}

	sel.Apply(patch)

	raw, err := json.Marshal(sel)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selection: %w", err)
	}
	if err := s.client.Client().Set(ctx, s.redisKey(sessionID, vertical), raw, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store selection: %w", err)
	}
	return sel, nil
}

// Clear resets the selection to empty.
func (s *RedisStore) Clear(ctx context.Context, sessionID string, vertical entities.Vertical) error {
	if err := s.client.Client().Del(ctx, s.redisKey(sessionID, vertical)).Err(); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	return nil
}
