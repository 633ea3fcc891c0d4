package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hellostack/portal/internal/core/ports"
)

const defaultStateTTL = 10 * time.Minute

// StateStore keeps pending OAuth sign-ins in Redis.
// Key format: oauth:state:<state>
type StateStore struct {
	client redis.Cmdable
}

// NewStateStore creates a StateStore wrapping the given Redis client.
func NewStateStore(client redis.Cmdable) *StateStore {
	return &StateStore{client: client}
}

// Save records a pending sign-in. ttl <= 0 uses defaultStateTTL.
func (s *StateStore) Save(ctx context.Context, state string, p ports.PendingSignIn, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultStateTTL
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.client.Set(ctx, s.key(state), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Consume atomically reads and deletes a pending sign-in, so a state can
// complete at most one callback.
func (s *StateStore) Consume(ctx context.Context, state string) (*ports.PendingSignIn, error) {
	raw, err := s.client.GetDel(ctx, s.key(state)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("consume state: %w", err)
	}

	var p ports.PendingSignIn
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &p, nil
}

func (s *StateStore) key(state string) string {
	return "oauth:state:" + state
}
