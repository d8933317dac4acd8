package memory

import (
	"context"
	"errors"
	"time"
)

// replayTTL bounds how long a processed operation can be replayed in dev
// mode. The postgres store keeps keys until the table is pruned.
const replayTTL = 24 * time.Hour

// IdempotencyStore implements port/idempotency.Store on top of the TTL cache.
type IdempotencyStore struct {
	cache *Cache
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{cache: NewCache()}
}

func (s *IdempotencyStore) Check(ctx context.Context, key string) ([]byte, bool, error) {
	result, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return result, true, nil
}

func (s *IdempotencyStore) Store(ctx context.Context, key, _ string, resultJSON []byte) error {
	return s.cache.Set(ctx, key, resultJSON, replayTTL)
}
