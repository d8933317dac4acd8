package idempotency

import "context"

// Store records the result of a processed mutating request keyed by its
// Idempotency-Key header so replays return the original response.
type Store interface {
	// Check returns the stored result JSON and whether the key exists.
	Check(ctx context.Context, key string) ([]byte, bool, error)
	Store(ctx context.Context, key, operation string, resultJSON []byte) error
}
