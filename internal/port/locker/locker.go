package locker

import "context"

// Locker serialises engine operations over the ledger+catalog pair. The
// Postgres adapter uses session advisory locks; lock and unlock must occur on
// the same DB connection because pg_advisory_lock is session-level.
type Locker interface {
	WithLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error
}
