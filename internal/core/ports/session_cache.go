package ports

import "context"

// SessionCache is a best-effort token-to-user-id cache. A miss or a cache
// error is never fatal; the store of record is always consulted with the
// token in the filter, so stale cache entries cannot resurrect a revoked
// session.
type SessionCache interface {
	// Get returns the cached user id for token, with ok=false on a miss.
	Get(ctx context.Context, token string) (userID string, ok bool, err error)
	Set(ctx context.Context, token, userID string) error
	Delete(ctx context.Context, tokens ...string) error
}
