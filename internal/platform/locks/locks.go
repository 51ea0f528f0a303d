// Package locks provides non-blocking per-key mutual exclusion. A failed
// acquisition means someone else holds the key right now; callers decide
// whether that makes their own work redundant.
package locks

import "context"

// Release frees a held key. It is safe to call more than once.
type Release func()

type KeyLocker interface {
	// TryAcquire returns immediately. When acquired is false, release is a
	// no-op and the key is held elsewhere.
	TryAcquire(ctx context.Context, key string) (release Release, acquired bool, err error)
}

func noopRelease() {}
