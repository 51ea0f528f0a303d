package locks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

// Deletes the key only if it still carries our token, so a lock that expired
// and was taken by another replica is left alone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares the lock table across processes. Entries expire after
// ttl so a crashed holder cannot wedge a key.
type RedisLocker struct {
	rdb    goredis.UniversalClient
	log    *logger.Logger
	prefix string
	ttl    time.Duration
}

func NewRedisLocker(rdb goredis.UniversalClient, log *logger.Logger, prefix string, ttl time.Duration) (*RedisLocker, error) {
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if prefix == "" {
		prefix = "skillup:lock:"
	}
	return &RedisLocker{
		rdb:    rdb,
		log:    log.With("component", "RedisLocker"),
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (l *RedisLocker) TryAcquire(ctx context.Context, key string) (Release, bool, error) {
	full := l.prefix + key
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, full, token, l.ttl).Result()
	if err != nil {
		return noopRelease, false, fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return noopRelease, false, nil
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			// Release must run even when the request context is already done.
			rctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := releaseScript.Run(rctx, l.rdb, []string{full}, token).Err(); err != nil {
				l.log.Warn("redis lock release failed", "key", full, "error", err)
			}
		})
	}, true, nil
}
