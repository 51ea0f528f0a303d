package app

import (
	"context"
	"fmt"

	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/platform/llm"
	"github.com/yungbote/skillup-backend/internal/platform/locks"
	redisclient "github.com/yungbote/skillup-backend/internal/platform/redis"
)

type Clients struct {
	LLM    llm.Provider
	Locker locks.KeyLocker
}

// wireClients builds the external dependencies. The returned closers release
// them in order.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, []func() error, error) {
	log.Info("Wiring clients...")
	var closers []func() error

	provider, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return Clients{}, closers, fmt.Errorf("init llm provider: %w", err)
	}

	var locker locks.KeyLocker
	switch cfg.LockBackend {
	case LockBackendRedis:
		rdb, err := redisclient.NewClient(cfg.Redis, log)
		if err != nil {
			return Clients{}, closers, fmt.Errorf("init redis: %w", err)
		}
		closers = append(closers, rdb.Close)
		rl, err := locks.NewRedisLocker(rdb, log, "", cfg.LockTTL())
		if err != nil {
			return Clients{}, closers, fmt.Errorf("init redis locker: %w", err)
		}
		locker = rl
	default:
		locker = locks.NewLocalTable()
	}
	log.Info("Progress guard ready", "backend", cfg.LockBackend, "llm_provider", cfg.LLM.Provider, "model", provider.ModelID())

	return Clients{LLM: provider, Locker: locker}, closers, nil
}
