package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/skillup-backend/internal/data/db"
	"github.com/yungbote/skillup-backend/internal/data/repos"
	apphttp "github.com/yungbote/skillup-backend/internal/http"
	"github.com/yungbote/skillup-backend/internal/jobs"
	"github.com/yungbote/skillup-backend/internal/observability"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *db.Service
	Repos    repos.Repos
	Services Services
	Router   *gin.Engine

	scheduler    *jobs.Scheduler
	closers      []func() error
	otelShutdown func(context.Context) error
}

// OpenDB connects and migrates the schema.
func OpenDB(cfg Config, log *logger.Logger) (*db.Service, error) {
	dbs, err := db.NewService(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}
	if err := db.AutoMigrateAll(dbs.DB()); err != nil {
		_ = dbs.Close()
		return nil, err
	}
	return dbs, nil
}

func New(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	dbs, err := OpenDB(cfg, log)
	if err != nil {
		return nil, err
	}
	a := &App{Log: log, Cfg: cfg, DB: dbs, otelShutdown: otelShutdown}
	a.closers = append(a.closers, dbs.Close)

	a.Repos = repos.NewRepos(dbs.DB(), log)

	clients, closers, err := wireClients(ctx, log, cfg)
	a.closers = append(a.closers, closers...)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Services, err = wireServices(dbs.DB(), log, cfg, a.Repos, clients)
	if err != nil {
		a.Close()
		return nil, err
	}

	handlers := wireHandlers(log, dbs, a.Services)
	middleware := wireMiddleware(log, a.Services)
	a.Router = wireRouter(log, cfg, handlers, middleware)
	a.scheduler = jobs.NewScheduler(log, a.Services.Auditor, cfg.AuditInterval())
	return a, nil
}

// Run starts background jobs and serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return errors.New("app not initialized")
	}
	if err := a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer a.scheduler.Stop()

	srv := &apphttp.Server{Engine: a.Router}
	a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
	return srv.Run(ctx, a.Cfg.Addr(), a.Cfg.ShutdownTimeout())
}

func (a *App) Close() {
	if a == nil {
		return
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout())
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		a.otelShutdown = nil
	}
	a.Log.Sync()
}

// RunAudit runs the orphan audit once against the configured database.
func RunAudit(ctx context.Context, cfg Config, log *logger.Logger) (jobs.AuditReport, error) {
	dbs, err := OpenDB(cfg, log)
	if err != nil {
		return jobs.AuditReport{}, err
	}
	defer dbs.Close()
	r := repos.NewRepos(dbs.DB(), log)
	return jobs.NewOrphanAuditor(log, r.Goal, r.LearningPathProgress).Run(ctx)
}
