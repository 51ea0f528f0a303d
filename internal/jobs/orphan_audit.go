package jobs

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

// OrphanCounter counts rows whose learning path no longer exists.
type OrphanCounter interface {
	CountOrphaned(dbc dbctx.Context) (int64, error)
}

type AuditReport struct {
	OrphanedGoals    int64     `json:"orphanedGoals"`
	OrphanedProgress int64     `json:"orphanedProgress"`
	CheckedAt        time.Time `json:"checkedAt"`
}

// OrphanAuditor reports goals and progress rows left behind by path deletes.
// It never deletes anything.
type OrphanAuditor struct {
	log      *logger.Logger
	goals    OrphanCounter
	progress OrphanCounter
	now      func() time.Time
}

func NewOrphanAuditor(baseLog *logger.Logger, goals, progress OrphanCounter) *OrphanAuditor {
	return &OrphanAuditor{
		log:      baseLog.With("component", "OrphanAuditor"),
		goals:    goals,
		progress: progress,
		now:      time.Now,
	}
}

func (a *OrphanAuditor) Run(ctx context.Context) (AuditReport, error) {
	report := AuditReport{CheckedAt: a.now().UTC()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := a.goals.CountOrphaned(dbctx.New(gctx))
		if err != nil {
			return fmt.Errorf("count orphaned goals: %w", err)
		}
		report.OrphanedGoals = n
		return nil
	})
	g.Go(func() error {
		n, err := a.progress.CountOrphaned(dbctx.New(gctx))
		if err != nil {
			return fmt.Errorf("count orphaned progress: %w", err)
		}
		report.OrphanedProgress = n
		return nil
	})
	if err := g.Wait(); err != nil {
		a.log.Error("orphan audit failed", "error", err)
		return AuditReport{}, err
	}
	if report.OrphanedGoals > 0 || report.OrphanedProgress > 0 {
		a.log.Warn("orphaned rows found",
			"orphaned_goals", report.OrphanedGoals,
			"orphaned_progress", report.OrphanedProgress,
		)
	} else {
		a.log.Info("orphan audit clean")
	}
	return report, nil
}
