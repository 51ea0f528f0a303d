package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	"github.com/yungbote/skillup-backend/internal/data/repos/testutil"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

func TestOrphanAuditorCountsWithoutDeleting(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	r := repos.NewRepos(db, log)

	kept := testutil.SeedLearningPath(t, ctx, db, "user_1", "Kept")
	gone := testutil.SeedLearningPath(t, ctx, db, "user_1", "Gone")
	testutil.SeedGoal(t, ctx, db, kept.ID, "stay", false)
	testutil.SeedGoal(t, ctx, db, gone.ID, "orphan a", false)
	testutil.SeedGoal(t, ctx, db, gone.ID, "orphan b", true)

	_, err := r.LearningPath.SoftDeleteByIDs(dbctx.New(ctx), []uuid.UUID{gone.ID})
	require.NoError(t, err)

	auditor := NewOrphanAuditor(log, r.Goal, r.LearningPathProgress)
	report, err := auditor.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), report.OrphanedGoals)
	require.Equal(t, int64(0), report.OrphanedProgress)
	require.False(t, report.CheckedAt.IsZero())

	again, err := auditor.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, report.OrphanedGoals, again.OrphanedGoals)
}

type countStub struct {
	n   int64
	err error
}

func (c countStub) CountOrphaned(dbctx.Context) (int64, error) { return c.n, c.err }

func TestOrphanAuditorPropagatesErrors(t *testing.T) {
	auditor := NewOrphanAuditor(logger.Nop(), countStub{n: 1}, countStub{err: errors.New("db down")})
	_, err := auditor.Run(context.Background())
	require.ErrorContains(t, err, "count orphaned progress")
}

func TestSchedulerDisabledWithZeroInterval(t *testing.T) {
	auditor := NewOrphanAuditor(logger.Nop(), countStub{}, countStub{})
	s := NewScheduler(logger.Nop(), auditor, 0)
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}

func TestSchedulerRunsAudit(t *testing.T) {
	calls := make(chan struct{}, 4)
	auditor := NewOrphanAuditor(logger.Nop(), signalStub{calls: calls}, countStub{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewScheduler(logger.Nop(), auditor, time.Hour)
	require.NoError(t, s.Start(ctx))
	defer s.Stop()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatalf("audit did not run on start")
	}
}

type signalStub struct{ calls chan struct{} }

func (s signalStub) CountOrphaned(dbctx.Context) (int64, error) {
	select {
	case s.calls <- struct{}{}:
	default:
	}
	return 0, nil
}
