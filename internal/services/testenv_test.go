package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	"github.com/yungbote/skillup-backend/internal/data/repos/testutil"
	"github.com/yungbote/skillup-backend/internal/modules/learning/suggest"
	"github.com/yungbote/skillup-backend/internal/pkg/ctxutil"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/platform/llm"
	"github.com/yungbote/skillup-backend/internal/platform/locks"
)

type testEnv struct {
	db       *gorm.DB
	log      *logger.Logger
	repos    repos.Repos
	llm      *llm.MockProvider
	gen      suggest.Generator
	locker   *locks.LocalTable
	paths    LearningPathService
	goals    GoalService
	progress ProgressService
	skills   SkillsService
	dash     DashboardService
	users    UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	r := repos.NewRepos(db, log)
	mock := llm.NewMockProvider()
	gen := suggest.NewGenerator(mock, log)
	table := locks.NewLocalTable()

	paths := NewLearningPathService(db, log, r.LearningPath, r.Goal, gen)
	return &testEnv{
		db:       db,
		log:      log,
		repos:    r,
		llm:      mock,
		gen:      gen,
		locker:   table,
		paths:    paths,
		goals:    NewGoalService(db, log, paths, r.LearningPath, r.Goal),
		progress: NewProgressService(db, log, paths, r.Goal, r.LearningPathProgress, table),
		skills:   NewSkillsService(db, log, r.SuggestedSkills, gen),
		dash:     NewDashboardService(db, log, r.SuggestedSkills, r.LearningPathProgress, r.LearningPath),
		users:    NewUserService(db, log, r.User),
	}
}

func userCtx(userID string) dbctx.Context {
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: userID})
	return dbctx.New(ctx)
}

const rustSuggestions = `{"suggestedCourses":["Course X"],"tutorials":["Tut Y"],"exercises":["Ex Z"],"goals":["Finish chapter 1","Build a CLI"]}`
