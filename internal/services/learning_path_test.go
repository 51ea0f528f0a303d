package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
	"github.com/yungbote/skillup-backend/internal/platform/apierr"
	"github.com/yungbote/skillup-backend/internal/platform/llm"
)

func TestCreatePath_LearnRustEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.llm.AddResponse(llm.MockResponse{Text: rustSuggestions})
	dbc := userCtx("user_a")

	res, err := env.paths.CreatePath(dbc, "user_a", "Learn Rust", "systems programming")
	require.NoError(t, err)
	require.False(t, res.GoalsIncomplete)

	p := res.LearningPath
	require.Equal(t, []string{"Course X"}, []string(p.SuggestedCourses))
	require.Equal(t, []string{"Tut Y"}, []string(p.Tutorials))
	require.Equal(t, []string{"Ex Z"}, []string(p.Exercises))

	goals, err := env.goals.ListGoals(dbc, "user_a", p.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	for _, g := range goals {
		require.Equal(t, p.ID, g.LearningPathID)
		require.False(t, g.Completed)
	}

	first, err := env.progress.Recompute(dbc, "user_a", p.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, first.ProgressPercentage)
	require.Equal(t, "0.00", first.ProgressDisplay)

	_, err = env.goals.SetCompletion(dbc, "user_a", goals[0].ID, true)
	require.NoError(t, err)

	second, err := env.progress.Recompute(dbc, "user_a", p.ID)
	require.NoError(t, err)
	require.Equal(t, 50.0, second.ProgressPercentage)
	require.Equal(t, "50.00", second.ProgressDisplay)

	rows, err := env.repos.LearningPathProgress.GetByUserAndPath(dbc, "user_a", p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 50.0, rows[0].ProgressPercentage)
}

func TestCreatePath_GeneratorFailureKeepsEmptyPath(t *testing.T) {
	env := newTestEnv(t)
	env.llm.AddResponse(llm.MockResponse{Text: "Sure! Here are some courses..."})
	dbc := userCtx("user_a")

	res, err := env.paths.CreatePath(dbc, "user_a", "Learn Go", "backend")
	require.NoError(t, err)
	require.Empty(t, res.LearningPath.SuggestedCourses)
	require.Empty(t, res.LearningPath.Tutorials)
	require.Empty(t, res.LearningPath.Exercises)
	require.Empty(t, res.Goals)

	// Upstream failure degrades the same way.
	env.llm.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	res, err = env.paths.CreatePath(dbc, "user_a", "Learn Zig", "systems")
	require.NoError(t, err)
	require.Empty(t, res.Goals)

	paths, err := env.paths.ListPaths(dbc, "user_a")
	require.NoError(t, err)
	require.Len(t, paths, 2)
}

func TestCreatePath_RequiresTitleAndDescription(t *testing.T) {
	env := newTestEnv(t)
	dbc := userCtx("user_a")

	_, err := env.paths.CreatePath(dbc, "user_a", "  ", "desc")
	status, code := apierr.Resolve(err, "x")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "missing_title", code)

	_, err = env.paths.CreatePath(dbc, "user_a", "Learn Rust", "")
	require.True(t, errors.Is(err, pkgerrors.ErrInvalidArgument))
	require.Equal(t, 0, env.llm.CallCount())
}

type failingGoalRepo struct {
	repos.GoalRepo
	failAfter int
	calls     int
}

func (f *failingGoalRepo) Create(dbc dbctx.Context, rows []*types.Goal) ([]*types.Goal, error) {
	f.calls++
	if f.calls > f.failAfter {
		return nil, errors.New("write rejected")
	}
	return f.GoalRepo.Create(dbc, rows)
}

func TestCreatePath_PartialGoalFanOut(t *testing.T) {
	env := newTestEnv(t)
	env.llm.AddResponse(llm.MockResponse{Text: `{"goals":["one","two","three"]}`})
	goals := &failingGoalRepo{GoalRepo: env.repos.Goal, failAfter: 1}
	svc := NewLearningPathService(env.db, env.log, env.repos.LearningPath, goals, env.gen)
	dbc := userCtx("user_a")

	res, err := svc.CreatePath(dbc, "user_a", "Learn Rust", "desc")
	require.NoError(t, err)
	require.True(t, res.GoalsIncomplete)
	require.Len(t, res.Goals, 1)

	stored, err := env.repos.Goal.GetByLearningPathID(dbc, res.LearningPath.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "one", stored[0].Title)
}

func TestDeletePath_NoCascade(t *testing.T) {
	env := newTestEnv(t)
	env.llm.AddResponse(llm.MockResponse{Text: rustSuggestions})
	dbc := userCtx("user_a")

	res, err := env.paths.CreatePath(dbc, "user_a", "Learn Rust", "desc")
	require.NoError(t, err)
	pathID := res.LearningPath.ID
	_, err = env.progress.Recompute(dbc, "user_a", pathID)
	require.NoError(t, err)

	require.NoError(t, env.paths.DeletePath(dbc, "user_a", pathID))

	_, err = env.paths.GetPath(dbc, "user_a", pathID)
	require.True(t, errors.Is(err, pkgerrors.ErrNotFound))

	// Goals and the progress record are orphaned, not removed.
	goals, err := env.repos.Goal.GetByLearningPathID(dbc, pathID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	progress, err := env.repos.LearningPathProgress.GetByUserAndPath(dbc, "user_a", pathID)
	require.NoError(t, err)
	require.Len(t, progress, 1)

	err = env.paths.DeletePath(dbc, "user_a", pathID)
	status, _ := apierr.Resolve(err, "x")
	require.Equal(t, http.StatusNotFound, status)
}

func TestPathsAreOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	env.llm.AddResponse(llm.MockResponse{Text: rustSuggestions})
	owner := userCtx("user_a")
	other := userCtx("user_b")

	res, err := env.paths.CreatePath(owner, "user_a", "Learn Rust", "desc")
	require.NoError(t, err)
	pathID := res.LearningPath.ID

	_, err = env.paths.GetPath(other, "user_b", pathID)
	require.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	require.True(t, errors.Is(env.paths.DeletePath(other, "user_b", pathID), pkgerrors.ErrNotFound))
	_, err = env.goals.AddGoal(other, "user_b", pathID, "sneaky")
	require.True(t, errors.Is(err, pkgerrors.ErrNotFound))

	listed, err := env.paths.ListPathsWithGoals(owner, "user_a")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Goals, 2)

	none, err := env.paths.ListPathsWithGoals(other, "user_b")
	require.NoError(t, err)
	require.Empty(t, none)

	_, err = env.paths.GetPath(owner, "user_a", uuid.New())
	require.True(t, errors.Is(err, pkgerrors.ErrNotFound))
}
