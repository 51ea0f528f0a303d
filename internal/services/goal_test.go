package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
)

func TestGoalLifecycle(t *testing.T) {
	env := newTestEnv(t)
	path := seedRustPath(t, env, "user_a")
	dbc := userCtx("user_a")

	g, err := env.goals.AddGoal(dbc, "user_a", path.ID, "Read the book")
	require.NoError(t, err)
	require.False(t, g.Completed)

	goals, err := env.goals.ListGoals(dbc, "user_a", path.ID)
	require.NoError(t, err)
	require.Len(t, goals, 3)

	updated, err := env.goals.SetCompletion(dbc, "user_a", g.ID, true)
	require.NoError(t, err)
	require.True(t, updated.Completed)
	updated, err = env.goals.SetCompletion(dbc, "user_a", g.ID, false)
	require.NoError(t, err)
	require.False(t, updated.Completed)

	require.NoError(t, env.goals.DeleteGoal(dbc, "user_a", g.ID))
	goals, err = env.goals.ListGoals(dbc, "user_a", path.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	err = env.goals.DeleteGoal(dbc, "user_a", g.ID)
	require.True(t, errors.Is(err, pkgerrors.ErrNotFound))
}

func TestAddGoal_Validation(t *testing.T) {
	env := newTestEnv(t)
	path := seedRustPath(t, env, "user_a")
	dbc := userCtx("user_a")

	_, err := env.goals.AddGoal(dbc, "user_a", path.ID, "")
	require.True(t, errors.Is(err, pkgerrors.ErrInvalidArgument))
	_, err = env.goals.AddGoal(dbc, "user_a", uuid.New(), "x")
	require.True(t, errors.Is(err, pkgerrors.ErrNotFound))
}

func TestGoalOwnership(t *testing.T) {
	env := newTestEnv(t)
	path := seedRustPath(t, env, "user_a")
	goals := mustGoals(t, env, path.ID)
	other := userCtx("user_b")

	_, err := env.goals.SetCompletion(other, "user_b", goals[0].ID, true)
	require.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	require.True(t, errors.Is(env.goals.DeleteGoal(other, "user_b", goals[0].ID), pkgerrors.ErrNotFound))
}

func TestSetCompletion_OrphanedGoal(t *testing.T) {
	env := newTestEnv(t)
	path := seedRustPath(t, env, "user_a")
	goals := mustGoals(t, env, path.ID)
	dbc := userCtx("user_a")
	require.NoError(t, env.paths.DeletePath(dbc, "user_a", path.ID))

	// The path is gone but the goal is still toggled in place.
	updated, err := env.goals.SetCompletion(dbc, "user_a", goals[0].ID, true)
	require.NoError(t, err)
	require.True(t, updated.Completed)
}
