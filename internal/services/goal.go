package services

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/platform/apierr"
)

type GoalService interface {
	AddGoal(dbc dbctx.Context, userID string, pathID uuid.UUID, title string) (*types.Goal, error)
	SetCompletion(dbc dbctx.Context, userID string, goalID uuid.UUID, completed bool) (*types.Goal, error)
	DeleteGoal(dbc dbctx.Context, userID string, goalID uuid.UUID) error
	ListGoals(dbc dbctx.Context, userID string, pathID uuid.UUID) ([]*types.Goal, error)
}

type goalService struct {
	db       *gorm.DB
	log      *logger.Logger
	paths    LearningPathService
	pathRepo repos.LearningPathRepo
	goals    repos.GoalRepo
}

func NewGoalService(db *gorm.DB, log *logger.Logger, paths LearningPathService, pathRepo repos.LearningPathRepo, goals repos.GoalRepo) GoalService {
	return &goalService{
		db:       db,
		log:      log.With("service", "GoalService"),
		paths:    paths,
		pathRepo: pathRepo,
		goals:    goals,
	}
}

// AddGoal requires the path to exist and belong to userID at creation time.
func (s *goalService) AddGoal(dbc dbctx.Context, userID string, pathID uuid.UUID, title string) (*types.Goal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apierr.New(http.StatusBadRequest, "missing_title", pkgerrors.ErrInvalidArgument)
	}
	if _, err := s.paths.GetPath(dbc, userID, pathID); err != nil {
		return nil, err
	}
	goal := &types.Goal{LearningPathID: pathID, Title: title, Completed: false}
	if _, err := s.goals.Create(dbc, []*types.Goal{goal}); err != nil {
		s.log.Error("add goal failed", "learning_path_id", pathID, "error", err)
		return nil, err
	}
	return goal, nil
}

// SetCompletion flips the flag in place. A goal whose path is gone is still
// updated; a goal whose path belongs to someone else is not found.
func (s *goalService) SetCompletion(dbc dbctx.Context, userID string, goalID uuid.UUID, completed bool) (*types.Goal, error) {
	goal, err := s.ownedGoal(dbc, userID, goalID)
	if err != nil {
		return nil, err
	}
	n, err := s.goals.UpdateFields(dbc, goalID, map[string]interface{}{"completed": completed})
	if err != nil {
		s.log.Error("update goal failed", "goal_id", goalID, "error", err)
		return nil, err
	}
	if n == 0 {
		return nil, apierr.New(http.StatusNotFound, "goal_not_found", pkgerrors.ErrNotFound)
	}
	goal.Completed = completed
	return goal, nil
}

func (s *goalService) DeleteGoal(dbc dbctx.Context, userID string, goalID uuid.UUID) error {
	if _, err := s.ownedGoal(dbc, userID, goalID); err != nil {
		return err
	}
	n, err := s.goals.SoftDeleteByIDs(dbc, []uuid.UUID{goalID})
	if err != nil {
		s.log.Error("delete goal failed", "goal_id", goalID, "error", err)
		return err
	}
	if n == 0 {
		return apierr.New(http.StatusNotFound, "goal_not_found", pkgerrors.ErrNotFound)
	}
	return nil
}

func (s *goalService) ListGoals(dbc dbctx.Context, userID string, pathID uuid.UUID) ([]*types.Goal, error) {
	if _, err := s.paths.GetPath(dbc, userID, pathID); err != nil {
		return nil, err
	}
	return s.goals.GetByLearningPathID(dbc, pathID)
}

func (s *goalService) ownedGoal(dbc dbctx.Context, userID string, goalID uuid.UUID) (*types.Goal, error) {
	if userID == "" {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", pkgerrors.ErrUnauthorized)
	}
	if goalID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_goal_id", pkgerrors.ErrInvalidArgument)
	}
	goal, err := s.goals.GetByID(dbc, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, apierr.New(http.StatusNotFound, "goal_not_found", pkgerrors.ErrNotFound)
	}
	path, err := s.pathRepo.GetByID(dbc, goal.LearningPathID)
	if err != nil {
		return nil, err
	}
	if path != nil && path.UserID != userID {
		return nil, apierr.New(http.StatusNotFound, "goal_not_found", pkgerrors.ErrNotFound)
	}
	return goal, nil
}
