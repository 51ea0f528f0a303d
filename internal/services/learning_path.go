package services

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/modules/learning/suggest"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/platform/apierr"
)

// CreatePathResult is a new path with whatever goals were written. When
// goal fan-out stops early, GoalsIncomplete is set and the path is kept.
type CreatePathResult struct {
	LearningPath    *types.LearningPath `json:"learningPath"`
	Goals           []*types.Goal       `json:"goals"`
	GoalsIncomplete bool                `json:"goalsIncomplete"`
}

type LearningPathWithGoals struct {
	*types.LearningPath
	Goals []*types.Goal `json:"goals"`
}

type LearningPathService interface {
	CreatePath(dbc dbctx.Context, userID, title, description string) (*CreatePathResult, error)
	DeletePath(dbc dbctx.Context, userID string, id uuid.UUID) error
	ListPaths(dbc dbctx.Context, userID string) ([]*types.LearningPath, error)
	ListPathsWithGoals(dbc dbctx.Context, userID string) ([]*LearningPathWithGoals, error)
	GetPath(dbc dbctx.Context, userID string, id uuid.UUID) (*types.LearningPath, error)
}

type learningPathService struct {
	db        *gorm.DB
	log       *logger.Logger
	paths     repos.LearningPathRepo
	goals     repos.GoalRepo
	generator suggest.Generator
}

func NewLearningPathService(db *gorm.DB, log *logger.Logger, paths repos.LearningPathRepo, goals repos.GoalRepo, generator suggest.Generator) LearningPathService {
	return &learningPathService{
		db:        db,
		log:       log.With("service", "LearningPathService"),
		paths:     paths,
		goals:     goals,
		generator: generator,
	}
}

// CreatePath seeds the path from the generator, then writes one goal per
// suggested goal in order. Nothing is rolled back: a generator failure yields
// a path with empty resource lists, and a goal write failure leaves the goals
// written so far.
func (s *learningPathService) CreatePath(dbc dbctx.Context, userID, title, description string) (*CreatePathResult, error) {
	if userID == "" {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", pkgerrors.ErrUnauthorized)
	}
	if strings.TrimSpace(title) == "" {
		return nil, apierr.New(http.StatusBadRequest, "missing_title", pkgerrors.ErrInvalidArgument)
	}
	if strings.TrimSpace(description) == "" {
		return nil, apierr.New(http.StatusBadRequest, "missing_description", pkgerrors.ErrInvalidArgument)
	}

	suggestions, err := s.generator.SuggestPath(dbc.Ctx, title)
	if err != nil {
		s.log.Warn("path suggestions unavailable, creating path without resources", "user_id", userID, "error", err)
	}

	path := &types.LearningPath{
		UserID:           userID,
		Title:            title,
		Description:      description,
		SuggestedCourses: datatypes.JSONSlice[string](suggestions.SuggestedCourses),
		Tutorials:        datatypes.JSONSlice[string](suggestions.Tutorials),
		Exercises:        datatypes.JSONSlice[string](suggestions.Exercises),
	}
	if _, err := s.paths.Create(dbc, []*types.LearningPath{path}); err != nil {
		s.log.Error("create learning path failed", "user_id", userID, "error", err)
		return nil, err
	}

	out := &CreatePathResult{LearningPath: path, Goals: make([]*types.Goal, 0, len(suggestions.Goals))}
	for i, goalTitle := range suggestions.Goals {
		goal := &types.Goal{LearningPathID: path.ID, Title: goalTitle, Completed: false}
		if _, err := s.goals.Create(dbc, []*types.Goal{goal}); err != nil {
			s.log.Error("goal fan-out stopped", "learning_path_id", path.ID, "written", i, "intended", len(suggestions.Goals), "error", err)
			out.GoalsIncomplete = true
			break
		}
		out.Goals = append(out.Goals, goal)
	}
	return out, nil
}

// DeletePath removes only the path row. Goals and progress records that
// reference it are left in place.
func (s *learningPathService) DeletePath(dbc dbctx.Context, userID string, id uuid.UUID) error {
	if _, err := s.GetPath(dbc, userID, id); err != nil {
		return err
	}
	n, err := s.paths.SoftDeleteByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		s.log.Error("delete learning path failed", "learning_path_id", id, "error", err)
		return err
	}
	if n == 0 {
		return apierr.New(http.StatusNotFound, "learning_path_not_found", pkgerrors.ErrNotFound)
	}
	return nil
}

func (s *learningPathService) ListPaths(dbc dbctx.Context, userID string) ([]*types.LearningPath, error) {
	if userID == "" {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", pkgerrors.ErrUnauthorized)
	}
	return s.paths.GetByUserID(dbc, userID)
}

func (s *learningPathService) ListPathsWithGoals(dbc dbctx.Context, userID string) ([]*LearningPathWithGoals, error) {
	paths, err := s.ListPaths(dbc, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(paths))
	for _, p := range paths {
		ids = append(ids, p.ID)
	}
	goals, err := s.goals.GetByLearningPathIDs(dbc, ids)
	if err != nil {
		return nil, err
	}
	byPath := make(map[uuid.UUID][]*types.Goal, len(paths))
	for _, g := range goals {
		byPath[g.LearningPathID] = append(byPath[g.LearningPathID], g)
	}
	out := make([]*LearningPathWithGoals, 0, len(paths))
	for _, p := range paths {
		pg := byPath[p.ID]
		if pg == nil {
			pg = []*types.Goal{}
		}
		out = append(out, &LearningPathWithGoals{LearningPath: p, Goals: pg})
	}
	return out, nil
}

// GetPath returns the path only to its owner; anyone else sees not-found.
func (s *learningPathService) GetPath(dbc dbctx.Context, userID string, id uuid.UUID) (*types.LearningPath, error) {
	if userID == "" {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", pkgerrors.ErrUnauthorized)
	}
	if id == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_learning_path_id", pkgerrors.ErrInvalidArgument)
	}
	path, err := s.paths.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if path == nil || path.UserID != userID {
		return nil, apierr.New(http.StatusNotFound, "learning_path_not_found", pkgerrors.ErrNotFound)
	}
	return path, nil
}
