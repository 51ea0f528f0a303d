package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/modules/learning/progress"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/platform/locks"
)

type RecomputeResult struct {
	LearningPathID     uuid.UUID `json:"learningPathId"`
	ProgressPercentage float64   `json:"progressPercentage"`
	ProgressDisplay    string    `json:"progressDisplay"`
	// Dropped is set when another write for the same (user, path) was in
	// flight and this one was skipped.
	Dropped bool `json:"dropped"`
}

type TrackerEntry struct {
	Path               *types.LearningPath `json:"path"`
	Goals              []*types.Goal       `json:"goals"`
	ProgressPercentage float64             `json:"progressPercentage"`
	ProgressDisplay    string              `json:"progressDisplay"`
}

type ProgressService interface {
	// Recompute reads the goals of one path and upserts its progress record.
	Recompute(dbc dbctx.Context, userID string, pathID uuid.UUID) (*RecomputeResult, error)
	// Tracker recomputes every path of the user and returns the view rows.
	Tracker(dbc dbctx.Context, userID string) ([]*TrackerEntry, error)
	ListProgress(dbc dbctx.Context, userID string) ([]*types.LearningPathProgress, error)
}

type progressService struct {
	db       *gorm.DB
	log      *logger.Logger
	paths    LearningPathService
	goals    repos.GoalRepo
	progress repos.LearningPathProgressRepo
	locker   locks.KeyLocker
	now      func() time.Time
}

func NewProgressService(db *gorm.DB, log *logger.Logger, paths LearningPathService, goals repos.GoalRepo, progressRepo repos.LearningPathProgressRepo, locker locks.KeyLocker) ProgressService {
	if locker == nil {
		locker = locks.NewLocalTable()
	}
	return &progressService{
		db:       db,
		log:      log.With("service", "ProgressService"),
		paths:    paths,
		goals:    goals,
		progress: progressRepo,
		locker:   locker,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *progressService) Recompute(dbc dbctx.Context, userID string, pathID uuid.UUID) (*RecomputeResult, error) {
	if _, err := s.paths.GetPath(dbc, userID, pathID); err != nil {
		return nil, err
	}
	goals, err := s.goals.GetByLearningPathID(dbc, pathID)
	if err != nil {
		return nil, err
	}
	pct := progress.FromGoals(goals)
	dropped, err := s.save(dbc, userID, pathID, pct)
	if err != nil {
		return nil, err
	}
	return &RecomputeResult{
		LearningPathID:     pathID,
		ProgressPercentage: pct,
		ProgressDisplay:    progress.Format(pct),
		Dropped:            dropped,
	}, nil
}

// Tracker keeps going when a single save fails so the view still renders;
// the failure is logged.
func (s *progressService) Tracker(dbc dbctx.Context, userID string) ([]*TrackerEntry, error) {
	paths, err := s.paths.ListPaths(dbc, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*TrackerEntry, 0, len(paths))
	for _, p := range paths {
		goals, err := s.goals.GetByLearningPathID(dbc, p.ID)
		if err != nil {
			return nil, err
		}
		pct := progress.FromGoals(goals)
		if _, err := s.save(dbc, userID, p.ID, pct); err != nil {
			s.log.Error("save progress failed", "user_id", userID, "learning_path_id", p.ID, "error", err)
		}
		out = append(out, &TrackerEntry{
			Path:               p,
			Goals:              goals,
			ProgressPercentage: pct,
			ProgressDisplay:    progress.Format(pct),
		})
	}
	return out, nil
}

func (s *progressService) ListProgress(dbc dbctx.Context, userID string) ([]*types.LearningPathProgress, error) {
	return s.progress.GetByUserID(dbc, userID)
}

// save writes pct for (userID, pathID) under the per-key guard. A held key
// means an equivalent write is already running, so this one is dropped and
// reported as such rather than as an error. The guard is released on every
// exit path.
func (s *progressService) save(dbc dbctx.Context, userID string, pathID uuid.UUID, pct float64) (dropped bool, err error) {
	key := progress.Key(userID, pathID)
	release, acquired, err := s.locker.TryAcquire(dbc.Ctx, key)
	if err != nil {
		s.log.Warn("progress guard unavailable, dropping write", "key", key, "error", err)
		return true, nil
	}
	if !acquired {
		s.log.Debug("progress write already in flight, dropping", "user_id", userID, "learning_path_id", pathID)
		return true, nil
	}
	defer release()

	now := s.now()
	existing, err := s.progress.GetByUserAndPath(dbc, userID, pathID)
	if err != nil {
		return false, err
	}
	if len(existing) == 0 {
		return false, s.progress.Create(dbc, &types.LearningPathProgress{
			UserID:             userID,
			LearningPathID:     pathID,
			ProgressPercentage: pct,
			Timestamp:          now,
		})
	}
	if len(existing) > 1 {
		s.log.Warn("duplicate progress records, updating the first", "user_id", userID, "learning_path_id", pathID, "count", len(existing))
	}
	return false, s.progress.UpdatePercentage(dbc, existing[0].ID, pct, now)
}
