package services

import (
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/modules/learning/progress"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

const UnknownPathTitle = "Unknown Path"

type DashboardProgress struct {
	LearningPathID     uuid.UUID `json:"learningPathId"`
	LearningPathName   string    `json:"learningPathName"`
	ProgressPercentage float64   `json:"progressPercentage"`
	ProgressDisplay    string    `json:"progressDisplay"`
}

type Dashboard struct {
	RecommendedSkills []types.SkillSuggestion `json:"recommendedSkills"`
	Progress          []DashboardProgress     `json:"progress"`
}

type DashboardService interface {
	Get(dbc dbctx.Context, userID string) (*Dashboard, error)
}

type dashboardService struct {
	db       *gorm.DB
	log      *logger.Logger
	skills   repos.SuggestedSkillsRepo
	progress repos.LearningPathProgressRepo
	paths    repos.LearningPathRepo
}

func NewDashboardService(db *gorm.DB, log *logger.Logger, skills repos.SuggestedSkillsRepo, progressRepo repos.LearningPathProgressRepo, paths repos.LearningPathRepo) DashboardService {
	return &dashboardService{
		db:       db,
		log:      log.With("service", "DashboardService"),
		skills:   skills,
		progress: progressRepo,
		paths:    paths,
	}
}

// Get loads skills and progress concurrently. Skills are flattened across
// every stored record; progress rows whose path is gone are titled
// UnknownPathTitle. Inside a transaction the two reads run one after the
// other, since a single tx connection cannot serve concurrent queries.
func (s *dashboardService) Get(dbc dbctx.Context, userID string) (*Dashboard, error) {
	var (
		skills []types.SkillSuggestion
		rows   []DashboardProgress
	)
	loadSkills := func(dbc dbctx.Context) error {
		records, err := s.skills.GetByUserID(dbc, userID)
		if err != nil {
			return err
		}
		skills = make([]types.SkillSuggestion, 0, len(records))
		for _, r := range records {
			skills = append(skills, r.Skills...)
		}
		return nil
	}
	loadProgress := func(dbc dbctx.Context) error {
		records, err := s.progress.GetByUserID(dbc, userID)
		if err != nil {
			return err
		}
		rows, err = s.joinTitles(dbc, records)
		return err
	}

	var err error
	if dbc.Tx != nil {
		if err = loadSkills(dbc); err == nil {
			err = loadProgress(dbc)
		}
	} else {
		g, ctx := errgroup.WithContext(dbc.Ctx)
		gdbc := dbctx.Context{Ctx: ctx}
		g.Go(func() error { return loadSkills(gdbc) })
		g.Go(func() error { return loadProgress(gdbc) })
		err = g.Wait()
	}
	if err != nil {
		s.log.Error("load dashboard failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &Dashboard{RecommendedSkills: skills, Progress: rows}, nil
}

func (s *dashboardService) joinTitles(dbc dbctx.Context, records []*types.LearningPathProgress) ([]DashboardProgress, error) {
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.LearningPathID)
	}
	paths, err := s.paths.GetByIDs(dbc, ids)
	if err != nil {
		return nil, err
	}
	titles := make(map[uuid.UUID]string, len(paths))
	for _, p := range paths {
		titles[p.ID] = p.Title
	}
	out := make([]DashboardProgress, 0, len(records))
	for _, r := range records {
		name, ok := titles[r.LearningPathID]
		if !ok {
			name = UnknownPathTitle
		}
		out = append(out, DashboardProgress{
			LearningPathID:     r.LearningPathID,
			LearningPathName:   name,
			ProgressPercentage: r.ProgressPercentage,
			ProgressDisplay:    progress.Format(r.ProgressPercentage),
		})
	}
	return out, nil
}
