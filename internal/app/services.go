package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	"github.com/yungbote/skillup-backend/internal/jobs"
	"github.com/yungbote/skillup-backend/internal/modules/learning/suggest"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/services"
)

type Services struct {
	Auth         services.AuthService
	User         services.UserService
	LearningPath services.LearningPathService
	Goal         services.GoalService
	Progress     services.ProgressService
	Skills       services.SkillsService
	Dashboard    services.DashboardService

	Generator suggest.Generator
	Auditor   *jobs.OrphanAuditor
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r repos.Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")
	auth, err := services.NewAuthService(log, cfg.Auth)
	if err != nil {
		return Services{}, fmt.Errorf("init auth: %w", err)
	}
	gen := suggest.NewGenerator(clients.LLM, log)
	paths := services.NewLearningPathService(db, log, r.LearningPath, r.Goal, gen)

	return Services{
		Auth:         auth,
		User:         services.NewUserService(db, log, r.User),
		LearningPath: paths,
		Goal:         services.NewGoalService(db, log, paths, r.LearningPath, r.Goal),
		Progress:     services.NewProgressService(db, log, paths, r.Goal, r.LearningPathProgress, clients.Locker),
		Skills:       services.NewSkillsService(db, log, r.SuggestedSkills, gen),
		Dashboard:    services.NewDashboardService(db, log, r.SuggestedSkills, r.LearningPathProgress, r.LearningPath),
		Generator:    gen,
		Auditor:      jobs.NewOrphanAuditor(log, r.Goal, r.LearningPathProgress),
	}, nil
}
