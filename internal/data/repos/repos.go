package repos

import (
	"github.com/yungbote/skillup-backend/internal/data/repos/learning"
	"github.com/yungbote/skillup-backend/internal/data/repos/user"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo

type LearningPathRepo = learning.LearningPathRepo
type GoalRepo = learning.GoalRepo
type LearningPathProgressRepo = learning.LearningPathProgressRepo
type SuggestedSkillsRepo = learning.SuggestedSkillsRepo

type Repos struct {
	User                 UserRepo
	LearningPath         LearningPathRepo
	Goal                 GoalRepo
	LearningPathProgress LearningPathProgressRepo
	SuggestedSkills      SuggestedSkillsRepo
}

func NewRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:                 user.NewUserRepo(db, log),
		LearningPath:         learning.NewLearningPathRepo(db, log),
		Goal:                 learning.NewGoalRepo(db, log),
		LearningPathProgress: learning.NewLearningPathProgressRepo(db, log),
		SuggestedSkills:      learning.NewSuggestedSkillsRepo(db, log),
	}
}
