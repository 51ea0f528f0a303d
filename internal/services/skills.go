package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/modules/learning/suggest"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type SkillsService interface {
	// Generate is the stateless generator passthrough.
	Generate(dbc dbctx.Context, jobTitle, courseName string) (suggest.SkillSuggestions, error)
	// GenerateAndSave appends a new record for userID. Generator failures are
	// returned without writing anything.
	GenerateAndSave(dbc dbctx.Context, userID, jobTitle, courseName string) (*types.SuggestedSkills, error)
	List(dbc dbctx.Context, userID string) ([]*types.SuggestedSkills, error)
}

type skillsService struct {
	db        *gorm.DB
	log       *logger.Logger
	skills    repos.SuggestedSkillsRepo
	generator suggest.Generator
}

func NewSkillsService(db *gorm.DB, log *logger.Logger, skills repos.SuggestedSkillsRepo, generator suggest.Generator) SkillsService {
	return &skillsService{
		db:        db,
		log:       log.With("service", "SkillsService"),
		skills:    skills,
		generator: generator,
	}
}

func (s *skillsService) Generate(dbc dbctx.Context, jobTitle, courseName string) (suggest.SkillSuggestions, error) {
	return s.generator.SuggestSkills(dbc.Ctx, jobTitle, courseName)
}

func (s *skillsService) GenerateAndSave(dbc dbctx.Context, userID, jobTitle, courseName string) (*types.SuggestedSkills, error) {
	out, err := s.Generate(dbc, jobTitle, courseName)
	if err != nil {
		return nil, err
	}
	row := &types.SuggestedSkills{
		UserID: userID,
		Skills: datatypes.JSONSlice[types.SkillSuggestion](out.Pairs()),
	}
	if err := s.skills.Create(dbc, row); err != nil {
		s.log.Error("save suggested skills failed", "user_id", userID, "error", err)
		return nil, err
	}
	return row, nil
}

func (s *skillsService) List(dbc dbctx.Context, userID string) ([]*types.SuggestedSkills, error) {
	return s.skills.GetByUserID(dbc, userID)
}
