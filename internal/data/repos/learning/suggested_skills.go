package learning

import (
	"gorm.io/gorm"

	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type SuggestedSkillsRepo interface {
	Create(dbc dbctx.Context, row *types.SuggestedSkills) error
	GetByUserID(dbc dbctx.Context, userID string) ([]*types.SuggestedSkills, error)
}

type suggestedSkillsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSuggestedSkillsRepo(db *gorm.DB, baseLog *logger.Logger) SuggestedSkillsRepo {
	return &suggestedSkillsRepo{db: db, log: baseLog.With("repo", "SuggestedSkillsRepo")}
}

func (r *suggestedSkillsRepo) Create(dbc dbctx.Context, row *types.SuggestedSkills) error {
	if row == nil {
		return nil
	}
	return dbc.Conn(r.db).Create(row).Error
}

func (r *suggestedSkillsRepo) GetByUserID(dbc dbctx.Context, userID string) ([]*types.SuggestedSkills, error) {
	out := []*types.SuggestedSkills{}
	if userID == "" {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
