package learning

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type LearningPathRepo interface {
	Create(dbc dbctx.Context, rows []*types.LearningPath) ([]*types.LearningPath, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.LearningPath, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.LearningPath, error)
	GetByUserID(dbc dbctx.Context, userID string) ([]*types.LearningPath, error)
	SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) (int64, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	return &learningPathRepo{db: db, log: baseLog.With("repo", "LearningPathRepo")}
}

func (r *learningPathRepo) Create(dbc dbctx.Context, rows []*types.LearningPath) ([]*types.LearningPath, error) {
	if len(rows) == 0 {
		return []*types.LearningPath{}, nil
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *learningPathRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.LearningPath, error) {
	var out []*types.LearningPath
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningPathRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.LearningPath, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *learningPathRepo) GetByUserID(dbc dbctx.Context, userID string) ([]*types.LearningPath, error) {
	out := []*types.LearningPath{}
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

// SoftDeleteByIDs removes paths only. Goals and progress rows that point at
// them are left as they are.
func (r *learningPathRepo) SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.LearningPath{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
