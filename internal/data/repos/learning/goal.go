package learning

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type GoalRepo interface {
	Create(dbc dbctx.Context, rows []*types.Goal) ([]*types.Goal, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Goal, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Goal, error)
	GetByLearningPathIDs(dbc dbctx.Context, pathIDs []uuid.UUID) ([]*types.Goal, error)
	GetByLearningPathID(dbc dbctx.Context, pathID uuid.UUID) ([]*types.Goal, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (int64, error)
	SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) (int64, error)
	CountOrphaned(dbc dbctx.Context) (int64, error)
}

type goalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	return &goalRepo{db: db, log: baseLog.With("repo", "GoalRepo")}
}

func (r *goalRepo) Create(dbc dbctx.Context, rows []*types.Goal) ([]*types.Goal, error) {
	if len(rows) == 0 {
		return []*types.Goal{}, nil
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *goalRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Goal, error) {
	var out []*types.Goal
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *goalRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Goal, error) {
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

func (r *goalRepo) GetByLearningPathIDs(dbc dbctx.Context, pathIDs []uuid.UUID) ([]*types.Goal, error) {
	out := []*types.Goal{}
	if len(pathIDs) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("learning_path_id IN ?", pathIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *goalRepo) GetByLearningPathID(dbc dbctx.Context, pathID uuid.UUID) ([]*types.Goal, error) {
	if pathID == uuid.Nil {
		return []*types.Goal{}, nil
	}
	return r.GetByLearningPathIDs(dbc, []uuid.UUID{pathID})
}

func (r *goalRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (int64, error) {
	if id == uuid.Nil || len(updates) == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Model(&types.Goal{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *goalRepo) SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := dbc.Conn(r.db).Where("id IN ?", ids).Delete(&types.Goal{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// CountOrphaned counts live goals whose learning path is gone.
func (r *goalRepo) CountOrphaned(dbc dbctx.Context) (int64, error) {
	conn := dbc.Conn(r.db)
	livePaths := conn.Session(&gorm.Session{NewDB: true}).
		Table(types.LearningPath{}.TableName()).
		Select("id").
		Where("deleted_at IS NULL")
	var n int64
	if err := conn.Model(&types.Goal{}).
		Where("learning_path_id NOT IN (?)", livePaths).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
