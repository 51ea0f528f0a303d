package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type LearningPathProgressRepo interface {
	// Create inserts row, or merges percentage and timestamp into the existing
	// row for the same (user_id, learning_path_id) when another writer got
	// there first.
	Create(dbc dbctx.Context, row *types.LearningPathProgress) error
	GetByUserAndPath(dbc dbctx.Context, userID string, pathID uuid.UUID) ([]*types.LearningPathProgress, error)
	GetByUserID(dbc dbctx.Context, userID string) ([]*types.LearningPathProgress, error)
	UpdatePercentage(dbc dbctx.Context, id uuid.UUID, percentage float64, at time.Time) error
	CountOrphaned(dbc dbctx.Context) (int64, error)
}

type learningPathProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathProgressRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathProgressRepo {
	return &learningPathProgressRepo{db: db, log: baseLog.With("repo", "LearningPathProgressRepo")}
}

func (r *learningPathProgressRepo) Create(dbc dbctx.Context, row *types.LearningPathProgress) error {
	if row == nil {
		return nil
	}
	return dbc.Conn(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "learning_path_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"progress_percentage", "timestamp"}),
		}).
		Create(row).Error
}

func (r *learningPathProgressRepo) GetByUserAndPath(dbc dbctx.Context, userID string, pathID uuid.UUID) ([]*types.LearningPathProgress, error) {
	out := []*types.LearningPathProgress{}
	if userID == "" || pathID == uuid.Nil {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("user_id = ? AND learning_path_id = ?", userID, pathID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningPathProgressRepo) GetByUserID(dbc dbctx.Context, userID string) ([]*types.LearningPathProgress, error) {
	out := []*types.LearningPathProgress{}
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

// UpdatePercentage merges into an existing row; id, user_id and
// learning_path_id are never touched.
func (r *learningPathProgressRepo) UpdatePercentage(dbc dbctx.Context, id uuid.UUID, percentage float64, at time.Time) error {
	if id == uuid.Nil {
		return nil
	}
	return dbc.Conn(r.db).
		Model(&types.LearningPathProgress{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"progress_percentage": percentage,
			"timestamp":           at,
		}).Error
}

func (r *learningPathProgressRepo) CountOrphaned(dbc dbctx.Context) (int64, error) {
	conn := dbc.Conn(r.db)
	livePaths := conn.Session(&gorm.Session{NewDB: true}).
		Table(types.LearningPath{}.TableName()).
		Select("id").
		Where("deleted_at IS NULL")
	var n int64
	if err := conn.Model(&types.LearningPathProgress{}).
		Where("learning_path_id NOT IN (?)", livePaths).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
