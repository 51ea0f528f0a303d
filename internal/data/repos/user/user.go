package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type UserRepo interface {
	GetByID(dbc dbctx.Context, id string) (*types.User, error)
	// UpsertRole creates the user row or overwrites its role.
	UpsertRole(dbc dbctx.Context, id string, role string) (*types.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) GetByID(dbc dbctx.Context, id string) (*types.User, error) {
	if id == "" {
		return nil, nil
	}
	var row types.User
	err := dbc.Conn(r.db).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *userRepo) UpsertRole(dbc dbctx.Context, id string, role string) (*types.User, error) {
	if id == "" {
		return nil, nil
	}
	now := time.Now().UTC()
	row := &types.User{ID: id, Role: role, CreatedAt: now, UpdatedAt: now}
	if err := dbc.Conn(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return nil, err
	}
	return r.GetByID(dbc, id)
}
