package services

import (
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/skillup-backend/internal/data/repos"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/ctxutil"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/platform/apierr"
)

type UserService interface {
	// GetMe returns the stored settings, or the free-role defaults when the
	// caller has never saved any.
	GetMe(dbc dbctx.Context) (*types.User, error)
	SetRole(dbc dbctx.Context, role string) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (us *userService) GetMe(dbc dbctx.Context) (*types.User, error) {
	userID, err := us.requestUser(dbc)
	if err != nil {
		return nil, err
	}
	u, err := us.userRepo.GetByID(dbc, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return &types.User{ID: userID, Role: types.RoleFree}, nil
	}
	return u, nil
}

func (us *userService) SetRole(dbc dbctx.Context, role string) (*types.User, error) {
	userID, err := us.requestUser(dbc)
	if err != nil {
		return nil, err
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if !types.ValidRole(role) {
		return nil, apierr.New(http.StatusBadRequest, "invalid_role", fmt.Errorf("%w: unknown role %q", pkgerrors.ErrInvalidArgument, role))
	}
	u, err := us.userRepo.UpsertRole(dbc, userID, role)
	if err != nil {
		us.log.Error("upsert role failed", "user_id", userID, "error", err)
		return nil, err
	}
	return u, nil
}

func (us *userService) requestUser(dbc dbctx.Context) (string, error) {
	rd := ctxutil.GetRequestData(dbc.Ctx)
	if rd == nil || rd.UserID == "" {
		us.log.Warn("Request data not set in context")
		return "", apierr.New(http.StatusUnauthorized, "unauthorized", pkgerrors.ErrUnauthorized)
	}
	return rd.UserID, nil
}
