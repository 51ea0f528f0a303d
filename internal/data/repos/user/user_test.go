package user

import (
	"context"
	"testing"

	"github.com/yungbote/skillup-backend/internal/data/repos/testutil"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"github.com/yungbote/skillup-backend/internal/pkg/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.New(context.Background())
	repo := NewUserRepo(db, testutil.Logger(t))

	if got, err := repo.GetByID(dbc, "user_a"); err != nil || got != nil {
		t.Fatalf("GetByID before create: got=%v err=%v", got, err)
	}
	got, err := repo.UpsertRole(dbc, "user_a", types.RoleFree)
	if err != nil || got == nil || got.Role != types.RoleFree {
		t.Fatalf("UpsertRole create: got=%v err=%v", got, err)
	}
	got, err = repo.UpsertRole(dbc, "user_a", types.RolePremium)
	if err != nil || got == nil || got.Role != types.RolePremium {
		t.Fatalf("UpsertRole update: got=%v err=%v", got, err)
	}
}
