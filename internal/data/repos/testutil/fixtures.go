package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	types "github.com/yungbote/skillup-backend/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedLearningPath(tb testing.TB, ctx context.Context, tx *gorm.DB, userID string, title string) *types.LearningPath {
	tb.Helper()
	p := &types.LearningPath{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            title,
		Description:      "desc",
		SuggestedCourses: datatypes.JSONSlice[string]{},
		Tutorials:        datatypes.JSONSlice[string]{},
		Exercises:        datatypes.JSONSlice[string]{},
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed learning path: %v", err)
	}
	return p
}

func SeedGoal(tb testing.TB, ctx context.Context, tx *gorm.DB, pathID uuid.UUID, title string, completed bool) *types.Goal {
	tb.Helper()
	g := &types.Goal{
		ID:             uuid.New(),
		LearningPathID: pathID,
		Title:          title,
		Completed:      completed,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed goal: %v", err)
	}
	return g
}
