// Package progress computes completion of a learning path from its goals.
package progress

import (
	"fmt"

	"github.com/google/uuid"

	types "github.com/yungbote/skillup-backend/internal/domain"
)

// Percentage is 100*completed/total, or 0 for a path without goals.
func Percentage(total, completed int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// FromGoals counts completed goals and returns the percentage.
func FromGoals(goals []*types.Goal) float64 {
	completed := 0
	for _, g := range goals {
		if g != nil && g.Completed {
			completed++
		}
	}
	return Percentage(len(goals), completed)
}

// Format renders a percentage with two decimals, e.g. "33.33".
func Format(pct float64) string {
	return fmt.Sprintf("%.2f", pct)
}

// Key identifies the single progress record of a (user, path) pair.
func Key(userID string, pathID uuid.UUID) string {
	return userID + "_" + pathID.String()
}
