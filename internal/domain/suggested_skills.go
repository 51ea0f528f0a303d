package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SkillSuggestion struct {
	Skill       string `json:"skill"`
	Description string `json:"description"`
}

// SuggestedSkills is append-only: one row per generation request.
type SuggestedSkills struct {
	ID        uuid.UUID                            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string                               `gorm:"column:user_id;not null;index" json:"userId"`
	Skills    datatypes.JSONSlice[SkillSuggestion] `gorm:"column:skills" json:"skills"`
	CreatedAt time.Time                            `gorm:"not null" json:"createdAt"`
}

func (SuggestedSkills) TableName() string { return "suggested_skills" }

func (s *SuggestedSkills) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}
