package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LearningPath is a user-defined topic seeded with generated resources. The
// resource lists are copied in at creation and never edited afterwards.
type LearningPath struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string                      `gorm:"column:user_id;not null;index" json:"userId"`
	Title            string                      `gorm:"column:title;not null" json:"title"`
	Description      string                      `gorm:"column:description;type:text" json:"description"`
	SuggestedCourses datatypes.JSONSlice[string] `gorm:"column:suggested_courses" json:"suggestedCourses"`
	Tutorials        datatypes.JSONSlice[string] `gorm:"column:tutorials" json:"tutorials"`
	Exercises        datatypes.JSONSlice[string] `gorm:"column:exercises" json:"exercises"`
	CreatedAt        time.Time                   `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time                   `gorm:"not null" json:"updatedAt"`
	DeletedAt        gorm.DeletedAt              `gorm:"index" json:"-"`
}

func (LearningPath) TableName() string { return "learning_path" }

func (p *LearningPath) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
