package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningPathProgress is the persisted completion percentage for one
// (user, learning path) pair. Only ProgressPercentage and Timestamp change
// after creation.
type LearningPathProgress struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             string    `gorm:"column:user_id;not null;index:idx_progress_user_path,unique,priority:1" json:"userId"`
	LearningPathID     uuid.UUID `gorm:"type:uuid;column:learning_path_id;not null;index:idx_progress_user_path,unique,priority:2" json:"learningPathId"`
	ProgressPercentage float64   `gorm:"column:progress_percentage;not null;default:0" json:"progressPercentage"`
	Timestamp          time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
	CreatedAt          time.Time `gorm:"not null" json:"createdAt"`
}

func (LearningPathProgress) TableName() string { return "learning_path_progress" }

func (p *LearningPathProgress) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
