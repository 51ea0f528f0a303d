package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a single completion item. LearningPathID is a non-owning back
// reference: deleting the path leaves its goals in place.
type Goal struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LearningPathID uuid.UUID      `gorm:"type:uuid;column:learning_path_id;not null;index" json:"learningPathId"`
	Title          string         `gorm:"column:title;not null" json:"title"`
	Completed      bool           `gorm:"column:completed;not null;default:false" json:"completed"`
	CreatedAt      time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Goal) TableName() string { return "goal" }

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	assignID(&g.ID)
	return nil
}
