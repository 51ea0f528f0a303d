package domain

import "time"

const (
	RoleFree    = "free"
	RolePremium = "premium"
)

func ValidRole(role string) bool {
	return role == RoleFree || role == RolePremium
}

// User mirrors the identity provider subject with app-side settings. ID is
// the subject itself, not a generated key.
type User struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Role      string    `gorm:"column:role;not null;default:'free'" json:"role"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (User) TableName() string { return "app_user" }
