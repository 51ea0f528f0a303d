// Package domain holds the persisted SkillUp records. Every record is owned,
// directly or through its learning path, by an identity provider subject
// (UserID) that the service never validates beyond the auth boundary.
package domain

import "github.com/google/uuid"

// assignID fills a zero primary key before insert so the same models work on
// Postgres and SQLite without database-side uuid defaults.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// AllModels lists every table for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&LearningPath{},
		&Goal{},
		&LearningPathProgress{},
		&SuggestedSkills{},
	}
}
