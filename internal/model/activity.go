// internal/model/activity.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType はアクティビティログの種別
type ActivityType string

const (
	ActivityQuizCompleted   ActivityType = "quiz_completed"
	ActivityBookmarkAdded   ActivityType = "bookmark_added"
	ActivityBookmarkRemoved ActivityType = "bookmark_removed"
	ActivityNoteAdded       ActivityType = "note_added"
	ActivityStudyProgress   ActivityType = "study_progress"
)

// UserActivity は追記専用のアクティビティログ。作成後は不変。
type UserActivity struct {
	ActivityID   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"activity_id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	ActivityType ActivityType `gorm:"type:varchar(32);not null" json:"activity_type"`
	ResourceType ResourceType `gorm:"type:varchar(16)" json:"resource_type,omitempty"`
	ResourceID   *uuid.UUID   `gorm:"type:uuid" json:"resource_id,omitempty"`
	Metadata     JSONMap      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (UserActivity) TableName() string {
	return "user_activity"
}
