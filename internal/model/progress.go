// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress はトピック単位の学習進捗を表します
type UserProgress struct {
	ProgressID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_topic,unique" json:"user_id"`
	TopicID              uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_topic,unique" json:"topic_id"`
	CompletionPercentage float64    `gorm:"not null;default:0" json:"completion_percentage"` // 0〜100。上書き（last-write-wins）
	TotalTimeSpent       int        `gorm:"not null;default:0" json:"total_time_spent"`      // 分。加算のみで上書きしない
	LastStudiedAt        *time.Time `json:"last_studied_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	Topic *Topic `gorm:"foreignKey:TopicID;references:TopicID" json:"-"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// 学習セッション記録リクエストDTO
type StudySessionRequest struct {
	CompletionPercentage float64 `json:"completion_percentage" validate:"min=0,max=100"`
	TimeSpent            int     `json:"time_spent" validate:"min=0"` // 分
}
