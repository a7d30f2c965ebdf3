// internal/model/question.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Question は演習問題（多肢選択）を表します
type Question struct {
	QuestionID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"question_id"`
	TopicID              uuid.UUID   `gorm:"type:uuid;not null;index" json:"topic_id"`
	Question             string      `gorm:"not null" json:"question"`
	Options              StringSlice `gorm:"type:jsonb;not null" json:"options"`
	CorrectOptionIndex   int         `gorm:"not null" json:"correct_option_index"` // 0始まり。len(Options)未満であることを作成時に検証
	Explanation          string      `gorm:"not null" json:"explanation"`
	Difficulty           Difficulty  `gorm:"type:varchar(16);not null;default:basic;index" json:"difficulty"`
	IsFromCurrentAffairs bool        `gorm:"default:false" json:"is_from_current_affairs"`
	CreatedAt            time.Time   `json:"created_at"`

	Topic *Topic `gorm:"foreignKey:TopicID;references:TopicID" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// 問題作成リクエストDTO
type CreateQuestionRequest struct {
	TopicID              uuid.UUID  `json:"topic_id" validate:"required"`
	Question             string     `json:"question" validate:"required"`
	Options              []string   `json:"options" validate:"required,min=2,dive,required"`
	CorrectOptionIndex   int        `json:"correct_option_index" validate:"min=0"`
	Explanation          string     `json:"explanation" validate:"required"`
	Difficulty           Difficulty `json:"difficulty" validate:"required,oneof=basic advanced deep"`
	IsFromCurrentAffairs bool       `json:"is_from_current_affairs"`
}

// ランダム出題リクエストDTO
type RandomQuestionsRequest struct {
	TopicIDs   []uuid.UUID `json:"topic_ids" validate:"required,min=1"`
	Difficulty Difficulty  `json:"difficulty" validate:"required,oneof=basic advanced deep"`
	Limit      int         `json:"limit" validate:"required,min=1,max=100"`
}
