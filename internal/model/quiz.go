// internal/model/quiz.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt は完了した模擬試験1回分。作成後は不変。
// QuestionIDs と Answers は同じ長さの並行配列。
type QuizAttempt struct {
	AttemptID      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	UserID         uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionIDs    StringSlice `gorm:"type:jsonb;not null" json:"question_ids"`
	Answers        IntSlice    `gorm:"type:jsonb;not null" json:"answers"` // 選択肢のインデックス。未回答は -1
	Score          int         `gorm:"not null" json:"score"`
	TotalQuestions int         `gorm:"not null" json:"total_questions"`
	Difficulty     Difficulty  `gorm:"type:varchar(16);not null" json:"difficulty"`
	SubjectIDs     StringSlice `gorm:"type:jsonb;not null" json:"subject_ids"`
	CompletedAt    time.Time   `gorm:"not null;index" json:"completed_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// クイズ結果登録リクエストDTO
type CreateQuizAttemptRequest struct {
	QuestionIDs    []string   `json:"question_ids" validate:"required,min=1"`
	Answers        []int      `json:"answers" validate:"required"`
	Score          int        `json:"score" validate:"min=0"`
	TotalQuestions int        `json:"total_questions" validate:"required,min=1"`
	Difficulty     Difficulty `json:"difficulty" validate:"required,oneof=basic advanced deep"`
	SubjectIDs     []string   `json:"subject_ids" validate:"required,min=1"`
}
