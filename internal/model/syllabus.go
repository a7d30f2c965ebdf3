// internal/model/syllabus.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Subject はシラバスの科目を表します
type Subject struct {
	SubjectID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"subject_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Icon        string    `gorm:"not null" json:"icon"`
	Color       string    `gorm:"not null" json:"color"`
	OrderIndex  int       `gorm:"not null" json:"order_index"` // 表示順。一意性はストアでは強制しない
	CreatedAt   time.Time `json:"created_at"`

	// 関連 (Preload用)
	Topics []Topic `gorm:"foreignKey:SubjectID" json:"-"`
}

func (Subject) TableName() string {
	return "subjects"
}

// Topic はシラバスの単元を表します。親トピックを持つ森構造。
type Topic struct {
	TopicID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"topic_id"`
	SubjectID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"subject_id"`
	ParentTopicID     *uuid.UUID `gorm:"type:uuid;index" json:"parent_topic_id,omitempty"`
	Title             string     `gorm:"not null" json:"title"`
	Description       string     `json:"description"`
	Content           string     `json:"content"`
	OrderIndex        int        `gorm:"not null" json:"order_index"`
	EstimatedReadTime int        `json:"estimated_read_time"` // 分
	Difficulty        Difficulty `gorm:"type:varchar(16);not null;default:basic" json:"difficulty"`
	CreatedAt         time.Time  `json:"created_at"`

	Subject     *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"-"`
	ParentTopic *Topic   `gorm:"foreignKey:ParentTopicID;references:TopicID" json:"-"`
}

func (Topic) TableName() string {
	return "topics"
}

// 科目作成リクエストDTO
type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"required"`
	Color       string `json:"color" validate:"required"`
	OrderIndex  int    `json:"order_index" validate:"min=0"`
}

// トピック作成リクエストDTO
type CreateTopicRequest struct {
	SubjectID         uuid.UUID  `json:"subject_id" validate:"required"`
	ParentTopicID     *uuid.UUID `json:"parent_topic_id,omitempty"`
	Title             string     `json:"title" validate:"required,min=1,max=300"`
	Description       string     `json:"description"`
	Content           string     `json:"content"`
	OrderIndex        int        `json:"order_index" validate:"min=0"`
	EstimatedReadTime int        `json:"estimated_read_time" validate:"min=0"`
	Difficulty        Difficulty `json:"difficulty" validate:"required,oneof=basic advanced deep"`
}

// UpdateTopicParentRequest はトピックの親付け替えリクエスト。
// ParentTopicIDがnullなら最上位トピックに変更する。
type UpdateTopicParentRequest struct {
	ParentTopicID *uuid.UUID `json:"parent_topic_id"`
}
