// internal/model/note.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Note はリソースに対するユーザーのメモ。同一リソースに複数持てる。
type Note struct {
	NoteID       uuid.UUID    `gorm:"type:uuid;primaryKey" json:"note_id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	ResourceType ResourceType `gorm:"type:varchar(16);not null" json:"resource_type"`
	ResourceID   uuid.UUID    `gorm:"type:uuid;not null" json:"resource_id"`
	Title        string       `json:"title"`
	Content      string       `gorm:"not null" json:"content"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}

// ノート作成リクエストDTO
type CreateNoteRequest struct {
	ResourceType ResourceType `json:"resource_type" validate:"required,oneof=article topic question"`
	ResourceID   uuid.UUID    `json:"resource_id" validate:"required"`
	Title        string       `json:"title" validate:"max=300"`
	Content      string       `json:"content" validate:"required"`
}

// ノート更新リクエストDTO
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=300"`
	Content string  `json:"content" validate:"required"`
}
