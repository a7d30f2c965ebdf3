// internal/model/bookmark.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark はユーザーのブックマークを表します。
// (user_id, resource_type, resource_id) は複合ユニーク。
// resource_id はFK制約を持たない規約ベースの参照。
type Bookmark struct {
	BookmarkID   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"bookmark_id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index:idx_user_resource_bookmark,unique" json:"user_id"`
	ResourceType ResourceType `gorm:"type:varchar(16);not null;index:idx_user_resource_bookmark,unique" json:"resource_type"`
	ResourceID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_user_resource_bookmark,unique" json:"resource_id"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// ブックマーク作成リクエストDTO
type CreateBookmarkRequest struct {
	ResourceType ResourceType `json:"resource_type" validate:"required,oneof=article topic question"`
	ResourceID   uuid.UUID    `json:"resource_id" validate:"required"`
}

// ブックマーク確認レスポンス
type BookmarkCheckResponse struct {
	IsBookmarked bool `json:"is_bookmarked"`
}
