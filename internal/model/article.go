// internal/model/article.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Article は時事ニュース記事を表します
type Article struct {
	ArticleID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"article_id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	Summary     string    `gorm:"not null" json:"summary"`
	ImageURL    string    `json:"image_url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `gorm:"not null;index" json:"published_at"`
	ReadTime    int       `gorm:"not null" json:"read_time"` // 分
	IsFeatured  bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleTopic は記事とトピックの多対多を結ぶ中間テーブル
type ArticleTopic struct {
	ArticleTopicID uuid.UUID `gorm:"type:uuid;primaryKey" json:"article_topic_id"`
	ArticleID      uuid.UUID `gorm:"type:uuid;not null;index:idx_article_topic,unique" json:"article_id"`
	TopicID        uuid.UUID `gorm:"type:uuid;not null;index:idx_article_topic,unique" json:"topic_id"`
}

func (ArticleTopic) TableName() string {
	return "article_topics"
}

// 記事作成リクエストDTO
type CreateArticleRequest struct {
	Title       string      `json:"title" validate:"required,min=1,max=500"`
	Content     string      `json:"content" validate:"required"`
	Summary     string      `json:"summary" validate:"required"`
	ImageURL    string      `json:"image_url" validate:"omitempty,url"`
	Source      string      `json:"source"`
	PublishedAt time.Time   `json:"published_at" validate:"required"`
	ReadTime    int         `json:"read_time" validate:"min=1"`
	IsFeatured  bool        `json:"is_featured"`
	TopicIDs    []uuid.UUID `json:"topic_ids,omitempty"` // 紐付けるトピック
}
