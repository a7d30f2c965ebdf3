//go:generate mockery --name ArticleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ArticleRepository インターフェース
type ArticleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, article *model.Article) error
	FindByID(ctx context.Context, db *gorm.DB, articleID uuid.UUID) (*model.Article, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]*model.Article, error)
	FindFeatured(ctx context.Context, db *gorm.DB, limit int) ([]*model.Article, error)
	FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Article, error)
	LinkTopic(ctx context.Context, tx *gorm.DB, link *model.ArticleTopic) error
	SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string, limit int) ([]*model.Article, error)
}

type gormArticleRepository struct{}

func NewGormArticleRepository() ArticleRepository {
	return &gormArticleRepository{}
}

func (r *gormArticleRepository) Create(ctx context.Context, tx *gorm.DB, article *model.Article) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(article)
	if result.Error != nil {
		logger.Error("Error creating article in DB",
			"error", result.Error,
			"title", article.Title,
		)
		return fmt.Errorf("gormArticleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormArticleRepository) FindByID(ctx context.Context, db *gorm.DB, articleID uuid.UUID) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var article model.Article
	result := db.WithContext(ctx).Where("article_id = ?", articleID).First(&article)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding article by ID in DB",
			"error", result.Error,
			"article_id", articleID.String(),
		)
		return nil, fmt.Errorf("gormArticleRepository.FindByID: %w", result.Error)
	}
	return &article, nil
}

func (r *gormArticleRepository) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var articles []*model.Article
	result := db.WithContext(ctx).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles)
	if result.Error != nil {
		logger.Error("Error finding articles in DB", "error", result.Error)
		return nil, fmt.Errorf("gormArticleRepository.FindAll: %w", result.Error)
	}
	return articles, nil
}

func (r *gormArticleRepository) FindFeatured(ctx context.Context, db *gorm.DB, limit int) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var articles []*model.Article
	result := db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("published_at DESC").
		Limit(limit).
		Find(&articles)
	if result.Error != nil {
		logger.Error("Error finding featured articles in DB", "error", result.Error)
		return nil, fmt.Errorf("gormArticleRepository.FindFeatured: %w", result.Error)
	}
	return articles, nil
}

func (r *gormArticleRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var articles []*model.Article
	result := db.WithContext(ctx).
		Joins("JOIN article_topics ON article_topics.article_id = articles.article_id").
		Where("article_topics.topic_id = ?", topicID).
		Order("articles.published_at DESC").
		Find(&articles)
	if result.Error != nil {
		logger.Error("Error finding articles by topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormArticleRepository.FindByTopic: %w", result.Error)
	}
	return articles, nil
}

func (r *gormArticleRepository) LinkTopic(ctx context.Context, tx *gorm.DB, link *model.ArticleTopic) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(link)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			// 同じ組み合わせの重複は冪等に扱う
			logger.Debug("Article-topic link already exists",
				"article_id", link.ArticleID.String(),
				"topic_id", link.TopicID.String(),
			)
			return nil
		}
		logger.Error("Error linking article to topic in DB",
			"error", result.Error,
			"article_id", link.ArticleID.String(),
			"topic_id", link.TopicID.String(),
		)
		return fmt.Errorf("gormArticleRepository.LinkTopic: %w", result.Error)
	}
	return nil
}

func (r *gormArticleRepository) SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string, limit int) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var articles []*model.Article
	pattern := "%" + keyword + "%"
	result := db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(summary) LIKE LOWER(?)", pattern, pattern).
		Limit(limit).
		Find(&articles)
	if result.Error != nil {
		logger.Error("Error searching articles in DB",
			"error", result.Error,
			"keyword", keyword,
		)
		return nil, fmt.Errorf("gormArticleRepository.SearchByKeyword: %w", result.Error)
	}
	return articles, nil
}
