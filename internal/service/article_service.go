// internal/service/article_service.go
package service

import (
	"context"
	"errors"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleService interface {
	ListArticles(ctx context.Context, limit, offset int) ([]*model.Article, error)
	ListFeaturedArticles(ctx context.Context) ([]*model.Article, error)
	ListArticlesByTopic(ctx context.Context, topicID uuid.UUID) ([]*model.Article, error)
	GetArticle(ctx context.Context, articleID uuid.UUID) (*model.Article, error)
	CreateArticle(ctx context.Context, req *model.CreateArticleRequest) (*model.Article, error)
}

type articleService struct {
	db          *gorm.DB
	articleRepo repository.ArticleRepository
	topicRepo   repository.TopicRepository
	cfg         *config.Config
}

func NewArticleService(db *gorm.DB, articleRepo repository.ArticleRepository, topicRepo repository.TopicRepository, cfg *config.Config) ArticleService {
	return &articleService{
		db:          db,
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
		cfg:         cfg,
	}
}

func (s *articleService) ListArticles(ctx context.Context, limit, offset int) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)

	if limit <= 0 {
		limit = s.cfg.App.PageLimit
	}
	if limit > config.MaxPageLimit {
		limit = config.MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	articles, err := s.articleRepo.FindAll(ctx, s.db, limit, offset)
	if err != nil {
		logger.Error("Error listing articles", "error", err)
		return nil, model.ErrInternalServer
	}
	return articles, nil
}

func (s *articleService) ListFeaturedArticles(ctx context.Context) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	articles, err := s.articleRepo.FindFeatured(ctx, s.db, s.cfg.App.FeaturedLimit)
	if err != nil {
		logger.Error("Error listing featured articles", "error", err)
		return nil, model.ErrInternalServer
	}
	return articles, nil
}

func (s *articleService) ListArticlesByTopic(ctx context.Context, topicID uuid.UUID) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)

	// トピックの存在確認
	if _, err := s.topicRepo.FindByID(ctx, s.db, topicID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "", model.ErrNotFound)
		}
		return nil, err
	}

	articles, err := s.articleRepo.FindByTopic(ctx, s.db, topicID)
	if err != nil {
		logger.Error("Error listing articles by topic", "error", err)
		return nil, model.ErrInternalServer
	}
	return articles, nil
}

func (s *articleService) GetArticle(ctx context.Context, articleID uuid.UUID) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, s.db, articleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("ARTICLE_NOT_FOUND", "記事が見つかりません。", "", model.ErrNotFound)
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) CreateArticle(ctx context.Context, req *model.CreateArticleRequest) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)

	article := &model.Article{
		ArticleID:   uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		ImageURL:    req.ImageURL,
		Source:      req.Source,
		PublishedAt: req.PublishedAt,
		ReadTime:    req.ReadTime,
		IsFeatured:  req.IsFeatured,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 紐付け先トピックの存在確認
		for _, topicID := range req.TopicIDs {
			if _, err := s.topicRepo.FindByID(ctx, tx, topicID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("TOPIC_NOT_FOUND", "指定されたトピックが見つかりません。", "topic_ids", model.ErrInvalidInput)
				}
				return model.ErrInternalServer
			}
		}

		if err := s.articleRepo.Create(ctx, tx, article); err != nil {
			logger.Error("Error creating article", "error", err)
			return model.ErrInternalServer
		}

		for _, topicID := range req.TopicIDs {
			link := &model.ArticleTopic{
				ArticleTopicID: uuid.New(),
				ArticleID:      article.ArticleID,
				TopicID:        topicID,
			}
			if err := s.articleRepo.LinkTopic(ctx, tx, link); err != nil {
				logger.Error("Error linking article to topic", "error", err)
				return model.ErrInternalServer
			}
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, model.ErrInternalServer
	}

	return article, nil
}
