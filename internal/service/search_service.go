// internal/service/search_service.go
package service

import (
	"context"
	"strings"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SearchService interface {
	// SearchContent はトピック・記事・問題を横断検索します。
	// userID は将来のパーソナライズ用に受け取るだけで、現状は結果に影響しません。
	SearchContent(ctx context.Context, userID uuid.UUID, query string) (*model.SearchResponse, error)
}

type searchService struct {
	db           *gorm.DB
	topicRepo    repository.TopicRepository
	articleRepo  repository.ArticleRepository
	questionRepo repository.QuestionRepository
	cfg          *config.Config
}

func NewSearchService(db *gorm.DB, topicRepo repository.TopicRepository, articleRepo repository.ArticleRepository, questionRepo repository.QuestionRepository, cfg *config.Config) SearchService {
	return &searchService{
		db:           db,
		topicRepo:    topicRepo,
		articleRepo:  articleRepo,
		questionRepo: questionRepo,
		cfg:          cfg,
	}
}

func (s *searchService) SearchContent(ctx context.Context, userID uuid.UUID, query string) (*model.SearchResponse, error) {
	logger := middleware.GetLogger(ctx)

	keyword := strings.TrimSpace(query)
	if keyword == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "検索キーワードを指定してください。", "q", model.ErrInvalidInput)
	}

	limit := s.cfg.App.SearchLimit

	topics, err := s.topicRepo.SearchByKeyword(ctx, s.db, keyword, limit)
	if err != nil {
		logger.Error("Error searching topics", "error", err)
		return nil, model.ErrInternalServer
	}

	articles, err := s.articleRepo.SearchByKeyword(ctx, s.db, keyword, limit)
	if err != nil {
		logger.Error("Error searching articles", "error", err)
		return nil, model.ErrInternalServer
	}

	questions, err := s.questionRepo.SearchByKeyword(ctx, s.db, keyword, limit)
	if err != nil {
		logger.Error("Error searching questions", "error", err)
		return nil, model.ErrInternalServer
	}

	return &model.SearchResponse{
		Topics:    topics,
		Articles:  articles,
		Questions: questions,
	}, nil
}
