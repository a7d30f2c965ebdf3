//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionRepository インターフェース
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.Question) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error)
	// FindByTopic はトピック配下の問題を返します。difficultyが空なら全難易度。
	FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID, difficulty model.Difficulty) ([]*model.Question, error)
	// FindRandom は条件に合う問題をランダム順で最大limit件返します。
	FindRandom(ctx context.Context, db *gorm.DB, topicIDs []uuid.UUID, difficulty model.Difficulty, limit int) ([]*model.Question, error)
	SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string, limit int) ([]*model.Question, error)
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(question)
	if result.Error != nil {
		logger.Error("Error creating question in DB",
			"error", result.Error,
			"topic_id", question.TopicID.String(),
		)
		return fmt.Errorf("gormQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB",
			"error", result.Error,
			"question_id", questionID.String(),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID, difficulty model.Difficulty) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	query := db.WithContext(ctx).Where("topic_id = ?", topicID)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	result := query.Order("created_at ASC").Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by topic in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByTopic: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindRandom(ctx context.Context, db *gorm.DB, topicIDs []uuid.UUID, difficulty model.Difficulty, limit int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	query := db.WithContext(ctx).Where("topic_id IN ?", topicIDs)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	// RANDOM() はPostgreSQLとSQLiteの両方で利用可能
	result := query.Order("RANDOM()").Limit(limit).Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding random questions in DB",
			"error", result.Error,
			"difficulty", string(difficulty),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindRandom: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string, limit int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	pattern := "%" + keyword + "%"
	result := db.WithContext(ctx).
		Where("LOWER(question) LIKE LOWER(?)", pattern).
		Limit(limit).
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error searching questions in DB",
			"error", result.Error,
			"keyword", keyword,
		)
		return nil, fmt.Errorf("gormQuestionRepository.SearchByKeyword: %w", result.Error)
	}
	return questions, nil
}
