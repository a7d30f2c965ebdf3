//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizRepository インターフェース
type QuizRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error)
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		logger.Error("Error creating quiz attempt in DB",
			"error", result.Error,
			"user_id", attempt.UserID.String(),
		)
		return fmt.Errorf("gormQuizRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuizRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempts []*model.QuizAttempt
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&attempts)
	if result.Error != nil {
		logger.Error("Error finding quiz attempts by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormQuizRepository.FindByUser: %w", result.Error)
	}
	return attempts, nil
}
