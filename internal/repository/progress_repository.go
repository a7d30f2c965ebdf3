//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ProgressRepository インターフェース
type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserProgress, error)
	FindByUserAndTopic(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) (*model.UserProgress, error)
	// UpdateProgress は達成率を上書きし、学習時間をSQL側で加算します。
	UpdateProgress(ctx context.Context, tx *gorm.DB, userID, topicID uuid.UUID, completionPercentage float64, timeSpent int, studiedAt time.Time) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Debug("Progress row already exists",
				"user_id", progress.UserID.String(),
				"topic_id", progress.TopicID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB",
			"error", result.Error,
			"user_id", progress.UserID.String(),
			"topic_id", progress.TopicID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.UserProgress
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("updated_at DESC").Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding progress by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindByUserAndTopic(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserProgress
	result := db.WithContext(ctx).Where("user_id = ? AND topic_id = ?", userID, topicID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndTopic: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) UpdateProgress(ctx context.Context, tx *gorm.DB, userID, topicID uuid.UUID, completionPercentage float64, timeSpent int, studiedAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	// 達成率は上書き、学習時間は加算。加算はSQL側で行う
	result := tx.WithContext(ctx).Model(&model.UserProgress{}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Updates(map[string]interface{}{
			"completion_percentage": completionPercentage,
			"total_time_spent":      gorm.Expr("total_time_spent + ?", timeSpent),
			"last_studied_at":       studiedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating progress in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"topic_id", topicID.String(),
		)
		return fmt.Errorf("gormProgressRepository.UpdateProgress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
