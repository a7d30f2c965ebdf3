//go:generate mockery --name ActivityRepository --output ./mocks --outpkg mocks --case=underscore
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

// ActivityRepository インターフェース
type ActivityRepository interface {
	Create(ctx context.Context, tx *gorm.DB, activity *model.UserActivity) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.UserActivity, error)
}

type gormActivityRepository struct{}

func NewGormActivityRepository() ActivityRepository {
	return &gormActivityRepository{}
}

func (r *gormActivityRepository) Create(ctx context.Context, tx *gorm.DB, activity *model.UserActivity) error {
	logger := middleware.GetLogger(ctx)

	// 存在しないユーザーへの追記は許さない
	var count int64
	if err := tx.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", activity.UserID).Count(&count).Error; err != nil {
		logger.Error("Error checking user existence for activity",
			"error", err,
			"user_id", activity.UserID.String(),
		)
		return fmt.Errorf("gormActivityRepository.Create: %w", err)
	}
	if count == 0 {
		logger.Warn("Activity append for unknown user",
			"user_id", activity.UserID.String(),
		)
		return model.ErrNotFound
	}

	result := tx.WithContext(ctx).Create(activity)
	if result.Error != nil {
		// 外部キー違反はユーザー不在とみなす
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23503" {
			logger.Warn("Foreign key violation on create activity",
				"user_id", activity.UserID.String(),
			)
			return model.ErrNotFound
		}
		logger.Error("Error creating activity in DB",
			"error", result.Error,
			"user_id", activity.UserID.String(),
			"activity_type", string(activity.ActivityType),
		)
		return fmt.Errorf("gormActivityRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormActivityRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.UserActivity, error) {
	logger := middleware.GetLogger(ctx)
	var activities []*model.UserActivity
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities)
	if result.Error != nil {
		logger.Error("Error finding activities by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormActivityRepository.FindByUser: %w", result.Error)
	}
	return activities, nil
}
