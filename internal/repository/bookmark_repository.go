//go:generate mockery --name BookmarkRepository --output ./mocks --outpkg mocks --case=underscore
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

// BookmarkRepository インターフェース
type BookmarkRepository interface {
	Create(ctx context.Context, tx *gorm.DB, bookmark *model.Bookmark) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Bookmark, error)
	FindByUserAndResource(ctx context.Context, db *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (*model.Bookmark, error)
	// Delete は対象が存在しなくてもエラーを返しません (冪等)。
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (int64, error)
	Exists(ctx context.Context, db *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (bool, error)
}

type gormBookmarkRepository struct{}

func NewGormBookmarkRepository() BookmarkRepository {
	return &gormBookmarkRepository{}
}

func (r *gormBookmarkRepository) Create(ctx context.Context, tx *gorm.DB, bookmark *model.Bookmark) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(bookmark)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Debug("Bookmark already exists",
				"user_id", bookmark.UserID.String(),
				"resource_type", string(bookmark.ResourceType),
				"resource_id", bookmark.ResourceID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating bookmark in DB",
			"error", result.Error,
			"user_id", bookmark.UserID.String(),
		)
		return fmt.Errorf("gormBookmarkRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBookmarkRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	var bookmarks []*model.Bookmark
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&bookmarks)
	if result.Error != nil {
		logger.Error("Error finding bookmarks by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormBookmarkRepository.FindByUser: %w", result.Error)
	}
	return bookmarks, nil
}

func (r *gormBookmarkRepository) FindByUserAndResource(ctx context.Context, db *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	var bookmark model.Bookmark
	result := db.WithContext(ctx).
		Where("user_id = ? AND resource_type = ? AND resource_id = ?", userID, resourceType, resourceID).
		First(&bookmark)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding bookmark in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormBookmarkRepository.FindByUserAndResource: %w", result.Error)
	}
	return &bookmark, nil
}

func (r *gormBookmarkRepository) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND resource_type = ? AND resource_id = ?", userID, resourceType, resourceID).
		Delete(&model.Bookmark{})
	if result.Error != nil {
		logger.Error("Error deleting bookmark in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormBookmarkRepository.Delete: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormBookmarkRepository) Exists(ctx context.Context, db *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("user_id = ? AND resource_type = ? AND resource_id = ?", userID, resourceType, resourceID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking bookmark existence in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return false, fmt.Errorf("gormBookmarkRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}
