// internal/service/bookmark_service.go
package service

import (
	"context"
	"errors"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookmarkService interface {
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*model.Bookmark, error)
	// CreateBookmark は冪等。既に存在する場合は既存のブックマークを返します。
	CreateBookmark(ctx context.Context, userID uuid.UUID, req *model.CreateBookmarkRequest) (*model.Bookmark, error)
	// RemoveBookmark は冪等。対象が存在しなくてもエラーにしません。
	RemoveBookmark(ctx context.Context, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) error
	IsBookmarked(ctx context.Context, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (bool, error)
}

type bookmarkService struct {
	db           *gorm.DB
	bookmarkRepo repository.BookmarkRepository
	activityRepo repository.ActivityRepository
}

func NewBookmarkService(db *gorm.DB, bookmarkRepo repository.BookmarkRepository, activityRepo repository.ActivityRepository) BookmarkService {
	return &bookmarkService{
		db:           db,
		bookmarkRepo: bookmarkRepo,
		activityRepo: activityRepo,
	}
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	bookmarks, err := s.bookmarkRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing bookmarks", "error", err)
		return nil, model.ErrInternalServer
	}
	return bookmarks, nil
}

func (s *bookmarkService) CreateBookmark(ctx context.Context, userID uuid.UUID, req *model.CreateBookmarkRequest) (*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)

	if !req.ResourceType.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "リソース種別の指定が不正です。", "resource_type", model.ErrInvalidInput)
	}

	bookmark := &model.Bookmark{
		BookmarkID:   uuid.New(),
		UserID:       userID,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
	}

	err := s.bookmarkRepo.Create(ctx, s.db, bookmark)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 既に存在する場合は既存の行を返す (冪等)
			existing, findErr := s.bookmarkRepo.FindByUserAndResource(ctx, s.db, userID, req.ResourceType, req.ResourceID)
			if findErr != nil {
				logger.Error("Error finding existing bookmark after conflict", "error", findErr)
				return nil, model.ErrInternalServer
			}
			return existing, nil
		}
		logger.Error("Error creating bookmark", "error", err)
		return nil, model.ErrInternalServer
	}

	s.logActivity(ctx, userID, model.ActivityBookmarkAdded, req.ResourceType, req.ResourceID)

	return bookmark, nil
}

func (s *bookmarkService) RemoveBookmark(ctx context.Context, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if !resourceType.IsValid() {
		return model.NewAppError("VALIDATION_ERROR", "リソース種別の指定が不正です。", "resource_type", model.ErrInvalidInput)
	}

	affected, err := s.bookmarkRepo.Delete(ctx, s.db, userID, resourceType, resourceID)
	if err != nil {
		logger.Error("Error removing bookmark", "error", err)
		return model.ErrInternalServer
	}

	// 実際に削除された場合のみアクティビティを記録する
	if affected > 0 {
		s.logActivity(ctx, userID, model.ActivityBookmarkRemoved, resourceType, resourceID)
	}

	return nil
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)

	if !resourceType.IsValid() {
		return false, model.NewAppError("VALIDATION_ERROR", "リソース種別の指定が不正です。", "resource_type", model.ErrInvalidInput)
	}

	exists, err := s.bookmarkRepo.Exists(ctx, s.db, userID, resourceType, resourceID)
	if err != nil {
		logger.Error("Error checking bookmark", "error", err)
		return false, model.ErrInternalServer
	}
	return exists, nil
}

// logActivity はアクティビティログをベストエフォートで記録します。失敗しても本処理は成功扱い。
func (s *bookmarkService) logActivity(ctx context.Context, userID uuid.UUID, activityType model.ActivityType, resourceType model.ResourceType, resourceID uuid.UUID) {
	logger := middleware.GetLogger(ctx)
	activity := &model.UserActivity{
		ActivityID:   uuid.New(),
		UserID:       userID,
		ActivityType: activityType,
		ResourceType: resourceType,
		ResourceID:   &resourceID,
	}
	if err := s.activityRepo.Create(ctx, s.db, activity); err != nil {
		logger.Warn("Failed to record bookmark activity", "error", err, "activity_type", string(activityType))
	}
}
