// internal/service/activity_service.go
package service

import (
	"context"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityService interface {
	ListUserActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*model.UserActivity, error)
}

type activityService struct {
	db           *gorm.DB
	activityRepo repository.ActivityRepository
	cfg          *config.Config
}

func NewActivityService(db *gorm.DB, activityRepo repository.ActivityRepository, cfg *config.Config) ActivityService {
	return &activityService{
		db:           db,
		activityRepo: activityRepo,
		cfg:          cfg,
	}
}

func (s *activityService) ListUserActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*model.UserActivity, error) {
	logger := middleware.GetLogger(ctx)

	if limit <= 0 {
		limit = s.cfg.App.PageLimit
	}

	activities, err := s.activityRepo.FindByUser(ctx, s.db, userID, limit)
	if err != nil {
		logger.Error("Error listing user activity", "error", err)
		return nil, model.ErrInternalServer
	}
	return activities, nil
}
