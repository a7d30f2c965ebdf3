// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"time"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	GetUserProgress(ctx context.Context, userID uuid.UUID) ([]*model.UserProgress, error)
	GetTopicProgress(ctx context.Context, userID, topicID uuid.UUID) (*model.UserProgress, error)
	// UpsertTopicProgress は達成率を上書きし、学習時間を加算します。
	UpsertTopicProgress(ctx context.Context, userID, topicID uuid.UUID, req *model.StudySessionRequest) (*model.UserProgress, error)
	// RecordStudySession はトピック進捗の更新とユーザー累計学習時間の加算を
	// 1つのトランザクションで行います。どちらかが失敗すれば両方ロールバックされます。
	RecordStudySession(ctx context.Context, userID, topicID uuid.UUID, req *model.StudySessionRequest) (*model.UserProgress, error)
}

type progressService struct {
	db           *gorm.DB
	progressRepo repository.ProgressRepository
	topicRepo    repository.TopicRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

func NewProgressService(db *gorm.DB, progressRepo repository.ProgressRepository, topicRepo repository.TopicRepository, userRepo repository.UserRepository, activityRepo repository.ActivityRepository) ProgressService {
	return &progressService{
		db:           db,
		progressRepo: progressRepo,
		topicRepo:    topicRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

func (s *progressService) GetUserProgress(ctx context.Context, userID uuid.UUID) ([]*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	progresses, err := s.progressRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing user progress", "error", err)
		return nil, model.ErrInternalServer
	}
	return progresses, nil
}

func (s *progressService) GetTopicProgress(ctx context.Context, userID, topicID uuid.UUID) (*model.UserProgress, error) {
	progress, err := s.progressRepo.FindByUserAndTopic(ctx, s.db, userID, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROGRESS_NOT_FOUND", "このトピックの学習記録はまだありません。", "", model.ErrNotFound)
		}
		return nil, err
	}
	return progress, nil
}

func (s *progressService) UpsertTopicProgress(ctx context.Context, userID, topicID uuid.UUID, req *model.StudySessionRequest) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)

	if err := validateStudySession(req); err != nil {
		return nil, err
	}

	var result *model.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = s.upsertProgressTx(ctx, tx, userID, topicID, req)
		return err
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for UpsertTopicProgress", "error", err)
		return nil, model.ErrInternalServer
	}

	return result, nil
}

func (s *progressService) RecordStudySession(ctx context.Context, userID, topicID uuid.UUID, req *model.StudySessionRequest) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)

	if err := validateStudySession(req); err != nil {
		return nil, err
	}

	var result *model.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = s.upsertProgressTx(ctx, tx, userID, topicID, req)
		if err != nil {
			return err
		}

		// ユーザー累計学習時間も同一トランザクションで加算する
		if err := s.userRepo.AccumulateStudyMinutes(ctx, tx, userID, req.TimeSpent, 0); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error accumulating user study minutes in session", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for RecordStudySession", "error", err)
		return nil, model.ErrInternalServer
	}

	// アクティビティ記録はコミット後のベストエフォート
	activity := &model.UserActivity{
		ActivityID:   uuid.New(),
		UserID:       userID,
		ActivityType: model.ActivityStudyProgress,
		ResourceType: model.ResourceTopic,
		ResourceID:   &topicID,
		Metadata: model.JSONMap{
			"completion_percentage": req.CompletionPercentage,
			"time_spent":            req.TimeSpent,
		},
	}
	if err := s.activityRepo.Create(ctx, s.db, activity); err != nil {
		logger.Warn("Failed to record study session activity", "error", err)
	}

	return result, nil
}

// upsertProgressTx はトランザクション内で進捗行を作成または更新します。
func (s *progressService) upsertProgressTx(ctx context.Context, tx *gorm.DB, userID, topicID uuid.UUID, req *model.StudySessionRequest) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	now := time.Now()

	// トピックの存在確認
	if _, err := s.topicRepo.FindByID(ctx, tx, topicID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "topic_id", model.ErrInvalidInput)
		}
		return nil, model.ErrInternalServer
	}

	_, err := s.progressRepo.FindByUserAndTopic(ctx, tx, userID, topicID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding progress for upsert", "error", err)
			return nil, model.ErrInternalServer
		}
		// 新規作成。同時作成で一意制約に当たった場合は更新にフォールバック
		progress := &model.UserProgress{
			ProgressID:           uuid.New(),
			UserID:               userID,
			TopicID:              topicID,
			CompletionPercentage: req.CompletionPercentage,
			TotalTimeSpent:       req.TimeSpent,
			LastStudiedAt:        &now,
		}
		createErr := s.progressRepo.Create(ctx, tx, progress)
		if createErr == nil {
			return progress, nil
		}
		if !errors.Is(createErr, model.ErrConflict) {
			logger.Error("Error creating progress", "error", createErr)
			return nil, model.ErrInternalServer
		}
	}

	// 既存行の更新 (達成率は上書き、時間は加算)
	if err := s.progressRepo.UpdateProgress(ctx, tx, userID, topicID, req.CompletionPercentage, req.TimeSpent, now); err != nil {
		logger.Error("Error updating progress", "error", err)
		return nil, model.ErrInternalServer
	}

	updated, err := s.progressRepo.FindByUserAndTopic(ctx, tx, userID, topicID)
	if err != nil {
		logger.Error("Error fetching updated progress", "error", err)
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func validateStudySession(req *model.StudySessionRequest) error {
	if req.CompletionPercentage < 0 || req.CompletionPercentage > 100 {
		return model.NewAppError("VALIDATION_ERROR", "達成率は0〜100で指定してください。", "completion_percentage", model.ErrInvalidInput)
	}
	if req.TimeSpent < 0 {
		return model.NewAppError("VALIDATION_ERROR", "学習時間は0以上で指定してください。", "time_spent", model.ErrInvalidInput)
	}
	return nil
}
