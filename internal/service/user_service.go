// internal/service/user_service.go
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

type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpsertUser(ctx context.Context, userID uuid.UUID, req *model.UpsertUserRequest) (*model.User, error)
	AccumulateStudyMinutes(ctx context.Context, userID uuid.UUID, req *model.AccumulateStudyMinutesRequest) (*model.User, error)
}

type userService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
	}
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return user, nil
}

// UpsertUser はプロフィールを更新します。見つからなければ新規作成します。
func (s *userService) UpsertUser(ctx context.Context, userID uuid.UUID, req *model.UpsertUserRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var result *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				logger.Error("Error finding user for upsert", "error", err)
				return model.ErrInternalServer
			}
			// 新規作成
			newUser := &model.User{
				UserID:   userID,
				Email:    req.Email,
				IsActive: true,
			}
			if req.FirstName != nil {
				newUser.FirstName = *req.FirstName
			}
			if req.LastName != nil {
				newUser.LastName = *req.LastName
			}
			if req.ProfileImageURL != nil {
				newUser.ProfileImageURL = *req.ProfileImageURL
			}
			if err := s.userRepo.Create(ctx, tx, newUser); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
				}
				logger.Error("Error creating user in upsert", "error", err)
				return model.ErrInternalServer
			}
			result = newUser
			return nil
		}

		// 既存ユーザーの更新
		updates := make(map[string]interface{})
		if req.Email != "" && req.Email != user.Email {
			updates["email"] = req.Email
		}
		if req.FirstName != nil && *req.FirstName != user.FirstName {
			updates["first_name"] = *req.FirstName
		}
		if req.LastName != nil && *req.LastName != user.LastName {
			updates["last_name"] = *req.LastName
		}
		if req.ProfileImageURL != nil && *req.ProfileImageURL != user.ProfileImageURL {
			updates["profile_image_url"] = *req.ProfileImageURL
		}

		if len(updates) > 0 {
			if err := s.userRepo.Update(ctx, tx, userID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating user in upsert", "error", err)
				return model.ErrInternalServer
			}
		}

		result, err = s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			logger.Error("Error fetching updated user", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for UpsertUser", "error", err)
		return nil, model.ErrInternalServer
	}

	return result, nil
}

// AccumulateStudyMinutes は累計学習時間を加算し、更新後のユーザーを返します。
func (s *userService) AccumulateStudyMinutes(ctx context.Context, userID uuid.UUID, req *model.AccumulateStudyMinutesRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	if req.Minutes < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "学習時間は0以上で指定してください。", "minutes", model.ErrInvalidInput)
	}

	var updated *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.AccumulateStudyMinutes(ctx, tx, userID, req.Minutes, 0); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error accumulating study minutes", "error", err)
			return model.ErrInternalServer
		}

		var err error
		updated, err = s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			logger.Error("Error fetching user after accumulate", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for AccumulateStudyMinutes", "error", err)
		return nil, model.ErrInternalServer
	}

	return updated, nil
}
