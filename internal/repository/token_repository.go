//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
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

// TokenRepository はアカウント有効化・パスワード再設定のワンタイムトークンを扱います。
// トークンは使い捨てで、使用後・期限切れ時に削除されます。
type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, db *gorm.DB, token *model.UserVerificationToken) error
	FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error)
	DeleteVerificationToken(ctx context.Context, db *gorm.DB, token string) error
	CreatePasswordResetToken(ctx context.Context, db *gorm.DB, token *model.PasswordResetToken) error
	FindPasswordResetToken(ctx context.Context, db *gorm.DB, token string) (*model.PasswordResetToken, error)
	DeletePasswordResetToken(ctx context.Context, db *gorm.DB, token string) error
	// DeletePasswordResetTokensByUser はユーザーの再設定トークンをまとめて無効化する
	DeletePasswordResetTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) CreateVerificationToken(ctx context.Context, db *gorm.DB, token *model.UserVerificationToken) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(token)
	if result.Error != nil {
		logger.Error("Error creating verification token in DB",
			"error", result.Error,
			"user_id", token.UserID.String(),
		)
		return fmt.Errorf("gormTokenRepository.CreateVerificationToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) FindVerificationToken(ctx context.Context, db *gorm.DB, tokenStr string) (*model.UserVerificationToken, error) {
	logger := middleware.GetLogger(ctx)
	var token model.UserVerificationToken
	result := db.WithContext(ctx).Where("token = ?", tokenStr).First(&token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		// トークン文字列そのものはログに残さない
		logger.Error("Error finding verification token in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTokenRepository.FindVerificationToken: %w", result.Error)
	}
	return &token, nil
}

func (r *gormTokenRepository) DeleteVerificationToken(ctx context.Context, db *gorm.DB, tokenStr string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("token = ?", tokenStr).Delete(&model.UserVerificationToken{})
	if result.Error != nil {
		logger.Error("Error deleting verification token in DB", "error", result.Error)
		return fmt.Errorf("gormTokenRepository.DeleteVerificationToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) CreatePasswordResetToken(ctx context.Context, db *gorm.DB, token *model.PasswordResetToken) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(token)
	if result.Error != nil {
		logger.Error("Error creating password reset token in DB",
			"error", result.Error,
			"user_id", token.UserID.String(),
		)
		return fmt.Errorf("gormTokenRepository.CreatePasswordResetToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) FindPasswordResetToken(ctx context.Context, db *gorm.DB, tokenStr string) (*model.PasswordResetToken, error) {
	logger := middleware.GetLogger(ctx)
	var token model.PasswordResetToken
	result := db.WithContext(ctx).Where("token = ?", tokenStr).First(&token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding password reset token in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTokenRepository.FindPasswordResetToken: %w", result.Error)
	}
	return &token, nil
}

func (r *gormTokenRepository) DeletePasswordResetToken(ctx context.Context, db *gorm.DB, tokenStr string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("token = ?", tokenStr).Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		logger.Error("Error deleting password reset token in DB", "error", result.Error)
		return fmt.Errorf("gormTokenRepository.DeletePasswordResetToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) DeletePasswordResetTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		logger.Error("Error deleting password reset tokens by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormTokenRepository.DeletePasswordResetTokensByUser: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Info("Invalidated password reset tokens",
			"user_id", userID.String(),
			"count", result.RowsAffected,
		)
	}
	return nil
}
