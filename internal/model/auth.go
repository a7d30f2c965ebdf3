// internal/model/auth.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserVerificationToken はメールアドレス確認用のワンタイムトークン。使用後は削除する。
type UserVerificationToken struct {
	Token     string    `gorm:"primaryKey;type:varchar(64)" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserVerificationToken) TableName() string {
	return "user_verification_tokens"
}

// PasswordResetToken はパスワード再設定用のワンタイムトークン。使用後は削除する。
type PasswordResetToken struct {
	Token     string    `gorm:"primaryKey;type:varchar(64)" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// RegisterRequest はユーザー登録リクエスト
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// LoginRequest はログインリクエスト
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// RequestPasswordResetRequest はパスワード再設定メールの送信リクエスト
type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest はトークンを用いたパスワード再設定リクエスト
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// VerifyEmailRequest はメールアドレス確認リクエスト
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}
