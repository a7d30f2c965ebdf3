// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User は受験者のアカウントと学習統計を表します
type User struct {
	UserID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email             string         `gorm:"unique;not null" json:"email"`
	FirstName         string         `json:"first_name"`
	LastName          string         `json:"last_name"`
	ProfileImageURL   string         `json:"profile_image_url"`
	StreakDays        int            `gorm:"not null;default:0" json:"streak_days"`
	TotalStudyMinutes int            `gorm:"not null;default:0" json:"total_study_minutes"` // 単調増加。AccumulateStudyMinutesのみが加算する
	PasswordHash      string         `gorm:"not null" json:"-"`
	IsActive          bool           `gorm:"default:false" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// プロフィール更新リクエストDTO
type UpsertUserRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	FirstName       *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName        *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	ProfileImageURL *string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
}

// 学習時間加算リクエストDTO
type AccumulateStudyMinutesRequest struct {
	Minutes int `json:"minutes" validate:"min=0"`
}

// UserResponse はクライアントに返すユーザー情報
type UserResponse struct {
	UserID            uuid.UUID `json:"user_id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	ProfileImageURL   string    `json:"profile_image_url"`
	StreakDays        int       `json:"streak_days"`
	TotalStudyMinutes int       `json:"total_study_minutes"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		UserID:            u.UserID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfileImageURL:   u.ProfileImageURL,
		StreakDays:        u.StreakDays,
		TotalStudyMinutes: u.TotalStudyMinutes,
		IsActive:          u.IsActive,
		CreatedAt:         u.CreatedAt,
	}
}
