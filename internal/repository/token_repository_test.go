// internal/repository/token_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"exam_prep_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTokenRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:tokenrepo?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PasswordResetToken{}, &model.UserVerificationToken{}))
	require.NoError(t, db.Exec("DELETE FROM password_reset_tokens").Error)
	require.NoError(t, db.Exec("DELETE FROM user_verification_tokens").Error)
	return db
}

func TestGormTokenRepository_PasswordResetToken(t *testing.T) {
	ctx := context.Background()
	db := setupTokenRepoDB(t)
	repo := NewGormTokenRepository()

	userID := uuid.New()

	t.Run("正常系: 作成したトークンを検索できる", func(t *testing.T) {
		token := &model.PasswordResetToken{
			Token:     "reset-token-a",
			UserID:    userID,
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
		require.NoError(t, repo.CreatePasswordResetToken(ctx, db, token))

		found, err := repo.FindPasswordResetToken(ctx, db, "reset-token-a")

		require.NoError(t, err)
		assert.Equal(t, userID, found.UserID)
	})

	t.Run("異常系: 存在しないトークンはErrNotFound", func(t *testing.T) {
		_, err := repo.FindPasswordResetToken(ctx, db, "no-such-token")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormTokenRepository_DeletePasswordResetTokensByUser(t *testing.T) {
	ctx := context.Background()
	db := setupTokenRepoDB(t)
	repo := NewGormTokenRepository()

	targetUser := uuid.New()
	otherUser := uuid.New()

	// 対象ユーザーに2件、別ユーザーに1件
	for _, tk := range []*model.PasswordResetToken{
		{Token: "target-token-1", UserID: targetUser, ExpiresAt: time.Now().Add(1 * time.Hour)},
		{Token: "target-token-2", UserID: targetUser, ExpiresAt: time.Now().Add(1 * time.Hour)},
		{Token: "other-token", UserID: otherUser, ExpiresAt: time.Now().Add(1 * time.Hour)},
	} {
		require.NoError(t, repo.CreatePasswordResetToken(ctx, db, tk))
	}

	t.Run("正常系: 対象ユーザーのトークンだけをまとめて削除する", func(t *testing.T) {
		err := repo.DeletePasswordResetTokensByUser(ctx, db, targetUser)

		require.NoError(t, err)

		_, err = repo.FindPasswordResetToken(ctx, db, "target-token-1")
		assert.ErrorIs(t, err, model.ErrNotFound)
		_, err = repo.FindPasswordResetToken(ctx, db, "target-token-2")
		assert.ErrorIs(t, err, model.ErrNotFound)

		remaining, err := repo.FindPasswordResetToken(ctx, db, "other-token")
		require.NoError(t, err)
		assert.Equal(t, otherUser, remaining.UserID)
	})

	t.Run("正常系: トークンが無いユーザーでもエラーにしない", func(t *testing.T) {
		err := repo.DeletePasswordResetTokensByUser(ctx, db, uuid.New())

		assert.NoError(t, err)
	})
}
