// internal/service/user_service_test.go
package service

import (
	"context"
	"testing"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBUser() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func strPtr(s string) *string { return &s }

func Test_userService_UpsertUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBUser()

	userID := uuid.New()

	t.Run("正常系: 存在しなければ新規作成", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewUserService(db, mockUserRepo)

		mockUserRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(2).(*model.User)
				assert.Equal(t, userID, user.UserID)
				assert.Equal(t, "hanako@example.com", user.Email)
				assert.Equal(t, "花子", user.FirstName)
				assert.True(t, user.IsActive)
			}).Return(nil).Once()

		user, err := svc.UpsertUser(ctx, userID, &model.UpsertUserRequest{
			Email:     "hanako@example.com",
			FirstName: strPtr("花子"),
			LastName:  strPtr("山田"),
		})

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "hanako@example.com", user.Email)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("正常系: 差分のあるフィールドのみ更新", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewUserService(db, mockUserRepo)

		existing := &model.User{
			UserID: userID, Email: "hanako@example.com",
			FirstName: "花子", LastName: "山田", IsActive: true,
		}
		mockUserRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).
			Return(existing, nil).Once()
		mockUserRepo.On("Update", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, mock.Anything).
			Run(func(args mock.Arguments) {
				updates := args.Get(3).(map[string]interface{})
				assert.Equal(t, map[string]interface{}{"last_name": "佐藤"}, updates)
			}).Return(nil).Once()
		updated := &model.User{
			UserID: userID, Email: "hanako@example.com",
			FirstName: "花子", LastName: "佐藤", IsActive: true,
		}
		mockUserRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).
			Return(updated, nil).Once()

		user, err := svc.UpsertUser(ctx, userID, &model.UpsertUserRequest{
			Email:     "hanako@example.com",
			FirstName: strPtr("花子"),
			LastName:  strPtr("佐藤"),
		})

		require.NoError(t, err)
		assert.Equal(t, "佐藤", user.LastName)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("正常系: 差分がなければ更新せず再取得のみ", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewUserService(db, mockUserRepo)

		existing := &model.User{UserID: userID, Email: "hanako@example.com", IsActive: true}
		mockUserRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).
			Return(existing, nil).Twice()

		user, err := svc.UpsertUser(ctx, userID, &model.UpsertUserRequest{
			Email: "hanako@example.com",
		})

		require.NoError(t, err)
		require.NotNil(t, user)
		mockUserRepo.AssertNotCalled(t, "Update")
	})

	t.Run("異常系: メールアドレス重複", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewUserService(db, mockUserRepo)

		mockUserRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(model.ErrConflict).Once()

		user, err := svc.UpsertUser(ctx, userID, &model.UpsertUserRequest{
			Email: "taken@example.com",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_EMAIL", appErr.Detail.Code)
		assert.Nil(t, user)
	})
}

func Test_userService_AccumulateStudyMinutes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBUser()

	userID := uuid.New()

	t.Run("正常系: 加算後のユーザーを返す", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewUserService(db, mockUserRepo)

		mockUserRepo.On("AccumulateStudyMinutes", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, 30, 0).
			Return(nil).Once()
		updated := &model.User{UserID: userID, Email: "hanako@example.com", TotalStudyMinutes: 120}
		mockUserRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID).
			Return(updated, nil).Once()

		user, err := svc.AccumulateStudyMinutes(ctx, userID, &model.AccumulateStudyMinutesRequest{Minutes: 30})

		require.NoError(t, err)
		assert.Equal(t, 120, user.TotalStudyMinutes)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: 負の学習時間", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewUserService(db, mockUserRepo)

		user, err := svc.AccumulateStudyMinutes(ctx, userID, &model.AccumulateStudyMinutesRequest{Minutes: -10})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, user)
		mockUserRepo.AssertNotCalled(t, "AccumulateStudyMinutes")
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := NewUserService(db, mockUserRepo)

		mockUserRepo.On("AccumulateStudyMinutes", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, 30, 0).
			Return(model.ErrNotFound).Once()

		user, err := svc.AccumulateStudyMinutes(ctx, userID, &model.AccumulateStudyMinutesRequest{Minutes: 30})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, user)
	})
}
