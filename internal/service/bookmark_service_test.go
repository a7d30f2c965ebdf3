// internal/service/bookmark_service_test.go
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
func setupTestDBBookmark() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_bookmarkService_CreateBookmark(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBBookmark()

	userID := uuid.New()
	articleID := uuid.New()

	t.Run("正常系: ブックマーク作成とアクティビティ記録", func(t *testing.T) {
		mockBookmarkRepo := new(mocks.BookmarkRepository)
		mockActivityRepo := new(mocks.ActivityRepository)
		svc := NewBookmarkService(db, mockBookmarkRepo, mockActivityRepo)

		mockBookmarkRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Bookmark")).
			Run(func(args mock.Arguments) {
				b := args.Get(2).(*model.Bookmark)
				assert.Equal(t, userID, b.UserID)
				assert.Equal(t, model.ResourceArticle, b.ResourceType)
				assert.Equal(t, articleID, b.ResourceID)
			}).Return(nil).Once()
		mockActivityRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserActivity")).
			Run(func(args mock.Arguments) {
				a := args.Get(2).(*model.UserActivity)
				assert.Equal(t, model.ActivityBookmarkAdded, a.ActivityType)
				assert.Equal(t, model.ResourceArticle, a.ResourceType)
			}).Return(nil).Once()

		bookmark, err := svc.CreateBookmark(ctx, userID, &model.CreateBookmarkRequest{
			ResourceType: model.ResourceArticle,
			ResourceID:   articleID,
		})

		require.NoError(t, err)
		require.NotNil(t, bookmark)
		assert.Equal(t, articleID, bookmark.ResourceID)
		mockBookmarkRepo.AssertExpectations(t)
		mockActivityRepo.AssertExpectations(t)
	})

	t.Run("正常系: 登録済みなら既存の行を返す (冪等)", func(t *testing.T) {
		mockBookmarkRepo := new(mocks.BookmarkRepository)
		mockActivityRepo := new(mocks.ActivityRepository)
		svc := NewBookmarkService(db, mockBookmarkRepo, mockActivityRepo)

		existing := &model.Bookmark{
			BookmarkID:   uuid.New(),
			UserID:       userID,
			ResourceType: model.ResourceArticle,
			ResourceID:   articleID,
		}
		mockBookmarkRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Bookmark")).
			Return(model.ErrConflict).Once()
		mockBookmarkRepo.On("FindByUserAndResource", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, model.ResourceArticle, articleID).
			Return(existing, nil).Once()

		bookmark, err := svc.CreateBookmark(ctx, userID, &model.CreateBookmarkRequest{
			ResourceType: model.ResourceArticle,
			ResourceID:   articleID,
		})

		require.NoError(t, err)
		assert.Equal(t, existing.BookmarkID, bookmark.BookmarkID)
		// 重複時はアクティビティを記録しない
		mockActivityRepo.AssertNotCalled(t, "Create")
		mockBookmarkRepo.AssertExpectations(t)
	})

	t.Run("異常系: リソース種別が不正", func(t *testing.T) {
		mockBookmarkRepo := new(mocks.BookmarkRepository)
		svc := NewBookmarkService(db, mockBookmarkRepo, new(mocks.ActivityRepository))

		bookmark, err := svc.CreateBookmark(ctx, userID, &model.CreateBookmarkRequest{
			ResourceType: model.ResourceType("quiz"),
			ResourceID:   articleID,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "resource_type", appErr.Detail.Field)
		assert.Nil(t, bookmark)
		mockBookmarkRepo.AssertNotCalled(t, "Create")
	})
}

func Test_bookmarkService_RemoveBookmark(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBBookmark()

	userID := uuid.New()
	topicID := uuid.New()

	t.Run("正常系: 削除成功でアクティビティ記録", func(t *testing.T) {
		mockBookmarkRepo := new(mocks.BookmarkRepository)
		mockActivityRepo := new(mocks.ActivityRepository)
		svc := NewBookmarkService(db, mockBookmarkRepo, mockActivityRepo)

		mockBookmarkRepo.On("Delete", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, model.ResourceTopic, topicID).
			Return(int64(1), nil).Once()
		mockActivityRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserActivity")).
			Run(func(args mock.Arguments) {
				a := args.Get(2).(*model.UserActivity)
				assert.Equal(t, model.ActivityBookmarkRemoved, a.ActivityType)
			}).Return(nil).Once()

		err := svc.RemoveBookmark(ctx, userID, model.ResourceTopic, topicID)

		require.NoError(t, err)
		mockBookmarkRepo.AssertExpectations(t)
		mockActivityRepo.AssertExpectations(t)
	})

	t.Run("正常系: 対象が存在しなくても成功扱い (冪等)", func(t *testing.T) {
		mockBookmarkRepo := new(mocks.BookmarkRepository)
		mockActivityRepo := new(mocks.ActivityRepository)
		svc := NewBookmarkService(db, mockBookmarkRepo, mockActivityRepo)

		mockBookmarkRepo.On("Delete", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, model.ResourceTopic, topicID).
			Return(int64(0), nil).Once()

		err := svc.RemoveBookmark(ctx, userID, model.ResourceTopic, topicID)

		require.NoError(t, err)
		// 削除されていなければアクティビティを記録しない
		mockActivityRepo.AssertNotCalled(t, "Create")
	})
}

func Test_bookmarkService_IsBookmarked(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBBookmark()

	userID := uuid.New()
	questionID := uuid.New()

	tests := []struct {
		name       string
		resType    model.ResourceType
		setupMock  func(repo *mocks.BookmarkRepository)
		wantErr    bool
		wantExists bool
	}{
		{
			name:    "正常系: ブックマーク済み",
			resType: model.ResourceQuestion,
			setupMock: func(repo *mocks.BookmarkRepository) {
				repo.On("Exists", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, model.ResourceQuestion, questionID).
					Return(true, nil).Once()
			},
			wantExists: true,
		},
		{
			name:    "正常系: 未ブックマーク",
			resType: model.ResourceQuestion,
			setupMock: func(repo *mocks.BookmarkRepository) {
				repo.On("Exists", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, model.ResourceQuestion, questionID).
					Return(false, nil).Once()
			},
			wantExists: false,
		},
		{
			name:      "異常系: リソース種別が不正",
			resType:   model.ResourceType("unknown"),
			setupMock: func(repo *mocks.BookmarkRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBookmarkRepo := new(mocks.BookmarkRepository)
			svc := NewBookmarkService(db, mockBookmarkRepo, new(mocks.ActivityRepository))
			tt.setupMock(mockBookmarkRepo)

			exists, err := svc.IsBookmarked(ctx, userID, tt.resType, questionID)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantExists, exists)
			}
			mockBookmarkRepo.AssertExpectations(t)
		})
	}
}
