// internal/service/note_service_test.go
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
func setupTestDBNote() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_noteService_CreateNote(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBNote()

	userID := uuid.New()
	articleID := uuid.New()

	t.Run("正常系: ノート作成とアクティビティ記録", func(t *testing.T) {
		mockNoteRepo := new(mocks.NoteRepository)
		mockActivityRepo := new(mocks.ActivityRepository)
		svc := NewNoteService(db, mockNoteRepo, mockActivityRepo)

		mockNoteRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Note")).
			Run(func(args mock.Arguments) {
				note := args.Get(2).(*model.Note)
				assert.Equal(t, userID, note.UserID)
				assert.Equal(t, "大政奉還の年号メモ", note.Title)
			}).Return(nil).Once()
		mockActivityRepo.On("Create", mock.Anything, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserActivity")).
			Run(func(args mock.Arguments) {
				activity := args.Get(2).(*model.UserActivity)
				assert.Equal(t, model.ActivityNoteAdded, activity.ActivityType)
			}).Return(nil).Once()

		note, err := svc.CreateNote(ctx, userID, &model.CreateNoteRequest{
			ResourceType: model.ResourceArticle,
			ResourceID:   articleID,
			Title:        "大政奉還の年号メモ",
			Content:      "1867年。王政復古の大号令と混同しないこと。",
		})

		require.NoError(t, err)
		require.NotNil(t, note)
		mockNoteRepo.AssertExpectations(t)
		mockActivityRepo.AssertExpectations(t)
	})

	t.Run("異常系: 本文が空", func(t *testing.T) {
		mockNoteRepo := new(mocks.NoteRepository)
		svc := NewNoteService(db, mockNoteRepo, new(mocks.ActivityRepository))

		note, err := svc.CreateNote(ctx, userID, &model.CreateNoteRequest{
			ResourceType: model.ResourceArticle,
			ResourceID:   articleID,
			Content:      "",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, note)
		mockNoteRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: リソース種別が不正", func(t *testing.T) {
		mockNoteRepo := new(mocks.NoteRepository)
		svc := NewNoteService(db, mockNoteRepo, new(mocks.ActivityRepository))

		note, err := svc.CreateNote(ctx, userID, &model.CreateNoteRequest{
			ResourceType: model.ResourceType("quiz"),
			ResourceID:   articleID,
			Content:      "メモ",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, note)
	})
}

func Test_noteService_UpdateNote(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBNote()

	userID := uuid.New()
	noteID := uuid.New()

	t.Run("正常系: 所有者による更新", func(t *testing.T) {
		mockNoteRepo := new(mocks.NoteRepository)
		svc := NewNoteService(db, mockNoteRepo, new(mocks.ActivityRepository))

		existing := &model.Note{NoteID: noteID, UserID: userID, Content: "旧メモ"}
		mockNoteRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, noteID).
			Return(existing, nil).Once()
		mockNoteRepo.On("Update", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, noteID, mock.Anything).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				assert.Equal(t, "新メモ", updates["content"])
			}).Return(nil).Once()
		updated := &model.Note{NoteID: noteID, UserID: userID, Content: "新メモ"}
		mockNoteRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, noteID).
			Return(updated, nil).Once()

		note, err := svc.UpdateNote(ctx, userID, noteID, &model.UpdateNoteRequest{Content: "新メモ"})

		require.NoError(t, err)
		assert.Equal(t, "新メモ", note.Content)
		mockNoteRepo.AssertExpectations(t)
	})

	t.Run("異常系: 別ユーザーのノートは見つからない扱い", func(t *testing.T) {
		mockNoteRepo := new(mocks.NoteRepository)
		svc := NewNoteService(db, mockNoteRepo, new(mocks.ActivityRepository))

		// FindByIDはuser_idで絞り込むため、他人のノートはErrNotFoundになる
		mockNoteRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, noteID).
			Return(nil, model.ErrNotFound).Once()

		note, err := svc.UpdateNote(ctx, userID, noteID, &model.UpdateNoteRequest{Content: "新メモ"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOTE_NOT_FOUND", appErr.Detail.Code)
		assert.Nil(t, note)
		mockNoteRepo.AssertNotCalled(t, "Update")
	})
}

func Test_noteService_DeleteNote(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBNote()

	userID := uuid.New()
	noteID := uuid.New()

	t.Run("正常系: 削除成功", func(t *testing.T) {
		mockNoteRepo := new(mocks.NoteRepository)
		svc := NewNoteService(db, mockNoteRepo, new(mocks.ActivityRepository))

		mockNoteRepo.On("Delete", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, noteID).
			Return(nil).Once()

		err := svc.DeleteNote(ctx, userID, noteID)

		require.NoError(t, err)
		mockNoteRepo.AssertExpectations(t)
	})

	t.Run("異常系: ノートが存在しない", func(t *testing.T) {
		mockNoteRepo := new(mocks.NoteRepository)
		svc := NewNoteService(db, mockNoteRepo, new(mocks.ActivityRepository))

		mockNoteRepo.On("Delete", mock.Anything, mock.AnythingOfType("*gorm.DB"), userID, noteID).
			Return(model.ErrNotFound).Once()

		err := svc.DeleteNote(ctx, userID, noteID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
