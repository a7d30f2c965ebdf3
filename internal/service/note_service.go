// internal/service/note_service.go
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

type NoteService interface {
	ListNotes(ctx context.Context, userID uuid.UUID) ([]*model.Note, error)
	ListNotesByResource(ctx context.Context, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) ([]*model.Note, error)
	CreateNote(ctx context.Context, userID uuid.UUID, req *model.CreateNoteRequest) (*model.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *model.UpdateNoteRequest) (*model.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
}

type noteService struct {
	db           *gorm.DB
	noteRepo     repository.NoteRepository
	activityRepo repository.ActivityRepository
}

func NewNoteService(db *gorm.DB, noteRepo repository.NoteRepository, activityRepo repository.ActivityRepository) NoteService {
	return &noteService{
		db:           db,
		noteRepo:     noteRepo,
		activityRepo: activityRepo,
	}
}

func (s *noteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	notes, err := s.noteRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing notes", "error", err)
		return nil, model.ErrInternalServer
	}
	return notes, nil
}

func (s *noteService) ListNotesByResource(ctx context.Context, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) ([]*model.Note, error) {
	logger := middleware.GetLogger(ctx)

	if !resourceType.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "リソース種別の指定が不正です。", "resource_type", model.ErrInvalidInput)
	}

	notes, err := s.noteRepo.FindByUserAndResource(ctx, s.db, userID, resourceType, resourceID)
	if err != nil {
		logger.Error("Error listing notes by resource", "error", err)
		return nil, model.ErrInternalServer
	}
	return notes, nil
}

func (s *noteService) CreateNote(ctx context.Context, userID uuid.UUID, req *model.CreateNoteRequest) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)

	if !req.ResourceType.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "リソース種別の指定が不正です。", "resource_type", model.ErrInvalidInput)
	}
	if req.Content == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "本文は必須項目です。", "content", model.ErrInvalidInput)
	}

	note := &model.Note{
		NoteID:       uuid.New(),
		UserID:       userID,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Title:        req.Title,
		Content:      req.Content,
	}

	if err := s.noteRepo.Create(ctx, s.db, note); err != nil {
		logger.Error("Error creating note", "error", err)
		return nil, model.ErrInternalServer
	}

	// アクティビティ記録はベストエフォート
	activity := &model.UserActivity{
		ActivityID:   uuid.New(),
		UserID:       userID,
		ActivityType: model.ActivityNoteAdded,
		ResourceType: req.ResourceType,
		ResourceID:   &note.ResourceID,
	}
	if err := s.activityRepo.Create(ctx, s.db, activity); err != nil {
		logger.Warn("Failed to record note activity", "error", err)
	}

	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *model.UpdateNoteRequest) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Note

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 存在確認 (所有者のみ)
		if _, err := s.noteRepo.FindByID(ctx, tx, userID, noteID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Content != "" {
			updates["content"] = req.Content
		}

		if len(updates) > 0 {
			if err := s.noteRepo.Update(ctx, tx, userID, noteID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating note", "error", err)
				return model.ErrInternalServer
			}
		}

		var err error
		updated, err = s.noteRepo.FindByID(ctx, tx, userID, noteID)
		if err != nil {
			logger.Error("Error fetching updated note", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOTE_NOT_FOUND", "ノートが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Transaction failed for UpdateNote", "error", err)
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := s.noteRepo.Delete(ctx, s.db, userID, noteID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOTE_NOT_FOUND", "ノートが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error deleting note", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
