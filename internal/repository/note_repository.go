//go:generate mockery --name NoteRepository --output ./mocks --outpkg mocks --case=underscore
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

// NoteRepository インターフェース
type NoteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *model.Note) error
	FindByID(ctx context.Context, db *gorm.DB, userID, noteID uuid.UUID) (*model.Note, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Note, error)
	FindByUserAndResource(ctx context.Context, db *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) ([]*model.Note, error)
	Update(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) error
}

type gormNoteRepository struct{}

func NewGormNoteRepository() NoteRepository {
	return &gormNoteRepository{}
}

func (r *gormNoteRepository) Create(ctx context.Context, tx *gorm.DB, note *model.Note) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(note)
	if result.Error != nil {
		logger.Error("Error creating note in DB",
			"error", result.Error,
			"user_id", note.UserID.String(),
		)
		return fmt.Errorf("gormNoteRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormNoteRepository) FindByID(ctx context.Context, db *gorm.DB, userID, noteID uuid.UUID) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var note model.Note
	result := db.WithContext(ctx).Where("user_id = ? AND note_id = ?", userID, noteID).First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding note by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"note_id", noteID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByID: %w", result.Error)
	}
	return &note, nil
}

func (r *gormNoteRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var notes []*model.Note
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&notes)
	if result.Error != nil {
		logger.Error("Error finding notes by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByUser: %w", result.Error)
	}
	return notes, nil
}

func (r *gormNoteRepository) FindByUserAndResource(ctx context.Context, db *gorm.DB, userID uuid.UUID, resourceType model.ResourceType, resourceID uuid.UUID) ([]*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var notes []*model.Note
	result := db.WithContext(ctx).
		Where("user_id = ? AND resource_type = ? AND resource_id = ?", userID, resourceType, resourceID).
		Order("created_at DESC").
		Find(&notes)
	if result.Error != nil {
		logger.Error("Error finding notes by resource in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByUserAndResource: %w", result.Error)
	}
	return notes, nil
}

func (r *gormNoteRepository) Update(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Note{}).Where("user_id = ? AND note_id = ?", userID, noteID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating note in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"note_id", noteID.String(),
		)
		return fmt.Errorf("gormNoteRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormNoteRepository) Delete(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Note{}, noteID)
	if result.Error != nil {
		logger.Error("Error deleting note in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"note_id", noteID.String(),
		)
		return fmt.Errorf("gormNoteRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
