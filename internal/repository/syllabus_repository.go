//go:generate mockery --name SubjectRepository --output ./mocks --outpkg mocks --case=underscore
//go:generate mockery --name TopicRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SubjectRepository インターフェース
type SubjectRepository interface {
	Create(ctx context.Context, tx *gorm.DB, subject *model.Subject) error
	FindByID(ctx context.Context, db *gorm.DB, subjectID uuid.UUID) (*model.Subject, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Subject, error)
}

type gormSubjectRepository struct{}

func NewGormSubjectRepository() SubjectRepository {
	return &gormSubjectRepository{}
}

func (r *gormSubjectRepository) Create(ctx context.Context, tx *gorm.DB, subject *model.Subject) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(subject)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create subject",
				"error", result.Error,
				"name", subject.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating subject in DB",
			"error", result.Error,
			"name", subject.Name,
		)
		return fmt.Errorf("gormSubjectRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSubjectRepository) FindByID(ctx context.Context, db *gorm.DB, subjectID uuid.UUID) (*model.Subject, error) {
	logger := middleware.GetLogger(ctx)
	var subject model.Subject
	result := db.WithContext(ctx).Where("subject_id = ?", subjectID).First(&subject)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding subject by ID in DB",
			"error", result.Error,
			"subject_id", subjectID.String(),
		)
		return nil, fmt.Errorf("gormSubjectRepository.FindByID: %w", result.Error)
	}
	return &subject, nil
}

func (r *gormSubjectRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Subject, error) {
	logger := middleware.GetLogger(ctx)
	var subjects []*model.Subject
	result := db.WithContext(ctx).Order("order_index ASC, created_at ASC").Find(&subjects)
	if result.Error != nil {
		logger.Error("Error finding subjects in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSubjectRepository.FindAll: %w", result.Error)
	}
	return subjects, nil
}

// TopicRepository インターフェース
type TopicRepository interface {
	Create(ctx context.Context, tx *gorm.DB, topic *model.Topic) error
	FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error)
	FindBySubject(ctx context.Context, db *gorm.DB, subjectID uuid.UUID) ([]*model.Topic, error)
	SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string, limit int) ([]*model.Topic, error)
	// UpdateParent はトピックの親を付け替える。parentTopicIDがnilなら最上位に戻す。
	UpdateParent(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, parentTopicID *uuid.UUID) error
}

type gormTopicRepository struct{}

func NewGormTopicRepository() TopicRepository {
	return &gormTopicRepository{}
}

func (r *gormTopicRepository) Create(ctx context.Context, tx *gorm.DB, topic *model.Topic) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(topic)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create topic",
				"error", result.Error,
				"title", topic.Title,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating topic in DB",
			"error", result.Error,
			"title", topic.Title,
		)
		return fmt.Errorf("gormTopicRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTopicRepository) FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topic model.Topic
	result := db.WithContext(ctx).Where("topic_id = ?", topicID).First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding topic by ID in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return nil, fmt.Errorf("gormTopicRepository.FindByID: %w", result.Error)
	}
	return &topic, nil
}

func (r *gormTopicRepository) FindBySubject(ctx context.Context, db *gorm.DB, subjectID uuid.UUID) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topics []*model.Topic
	result := db.WithContext(ctx).Where("subject_id = ?", subjectID).Order("order_index ASC, created_at ASC").Find(&topics)
	if result.Error != nil {
		logger.Error("Error finding topics by subject in DB",
			"error", result.Error,
			"subject_id", subjectID.String(),
		)
		return nil, fmt.Errorf("gormTopicRepository.FindBySubject: %w", result.Error)
	}
	return topics, nil
}

func (r *gormTopicRepository) UpdateParent(ctx context.Context, tx *gorm.DB, topicID uuid.UUID, parentTopicID *uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Topic{}).
		Where("topic_id = ?", topicID).
		Update("parent_topic_id", parentTopicID)
	if result.Error != nil {
		logger.Error("Error updating topic parent in DB",
			"error", result.Error,
			"topic_id", topicID.String(),
		)
		return fmt.Errorf("gormTopicRepository.UpdateParent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTopicRepository) SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string, limit int) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topics []*model.Topic
	// LOWER + LIKE はPostgreSQLとSQLiteの両方で動作する
	pattern := "%" + keyword + "%"
	result := db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Limit(limit).
		Find(&topics)
	if result.Error != nil {
		logger.Error("Error searching topics in DB",
			"error", result.Error,
			"keyword", keyword,
		)
		return nil, fmt.Errorf("gormTopicRepository.SearchByKeyword: %w", result.Error)
	}
	return topics, nil
}
