// internal/service/syllabus_service.go
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

type SyllabusService interface {
	ListSubjects(ctx context.Context) ([]*model.Subject, error)
	GetSubject(ctx context.Context, subjectID uuid.UUID) (*model.Subject, error)
	CreateSubject(ctx context.Context, req *model.CreateSubjectRequest) (*model.Subject, error)
	ListTopicsBySubject(ctx context.Context, subjectID uuid.UUID) ([]*model.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error)
	CreateTopic(ctx context.Context, req *model.CreateTopicRequest) (*model.Topic, error)
	UpdateTopicParent(ctx context.Context, topicID uuid.UUID, req *model.UpdateTopicParentRequest) (*model.Topic, error)
}

type syllabusService struct {
	db          *gorm.DB
	subjectRepo repository.SubjectRepository
	topicRepo   repository.TopicRepository
}

func NewSyllabusService(db *gorm.DB, subjectRepo repository.SubjectRepository, topicRepo repository.TopicRepository) SyllabusService {
	return &syllabusService{
		db:          db,
		subjectRepo: subjectRepo,
		topicRepo:   topicRepo,
	}
}

func (s *syllabusService) ListSubjects(ctx context.Context) ([]*model.Subject, error) {
	logger := middleware.GetLogger(ctx)
	subjects, err := s.subjectRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing subjects", "error", err)
		return nil, model.ErrInternalServer
	}
	return subjects, nil
}

func (s *syllabusService) GetSubject(ctx context.Context, subjectID uuid.UUID) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindByID(ctx, s.db, subjectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SUBJECT_NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)
		}
		return nil, err
	}
	return subject, nil
}

func (s *syllabusService) CreateSubject(ctx context.Context, req *model.CreateSubjectRequest) (*model.Subject, error) {
	logger := middleware.GetLogger(ctx)

	subject := &model.Subject{
		SubjectID:   uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		OrderIndex:  req.OrderIndex,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.subjectRepo.Create(ctx, tx, subject); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrConflict
			}
			logger.Error("Error creating subject", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		return nil, model.ErrInternalServer
	}

	return subject, nil
}

func (s *syllabusService) ListTopicsBySubject(ctx context.Context, subjectID uuid.UUID) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	// 科目の存在確認
	if _, err := s.subjectRepo.FindByID(ctx, s.db, subjectID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SUBJECT_NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)
		}
		return nil, err
	}

	topics, err := s.topicRepo.FindBySubject(ctx, s.db, subjectID)
	if err != nil {
		logger.Error("Error listing topics by subject", "error", err)
		return nil, model.ErrInternalServer
	}
	return topics, nil
}

func (s *syllabusService) GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error) {
	topic, err := s.topicRepo.FindByID(ctx, s.db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "", model.ErrNotFound)
		}
		return nil, err
	}
	return topic, nil
}

func (s *syllabusService) CreateTopic(ctx context.Context, req *model.CreateTopicRequest) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	if !req.Difficulty.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の指定が不正です。", "difficulty", model.ErrInvalidInput)
	}

	topic := &model.Topic{
		TopicID:           uuid.New(),
		SubjectID:         req.SubjectID,
		ParentTopicID:     req.ParentTopicID,
		Title:             req.Title,
		Description:       req.Description,
		Content:           req.Content,
		OrderIndex:        req.OrderIndex,
		EstimatedReadTime: req.EstimatedReadTime,
		Difficulty:        req.Difficulty,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 科目の存在確認
		if _, err := s.subjectRepo.FindByID(ctx, tx, req.SubjectID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SUBJECT_NOT_FOUND", "科目が見つかりません。", "subject_id", model.ErrInvalidInput)
			}
			return model.ErrInternalServer
		}

		// 親トピックの検証 (存在・同一科目・循環なし)
		if req.ParentTopicID != nil {
			if err := s.validateParentChain(ctx, tx, topic.TopicID, *req.ParentTopicID, req.SubjectID); err != nil {
				return err
			}
		}

		if err := s.topicRepo.Create(ctx, tx, topic); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.ErrConflict
			}
			logger.Error("Error creating topic", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		return nil, model.ErrInternalServer
	}

	return topic, nil
}

func (s *syllabusService) UpdateTopicParent(ctx context.Context, topicID uuid.UUID, req *model.UpdateTopicParentRequest) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topic, err := s.topicRepo.FindByID(ctx, tx, topicID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "", model.ErrNotFound)
			}
			return model.ErrInternalServer
		}

		// 新しい親の検証 (存在・同一科目・循環なし)。nilなら最上位化なので検証不要
		if req.ParentTopicID != nil {
			if err := s.validateParentChain(ctx, tx, topicID, *req.ParentTopicID, topic.SubjectID); err != nil {
				return err
			}
		}

		if err := s.topicRepo.UpdateParent(ctx, tx, topicID, req.ParentTopicID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error updating topic parent", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, model.ErrInternalServer
	}

	return s.GetTopic(ctx, topicID)
}

// validateParentChain は親トピックの連鎖をたどり、自己参照や循環がないことを確認します。
func (s *syllabusService) validateParentChain(ctx context.Context, tx *gorm.DB, newTopicID, parentID uuid.UUID, subjectID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	visited := map[uuid.UUID]bool{newTopicID: true}
	currentID := parentID

	for {
		if visited[currentID] {
			logger.Warn("Cycle detected in topic parent chain", "topic_id", currentID.String())
			return model.NewAppError("INVALID_PARENT", "親トピックの指定が循環しています。", "parent_topic_id", model.ErrInvalidInput)
		}
		visited[currentID] = true

		parent, err := s.topicRepo.FindByID(ctx, tx, currentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PARENT_NOT_FOUND", "親トピックが見つかりません。", "parent_topic_id", model.ErrInvalidInput)
			}
			return model.ErrInternalServer
		}
		if parent.SubjectID != subjectID {
			return model.NewAppError("INVALID_PARENT", "親トピックは同じ科目に属している必要があります。", "parent_topic_id", model.ErrInvalidInput)
		}

		if parent.ParentTopicID == nil {
			return nil
		}
		currentID = *parent.ParentTopicID
	}
}
