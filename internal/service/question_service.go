// internal/service/question_service.go
package service

import (
	"context"
	"errors"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionService interface {
	// ListQuestionsByTopic はトピック配下の問題を返します。difficultyが空なら全難易度。
	ListQuestionsByTopic(ctx context.Context, topicID uuid.UUID, difficulty model.Difficulty) ([]*model.Question, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error)
	GetRandomQuestions(ctx context.Context, req *model.RandomQuestionsRequest) ([]*model.Question, error)
	CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error)
}

type questionService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	topicRepo    repository.TopicRepository
	cfg          *config.Config
}

func NewQuestionService(db *gorm.DB, questionRepo repository.QuestionRepository, topicRepo repository.TopicRepository, cfg *config.Config) QuestionService {
	return &questionService{
		db:           db,
		questionRepo: questionRepo,
		topicRepo:    topicRepo,
		cfg:          cfg,
	}
}

func (s *questionService) ListQuestionsByTopic(ctx context.Context, topicID uuid.UUID, difficulty model.Difficulty) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if difficulty != "" && !difficulty.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の指定が不正です。", "difficulty", model.ErrInvalidInput)
	}

	if _, err := s.topicRepo.FindByID(ctx, s.db, topicID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "", model.ErrNotFound)
		}
		return nil, err
	}

	questions, err := s.questionRepo.FindByTopic(ctx, s.db, topicID, difficulty)
	if err != nil {
		logger.Error("Error listing questions by topic", "error", err)
		return nil, model.ErrInternalServer
	}
	return questions, nil
}

func (s *questionService) GetQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, s.db, questionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("QUESTION_NOT_FOUND", "問題が見つかりません。", "", model.ErrNotFound)
		}
		return nil, err
	}
	return question, nil
}

// GetRandomQuestions は指定トピック群からランダムに問題を取得します。
// 該当件数がlimitに満たない場合は、あるだけ返します。
func (s *questionService) GetRandomQuestions(ctx context.Context, req *model.RandomQuestionsRequest) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if len(req.TopicIDs) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "トピックを1つ以上指定してください。", "topic_ids", model.ErrInvalidInput)
	}
	if !req.Difficulty.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の指定が不正です。", "difficulty", model.ErrInvalidInput)
	}
	limit := req.Limit
	if limit <= 0 || limit > s.cfg.App.RandomQuizMax {
		return nil, model.NewAppError("VALIDATION_ERROR", "取得件数の指定が不正です。", "limit", model.ErrInvalidInput)
	}

	questions, err := s.questionRepo.FindRandom(ctx, s.db, req.TopicIDs, req.Difficulty, limit)
	if err != nil {
		logger.Error("Error finding random questions", "error", err)
		return nil, model.ErrInternalServer
	}
	return questions, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if !req.Difficulty.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の指定が不正です。", "difficulty", model.ErrInvalidInput)
	}
	// 正解インデックスは選択肢の範囲内であること
	if req.CorrectOptionIndex < 0 || req.CorrectOptionIndex >= len(req.Options) {
		return nil, model.NewAppError("VALIDATION_ERROR", "正解の選択肢番号が選択肢の範囲外です。", "correct_option_index", model.ErrInvalidInput)
	}

	question := &model.Question{
		QuestionID:           uuid.New(),
		TopicID:              req.TopicID,
		Question:             req.Question,
		Options:              model.StringSlice(req.Options),
		CorrectOptionIndex:   req.CorrectOptionIndex,
		Explanation:          req.Explanation,
		Difficulty:           req.Difficulty,
		IsFromCurrentAffairs: req.IsFromCurrentAffairs,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.topicRepo.FindByID(ctx, tx, req.TopicID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TOPIC_NOT_FOUND", "トピックが見つかりません。", "topic_id", model.ErrInvalidInput)
			}
			return model.ErrInternalServer
		}

		if err := s.questionRepo.Create(ctx, tx, question); err != nil {
			logger.Error("Error creating question", "error", err)
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

	return question, nil
}
