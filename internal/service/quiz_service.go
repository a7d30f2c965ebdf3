// internal/service/quiz_service.go
package service

import (
	"context"
	"time"

	"exam_prep_keep/internal/config"
	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	CreateQuizAttempt(ctx context.Context, userID uuid.UUID, req *model.CreateQuizAttemptRequest) (*model.QuizAttempt, error)
	ListQuizAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error)
}

type quizService struct {
	db           *gorm.DB
	quizRepo     repository.QuizRepository
	activityRepo repository.ActivityRepository
	cfg          *config.Config
}

func NewQuizService(db *gorm.DB, quizRepo repository.QuizRepository, activityRepo repository.ActivityRepository, cfg *config.Config) QuizService {
	return &quizService{
		db:           db,
		quizRepo:     quizRepo,
		activityRepo: activityRepo,
		cfg:          cfg,
	}
}

func (s *quizService) CreateQuizAttempt(ctx context.Context, userID uuid.UUID, req *model.CreateQuizAttemptRequest) (*model.QuizAttempt, error) {
	logger := middleware.GetLogger(ctx)

	// QuestionIDs と Answers は並行配列なので長さが一致していること
	if len(req.QuestionIDs) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "問題IDを1つ以上指定してください。", "question_ids", model.ErrInvalidInput)
	}
	if len(req.QuestionIDs) != len(req.Answers) {
		return nil, model.NewAppError("VALIDATION_ERROR", "問題数と回答数が一致していません。", "answers", model.ErrInvalidInput)
	}
	if !req.Difficulty.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の指定が不正です。", "difficulty", model.ErrInvalidInput)
	}
	if req.Score < 0 || req.Score > req.TotalQuestions {
		return nil, model.NewAppError("VALIDATION_ERROR", "スコアの値が不正です。", "score", model.ErrInvalidInput)
	}

	attempt := &model.QuizAttempt{
		AttemptID:      uuid.New(),
		UserID:         userID,
		QuestionIDs:    model.StringSlice(req.QuestionIDs),
		Answers:        model.IntSlice(req.Answers),
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Difficulty:     req.Difficulty,
		SubjectIDs:     model.StringSlice(req.SubjectIDs),
		CompletedAt:    time.Now(),
	}

	if err := s.quizRepo.Create(ctx, s.db, attempt); err != nil {
		logger.Error("Error creating quiz attempt", "error", err)
		return nil, model.ErrInternalServer
	}

	// アクティビティ記録はベストエフォート
	activity := &model.UserActivity{
		ActivityID:   uuid.New(),
		UserID:       userID,
		ActivityType: model.ActivityQuizCompleted,
		ResourceType: model.ResourceQuiz,
		ResourceID:   &attempt.AttemptID,
		Metadata: model.JSONMap{
			"score":           req.Score,
			"total_questions": req.TotalQuestions,
			"difficulty":      string(req.Difficulty),
		},
	}
	if err := s.activityRepo.Create(ctx, s.db, activity); err != nil {
		logger.Warn("Failed to record quiz activity", "error", err)
	}

	return attempt, nil
}

func (s *quizService) ListQuizAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.QuizAttempt, error) {
	logger := middleware.GetLogger(ctx)

	if limit <= 0 {
		limit = s.cfg.App.PageLimit
	}

	attempts, err := s.quizRepo.FindByUser(ctx, s.db, userID, limit)
	if err != nil {
		logger.Error("Error listing quiz attempts", "error", err)
		return nil, model.ErrInternalServer
	}
	return attempts, nil
}
