// internal/handlers/question_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type QuestionHandler struct {
	service service.QuestionService
	logger  *slog.Logger
}

func NewQuestionHandler(s service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		service: s,
		logger:  logger,
	}
}

// GetQuestionsByTopic はトピック配下の問題一覧を取得するハンドラ
func (h *QuestionHandler) GetQuestionsByTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestionsByTopic"))

	topicID, ok := parseUUIDParam(w, r, logger, "topic_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	// 任意の難易度フィルタ
	difficulty := model.Difficulty(r.URL.Query().Get("difficulty"))

	questions, err := h.service.ListQuestionsByTopic(r.Context(), topicID, difficulty)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Topic not found in service")
		} else {
			logger.Error("Error listing questions in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.Question{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// GetQuestion は特定の問題を取得するハンドラ
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestion"))

	questionID, ok := parseUUIDParam(w, r, logger, "question_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	question, err := h.service.GetQuestion(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Question not found in service")
		} else {
			logger.Error("Error getting question from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

// PostRandomQuestions はランダム出題のハンドラ
func (h *QuestionHandler) PostRandomQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostRandomQuestions"))

	var req model.RandomQuestionsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	questions, err := h.service.GetRandomQuestions(r.Context(), &req)
	if err != nil {
		logger.Error("Error getting random questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.Question{}
	}
	logger.Info("Random questions retrieved", slog.Int("count", len(questions)))
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// PostQuestion は新しい問題を作成するハンドラ
func (h *QuestionHandler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuestion"))

	var req model.CreateQuestionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	question, err := h.service.CreateQuestion(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question created successfully", slog.String("question_id", question.QuestionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, question, logger)
}
