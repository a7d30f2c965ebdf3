// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// PostQuizAttempt は模擬試験の結果を登録するハンドラ
func (h *QuizHandler) PostQuizAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuizAttempt"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateQuizAttemptRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	attempt, err := h.service.CreateQuizAttempt(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating quiz attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz attempt created successfully",
		slog.String("attempt_id", attempt.AttemptID.String()),
		slog.Int("score", attempt.Score),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, attempt, logger)
}

// GetQuizAttempts はユーザーの模擬試験履歴を取得するハンドラ
func (h *QuizHandler) GetQuizAttempts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuizAttempts"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			logger.Warn("Invalid limit query format", slog.String("value", limitStr))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limitの形式が正しくありません。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = parsed
	}

	attempts, err := h.service.ListQuizAttempts(r.Context(), userID, limit)
	if err != nil {
		logger.Error("Error listing quiz attempts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if attempts == nil {
		attempts = []*model.QuizAttempt{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, attempts, logger)
}
