// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetProgress はユーザーの全トピック進捗を取得するハンドラ
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	progresses, err := h.service.GetUserProgress(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if progresses == nil {
		progresses = []*model.UserProgress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progresses, logger)
}

// GetTopicProgress は特定トピックの進捗を取得するハンドラ
func (h *ProgressHandler) GetTopicProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopicProgress"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topicID, ok := parseUUIDParam(w, r, logger, "topic_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	progress, err := h.service.GetTopicProgress(r.Context(), userID, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Progress not found in service")
		} else {
			logger.Error("Error getting topic progress from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// PutTopicProgress はトピック進捗の作成・更新を行うハンドラ
func (h *ProgressHandler) PutTopicProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTopicProgress"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topicID, ok := parseUUIDParam(w, r, logger, "topic_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	var req model.StudySessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	progress, err := h.service.UpsertTopicProgress(r.Context(), userID, topicID, &req)
	if err != nil {
		logger.Error("Error upserting topic progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Topic progress upserted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// PostStudySession は学習セッションを記録するハンドラ。
// トピック進捗の更新とユーザー累計学習時間の加算をまとめて行う。
func (h *ProgressHandler) PostStudySession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostStudySession"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topicID, ok := parseUUIDParam(w, r, logger, "topic_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	var req model.StudySessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	progress, err := h.service.RecordStudySession(r.Context(), userID, topicID, &req)
	if err != nil {
		logger.Error("Error recording study session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Study session recorded successfully",
		slog.Int("time_spent", req.TimeSpent),
		slog.Float64("completion_percentage", req.CompletionPercentage),
	)
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
