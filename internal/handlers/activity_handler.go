// internal/handlers/activity_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type ActivityHandler struct {
	service service.ActivityService
	logger  *slog.Logger
}

func NewActivityHandler(s service.ActivityService, logger *slog.Logger) *ActivityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityHandler{
		service: s,
		logger:  logger,
	}
}

// GetActivity はユーザーのアクティビティ履歴を取得するハンドラ
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetActivity"))

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

	activities, err := h.service.ListUserActivity(r.Context(), userID, limit)
	if err != nil {
		logger.Error("Error listing activity in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if activities == nil {
		activities = []*model.UserActivity{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, activities, logger)
}
