// internal/handlers/user_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// GetMe は認証済みユーザー自身の情報を取得するハンドラ
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("User not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting user from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user.ToResponse(), logger)
}

// UpsertMe はプロフィールの作成・更新を行うハンドラ
func (h *UserHandler) UpsertMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpsertMe"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.UpsertUserRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.UpsertUser(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error upserting user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User upserted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, user.ToResponse(), logger)
}

// AddStudyMinutes は累計学習時間を加算するハンドラ
func (h *UserHandler) AddStudyMinutes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddStudyMinutes"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.AccumulateStudyMinutesRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.AccumulateStudyMinutes(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error accumulating study minutes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Study minutes accumulated successfully", slog.Int("minutes", req.Minutes))
	webutil.RespondWithJSON(w, http.StatusOK, user.ToResponse(), logger)
}
