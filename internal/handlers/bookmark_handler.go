// internal/handlers/bookmark_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type BookmarkHandler struct {
	service service.BookmarkService
	logger  *slog.Logger
}

func NewBookmarkHandler(s service.BookmarkService, logger *slog.Logger) *BookmarkHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookmarkHandler{
		service: s,
		logger:  logger,
	}
}

// GetBookmarks はユーザーのブックマーク一覧を取得するハンドラ
func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBookmarks"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	bookmarks, err := h.service.ListBookmarks(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing bookmarks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if bookmarks == nil {
		bookmarks = []*model.Bookmark{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, bookmarks, logger)
}

// PostBookmark はブックマークを作成するハンドラ。既に存在する場合も200で既存の行を返す。
func (h *BookmarkHandler) PostBookmark(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostBookmark"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateBookmarkRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	bookmark, err := h.service.CreateBookmark(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating bookmark in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark created", slog.String("bookmark_id", bookmark.BookmarkID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, bookmark, logger)
}

// DeleteBookmark はブックマークを削除するハンドラ (冪等)
func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteBookmark"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	resourceType := model.ResourceType(chi.URLParam(r, "resource_type"))
	resourceID, ok := parseUUIDParam(w, r, logger, "resource_id")
	if !ok {
		return
	}

	if err := h.service.RemoveBookmark(r.Context(), userID, resourceType, resourceID); err != nil {
		logger.Error("Error removing bookmark in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark removed (or was already absent)")
	w.WriteHeader(http.StatusNoContent)
}

// GetBookmarkCheck はブックマーク済みかどうかを確認するハンドラ
func (h *BookmarkHandler) GetBookmarkCheck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBookmarkCheck"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	resourceType := model.ResourceType(chi.URLParam(r, "resource_type"))
	resourceID, ok := parseUUIDParam(w, r, logger, "resource_id")
	if !ok {
		return
	}

	exists, err := h.service.IsBookmarked(r.Context(), userID, resourceType, resourceID)
	if err != nil {
		logger.Error("Error checking bookmark in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.BookmarkCheckResponse{IsBookmarked: exists}, logger)
}
