// internal/handlers/search_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type SearchHandler struct {
	service service.SearchService
	logger  *slog.Logger
}

func NewSearchHandler(s service.SearchService, logger *slog.Logger) *SearchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchHandler{
		service: s,
		logger:  logger,
	}
}

// GetSearch はコンテンツ横断検索のハンドラ
func (h *SearchHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSearch"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	query := r.URL.Query().Get("q")

	result, err := h.service.SearchContent(r.Context(), userID, query)
	if err != nil {
		logger.Warn("Error searching content in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Search completed",
		slog.Int("topics", len(result.Topics)),
		slog.Int("articles", len(result.Articles)),
		slog.Int("questions", len(result.Questions)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
