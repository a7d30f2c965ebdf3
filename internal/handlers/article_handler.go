// internal/handlers/article_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type ArticleHandler struct {
	service service.ArticleService
	logger  *slog.Logger
}

func NewArticleHandler(s service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		service: s,
		logger:  logger,
	}
}

// GetArticles は記事一覧を取得するハンドラ
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticles"))

	limit, ok := parsePagingParam(w, r, logger, "limit")
	if !ok {
		return
	}
	offset, ok := parsePagingParam(w, r, logger, "offset")
	if !ok {
		return
	}

	articles, err := h.service.ListArticles(r.Context(), limit, offset)
	if err != nil {
		logger.Error("Error listing articles in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if articles == nil {
		articles = []*model.Article{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, articles, logger)
}

// GetFeaturedArticles は注目記事の一覧を取得するハンドラ
func (h *ArticleHandler) GetFeaturedArticles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFeaturedArticles"))

	articles, err := h.service.ListFeaturedArticles(r.Context())
	if err != nil {
		logger.Error("Error listing featured articles in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if articles == nil {
		articles = []*model.Article{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, articles, logger)
}

// GetArticlesByTopic はトピックに紐付く記事一覧を取得するハンドラ
func (h *ArticleHandler) GetArticlesByTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticlesByTopic"))

	topicID, ok := parseUUIDParam(w, r, logger, "topic_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	articles, err := h.service.ListArticlesByTopic(r.Context(), topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Topic not found in service")
		} else {
			logger.Error("Error listing articles by topic in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if articles == nil {
		articles = []*model.Article{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, articles, logger)
}

// GetArticle は特定の記事を取得するハンドラ
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticle"))

	articleID, ok := parseUUIDParam(w, r, logger, "article_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("article_id", articleID.String()))

	article, err := h.service.GetArticle(r.Context(), articleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Article not found in service")
		} else {
			logger.Error("Error getting article from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, article, logger)
}

// PostArticle は新しい記事を作成するハンドラ
func (h *ArticleHandler) PostArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostArticle"))

	var req model.CreateArticleRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	article, err := h.service.CreateArticle(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating article in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Article created successfully", slog.String("article_id", article.ArticleID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, article, logger)
}
