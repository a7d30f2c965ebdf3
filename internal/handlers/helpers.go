// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"exam_prep_keep/internal/middleware"
	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// getUserID はコンテキストから認証済みユーザーIDを取り出します。
// 失敗時はエラーレスポンスを書き込み、falseを返します。
func getUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return userID, true
}

// decodeAndValidate はリクエストボディのデコードとバリデーションをまとめて行います。
// 失敗時はエラーレスポンスを書き込み、falseを返します。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)

			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return false
	}
	return true
}

// parsePagingParam はクエリパラメータを非負の整数として取り出します。
// 未指定なら0を返し、失敗時はエラーレスポンスを書き込みfalseを返します。
func parsePagingParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (int, bool) {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return 0, true
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		logger.Warn("Invalid paging query format", slog.String("param", name), slog.String("value", valueStr))
		appErr := model.NewAppError("INVALID_QUERY_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return 0, false
	}
	return value, true
}

// parseUUIDParam はURLパスパラメータをUUIDとして取り出します。
// 失敗時はエラーレスポンスを書き込み、falseを返します。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, name)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String("param", name), slog.String("value", idStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
