// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// Register は新規ユーザー登録のハンドラ
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Error registering user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "登録が完了しました。確認メールをご確認ください。",
	}, logger)
}

// VerifyEmail はメールアドレス確認のハンドラ
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "VerifyEmail"))

	var req model.VerifyEmailRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.VerifyAccount(r.Context(), req.Token); err != nil {
		logger.Warn("Error verifying account in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Account verified successfully")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "アカウントが有効化されました。",
	}, logger)
}

// Login はログインのハンドラ
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	loginResponse, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Login failed in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login successful")
	webutil.RespondWithJSON(w, http.StatusOK, loginResponse, logger)
}

// RequestPasswordReset はパスワード再設定メールの送信ハンドラ
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RequestPasswordReset"))

	var req model.RequestPasswordResetRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		logger.Error("Error requesting password reset in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	// ユーザーの存在有無にかかわらず同じレスポンスを返す
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "パスワード再設定用のメールを送信しました。メールをご確認ください。",
	}, logger)
}

// ResetPassword はトークンによるパスワード再設定のハンドラ
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetPassword"))

	var req model.ResetPasswordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		logger.Warn("Error resetting password in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Password reset successfully")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "パスワードを再設定しました。",
	}, logger)
}
