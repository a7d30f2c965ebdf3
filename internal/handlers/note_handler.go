// internal/handlers/note_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"

	"github.com/google/uuid"
)

type NoteHandler struct {
	service service.NoteService
	logger  *slog.Logger
}

func NewNoteHandler(s service.NoteService, logger *slog.Logger) *NoteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteHandler{
		service: s,
		logger:  logger,
	}
}

// GetNotes はノート一覧を取得するハンドラ。
// resource_type と resource_id のクエリを両方指定すると、そのリソースのノートに絞り込む。
func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetNotes"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	resourceTypeStr := r.URL.Query().Get("resource_type")
	resourceIDStr := r.URL.Query().Get("resource_id")

	var notes []*model.Note
	var err error
	if resourceTypeStr != "" && resourceIDStr != "" {
		resourceID, parseErr := uuid.Parse(resourceIDStr)
		if parseErr != nil {
			logger.Warn("Invalid resource_id query format", slog.String("value", resourceIDStr))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "resource_idの形式が正しくありません。", "resource_id", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		notes, err = h.service.ListNotesByResource(r.Context(), userID, model.ResourceType(resourceTypeStr), resourceID)
	} else {
		notes, err = h.service.ListNotes(r.Context(), userID)
	}
	if err != nil {
		logger.Error("Error listing notes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if notes == nil {
		notes = []*model.Note{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, notes, logger)
}

// PostNote は新しいノートを作成するハンドラ
func (h *NoteHandler) PostNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostNote"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateNoteRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	note, err := h.service.CreateNote(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Note created successfully", slog.String("note_id", note.NoteID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, note, logger)
}

// PutNote はノートを更新するハンドラ
func (h *NoteHandler) PutNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutNote"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	noteID, ok := parseUUIDParam(w, r, logger, "note_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("note_id", noteID.String()))

	var req model.UpdateNoteRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	note, err := h.service.UpdateNote(r.Context(), userID, noteID, &req)
	if err != nil {
		logger.Error("Error updating note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Note updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, note, logger)
}

// DeleteNote はノートを削除するハンドラ
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteNote"))

	userID, ok := getUserID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	noteID, ok := parseUUIDParam(w, r, logger, "note_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("note_id", noteID.String()))

	if err := h.service.DeleteNote(r.Context(), userID, noteID); err != nil {
		logger.Error("Error deleting note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Note deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
