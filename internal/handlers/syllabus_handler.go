// internal/handlers/syllabus_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"exam_prep_keep/internal/model"
	"exam_prep_keep/internal/service"
	"exam_prep_keep/internal/webutil"
)

type SyllabusHandler struct {
	service service.SyllabusService
	logger  *slog.Logger
}

func NewSyllabusHandler(s service.SyllabusService, logger *slog.Logger) *SyllabusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyllabusHandler{
		service: s,
		logger:  logger,
	}
}

// GetSubjects は科目一覧を取得するハンドラ
func (h *SyllabusHandler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSubjects"))

	subjects, err := h.service.ListSubjects(r.Context())
	if err != nil {
		logger.Error("Error listing subjects in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if subjects == nil {
		subjects = []*model.Subject{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, subjects, logger)
}

// GetSubject は特定の科目を取得するハンドラ
func (h *SyllabusHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSubject"))

	subjectID, ok := parseUUIDParam(w, r, logger, "subject_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("subject_id", subjectID.String()))

	subject, err := h.service.GetSubject(r.Context(), subjectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Subject not found in service")
		} else {
			logger.Error("Error getting subject from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, subject, logger)
}

// PostSubject は新しい科目を作成するハンドラ
func (h *SyllabusHandler) PostSubject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSubject"))

	var req model.CreateSubjectRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	subject, err := h.service.CreateSubject(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating subject in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Subject created successfully", slog.String("subject_id", subject.SubjectID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, subject, logger)
}

// GetTopicsBySubject は科目配下のトピック一覧を取得するハンドラ
func (h *SyllabusHandler) GetTopicsBySubject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopicsBySubject"))

	subjectID, ok := parseUUIDParam(w, r, logger, "subject_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("subject_id", subjectID.String()))

	topics, err := h.service.ListTopicsBySubject(r.Context(), subjectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Subject not found in service")
		} else {
			logger.Error("Error listing topics in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if topics == nil {
		topics = []*model.Topic{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// GetTopic は特定のトピックを取得するハンドラ
func (h *SyllabusHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopic"))

	topicID, ok := parseUUIDParam(w, r, logger, "topic_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	topic, err := h.service.GetTopic(r.Context(), topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Topic not found in service")
		} else {
			logger.Error("Error getting topic from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}

// PostTopic は新しいトピックを作成するハンドラ
func (h *SyllabusHandler) PostTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTopic"))

	var req model.CreateTopicRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	topic, err := h.service.CreateTopic(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating topic in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Topic created successfully", slog.String("topic_id", topic.TopicID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, topic, logger)
}

// PutTopicParent はトピックの親を付け替えるハンドラ
func (h *SyllabusHandler) PutTopicParent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTopicParent"))

	topicID, ok := parseUUIDParam(w, r, logger, "topic_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	var req model.UpdateTopicParentRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	topic, err := h.service.UpdateTopicParent(r.Context(), topicID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Topic not found in service")
		} else {
			logger.Error("Error updating topic parent in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Topic parent updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}
