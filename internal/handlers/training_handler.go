package handlers

import (
	"errors"
	"net/http"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	"go_ear_training/internal/service"
	"go_ear_training/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TrainingHandler struct {
	service service.TrainingService
}

func NewTrainingHandler(s service.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: s}
}

// ListExercises は演習カタログ (種目×難易度と出題数) を返します
func (h *TrainingHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, h.service.ListExercises(r.Context()))
}

// StartSession は新しいトレーニングセッションを開始します
func (h *TrainingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.StartSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode start-session body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.StartSession(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

// RecordAnswer はセッション内の1問の回答結果を記録します
func (h *TrainingHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	sessionID, err := parseSessionID(r)
	if err != nil {
		logger.Warn("Invalid session ID in URL", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RecordAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode record-answer body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.RecordAnswer(r.Context(), userID, sessionID, *req.IsCorrect)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// CompleteSession はセッションを終了し、集計結果を進捗に反映します
func (h *TrainingHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	sessionID, err := parseSessionID(r)
	if err != nil {
		logger.Warn("Invalid session ID in URL", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CompleteSession(r.Context(), userID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Training session completed", "session_id", sessionID.String())
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func parseSessionID(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "session_id")
	sessionID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_SESSION_ID", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
	}
	return sessionID, nil
}
