package handlers

import (
	"errors"
	"net/http"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	"go_ear_training/internal/service"
	"go_ear_training/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type SongHandler struct {
	service service.SongService
}

func NewSongHandler(s service.SongService) *SongHandler {
	return &SongHandler{service: s}
}

// AnalyzeSong は楽曲URLを受け取り、コード進行の解析結果を保存して返します
func (h *SongHandler) AnalyzeSong(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.AnalyzeSongRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode analyze-song body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for analyze-song", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.AnalyzeSong(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

// ListAnalyses は自分の楽曲解析履歴を新しい順に返します
func (h *SongHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	analyses, err := h.service.ListAnalyses(r.Context(), userID)
	if err != nil {
		logger.Error("Failed to list song analyses", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, analyses)
}
