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

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// SubmitResult はセッション完了時の演習結果を記録し、進捗サマリーを更新します
func (h *ProgressHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitResultRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode result submission body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for result submission", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	attempt, err := h.service.SubmitExerciseResult(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// attemptがnilの場合は no-op (0問セッション) または記録済みセッション。
	// どちらもクライアントにとっては成功として扱う。
	resp := map[string]interface{}{
		"message": "演習結果を記録しました。",
	}
	if attempt != nil {
		resp["attempt_id"] = attempt.AttemptID
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
