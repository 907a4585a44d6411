package handlers

import (
	"net/http"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/service"
	"go_ear_training/internal/webutil"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: s}
}

// GetWeeklyProgress は直近7日間の日別正答率と問題数を返します
func (h *AnalyticsHandler) GetWeeklyProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entries, err := h.service.GetWeeklyProgress(r.Context(), userID)
	if err != nil {
		logger.Error("Failed to get weekly progress", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entries)
}

// GetProgressByCategory は種目×難易度ごとの正答率テーブルを返します
func (h *AnalyticsHandler) GetProgressByCategory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	categories, err := h.service.GetProgressByCategory(r.Context(), userID)
	if err != nil {
		logger.Error("Failed to get category progress", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, categories)
}

// GetUserStats はユーザーの総合統計 (正答率・連続日数・レベルなど) を返します
func (h *AnalyticsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		logger.Error("Failed to get user stats", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
