package handlers

import (
	"net/http"

	"github.com/avc/hosting-storefront/internal/domain"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analytics domain.AnalyticsService
	logger    *zap.Logger
}

func NewAnalyticsHandler(analytics domain.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Dashboard(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to load dashboard")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, stats)
}
