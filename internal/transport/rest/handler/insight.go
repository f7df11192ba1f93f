package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"memorycompanion/internal/metrics"
	"memorycompanion/internal/service"
	"memorycompanion/internal/transport/rest/middleware"
)

// InsightHandler handles insight endpoints
type InsightHandler struct {
	insightSvc *service.InsightService
	logger     *zap.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightSvc *service.InsightService, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc, logger: logger}
}

// Get handles GET /v1/insights
// @Summary Personal insights
// @Description Streaks, core values, category tone and reflection patterns for the caller
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.InsightsResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /insights [get]
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		metrics.InsightRequests.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.insightSvc.GenerateForIdentity(r.Context(), identity)
	if err != nil {
		var upstream *service.UpstreamError
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			metrics.InsightRequests.WithLabelValues(metrics.OutcomeNotFound).Inc()
			writeError(w, http.StatusNotFound, "User profile not found")
		case errors.As(err, &upstream):
			metrics.InsightRequests.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
			h.logger.Error("insight generation failed",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.String("op", upstream.Op),
				zap.Error(upstream.Err),
			)
			writeErrorDetail(w, http.StatusInternalServerError, "Failed to generate insights", upstream.Err.Error())
		default:
			metrics.InsightRequests.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
			h.logger.Error("insight generation failed", zap.Error(err))
			writeErrorDetail(w, http.StatusInternalServerError, "Internal server error", err.Error())
		}
		return
	}

	if resp.TotalReflections == 0 {
		metrics.InsightRequests.WithLabelValues(metrics.OutcomeEmpty).Inc()
	} else {
		metrics.InsightRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	}
	writeJSON(w, http.StatusOK, resp)
}
