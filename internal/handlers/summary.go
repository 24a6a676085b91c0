package handlers

import (
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/services"
)

type SummaryHandler struct {
	log        *logger.Logger
	summarySvc services.SummaryService
}

func NewSummaryHandler(log *logger.Logger, summarySvc services.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		log:        log.With("handler", "SummaryHandler"),
		summarySvc: summarySvc,
	}
}

// POST /api/generate-weekly-summary
func (h *SummaryHandler) GenerateWeeklySummary(c *gin.Context) {
	var req struct {
		ProfileID *uuid.UUID `json:"profileId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.ProfileID == nil {
		RespondError(c, http.StatusBadRequest, "missing_profile_id", nil)
		return
	}
	result, err := h.summarySvc.GenerateWeeklySummary(c.Request.Context(), *req.ProfileID)
	if err != nil {
		h.log.Error("GenerateWeeklySummary failed", "error", err, "profile_id", req.ProfileID)
		RespondServiceError(c, "generate_weekly_summary_failed", err)
		return
	}
	RespondOK(c, result)
}

// POST /api/weekly-review
func (h *SummaryHandler) SubmitWeeklyReview(c *gin.Context) {
	var req services.WeeklyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.summarySvc.SubmitWeeklyReview(c.Request.Context(), req)
	if err != nil {
		h.log.Error("SubmitWeeklyReview failed", "error", err, "profile_id", req.ProfileID)
		RespondServiceError(c, "submit_weekly_review_failed", err)
		return
	}
	RespondOK(c, result)
}
