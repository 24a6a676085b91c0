package handlers

import (
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/services"
)

type PlanHandler struct {
	log     *logger.Logger
	planSvc services.PlanService
}

func NewPlanHandler(log *logger.Logger, planSvc services.PlanService) *PlanHandler {
	return &PlanHandler{
		log:     log.With("handler", "PlanHandler"),
		planSvc: planSvc,
	}
}

// POST /api/generate-initial-plan
func (h *PlanHandler) GenerateInitialPlan(c *gin.Context) {
	var req services.InitialPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	plan, err := h.planSvc.GenerateInitialPlan(c.Request.Context(), req)
	if err != nil {
		h.log.Error("GenerateInitialPlan failed", "error", err)
		RespondServiceError(c, "generate_initial_plan_failed", err)
		return
	}
	RespondOK(c, plan)
}
