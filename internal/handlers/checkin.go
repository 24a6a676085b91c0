package handlers

import (
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/services"
)

type CheckinHandler struct {
	log        *logger.Logger
	checkinSvc services.CheckinService
}

func NewCheckinHandler(log *logger.Logger, checkinSvc services.CheckinService) *CheckinHandler {
	return &CheckinHandler{
		log:        log.With("handler", "CheckinHandler"),
		checkinSvc: checkinSvc,
	}
}

// POST /api/checkins
func (h *CheckinHandler) UpsertCheckin(c *gin.Context) {
	var req services.UpsertCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, err := h.checkinSvc.UpsertCheckin(c.Request.Context(), req)
	if err != nil {
		h.log.Error("UpsertCheckin failed", "error", err)
		RespondServiceError(c, "upsert_checkin_failed", err)
		return
	}
	RespondOK(c, gin.H{"checkin": row})
}

// GET /api/checkins?profile_id=...&start=...&end=...
func (h *CheckinHandler) ListCheckins(c *gin.Context) {
	profileID, err := uuid.Parse(c.Query("profile_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_profile_id", err)
		return
	}
	rows, err := h.checkinSvc.ListCheckins(c.Request.Context(), profileID, c.Query("start"), c.Query("end"))
	if err != nil {
		RespondServiceError(c, "list_checkins_failed", err)
		return
	}
	RespondOK(c, gin.H{"checkins": rows})
}

// POST /api/food-entries
func (h *CheckinHandler) AddFoodEntry(c *gin.Context) {
	var req services.AddFoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	entry, err := h.checkinSvc.AddFoodEntry(c.Request.Context(), req)
	if err != nil {
		h.log.Error("AddFoodEntry failed", "error", err)
		RespondServiceError(c, "add_food_entry_failed", err)
		return
	}
	RespondOK(c, gin.H{"foodEntry": entry})
}

// GET /api/food-entries?profile_id=...&start=...&end=...
func (h *CheckinHandler) ListFoodEntries(c *gin.Context) {
	profileID, err := uuid.Parse(c.Query("profile_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_profile_id", err)
		return
	}
	rows, err := h.checkinSvc.ListFoodEntries(c.Request.Context(), profileID, c.Query("start"), c.Query("end"))
	if err != nil {
		RespondServiceError(c, "list_food_entries_failed", err)
		return
	}
	RespondOK(c, gin.H{"foodEntries": rows})
}

// DELETE /api/food-entries/:id?profile_id=...
func (h *CheckinHandler) DeleteFoodEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_entry_id", err)
		return
	}
	profileID, err := uuid.Parse(c.Query("profile_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_profile_id", err)
		return
	}
	if err := h.checkinSvc.DeleteFoodEntry(c.Request.Context(), profileID, entryID); err != nil {
		RespondServiceError(c, "delete_food_entry_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
