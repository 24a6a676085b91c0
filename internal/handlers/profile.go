package handlers

import (
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/services"
)

type ProfileHandler struct {
	log        *logger.Logger
	profileSvc services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profileSvc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		log:        log.With("handler", "ProfileHandler"),
		profileSvc: profileSvc,
	}
}

// POST /api/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req services.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	profile, err := h.profileSvc.CreateProfile(c.Request.Context(), req)
	if err != nil {
		h.log.Error("CreateProfile failed", "error", err)
		RespondServiceError(c, "create_profile_failed", err)
		return
	}
	RespondOK(c, gin.H{"profile": profile})
}

// GET /api/profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_profile_id", err)
		return
	}
	profile, err := h.profileSvc.GetProfile(c.Request.Context(), profileID)
	if err != nil {
		RespondServiceError(c, "load_profile_failed", err)
		return
	}
	RespondOK(c, gin.H{"profile": profile})
}

// PATCH /api/profiles/:id/settings
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_profile_id", err)
		return
	}
	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	profile, err := h.profileSvc.UpdateSettings(c.Request.Context(), profileID, req)
	if err != nil {
		h.log.Error("UpdateSettings failed", "error", err, "profile_id", profileID)
		RespondServiceError(c, "update_settings_failed", err)
		return
	}
	RespondOK(c, gin.H{"profile": profile})
}
