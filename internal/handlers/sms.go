package handlers

import (
	"net/http"
	"github.com/gin-gonic/gin"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/services"
)

type SmsHandler struct {
	log    *logger.Logger
	smsSvc services.SmsCheckinService
}

func NewSmsHandler(log *logger.Logger, smsSvc services.SmsCheckinService) *SmsHandler {
	return &SmsHandler{
		log:    log.With("handler", "SmsHandler"),
		smsSvc: smsSvc,
	}
}

// POST /api/sms/webhook
// Twilio delivers form-encoded From/Body. The webhook always answers 200 so
// Twilio does not retry; conversation problems are handled over SMS itself.
func (h *SmsHandler) InboundWebhook(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	if err := h.smsSvc.HandleInbound(c.Request.Context(), from, body); err != nil {
		h.log.Error("Inbound SMS handling failed", "error", err, "from", from)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/sms/checkin-cron
// Manual trigger for the daily kickoff, mirroring what the scheduler runs.
func (h *SmsHandler) RunCheckinCron(c *gin.Context) {
	sent, err := h.smsSvc.RunDailyKickoff(c.Request.Context())
	if err != nil {
		h.log.Error("Daily kickoff failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "sms_kickoff_failed", err)
		return
	}
	RespondOK(c, gin.H{"ok": true, "sent": sent})
}
