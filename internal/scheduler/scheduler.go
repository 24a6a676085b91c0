package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/services"
	"github.com/yungbote/coachie-backend/internal/utils"
)

// Service runs the recurring coaching jobs. Right now that is just the daily
// SMS check-in kickoff; the schedule comes from SMS_CHECKIN_CRON (server local
// time, standard five-field cron syntax).
type Service struct {
	cron   *cron.Cron
	log    *logger.Logger
	smsSvc services.SmsCheckinService
}

func NewService(smsSvc services.SmsCheckinService, baseLog *logger.Logger) *Service {
	return &Service{
		cron:   cron.New(),
		log:    baseLog.With("service", "Scheduler"),
		smsSvc: smsSvc,
	}
}

func (s *Service) Start(ctx context.Context) error {
	spec := utils.GetEnv("SMS_CHECKIN_CRON", "0 18 * * *", s.log)

	if _, err := s.cron.AddFunc(spec, func() { s.runKickoff(ctx) }); err != nil {
		return fmt.Errorf("register sms checkin job %q: %w", spec, err)
	}

	s.cron.Start()
	s.log.Info("Scheduler started", "sms_checkin_cron", spec)
	return nil
}

func (s *Service) runKickoff(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	sent, err := s.smsSvc.RunDailyKickoff(runCtx)
	if err != nil {
		s.log.Error("Daily SMS kickoff failed", "error", err)
		return
	}
	s.log.Info("Daily SMS kickoff finished", "sent", sent)
}

// Stop waits for any running job to finish.
func (s *Service) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(10 * time.Second):
		s.log.Warn("Scheduler stop timed out waiting for running jobs")
	}
}
