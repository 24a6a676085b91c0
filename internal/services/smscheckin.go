package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yungbote/coachie-backend/internal/clients/twilio"
	"github.com/yungbote/coachie-backend/internal/dateutil"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/repos"
	"github.com/yungbote/coachie-backend/internal/types"
)

// Conversation texts. These go out verbatim over SMS.
const (
	msgAskDidWorkoutRetry  = "Please reply YES or NO so I can log whether you worked out today 💪."
	msgAskHitCalories      = "Got it. Did you stay close to your calorie target today? Reply YES or NO."
	msgAskHitCaloriesRetry = "Please reply YES or NO so I can log your calories for today 🍽️."
	msgAskRating           = "Nice work. On a scale from 1–10, how would you rate your workout today? Reply with a number or type SKIP."
	msgAskRatingRetry      = "Please reply with a number between 1 and 10, or type SKIP."
	msgAskNotes            = "Any quick notes about today? Reply with a short message or type SKIP."
	msgCheckinSaved        = "Check-in saved ✅. Proud of you for staying accountable today."
	msgAlreadyComplete     = "You’re already checked in for today 🎉. You can see details in your CoachIE dashboard."
	msgNoSession           = "Hey, I couldn’t match this reply to an active check-in. Please try again later or log via the app."
	msgUnparseable         = "I couldn't understand that. Reply like:\nWORKOUT: yes/no\nCALORIES: yes/no\nRATING: 7\nNOTES: quick recap\n\nOr simply: Y N 7 felt tired"
)

type SmsCheckinService interface {
	// HandleInbound processes one Twilio webhook delivery. It never returns
	// an error for bad client input, only for broken infrastructure.
	HandleInbound(ctx context.Context, fromPhone, body string) error

	// RunDailyKickoff opens a session and sends the first question to every
	// opted-in client who has not checked in today. Returns how many kickoff
	// messages were sent.
	RunDailyKickoff(ctx context.Context) (int, error)
}

type smsCheckinService struct {
	profileRepo repos.ClientProfileRepo
	checkinRepo repos.DailyCheckinRepo
	sessionRepo repos.SmsSessionRepo
	sms         twilio.Client
	log         *logger.Logger
	today       func() string
}

func NewSmsCheckinService(
	profileRepo repos.ClientProfileRepo,
	checkinRepo repos.DailyCheckinRepo,
	sessionRepo repos.SmsSessionRepo,
	sms twilio.Client,
	baseLog *logger.Logger,
) SmsCheckinService {
	return &smsCheckinService{
		profileRepo: profileRepo,
		checkinRepo: checkinRepo,
		sessionRepo: sessionRepo,
		sms:         sms,
		log:         baseLog.With("service", "SmsCheckinService"),
		today:       dateutil.TodayLocal,
	}
}

func (s *smsCheckinService) HandleInbound(ctx context.Context, fromPhone, body string) error {
	phone := strings.TrimSpace(fromPhone)
	if phone == "" {
		s.log.Warn("Inbound SMS without a From number")
		return nil
	}
	reply := strings.TrimSpace(body)
	today := s.today()

	session, err := s.sessionRepo.GetByPhoneAndDate(ctx, nil, phone, today)
	if err != nil {
		return fmt.Errorf("load sms session: %w", err)
	}
	if session == nil {
		return s.handleWithoutSession(ctx, phone, reply, today)
	}

	switch session.Step {
	case types.SmsStepAskDidWorkout:
		return s.handleAskDidWorkout(ctx, session, phone, reply)
	case types.SmsStepAskHitCalories:
		return s.handleAskHitCalories(ctx, session, phone, reply)
	case types.SmsStepAskRating:
		return s.handleAskRating(ctx, session, phone, reply)
	case types.SmsStepAskNotes:
		return s.handleAskNotes(ctx, session, phone, reply)
	}

	// Step is complete (or unknown); the day is already logged.
	s.send(ctx, phone, msgAlreadyComplete)
	return nil
}

func (s *smsCheckinService) handleAskDidWorkout(ctx context.Context, session *types.SmsCheckinSession, phone, reply string) error {
	val := ParseYesNo(reply)
	if val == nil {
		s.send(ctx, phone, msgAskDidWorkoutRetry)
		return nil
	}

	advanced, err := s.sessionRepo.TransitionStep(ctx, nil, session.ID, types.SmsStepAskDidWorkout, types.SmsStepAskHitCalories)
	if err != nil {
		return fmt.Errorf("advance sms session: %w", err)
	}
	if !advanced {
		// A duplicate delivery already consumed this answer.
		return nil
	}

	s.upsertCheckin(ctx, session, map[string]interface{}{"did_workout": *val})
	s.send(ctx, phone, msgAskHitCalories)
	return nil
}

func (s *smsCheckinService) handleAskHitCalories(ctx context.Context, session *types.SmsCheckinSession, phone, reply string) error {
	val := ParseYesNo(reply)
	if val == nil {
		s.send(ctx, phone, msgAskHitCaloriesRetry)
		return nil
	}

	// The rating question only makes sense after a workout.
	didWorkout := false
	if row, err := s.checkinRepo.GetByProfileAndDate(ctx, nil, session.ProfileID, session.CheckinDate); err != nil {
		s.log.Error("Failed loading daily checkin during SMS turn", "error", err, "profile_id", session.ProfileID)
	} else if row != nil {
		didWorkout = row.DidWorkout
	}

	nextStep := types.SmsStepAskRating
	nextMsg := msgAskRating
	if !didWorkout {
		nextStep = types.SmsStepAskNotes
		nextMsg = msgAskNotes
	}

	advanced, err := s.sessionRepo.TransitionStep(ctx, nil, session.ID, types.SmsStepAskHitCalories, nextStep)
	if err != nil {
		return fmt.Errorf("advance sms session: %w", err)
	}
	if !advanced {
		return nil
	}

	s.upsertCheckin(ctx, session, map[string]interface{}{"hit_calorie_goal": *val})
	s.send(ctx, phone, nextMsg)
	return nil
}

func (s *smsCheckinService) handleAskRating(ctx context.Context, session *types.SmsCheckinSession, phone, reply string) error {
	var rating *int
	if !strings.EqualFold(reply, "skip") {
		n, err := strconv.Atoi(reply)
		if err != nil || n < 1 || n > 10 {
			s.send(ctx, phone, msgAskRatingRetry)
			return nil
		}
		rating = &n
	}

	advanced, err := s.sessionRepo.TransitionStep(ctx, nil, session.ID, types.SmsStepAskRating, types.SmsStepAskNotes)
	if err != nil {
		return fmt.Errorf("advance sms session: %w", err)
	}
	if !advanced {
		return nil
	}

	if rating != nil {
		s.upsertCheckin(ctx, session, map[string]interface{}{"workout_rating": *rating})
	}
	s.send(ctx, phone, msgAskNotes)
	return nil
}

func (s *smsCheckinService) handleAskNotes(ctx context.Context, session *types.SmsCheckinSession, phone, reply string) error {
	advanced, err := s.sessionRepo.TransitionStep(ctx, nil, session.ID, types.SmsStepAskNotes, types.SmsStepComplete)
	if err != nil {
		return fmt.Errorf("advance sms session: %w", err)
	}
	if !advanced {
		return nil
	}

	if !strings.EqualFold(reply, "skip") && reply != "" {
		notes := "[SMS] " + reply
		if row, err := s.checkinRepo.GetByProfileAndDate(ctx, nil, session.ProfileID, session.CheckinDate); err != nil {
			s.log.Error("Failed loading daily checkin during SMS turn", "error", err, "profile_id", session.ProfileID)
		} else if row != nil && row.Notes != nil && *row.Notes != "" {
			notes = *row.Notes + "\n\n[SMS] " + reply
		}
		s.upsertCheckin(ctx, session, map[string]interface{}{"notes": notes})
	}

	s.send(ctx, phone, msgCheckinSaved)
	return nil
}

// handleWithoutSession covers replies with no active conversation: a fully
// parseable message from a known number still logs the whole day at once.
func (s *smsCheckinService) handleWithoutSession(ctx context.Context, phone, reply, today string) error {
	profile, err := s.profileRepo.GetByPhone(ctx, nil, phone)
	if err != nil {
		return fmt.Errorf("lookup profile by phone: %w", err)
	}
	if profile == nil {
		s.send(ctx, phone, msgNoSession)
		return nil
	}

	parsed := ParseSmsBody(reply)
	if !parsed.Complete() {
		s.send(ctx, phone, msgUnparseable)
		return nil
	}

	fields := map[string]interface{}{
		"did_workout":      *parsed.DidWorkout,
		"hit_calorie_goal": *parsed.HitCalories,
	}
	if parsed.Rating != nil {
		fields["workout_rating"] = *parsed.Rating
	}
	if parsed.Notes != nil {
		fields["notes"] = *parsed.Notes
	}
	if err := s.checkinRepo.UpsertFields(ctx, nil, profile.ID, today, fields); err != nil {
		return fmt.Errorf("upsert single-shot checkin: %w", err)
	}

	workoutText := "❌ No workout"
	if *parsed.DidWorkout {
		workoutText = "✅ Workout logged"
	}
	caloriesText := "❌ Calories off target"
	if *parsed.HitCalories {
		caloriesText = "✅ Calories on target"
	}
	ratingText := ""
	if parsed.Rating != nil {
		ratingText = fmt.Sprintf("Rating: %d/10. ", *parsed.Rating)
	}

	s.send(ctx, phone, fmt.Sprintf("%s, %s. %sYour check-in for today is saved.", workoutText, caloriesText, ratingText))
	return nil
}

func (s *smsCheckinService) RunDailyKickoff(ctx context.Context) (int, error) {
	today := s.today()

	profiles, err := s.profileRepo.ListSmsOptIn(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("list sms opt-in profiles: %w", err)
	}

	sent := 0
	for _, profile := range profiles {
		if profile.PhoneNumber == nil || strings.TrimSpace(*profile.PhoneNumber) == "" {
			continue
		}
		phone := strings.TrimSpace(*profile.PhoneNumber)

		existing, err := s.checkinRepo.GetByProfileAndDate(ctx, nil, profile.ID, today)
		if err != nil {
			s.log.Error("Failed checking existing daily checkin", "error", err, "profile_id", profile.ID)
			continue
		}
		if existing != nil {
			continue
		}

		session := &types.SmsCheckinSession{
			ProfileID:   profile.ID,
			CheckinDate: today,
			PhoneNumber: phone,
			Step:        types.SmsStepAskDidWorkout,
		}
		if err := s.sessionRepo.Upsert(ctx, nil, session); err != nil {
			s.log.Error("Failed creating sms checkin session", "error", err, "profile_id", profile.ID)
			continue
		}

		msg := fmt.Sprintf("Hey %s, quick check-in for today:\n\nDid you work out? Reply YES or NO.", profile.FirstName)
		if _, err := s.sms.SendSMS(ctx, phone, msg); err != nil {
			s.log.Error("Failed sending kickoff SMS", "error", err, "phone", phone)
			continue
		}
		sent++
	}
	return sent, nil
}

// upsertCheckin is best-effort inside a conversation turn: a failed write is
// logged and the dialogue continues.
func (s *smsCheckinService) upsertCheckin(ctx context.Context, session *types.SmsCheckinSession, fields map[string]interface{}) {
	if err := s.checkinRepo.UpsertFields(ctx, nil, session.ProfileID, session.CheckinDate, fields); err != nil {
		s.log.Error("Failed upserting daily checkin from SMS", "error", err, "profile_id", session.ProfileID)
	}
}

func (s *smsCheckinService) send(ctx context.Context, phone, body string) {
	if _, err := s.sms.SendSMS(ctx, phone, body); err != nil {
		s.log.Error("Failed sending SMS reply", "error", err, "phone", phone)
	}
}
