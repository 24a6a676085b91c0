package services

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/coachie-backend/internal/clients/openai"
	"github.com/yungbote/coachie-backend/internal/clients/twilio"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	return log
}

// ---------- profile repo ----------

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*types.ClientProfile
	updates  []map[string]interface{}
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*types.ClientProfile{}}
}

func (f *fakeProfileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.ClientProfile) ([]*types.ClientProfile, error) {
	for _, p := range profiles {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		f.profiles[p.ID] = p
	}
	return profiles, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.ClientProfile, error) {
	return f.profiles[profileID], nil
}

func (f *fakeProfileRepo) GetByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*types.ClientProfile, error) {
	for _, p := range f.profiles {
		if p.PhoneNumber != nil && *p.PhoneNumber == phoneNumber && p.AllowSmsCheckins {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) ListSmsOptIn(ctx context.Context, tx *gorm.DB) ([]*types.ClientProfile, error) {
	var out []*types.ClientProfile
	for _, p := range f.profiles {
		if p.AllowSmsCheckins && p.PhoneNumber != nil && *p.PhoneNumber != "" {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return out, nil
}

func (f *fakeProfileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, fields map[string]interface{}) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return fmt.Errorf("profile %s not found", profileID)
	}
	f.updates = append(f.updates, fields)
	if v, ok := fields["calorie_target"]; ok {
		if n, ok := v.(int); ok {
			p.CalorieTarget = &n
		}
	}
	if v, ok := fields["phone_number"]; ok {
		if s, ok := v.(string); ok {
			p.PhoneNumber = &s
		} else {
			p.PhoneNumber = nil
		}
	}
	if v, ok := fields["allow_sms_checkins"]; ok {
		if b, ok := v.(bool); ok {
			p.AllowSmsCheckins = b
		}
	}
	return nil
}

// ---------- daily checkin repo ----------

type checkinKey struct {
	profileID uuid.UUID
	date      string
}

type fakeCheckinRepo struct {
	rows       map[checkinKey]*types.DailyCheckin
	upsertErr  error
	upsertLogs []map[string]interface{}
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{rows: map[checkinKey]*types.DailyCheckin{}}
}

func (f *fakeCheckinRepo) UpsertFields(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string, fields map[string]interface{}) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upsertLogs = append(f.upsertLogs, fields)
	key := checkinKey{profileID, checkinDate}
	row, ok := f.rows[key]
	if !ok {
		row = &types.DailyCheckin{ID: uuid.New(), ProfileID: profileID, CheckinDate: checkinDate}
		f.rows[key] = row
	}
	for k, v := range fields {
		switch k {
		case "did_workout":
			row.DidWorkout = v.(bool)
		case "hit_calorie_goal":
			row.HitCalorieGoal = v.(bool)
		case "workout_rating":
			if v == nil {
				row.WorkoutRating = nil
			} else {
				n := v.(int)
				row.WorkoutRating = &n
			}
		case "weight_kg":
			if v == nil {
				row.WeightKg = nil
			} else {
				w := v.(float64)
				row.WeightKg = &w
			}
		case "notes":
			if v == nil {
				row.Notes = nil
			} else {
				s := v.(string)
				row.Notes = &s
			}
		}
	}
	return nil
}

func (f *fakeCheckinRepo) GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string) (*types.DailyCheckin, error) {
	return f.rows[checkinKey{profileID, checkinDate}], nil
}

func (f *fakeCheckinRepo) ListByProfileInRange(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, startDate, endDate string) ([]*types.DailyCheckin, error) {
	var out []*types.DailyCheckin
	for key, row := range f.rows {
		if key.profileID == profileID && key.date >= startDate && key.date <= endDate {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckinDate < out[j].CheckinDate })
	return out, nil
}

func (f *fakeCheckinRepo) ListRecentByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, limit int) ([]*types.DailyCheckin, error) {
	var out []*types.DailyCheckin
	for key, row := range f.rows {
		if key.profileID == profileID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckinDate > out[j].CheckinDate })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---------- sms session repo ----------

type fakeSessionRepo struct {
	sessions map[checkinKey]*types.SmsCheckinSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[checkinKey]*types.SmsCheckinSession{}}
}

func (f *fakeSessionRepo) Upsert(ctx context.Context, tx *gorm.DB, session *types.SmsCheckinSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	key := checkinKey{session.ProfileID, session.CheckinDate}
	if existing, ok := f.sessions[key]; ok {
		existing.Step = session.Step
		existing.PhoneNumber = session.PhoneNumber
		session.ID = existing.ID
		return nil
	}
	f.sessions[key] = session
	return nil
}

func (f *fakeSessionRepo) GetByPhoneAndDate(ctx context.Context, tx *gorm.DB, phoneNumber, checkinDate string) (*types.SmsCheckinSession, error) {
	for _, s := range f.sessions {
		if s.PhoneNumber == phoneNumber && s.CheckinDate == checkinDate {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetByProfileAndDate(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, checkinDate string) (*types.SmsCheckinSession, error) {
	return f.sessions[checkinKey{profileID, checkinDate}], nil
}

func (f *fakeSessionRepo) TransitionStep(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, fromStep, toStep string) (bool, error) {
	for _, s := range f.sessions {
		if s.ID == sessionID {
			if s.Step != fromStep {
				return false, nil
			}
			s.Step = toStep
			return true, nil
		}
	}
	return false, nil
}

// ---------- weekly review repo ----------

type fakeReviewRepo struct {
	reviews map[checkinKey]*types.WeeklyReview
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[checkinKey]*types.WeeklyReview{}}
}

func (f *fakeReviewRepo) Create(ctx context.Context, tx *gorm.DB, reviews []*types.WeeklyReview) ([]*types.WeeklyReview, error) {
	for _, r := range reviews {
		key := checkinKey{r.ProfileID, r.WeekStart}
		if _, exists := f.reviews[key]; exists {
			return nil, fmt.Errorf("duplicate weekly review for %s/%s", r.ProfileID, r.WeekStart)
		}
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		f.reviews[key] = r
	}
	return reviews, nil
}

func (f *fakeReviewRepo) GetByProfileAndWeek(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, weekStart string) (*types.WeeklyReview, error) {
	return f.reviews[checkinKey{profileID, weekStart}], nil
}

func (f *fakeReviewRepo) ListByProfile(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) ([]*types.WeeklyReview, error) {
	var out []*types.WeeklyReview
	for _, r := range f.reviews {
		if r.ProfileID == profileID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ---------- food entry repo ----------

type fakeFoodRepo struct {
	entries map[uuid.UUID]*types.FoodEntry
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{entries: map[uuid.UUID]*types.FoodEntry{}}
}

func (f *fakeFoodRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.FoodEntry) ([]*types.FoodEntry, error) {
	for _, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		f.entries[e.ID] = e
	}
	return entries, nil
}

func (f *fakeFoodRepo) ListByProfileInRange(ctx context.Context, tx *gorm.DB, profileID uuid.UUID, startDate, endDate string) ([]*types.FoodEntry, error) {
	var out []*types.FoodEntry
	for _, e := range f.entries {
		if e.ProfileID == profileID && e.EntryDate >= startDate && e.EntryDate <= endDate {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) Delete(ctx context.Context, tx *gorm.DB, profileID, entryID uuid.UUID) (bool, error) {
	e, ok := f.entries[entryID]
	if !ok || e.ProfileID != profileID {
		return false, nil
	}
	delete(f.entries, entryID)
	return true, nil
}

// ---------- audit repo ----------

type fakeAuditRepo struct {
	logs []*types.AICallLog
}

func (f *fakeAuditRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error) {
	f.logs = append(f.logs, logs...)
	return logs, nil
}

// ---------- twilio ----------

type sentSms struct {
	To   string
	Body string
}

type fakeSmsClient struct {
	sent []sentSms
	err  error
}

func (f *fakeSmsClient) SendMessage(ctx context.Context, req twilio.SendMessageRequest) (*twilio.Message, error) {
	return f.SendSMS(ctx, req.To, req.Body)
}

func (f *fakeSmsClient) SendSMS(ctx context.Context, to string, body string) (*twilio.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, sentSms{To: to, Body: body})
	return &twilio.Message{SID: "SM_fake", To: to, Body: body}, nil
}

func (f *fakeSmsClient) lastBody(t *testing.T) string {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatalf("expected at least one SMS to be sent")
	}
	return f.sent[len(f.sent)-1].Body
}

// ---------- openai ----------

type fakeAIClient struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, system string, user string) (*openai.Completion, error) {
	f.calls++
	f.lastUser = user
	if f.err != nil {
		return nil, f.err
	}
	return &openai.Completion{Text: f.response}, nil
}

func (f *fakeAIClient) Model() string { return "gpt-test" }
