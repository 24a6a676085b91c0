package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/coachie-backend/internal/clients/openai"
	"github.com/yungbote/coachie-backend/internal/dateutil"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/repos"
	"github.com/yungbote/coachie-backend/internal/types"
)

// How many recent check-ins feed the weekly summary prompt.
const weeklySummaryCheckinWindow = 14

var weeklySummarySystemPrompt = strings.Join([]string{
	"You are an empathetic fitness and nutrition coach.",
	"",
	"You will receive:",
	"- clientProfile (including optional goal_why and past_struggles),",
	"- dailyCheckins (last 1–2 weeks),",
	"- adherence (pre-computed stats).",
	"",
	"Your job is to:",
	"- Summarize how this past week went in simple, supportive language.",
	"- Highlight consistency (workouts, calorie adherence, workout ratings).",
	"- Point out patterns (e.g., weekends harder, certain days always missed).",
	"- Suggest 2–4 very practical focus points for the coming week.",
	"- Give a short accountability message that feels like you're talking directly to them.",
	"- Use their goal_why to remind them why they started, especially if adherence has been low.",
	"- Acknowledge their past_struggles when relevant, and show them how this week connects to those patterns without shaming them.",
	"",
	"IMPORTANT TONE RULES:",
	"- Always be supportive and human. No shaming, no guilt-tripping.",
	"- In weeks with low adherence (few workouts, few days hitting calories),",
	"  focus primarily on habits, structure, and their 'why', not on changing calories.",
	"- Speak to them like a long-term coach who believes in them.",
	"",
	"CALORIE ADJUSTMENT LOGIC (GUIDELINES):",
	"- If adherence has been poor or inconsistent, recommend 'keep' and focus on behavior.",
	"- Only consider 'lower_slightly' when adherence is solid AND weight hasn't changed much.",
	"- Do NOT invent a brand new precise calorie number.",
	"",
	"OUTPUT FORMAT:",
	"Return ONLY valid JSON with:",
	"- summary (string).",
	"- adherence (object) – these stats must match the adherence object you were given.",
	"- nextWeekFocus (array of 2–5 short strings).",
	"- suggestions (array of 2–5 short, concrete action steps).",
	"- accountabilityMessage (string): this MUST weave in their goal_why if available,",
	"  especially after a rough week.",
	"- calorieAdjustment (object):",
	"    - recommendation: 'keep' | 'lower_slightly' | 'raise_slightly'.",
	"    - explanation: short string explaining your choice.",
	"",
	"Return ONLY JSON. No extra commentary.",
}, "\n")

const weeklyReviewSystemPrompt = `You are an empathetic fitness coach.
You will receive:
- client profile
- this week's daily check-ins
- a short weekly review form (weight, effort, what went well, what got in the way).

Return ONLY valid JSON with this shape:

{
  "summary": string,
  "adherence": {
    "totalDays": number,
    "daysWorkedOut": number,
    "daysHitCalories": number
  },
  "calorieAdjustment": {
    "recommendation": "keep" | "lower_slightly" | "raise_slightly",
    "explanation": string
  },
  "accountabilityMessage": string
}

Important:
- Only recommend "lower_slightly" or "raise_slightly" if the client has been consistent
  (good adherence AND reported decent effort) and is likely at a plateau.
- Otherwise use "keep" and explain that we keep calories steady for now.`

type WeeklyReviewForm struct {
	WeightLbs   *float64 `json:"weight_lbs"`
	Effort      int      `json:"effort"`
	WentWell    string   `json:"wentWell"`
	GotInTheWay string   `json:"gotInTheWay"`
}

type WeeklyReviewRequest struct {
	ProfileID *uuid.UUID        `json:"profileId"`
	WeekStart string            `json:"weekStart"`
	Form      *WeeklyReviewForm `json:"form"`
}

type WeeklyReviewResult struct {
	Analysis               map[string]any `json:"analysis"`
	UpdatedCalorieTarget   *int           `json:"updatedCalorieTarget"`
	UpdatedWorkoutSchedule any            `json:"updatedWorkoutSchedule"`
}

type SummaryService interface {
	// GenerateWeeklySummary builds the conversational weekly recap. The
	// adherence block in the result is always the aggregator's numbers.
	GenerateWeeklySummary(ctx context.Context, profileID uuid.UUID) (map[string]any, error)

	// SubmitWeeklyReview runs the end-of-week analysis, applies the bounded
	// calorie adjustment, and records the review row. A second submission for
	// the same (profile, week) is rejected.
	SubmitWeeklyReview(ctx context.Context, req WeeklyReviewRequest) (*WeeklyReviewResult, error)
}

type summaryService struct {
	profileRepo repos.ClientProfileRepo
	checkinRepo repos.DailyCheckinRepo
	reviewRepo  repos.WeeklyReviewRepo
	auditRepo   repos.AICallLogRepo
	ai          openai.Client
	log         *logger.Logger
}

func NewSummaryService(
	profileRepo repos.ClientProfileRepo,
	checkinRepo repos.DailyCheckinRepo,
	reviewRepo repos.WeeklyReviewRepo,
	auditRepo repos.AICallLogRepo,
	ai openai.Client,
	baseLog *logger.Logger,
) SummaryService {
	return &summaryService{
		profileRepo: profileRepo,
		checkinRepo: checkinRepo,
		reviewRepo:  reviewRepo,
		auditRepo:   auditRepo,
		ai:          ai,
		log:         baseLog.With("service", "SummaryService"),
	}
}

func (s *summaryService) GenerateWeeklySummary(ctx context.Context, profileID uuid.UUID) (map[string]any, error) {
	profile, err := s.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return nil, fmt.Errorf("load client profile: %w", err)
	}
	if profile == nil {
		return nil, NewValidationError("Could not load client profile")
	}

	checkins, err := s.checkinRepo.ListRecentByProfile(ctx, nil, profileID, weeklySummaryCheckinWindow)
	if err != nil {
		return nil, fmt.Errorf("load daily check-ins: %w", err)
	}

	adherence := ComputeAdherence(checkins)

	userContent := map[string]any{
		"clientProfile": profile,
		"dailyCheckins": checkins,
		"adherence":     adherence,
	}
	payload, err := json.MarshalIndent(userContent, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary payload: %w", err)
	}
	userPrompt := "Here is the client profile and recent daily check-ins as JSON:\n\n" + string(payload)

	completion, err := s.ai.GenerateJSON(ctx, weeklySummarySystemPrompt, userPrompt)
	if err != nil {
		s.audit(ctx, &profileID, "weekly_summary", userPrompt, "", false, err.Error(), openai.Usage{})
		return nil, fmt.Errorf("generate weekly summary: %w", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(completion.Text), &result); err != nil {
		s.audit(ctx, &profileID, "weekly_summary", userPrompt, completion.Text, false, err.Error(), completion.Usage)
		return nil, &LLMParseError{Raw: completion.Text, Err: err}
	}
	s.audit(ctx, &profileID, "weekly_summary", userPrompt, completion.Text, true, "", completion.Usage)

	// The aggregator's numbers overwrite whatever the model echoed.
	result["adherence"] = adherence

	return result, nil
}

func (s *summaryService) SubmitWeeklyReview(ctx context.Context, req WeeklyReviewRequest) (*WeeklyReviewResult, error) {
	if req.ProfileID == nil || req.Form == nil {
		return nil, NewValidationError("Missing profileId or form")
	}
	if strings.TrimSpace(req.WeekStart) == "" {
		return nil, NewValidationError("Missing weekStart")
	}
	profileID := *req.ProfileID

	rangeStart, rangeEnd, err := dateutil.WeekRangeFromStart(req.WeekStart)
	if err != nil {
		return nil, NewValidationError("Invalid weekStart: %s", req.WeekStart)
	}

	existing, err := s.reviewRepo.GetByProfileAndWeek(ctx, nil, profileID, rangeStart)
	if err != nil {
		return nil, fmt.Errorf("check existing weekly review: %w", err)
	}
	if existing != nil {
		return nil, NewValidationError("Weekly review already submitted for week starting %s", rangeStart)
	}

	profile, err := s.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return nil, fmt.Errorf("load client profile: %w", err)
	}
	if profile == nil {
		return nil, NewValidationError("Could not load profile")
	}

	checkins, err := s.checkinRepo.ListByProfileInRange(ctx, nil, profileID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("load check-ins: %w", err)
	}

	adherence := ComputeAdherence(checkins)

	userContent := map[string]any{
		"profile":      profile,
		"adherence":    adherence,
		"checkins":     checkins,
		"weeklyReview": req.Form,
	}
	payload, err := json.Marshal(userContent)
	if err != nil {
		return nil, fmt.Errorf("marshal review payload: %w", err)
	}
	userPrompt := string(payload)

	completion, err := s.ai.GenerateJSON(ctx, weeklyReviewSystemPrompt, userPrompt)
	if err != nil {
		s.audit(ctx, &profileID, "weekly_review", userPrompt, "", false, err.Error(), openai.Usage{})
		return nil, fmt.Errorf("generate weekly review analysis: %w", err)
	}

	var analysis map[string]any
	if err := json.Unmarshal([]byte(completion.Text), &analysis); err != nil {
		s.audit(ctx, &profileID, "weekly_review", userPrompt, completion.Text, false, err.Error(), completion.Usage)
		return nil, &LLMParseError{Raw: completion.Text, Err: err}
	}
	s.audit(ctx, &profileID, "weekly_review", userPrompt, completion.Text, true, "", completion.Usage)

	finalCalorieTarget := profile.CalorieTarget
	recommendation := recommendationFrom(analysis)

	if profile.CalorieTarget != nil && recommendation != "" && recommendation != RecommendationKeep {
		proposed := NextCalorieTarget(*profile.CalorieTarget, recommendation)
		if err := s.profileRepo.UpdateFields(ctx, nil, profileID, map[string]interface{}{"calorie_target": proposed}); err != nil {
			s.log.Error("Failed updating calorie target", "error", err, "profile_id", profileID)
		} else {
			finalCalorieTarget = &proposed
		}
	}

	// The schedule is carried forward unchanged for now.
	var updatedWorkoutSchedule any
	if len(profile.WeeklyWorkoutSchedule) > 0 {
		if err := json.Unmarshal(profile.WeeklyWorkoutSchedule, &updatedWorkoutSchedule); err != nil {
			s.log.Warn("Could not decode stored workout schedule", "error", err, "profile_id", profileID)
		}
	}

	analysisRaw, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}

	review := &types.WeeklyReview{
		ProfileID:        profileID,
		WeekStart:        rangeStart,
		WeightLbs:        req.Form.WeightLbs,
		Effort:           req.Form.Effort,
		WentWell:         req.Form.WentWell,
		GotInTheWay:      req.Form.GotInTheWay,
		Analysis:         datatypes.JSON(analysisRaw),
		NewCalorieTarget: finalCalorieTarget,
	}
	if _, err := s.reviewRepo.Create(ctx, nil, []*types.WeeklyReview{review}); err != nil {
		return nil, fmt.Errorf("save weekly review: %w", err)
	}

	return &WeeklyReviewResult{
		Analysis:               analysis,
		UpdatedCalorieTarget:   finalCalorieTarget,
		UpdatedWorkoutSchedule: updatedWorkoutSchedule,
	}, nil
}

func recommendationFrom(analysis map[string]any) string {
	adj, ok := analysis["calorieAdjustment"].(map[string]any)
	if !ok {
		return ""
	}
	return strings.TrimSpace(anyStr(adj["recommendation"]))
}

func (s *summaryService) audit(ctx context.Context, profileID *uuid.UUID, callType, prompt, response string, success bool, errMsg string, usage openai.Usage) {
	auditLLMCall(ctx, s.auditRepo, s.log, profileID, callType, s.ai.Model(), prompt, response, success, errMsg, usage)
}
