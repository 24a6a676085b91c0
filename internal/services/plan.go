package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/coachie-backend/internal/clients/openai"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/repos"
)

const initialPlanSystemPrompt = `You are an empathetic fitness and nutrition coach.

Your job is to:

- Review the client’s profile and first-call answers.
- Use the provided ` + "`macroTargets.calorieTarget`" + ` as the client's daily calories. You MUST return this exact number as ` + "`calorieTarget`" + ` in your JSON. Do NOT invent a different calorie value.
- Summarize the plan back to the client in simple, supportive language.
- Extract and save their main “why” and main past struggles for future accountability.

You are a coach, NOT a doctor. You must not give medical advice. If the client mentions medical conditions, you gently recommend they speak to a healthcare professional before making changes.

OUTPUT FORMAT (IMPORTANT):

Return JSON with the following keys:

- planSummary (string): a conversational explanation of the plan for the client.
- calorieTarget (number): MUST match macroTargets.calorieTarget.
- workoutsPerWeek (number).
- workoutSplit (array of strings, e.g. ["Full Body A", "Full Body B", "Full Body C"]).
- weeklyWorkoutSchedule (array of objects, one per workout session, with:
  - dayOfWeek (string, e.g. "Monday"),
  - workoutName (string),
  - exercises (array of objects: { name, sets, reps, rest_seconds, notes })
  ).
- stepTarget (number, daily steps).
- goalWhy (string, restating their why in your words).
- pastStruggles (string).
- toneNotes (string, how you should talk to this client in the future, e.g. “very gentle” or “likes tough love”).

When designing weeklyWorkoutSchedule:

- Use the workoutsPerWeek value.
- Choose specific days of the week that make sense for the client (e.g., Monday/Wednesday/Friday for 3 days per week) unless the client’s schedule suggests otherwise.
- Each workout should include 5–7 exercises:
  - 3–4 main compound or accessory lifts.
  - 1–2 optional isolation or core exercises.
- Use realistic rep ranges (6–12) and 3–4 sets for most exercises.
- Make sure exercises match the client’s equipment access.

Return ONLY valid JSON. Do not include any extra commentary.`

type MacroTargets struct {
	CalorieTarget *int `json:"calorieTarget"`
}

type CallAnswers struct {
	Why               string `json:"why"`
	FutureVision      string `json:"futureVision"`
	PastStruggles     string `json:"pastStruggles"`
	PlanRealismRating int    `json:"planRealismRating"`
	Notes             string `json:"notes,omitempty"`
}

type InitialPlanRequest struct {
	ClientProfile map[string]any `json:"clientProfile"`
	CallAnswers   *CallAnswers   `json:"callAnswers"`
	MacroTargets  *MacroTargets  `json:"macroTargets"`
	ProfileID     *uuid.UUID     `json:"profileId,omitempty"`
}

type PlanService interface {
	// GenerateInitialPlan runs the onboarding plan generation. The returned
	// object always carries the caller's calorie target, whatever the model
	// said. When ProfileID is set the durable plan fields are persisted.
	GenerateInitialPlan(ctx context.Context, req InitialPlanRequest) (map[string]any, error)
}

type planService struct {
	profileRepo repos.ClientProfileRepo
	auditRepo   repos.AICallLogRepo
	ai          openai.Client
	log         *logger.Logger
}

func NewPlanService(
	profileRepo repos.ClientProfileRepo,
	auditRepo repos.AICallLogRepo,
	ai openai.Client,
	baseLog *logger.Logger,
) PlanService {
	return &planService{
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		ai:          ai,
		log:         baseLog.With("service", "PlanService"),
	}
}

func (s *planService) GenerateInitialPlan(ctx context.Context, req InitialPlanRequest) (map[string]any, error) {
	if req.ClientProfile == nil || req.CallAnswers == nil {
		return nil, NewValidationError("Missing clientProfile or callAnswers in request body")
	}
	if req.MacroTargets == nil || req.MacroTargets.CalorieTarget == nil {
		return nil, NewValidationError("Missing or invalid macroTargets.calorieTarget")
	}
	calorieTarget := *req.MacroTargets.CalorieTarget

	userContent := map[string]any{
		"clientProfile": req.ClientProfile,
		"callAnswers":   req.CallAnswers,
		"macroTargets":  map[string]any{"calorieTarget": calorieTarget},
	}
	payload, err := json.MarshalIndent(userContent, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal plan payload: %w", err)
	}
	userPrompt := "Here is the client data as JSON:\n\n" + string(payload)

	completion, err := s.ai.GenerateJSON(ctx, initialPlanSystemPrompt, userPrompt)
	if err != nil {
		s.audit(ctx, req.ProfileID, "initial_plan", userPrompt, "", false, err.Error(), openai.Usage{})
		return nil, fmt.Errorf("generate initial plan: %w", err)
	}

	var plan map[string]any
	if err := json.Unmarshal([]byte(completion.Text), &plan); err != nil {
		s.audit(ctx, req.ProfileID, "initial_plan", userPrompt, completion.Text, false, err.Error(), completion.Usage)
		return nil, &LLMParseError{Raw: completion.Text, Err: err}
	}
	s.audit(ctx, req.ProfileID, "initial_plan", userPrompt, completion.Text, true, "", completion.Usage)

	// The caller's macro target is authoritative.
	plan["calorieTarget"] = calorieTarget

	if n, ok := anyInt(plan["stepTarget"]); !ok || n <= 0 {
		delete(plan, "stepTarget")
	} else {
		plan["stepTarget"] = n
	}
	if n, ok := anyInt(plan["workoutsPerWeek"]); !ok || n <= 0 {
		delete(plan, "workoutsPerWeek")
	} else {
		plan["workoutsPerWeek"] = n
	}

	if req.ProfileID != nil {
		if err := s.persistPlan(ctx, *req.ProfileID, calorieTarget, plan); err != nil {
			return nil, fmt.Errorf("persist initial plan: %w", err)
		}
	}

	return plan, nil
}

func (s *planService) persistPlan(ctx context.Context, profileID uuid.UUID, calorieTarget int, plan map[string]any) error {
	fields := map[string]interface{}{
		"calorie_target": calorieTarget,
	}

	if split := anyStringArray(plan["workoutSplit"]); split != nil {
		raw, err := json.Marshal(split)
		if err != nil {
			return err
		}
		fields["workout_split"] = datatypes.JSON(raw)
	}
	if schedule, ok := plan["weeklyWorkoutSchedule"].([]any); ok && len(schedule) > 0 {
		raw, err := json.Marshal(schedule)
		if err != nil {
			return err
		}
		fields["weekly_workout_schedule"] = datatypes.JSON(raw)
	}
	if n, ok := anyInt(plan["stepTarget"]); ok && n > 0 {
		fields["step_target"] = n
	}
	if v := anyStr(plan["goalWhy"]); v != "" {
		fields["goal_why"] = v
	}
	if v := anyStr(plan["pastStruggles"]); v != "" {
		fields["past_struggles"] = v
	}
	if v := anyStr(plan["toneNotes"]); v != "" {
		fields["tone_notes"] = v
	}

	return s.profileRepo.UpdateFields(ctx, nil, profileID, fields)
}

func (s *planService) audit(ctx context.Context, profileID *uuid.UUID, callType, prompt, response string, success bool, errMsg string, usage openai.Usage) {
	auditLLMCall(ctx, s.auditRepo, s.log, profileID, callType, s.ai.Model(), prompt, response, success, errMsg, usage)
}
