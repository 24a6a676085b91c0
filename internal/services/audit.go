package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/coachie-backend/internal/clients/openai"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/repos"
	"github.com/yungbote/coachie-backend/internal/types"
)

// auditLLMCall records one model call in ai_call_log. Failures are logged and
// swallowed so an audit hiccup never breaks the request it describes.
func auditLLMCall(
	ctx context.Context,
	auditRepo repos.AICallLogRepo,
	log *logger.Logger,
	profileID *uuid.UUID,
	callType, model, prompt, response string,
	success bool,
	errMsg string,
	usage openai.Usage,
) {
	row := &types.AICallLog{
		ProfileID: profileID,
		CallType:  callType,
		Model:     model,
		Prompt:    prompt,
		Response:  response,
		Success:   success,
		Error:     errMsg,
	}
	if raw, err := json.Marshal(usage); err == nil {
		row.Usage = datatypes.JSON(raw)
	}
	if _, err := auditRepo.Create(ctx, nil, []*types.AICallLog{row}); err != nil {
		log.Error("Failed writing ai call log", "error", err, "call_type", callType)
	}
}
