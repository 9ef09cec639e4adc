package usecases

import (
	"context"
	"fmt"

	"dialpool/internal/domain/agent"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

// UpdateAgentCommand changes only the fields that are set. Deactivating an
// agent leaves its assignments in place.
type UpdateAgentCommand struct {
	AgentID    uint
	Active     *bool
	DailyQuota *int
}

type UpdateAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewUpdateAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *UpdateAgentUseCase {
	return &UpdateAgentUseCase{
		agentRepo: agentRepo,
		logger:    logger,
	}
}

func (uc *UpdateAgentUseCase) Execute(ctx context.Context, cmd UpdateAgentCommand) (*AgentResult, error) {
	uc.logger.Infow("executing update agent use case", "agent_id", cmd.AgentID)

	if cmd.AgentID == 0 {
		return nil, errors.NewValidationError("agent ID is required")
	}
	if cmd.Active == nil && cmd.DailyQuota == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	a, err := uc.agentRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		uc.logger.Errorw("failed to get agent", "agent_id", cmd.AgentID, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("agent not found", fmt.Sprintf("agent %d", cmd.AgentID))
	}

	now := biztime.NowUTC()
	if cmd.DailyQuota != nil {
		if err := a.ChangeDailyQuota(*cmd.DailyQuota, now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		if *cmd.Active {
			a.Activate(now)
		} else {
			a.Deactivate(now)
		}
	}

	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update agent", "agent_id", cmd.AgentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("agent updated successfully", "agent_id", a.ID(), "active", a.IsActive(), "daily_quota", a.DailyQuota())
	return toAgentResult(a), nil
}
