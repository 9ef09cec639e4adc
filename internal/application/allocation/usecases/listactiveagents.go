package usecases

import (
	"context"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	"dialpool/internal/shared/logger"
)

// AgentSummary is one row of the distribution form.
type AgentSummary struct {
	ID           uint
	Username     string
	DisplayName  string
	DailyQuota   int
	PendingCount int64
}

type ListActiveAgentsUseCase struct {
	agentRepo      agent.Repository
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewListActiveAgentsUseCase(
	agentRepo agent.Repository,
	assignmentRepo assignment.Repository,
	logger logger.Interface,
) *ListActiveAgentsUseCase {
	return &ListActiveAgentsUseCase{
		agentRepo:      agentRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListActiveAgentsUseCase) Execute(ctx context.Context) ([]*AgentSummary, error) {
	agents, err := uc.agentRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active agents", "error", err)
		return nil, err
	}

	ids := make([]uint, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID())
	}

	pending, err := uc.assignmentRepo.CountPendingByAgents(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to count pending assignments", "error", err)
		return nil, err
	}

	summaries := make([]*AgentSummary, 0, len(agents))
	for _, a := range agents {
		summaries = append(summaries, &AgentSummary{
			ID:           a.ID(),
			Username:     a.Username(),
			DisplayName:  a.DisplayName(),
			DailyQuota:   a.DailyQuota(),
			PendingCount: pending[a.ID()],
		})
	}
	return summaries, nil
}
