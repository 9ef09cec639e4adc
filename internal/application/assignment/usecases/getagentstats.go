package usecases

import (
	"context"
	"fmt"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type GetAgentStatsQuery struct {
	AgentID uint
}

type AgentStatsResult struct {
	AgentID uint             `json:"agent_id"`
	ByState map[string]int64 `json:"by_state"`
	Total   int64            `json:"total"`
}

// GetAgentStatsUseCase serves both the agent's own counters and the admin
// per-agent view, so an unknown agent is a not_found error.
type GetAgentStatsUseCase struct {
	assignmentRepo assignment.Repository
	agentRepo      agent.Repository
	logger         logger.Interface
}

func NewGetAgentStatsUseCase(assignmentRepo assignment.Repository, agentRepo agent.Repository, logger logger.Interface) *GetAgentStatsUseCase {
	return &GetAgentStatsUseCase{
		assignmentRepo: assignmentRepo,
		agentRepo:      agentRepo,
		logger:         logger,
	}
}

func (uc *GetAgentStatsUseCase) Execute(ctx context.Context, query GetAgentStatsQuery) (*AgentStatsResult, error) {
	if query.AgentID == 0 {
		return nil, errors.NewValidationError("agent ID is required")
	}

	a, err := uc.agentRepo.GetByID(ctx, query.AgentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("agent not found", fmt.Sprintf("agent %d", query.AgentID))
	}

	agentID := query.AgentID
	counts, err := uc.assignmentRepo.CountByState(ctx, &agentID)
	if err != nil {
		uc.logger.Errorw("failed to count agent assignments", "agent_id", query.AgentID, "error", err)
		return nil, err
	}

	byState, total := stateCounts(counts)
	return &AgentStatsResult{
		AgentID: query.AgentID,
		ByState: byState,
		Total:   total,
	}, nil
}

// stateCounts lists every state, zero when absent, and sums them.
func stateCounts(counts map[vo.State]int64) (map[string]int64, int64) {
	out := make(map[string]int64, len(vo.AllStates()))
	var total int64
	for _, s := range vo.AllStates() {
		out[s.String()] = counts[s]
		total += counts[s]
	}
	return out, total
}
