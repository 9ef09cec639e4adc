package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dialpool/internal/domain/agent"
)

func TestListActiveAgentsUseCase_Execute(t *testing.T) {
	agentRepo := &mockAgentRepository{
		ListActiveFunc: func(ctx context.Context) ([]*agent.Agent, error) {
			return []*agent.Agent{newTestAgent(t, 1, true, 200), newTestAgent(t, 2, true, 50)}, nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		CountPendingByAgentsFunc: func(ctx context.Context, ids []uint) (map[uint]int64, error) {
			assert.Equal(t, []uint{1, 2}, ids)
			return map[uint]int64{1: 12, 2: 0}, nil
		},
	}

	summaries, err := NewListActiveAgentsUseCase(agentRepo, assignmentRepo, newMockLogger()).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "agent1", summaries[0].Username)
	assert.Equal(t, 200, summaries[0].DailyQuota)
	assert.Equal(t, int64(12), summaries[0].PendingCount)
	assert.Equal(t, int64(0), summaries[1].PendingCount)
}

func TestListActiveAgentsUseCase_Execute_RepositoryError(t *testing.T) {
	agentRepo := &mockAgentRepository{
		ListActiveFunc: func(ctx context.Context) ([]*agent.Agent, error) {
			return nil, errors.New("db down")
		},
	}

	_, err := NewListActiveAgentsUseCase(agentRepo, &mockAssignmentRepository{}, newMockLogger()).Execute(context.Background())
	assert.Error(t, err)
}
