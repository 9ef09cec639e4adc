package usecases

import (
	"context"

	"dialpool/internal/application/assignment/dto"
)

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.AssignmentDTO, error)
}

type GetAgentStatsExecutor interface {
	Execute(ctx context.Context, query GetAgentStatsQuery) (*AgentStatsResult, error)
}

type GetGlobalStatsExecutor interface {
	Execute(ctx context.Context) (*GlobalStatsResult, error)
}

type ListAgentAssignmentsExecutor interface {
	Execute(ctx context.Context, query ListAgentAssignmentsQuery) (*ListAgentAssignmentsResult, error)
}

type GetHistoryExecutor interface {
	Execute(ctx context.Context, query GetHistoryQuery) ([]dto.HistoryEntryDTO, error)
}

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
