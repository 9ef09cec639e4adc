package usecases

import "context"

type DistributeExecutor interface {
	Execute(ctx context.Context, cmd DistributeCommand) (*DistributeResult, error)
}

type RenewExecutor interface {
	Execute(ctx context.Context, cmd RenewCommand) (*RenewResult, error)
}

type DeleteAgentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAgentCommand) (*DeleteAgentResult, error)
}

type ListActiveAgentsExecutor interface {
	Execute(ctx context.Context) ([]*AgentSummary, error)
}

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DistributionRecorder counts records handed to agents.
type DistributionRecorder interface {
	AddRecordsDistributed(n int)
}
