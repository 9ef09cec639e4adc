package usecases

import (
	"context"
	"fmt"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type DeleteAgentCommand struct {
	AgentID uint
}

type DeleteAgentResult struct {
	AgentID  uint `json:"agent_id"`
	Released int  `json:"released"`
}

// DeleteAgentUseCase removes an agent and hands every record it held,
// finalized or not, back to the pool. Outcome history is kept.
type DeleteAgentUseCase struct {
	recordRepo     record.Repository
	assignmentRepo assignment.Repository
	agentRepo      agent.Repository
	txMgr          TransactionRunner
	guard          *PoolGuard
	logger         logger.Interface
}

func NewDeleteAgentUseCase(
	recordRepo record.Repository,
	assignmentRepo assignment.Repository,
	agentRepo agent.Repository,
	txMgr TransactionRunner,
	guard *PoolGuard,
	logger logger.Interface,
) *DeleteAgentUseCase {
	return &DeleteAgentUseCase{
		recordRepo:     recordRepo,
		assignmentRepo: assignmentRepo,
		agentRepo:      agentRepo,
		txMgr:          txMgr,
		guard:          guard,
		logger:         logger,
	}
}

func (uc *DeleteAgentUseCase) Execute(ctx context.Context, cmd DeleteAgentCommand) (*DeleteAgentResult, error) {
	uc.logger.Infow("executing delete agent use case", "agent_id", cmd.AgentID)

	if cmd.AgentID == 0 {
		return nil, errors.NewValidationError("agent ID is required")
	}

	result := &DeleteAgentResult{AgentID: cmd.AgentID}

	err := uc.guard.Run(func() error {
		return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			a, err := uc.agentRepo.GetByID(txCtx, cmd.AgentID)
			if err != nil {
				return err
			}
			if a == nil {
				return errors.NewNotFoundError("agent not found", fmt.Sprintf("agent %d", cmd.AgentID))
			}

			released, err := uc.release(txCtx, a.ID())
			if err != nil {
				return err
			}
			result.Released = released

			return uc.agentRepo.Delete(txCtx, a.ID())
		})
	})
	if err != nil {
		uc.logger.Errorw("delete agent failed", "agent_id", cmd.AgentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("agent deleted", "agent_id", cmd.AgentID, "released", result.Released)
	return result, nil
}

// release drops all of the agent's assignments and makes their records
// available again.
func (uc *DeleteAgentUseCase) release(ctx context.Context, agentID uint) (int, error) {
	held, err := uc.assignmentRepo.ListAllByAgent(ctx, agentID)
	if err != nil {
		return 0, err
	}
	if len(held) == 0 {
		return 0, nil
	}

	assignmentIDs := make([]uint, 0, len(held))
	recordIDs := make([]uint, 0, len(held))
	for _, asg := range held {
		assignmentIDs = append(assignmentIDs, asg.ID())
		recordIDs = append(recordIDs, asg.RecordID())
	}

	if _, err := uc.assignmentRepo.DeleteByIDs(ctx, assignmentIDs); err != nil {
		return 0, err
	}

	released, err := uc.recordRepo.TransitionAllocation(ctx, recordIDs, record.AllocationAssigned, record.AllocationAvailable)
	if err != nil {
		return 0, err
	}
	if released != int64(len(recordIDs)) {
		return 0, errors.NewConflictError("records changed during agent deletion",
			fmt.Sprintf("expected %d assigned records, released %d", len(recordIDs), released))
	}
	return len(recordIDs), nil
}
