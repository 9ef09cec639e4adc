package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

// RenewCommand serves both agent self-service renew and admin reclaim.
type RenewCommand struct {
	AgentID uint
}

type RenewResult struct {
	BatchID             string
	Reclaimed           int
	Redistributed       int
	AssignedIdentifiers []string
}

type RenewUseCase struct {
	recordRepo     record.Repository
	assignmentRepo assignment.Repository
	agentRepo      agent.Repository
	txMgr          TransactionRunner
	guard          *PoolGuard
	recorder       DistributionRecorder
	logger         logger.Interface
}

func NewRenewUseCase(
	recordRepo record.Repository,
	assignmentRepo assignment.Repository,
	agentRepo agent.Repository,
	txMgr TransactionRunner,
	guard *PoolGuard,
	recorder DistributionRecorder,
	logger logger.Interface,
) *RenewUseCase {
	return &RenewUseCase{
		recordRepo:     recordRepo,
		assignmentRepo: assignmentRepo,
		agentRepo:      agentRepo,
		txMgr:          txMgr,
		guard:          guard,
		recorder:       recorder,
		logger:         logger,
	}
}

func (uc *RenewUseCase) Execute(ctx context.Context, cmd RenewCommand) (*RenewResult, error) {
	uc.logger.Infow("executing renew use case", "agent_id", cmd.AgentID)

	if cmd.AgentID == 0 {
		return nil, errors.NewValidationError("agent ID is required")
	}

	a, err := uc.agentRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		uc.logger.Errorw("failed to get agent", "agent_id", cmd.AgentID, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("agent not found", fmt.Sprintf("agent %d", cmd.AgentID))
	}

	result := &RenewResult{
		BatchID:             uuid.New().String(),
		AssignedIdentifiers: []string{},
	}

	err = uc.guard.Run(func() error {
		return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			reclaimedIDs, err := uc.reclaim(txCtx, a.ID())
			if err != nil {
				return err
			}
			result.Reclaimed = len(reclaimedIDs)
			if result.Reclaimed == 0 || !a.IsActive() {
				return nil
			}
			return uc.backfill(txCtx, a, reclaimedIDs, result)
		})
	})
	if err != nil {
		uc.logger.Errorw("renew failed", "agent_id", cmd.AgentID, "error", err)
		return nil, err
	}

	uc.recorder.AddRecordsDistributed(result.Redistributed)

	uc.logger.Infow("renew completed",
		"agent_id", cmd.AgentID,
		"batch_id", result.BatchID,
		"reclaimed", result.Reclaimed,
		"redistributed", result.Redistributed,
	)
	return result, nil
}

// reclaim deletes the agent's finalized assignments and returns their
// records to the pool. It returns the reclaimed record IDs.
func (uc *RenewUseCase) reclaim(ctx context.Context, agentID uint) ([]uint, error) {
	finalized, err := uc.assignmentRepo.ListFinalizedByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if len(finalized) == 0 {
		return nil, nil
	}

	assignmentIDs := make([]uint, 0, len(finalized))
	recordIDs := make([]uint, 0, len(finalized))
	for _, asg := range finalized {
		assignmentIDs = append(assignmentIDs, asg.ID())
		recordIDs = append(recordIDs, asg.RecordID())
	}

	if _, err := uc.assignmentRepo.DeleteByIDs(ctx, assignmentIDs); err != nil {
		return nil, err
	}

	released, err := uc.recordRepo.TransitionAllocation(ctx, recordIDs, record.AllocationAssigned, record.AllocationAvailable)
	if err != nil {
		return nil, err
	}
	if released != int64(len(recordIDs)) {
		return nil, errors.NewConflictError("records changed during reclaim",
			fmt.Sprintf("expected %d assigned records, released %d", len(recordIDs), released))
	}
	return recordIDs, nil
}

// backfill tops the agent back up to its daily quota from the refreshed
// pool. Records other than the ones just reclaimed from the agent go first;
// the reclaimed ones only fill what is left. A partial fill is fine.
func (uc *RenewUseCase) backfill(ctx context.Context, a *agent.Agent, reclaimedIDs []uint, result *RenewResult) error {
	remaining, err := uc.assignmentRepo.CountActiveByAgent(ctx, a.ID())
	if err != nil {
		return err
	}

	target := a.DailyQuota() - int(remaining)
	if target <= 0 {
		return nil
	}

	candidates, err := uc.recordRepo.ListAvailable(ctx, target, reclaimedIDs)
	if err != nil {
		return err
	}
	if short := target - len(candidates); short > 0 {
		taken := make([]uint, 0, len(candidates))
		for _, r := range candidates {
			taken = append(taken, r.ID())
		}
		topUp, err := uc.recordRepo.ListAvailable(ctx, short, taken)
		if err != nil {
			return err
		}
		candidates = append(candidates, topUp...)
	}
	if len(candidates) == 0 {
		return nil
	}

	perAgent, assignments, recordIDs, err := slicePool(
		candidates,
		[]AllocationRequest{{AgentID: a.ID(), Quantity: len(candidates)}},
		result.BatchID,
		biztime.NowUTC(),
	)
	if err != nil {
		return err
	}
	if err := claimRecords(ctx, uc.recordRepo, uc.assignmentRepo, recordIDs, assignments); err != nil {
		return err
	}

	result.Redistributed = len(recordIDs)
	result.AssignedIdentifiers = perAgent[0].AssignedIdentifiers
	return nil
}
