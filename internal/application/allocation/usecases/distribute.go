package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils/setutil"
)

const poolExhaustedMessage = "pool exhausted"

type AllocationRequest struct {
	AgentID  uint
	Quantity int
}

type DistributeCommand struct {
	Requests []AllocationRequest
}

type AgentAllocation struct {
	AgentID             uint
	Requested           int
	Distributed         int
	Shortfall           int
	AssignedIdentifiers []string
	Error               string
}

type DistributeResult struct {
	BatchID          string
	DistributedTotal int
	PerAgent         []AgentAllocation
}

type DistributeUseCase struct {
	recordRepo     record.Repository
	assignmentRepo assignment.Repository
	agentRepo      agent.Repository
	txMgr          TransactionRunner
	guard          *PoolGuard
	recorder       DistributionRecorder
	logger         logger.Interface
}

func NewDistributeUseCase(
	recordRepo record.Repository,
	assignmentRepo assignment.Repository,
	agentRepo agent.Repository,
	txMgr TransactionRunner,
	guard *PoolGuard,
	recorder DistributionRecorder,
	logger logger.Interface,
) *DistributeUseCase {
	return &DistributeUseCase{
		recordRepo:     recordRepo,
		assignmentRepo: assignmentRepo,
		agentRepo:      agentRepo,
		txMgr:          txMgr,
		guard:          guard,
		recorder:       recorder,
		logger:         logger,
	}
}

func (uc *DistributeUseCase) Execute(ctx context.Context, cmd DistributeCommand) (*DistributeResult, error) {
	batchID := uuid.New().String()
	uc.logger.Infow("executing distribute use case", "batch_id", batchID, "requests", len(cmd.Requests))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid distribute command", "batch_id", batchID, "error", err)
		return nil, err
	}

	if err := uc.ensureAgentsActive(ctx, cmd.Requests); err != nil {
		return nil, err
	}

	requested := 0
	for _, req := range cmd.Requests {
		requested += req.Quantity
	}

	result := &DistributeResult{BatchID: batchID}

	err := uc.guard.Run(func() error {
		return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			available, err := uc.recordRepo.CountAvailable(txCtx)
			if err != nil {
				return err
			}
			if int64(requested) > available {
				return errors.NewInsufficientPoolError(requested, int(available))
			}

			snapshot, err := uc.recordRepo.ListAvailable(txCtx, requested, nil)
			if err != nil {
				return err
			}

			perAgent, assignments, recordIDs, err := slicePool(snapshot, cmd.Requests, batchID, biztime.NowUTC())
			if err != nil {
				return err
			}
			result.PerAgent = perAgent
			result.DistributedTotal = len(recordIDs)

			if len(recordIDs) == 0 {
				return nil
			}
			return claimRecords(txCtx, uc.recordRepo, uc.assignmentRepo, recordIDs, assignments)
		})
	})
	if err != nil {
		uc.logger.Errorw("distribution failed", "batch_id", batchID, "requested", requested, "error", err)
		return nil, err
	}

	uc.recorder.AddRecordsDistributed(result.DistributedTotal)

	uc.logger.Infow("distribution completed",
		"batch_id", batchID,
		"requested", requested,
		"distributed", result.DistributedTotal,
	)
	return result, nil
}

func (uc *DistributeUseCase) validateCommand(cmd DistributeCommand) error {
	if len(cmd.Requests) == 0 {
		return errors.NewValidationError("at least one allocation request is required")
	}

	seen := setutil.NewUintSetWithCap(len(cmd.Requests))
	for _, req := range cmd.Requests {
		if req.AgentID == 0 {
			return errors.NewValidationError("agent ID is required")
		}
		if req.Quantity <= 0 {
			return errors.NewValidationError("quantity must be greater than zero", fmt.Sprintf("agent %d", req.AgentID))
		}
		if !seen.Add(req.AgentID) {
			return errors.NewValidationError("agent appears more than once", fmt.Sprintf("agent %d", req.AgentID))
		}
	}
	return nil
}

func (uc *DistributeUseCase) ensureAgentsActive(ctx context.Context, requests []AllocationRequest) error {
	ids := make([]uint, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.AgentID)
	}

	agents, err := uc.agentRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load agents", "error", err)
		return err
	}

	for _, id := range ids {
		a, ok := agents[id]
		if !ok || a == nil || !a.IsActive() {
			return errors.NewNotFoundError("agent not found or inactive", fmt.Sprintf("agent %d", id))
		}
	}
	return nil
}

// slicePool walks the snapshot in order. Each request takes the next
// min(quantity, remaining) records; whatever it could not get is a shortfall.
func slicePool(
	snapshot []*record.Record,
	requests []AllocationRequest,
	batchID string,
	now time.Time,
) ([]AgentAllocation, []*assignment.Assignment, []uint, error) {
	perAgent := make([]AgentAllocation, 0, len(requests))
	assignments := make([]*assignment.Assignment, 0, len(snapshot))
	recordIDs := make([]uint, 0, len(snapshot))

	cursor := 0
	for _, req := range requests {
		take := min(req.Quantity, len(snapshot)-cursor)
		slice := snapshot[cursor : cursor+take]
		cursor += take

		alloc := AgentAllocation{
			AgentID:             req.AgentID,
			Requested:           req.Quantity,
			Distributed:         take,
			AssignedIdentifiers: make([]string, 0, take),
		}
		if take < req.Quantity {
			alloc.Shortfall = req.Quantity - take
			alloc.Error = poolExhaustedMessage
		}

		for _, r := range slice {
			a, err := assignment.NewAssignment(req.AgentID, r.ID(), batchID, now)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to build assignment for record %d: %w", r.ID(), err)
			}
			assignments = append(assignments, a)
			recordIDs = append(recordIDs, r.ID())
			alloc.AssignedIdentifiers = append(alloc.AssignedIdentifiers, r.Identifier().String())
		}
		perAgent = append(perAgent, alloc)
	}

	return perAgent, assignments, recordIDs, nil
}

// claimRecords flips recordIDs to assigned and inserts their assignments.
// A flip count that differs from len(recordIDs) means another writer got
// there first; the caller's transaction is rolled back.
func claimRecords(
	ctx context.Context,
	recordRepo record.Repository,
	assignmentRepo assignment.Repository,
	recordIDs []uint,
	assignments []*assignment.Assignment,
) error {
	flipped, err := recordRepo.TransitionAllocation(ctx, recordIDs, record.AllocationAvailable, record.AllocationAssigned)
	if err != nil {
		return err
	}
	if flipped != int64(len(recordIDs)) {
		return errors.NewConflictError("pool changed during distribution",
			fmt.Sprintf("expected %d available records, flipped %d", len(recordIDs), flipped))
	}
	return assignmentRepo.CreateBatch(ctx, assignments)
}
