package usecases

import (
	"context"

	"dialpool/internal/domain/assignment"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/logger"
)

type PurgeResult struct {
	HistoryDeleted     int64 `json:"history_deleted"`
	AssignmentsDeleted int64 `json:"assignments_deleted"`
	RecordsDeleted     int64 `json:"records_deleted"`
}

// PurgeUseCase wipes every record together with its assignments and history.
type PurgeUseCase struct {
	recordRepo     record.Repository
	assignmentRepo assignment.Repository
	historyRepo    assignment.HistoryRepository
	txMgr          TransactionRunner
	pool           PoolLocker
	logger         logger.Interface
}

func NewPurgeUseCase(
	recordRepo record.Repository,
	assignmentRepo assignment.Repository,
	historyRepo assignment.HistoryRepository,
	txMgr TransactionRunner,
	pool PoolLocker,
	logger logger.Interface,
) *PurgeUseCase {
	return &PurgeUseCase{
		recordRepo:     recordRepo,
		assignmentRepo: assignmentRepo,
		historyRepo:    historyRepo,
		txMgr:          txMgr,
		pool:           pool,
		logger:         logger,
	}
}

func (uc *PurgeUseCase) Execute(ctx context.Context) (*PurgeResult, error) {
	uc.logger.Warnw("executing purge use case")

	result := &PurgeResult{}
	err := uc.pool.Run(func() error {
		return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			var err error
			if result.HistoryDeleted, err = uc.historyRepo.DeleteAll(txCtx); err != nil {
				return err
			}
			if result.AssignmentsDeleted, err = uc.assignmentRepo.DeleteAll(txCtx); err != nil {
				return err
			}
			if result.RecordsDeleted, err = uc.recordRepo.DeleteAll(txCtx); err != nil {
				return err
			}
			return nil
		})
	})
	if err != nil {
		uc.logger.Errorw("purge failed", "error", err)
		return nil, err
	}

	uc.logger.Warnw("purge completed",
		"history_deleted", result.HistoryDeleted,
		"assignments_deleted", result.AssignmentsDeleted,
		"records_deleted", result.RecordsDeleted,
	)
	return result, nil
}
