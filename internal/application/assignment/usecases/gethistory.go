package usecases

import (
	"context"
	"fmt"

	"dialpool/internal/application/assignment/dto"
	"dialpool/internal/domain/assignment"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type GetHistoryQuery struct {
	RecordID uint
}

type GetHistoryUseCase struct {
	recordRepo  record.Repository
	historyRepo assignment.HistoryRepository
	logger      logger.Interface
}

func NewGetHistoryUseCase(
	recordRepo record.Repository,
	historyRepo assignment.HistoryRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		recordRepo:  recordRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, q GetHistoryQuery) ([]dto.HistoryEntryDTO, error) {
	if q.RecordID == 0 {
		return nil, errors.NewValidationError("record ID is required")
	}

	r, err := uc.recordRepo.GetByID(ctx, q.RecordID)
	if err != nil {
		uc.logger.Errorw("failed to get record", "record_id", q.RecordID, "error", err)
		return nil, err
	}
	if r == nil {
		return nil, errors.NewNotFoundError("record not found", fmt.Sprintf("record %d", q.RecordID))
	}

	entries, err := uc.historyRepo.ListByRecord(ctx, q.RecordID)
	if err != nil {
		uc.logger.Errorw("failed to list outcome history", "record_id", q.RecordID, "error", err)
		return nil, err
	}

	out := make([]dto.HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToHistoryEntryDTO(e))
	}
	return out, nil
}
