package usecases

import (
	"context"
	"fmt"

	commondto "dialpool/internal/application/common/dto"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type GetRecordQuery struct {
	RecordID uint
}

type GetRecordUseCase struct {
	recordRepo record.Repository
	logger     logger.Interface
}

func NewGetRecordUseCase(recordRepo record.Repository, logger logger.Interface) *GetRecordUseCase {
	return &GetRecordUseCase{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

func (uc *GetRecordUseCase) Execute(ctx context.Context, q GetRecordQuery) (*commondto.RecordDetailDTO, error) {
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
	return commondto.ToRecordDetailDTO(r), nil
}
