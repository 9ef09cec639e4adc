package usecases

import (
	"context"
	"fmt"
	"strings"

	"dialpool/internal/application/enrichment/dto"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/query"
)

type ListRecordsQuery struct {
	Search           string
	AllocationStatus string
	AssignmentState  string
	Page             query.PageFilter
}

type ListRecordsResult struct {
	Items []*dto.RecordListItemDTO
	Total int64
	Page  query.PageFilter
}

type ListRecordsUseCase struct {
	recordRepo record.Repository
	logger     logger.Interface
}

func NewListRecordsUseCase(recordRepo record.Repository, logger logger.Interface) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

func (uc *ListRecordsUseCase) Execute(ctx context.Context, q ListRecordsQuery) (*ListRecordsResult, error) {
	filter := record.Filter{
		PageFilter: q.Page,
		Search:     strings.TrimSpace(q.Search),
	}

	if q.AllocationStatus != "" {
		status, err := record.ParseAllocationStatus(q.AllocationStatus)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid allocation status %q", q.AllocationStatus))
		}
		filter.AllocationStatus = &status
	}
	if q.AssignmentState != "" {
		state, err := vo.NewState(q.AssignmentState)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid assignment state %q", q.AssignmentState))
		}
		filter.AssignmentState = &state
	}

	items, total, err := uc.recordRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list records", "error", err)
		return nil, err
	}

	out := make([]*dto.RecordListItemDTO, 0, len(items))
	for _, item := range items {
		if d := dto.ToRecordListItemDTO(item); d != nil {
			out = append(out, d)
		}
	}

	return &ListRecordsResult{
		Items: out,
		Total: total,
		Page:  q.Page.Normalized(),
	}, nil
}
