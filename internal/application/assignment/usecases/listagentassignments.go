package usecases

import (
	"context"
	"fmt"

	"dialpool/internal/application/assignment/dto"
	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/query"
)

type ListAgentAssignmentsQuery struct {
	AgentID uint
	// State is optional; empty lists every state.
	State string
	Page  query.PageFilter
}

type ListAgentAssignmentsResult struct {
	Items []*dto.AssignmentDTO
	Total int64
	Page  query.PageFilter
}

type ListAgentAssignmentsUseCase struct {
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewListAgentAssignmentsUseCase(assignmentRepo assignment.Repository, logger logger.Interface) *ListAgentAssignmentsUseCase {
	return &ListAgentAssignmentsUseCase{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListAgentAssignmentsUseCase) Execute(ctx context.Context, q ListAgentAssignmentsQuery) (*ListAgentAssignmentsResult, error) {
	if q.AgentID == 0 {
		return nil, errors.NewValidationError("agent ID is required")
	}

	filter := assignment.AgentAssignmentFilter{
		PageFilter: q.Page,
		AgentID:    q.AgentID,
	}
	if q.State != "" {
		state, err := vo.NewState(q.State)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid state filter %q", q.State))
		}
		filter.State = &state
	}

	rows, total, err := uc.assignmentRepo.ListByAgent(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list agent assignments", "agent_id", q.AgentID, "error", err)
		return nil, err
	}

	items := make([]*dto.AssignmentDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ToAssignmentWithRecordDTO(row))
	}

	return &ListAgentAssignmentsResult{
		Items: items,
		Total: total,
		Page:  q.Page.Normalized(),
	}, nil
}
