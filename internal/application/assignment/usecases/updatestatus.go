package usecases

import (
	"context"
	"fmt"

	"dialpool/internal/application/assignment/dto"
	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/services/sanitize"
)

const MaxAnnotationRunes = 1000

type UpdateStatusCommand struct {
	AssignmentID uint
	AgentID      uint
	NewState     string
	// Annotation nil keeps the current annotation.
	Annotation *string
}

type UpdateStatusUseCase struct {
	assignmentRepo assignment.Repository
	historyRepo    assignment.HistoryRepository
	txMgr          TransactionRunner
	sanitizer      sanitize.TextSanitizer
	logger         logger.Interface
}

func NewUpdateStatusUseCase(
	assignmentRepo assignment.Repository,
	historyRepo assignment.HistoryRepository,
	txMgr TransactionRunner,
	sanitizer sanitize.TextSanitizer,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		assignmentRepo: assignmentRepo,
		historyRepo:    historyRepo,
		txMgr:          txMgr,
		sanitizer:      sanitizer,
		logger:         logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.AssignmentDTO, error) {
	uc.logger.Infow("executing update status use case",
		"assignment_id", cmd.AssignmentID,
		"agent_id", cmd.AgentID,
		"new_state", cmd.NewState,
	)

	if cmd.AssignmentID == 0 || cmd.AgentID == 0 {
		return nil, errors.NewValidationError("assignment ID and agent ID are required")
	}

	next := vo.State(cmd.NewState)
	if !next.IsValid() {
		return nil, errors.NewInvalidStateError(fmt.Sprintf("unknown state %q", cmd.NewState))
	}

	annotation := uc.cleanAnnotation(cmd.Annotation)

	var updated *assignment.Assignment
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assignmentRepo.GetByID(txCtx, cmd.AssignmentID)
		if err != nil {
			return err
		}
		// someone else's assignment looks exactly like a missing one
		if a == nil || !a.OwnedBy(cmd.AgentID) {
			return errors.NewNotFoundError("assignment not found", fmt.Sprintf("assignment %d", cmd.AssignmentID))
		}

		previous := a.State()
		entry, err := a.RecordOutcome(next, annotation, biztime.NowUTC())
		if err != nil {
			return err
		}

		if err := uc.assignmentRepo.Update(txCtx, a, previous); err != nil {
			return err
		}
		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		updated = a
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update assignment status",
			"assignment_id", cmd.AssignmentID,
			"agent_id", cmd.AgentID,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("assignment status updated",
		"assignment_id", updated.ID(),
		"record_id", updated.RecordID(),
		"state", updated.State(),
	)
	return dto.ToAssignmentDTO(updated), nil
}

// cleanAnnotation reduces agent input to plain text. Input that sanitizes
// to nothing clears the annotation.
func (uc *UpdateStatusUseCase) cleanAnnotation(in *string) *string {
	if in == nil {
		return nil
	}
	out := uc.sanitizer.PlainText(*in, MaxAnnotationRunes)
	return &out
}
