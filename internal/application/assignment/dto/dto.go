package dto

import (
	"time"

	commondto "dialpool/internal/application/common/dto"
	"dialpool/internal/domain/assignment"
)

type AssignmentDTO struct {
	ID         uint                 `json:"id"`
	AgentID    uint                 `json:"agent_id"`
	BatchID    string               `json:"batch_id"`
	State      string               `json:"state"`
	Annotation *string              `json:"annotation"`
	AssignedAt time.Time            `json:"assigned_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	Record     *commondto.RecordDTO `json:"record,omitempty"`
}

type HistoryEntryDTO struct {
	ID            uint      `json:"id"`
	AgentID       uint      `json:"agent_id"`
	AssignmentID  uint      `json:"assignment_id"`
	PreviousState string    `json:"previous_state"`
	NewState      string    `json:"new_state"`
	Annotation    *string   `json:"annotation"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToAssignmentDTO(a *assignment.Assignment) *AssignmentDTO {
	if a == nil {
		return nil
	}

	return &AssignmentDTO{
		ID:         a.ID(),
		AgentID:    a.AgentID(),
		BatchID:    a.BatchID(),
		State:      a.State().String(),
		Annotation: a.Annotation(),
		AssignedAt: a.AssignedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func ToAssignmentWithRecordDTO(w *assignment.WithRecord) *AssignmentDTO {
	if w == nil {
		return nil
	}

	out := ToAssignmentDTO(w.Assignment)
	if out != nil {
		out.Record = commondto.ToRecordDTO(w.Record)
	}
	return out
}

func ToHistoryEntryDTO(e *assignment.OutcomeHistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:            e.ID,
		AgentID:       e.AgentID,
		AssignmentID:  e.AssignmentID,
		PreviousState: e.PreviousState.String(),
		NewState:      e.NewState.String(),
		Annotation:    e.Annotation,
		CreatedAt:     e.CreatedAt,
	}
}
