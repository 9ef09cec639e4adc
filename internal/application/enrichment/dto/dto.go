package dto

import (
	"time"

	commondto "dialpool/internal/application/common/dto"
	"dialpool/internal/domain/record"
)

type CurrentAssignmentDTO struct {
	AssignmentID uint      `json:"assignment_id"`
	AgentID      uint      `json:"agent_id"`
	AgentName    string    `json:"agent_name"`
	State        string    `json:"state"`
	Annotation   *string   `json:"annotation"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// RecordListItemDTO is one row of the admin record listing.
type RecordListItemDTO struct {
	commondto.RecordDTO
	Assignment *CurrentAssignmentDTO `json:"assignment"`
}

func ToRecordListItemDTO(item *record.ListItem) *RecordListItemDTO {
	if item == nil || item.Record == nil {
		return nil
	}

	out := &RecordListItemDTO{RecordDTO: *commondto.ToRecordDTO(item.Record)}
	if a := item.Assignment; a != nil {
		out.Assignment = &CurrentAssignmentDTO{
			AssignmentID: a.AssignmentID,
			AgentID:      a.AgentID,
			AgentName:    a.AgentName,
			State:        a.State.String(),
			Annotation:   a.Annotation,
			AssignedAt:   a.AssignedAt,
		}
	}
	return out
}
