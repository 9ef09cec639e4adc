package assignment

import (
	"time"

	vo "dialpool/internal/domain/assignment/valueobjects"
)

// OutcomeHistoryEntry is an append-only log line written once per state change.
type OutcomeHistoryEntry struct {
	ID            uint
	AgentID       uint
	RecordID      uint
	AssignmentID  uint
	PreviousState vo.State
	NewState      vo.State
	Annotation    *string
	CreatedAt     time.Time
}

func NewOutcomeHistoryEntry(a *Assignment, previous vo.State, now time.Time) *OutcomeHistoryEntry {
	var annotation *string
	if a.annotation != nil {
		v := *a.annotation
		annotation = &v
	}

	return &OutcomeHistoryEntry{
		AgentID:       a.agentID,
		RecordID:      a.recordID,
		AssignmentID:  a.id,
		PreviousState: previous,
		NewState:      a.state,
		Annotation:    annotation,
		CreatedAt:     now,
	}
}
