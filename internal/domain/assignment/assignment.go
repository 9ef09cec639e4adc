package assignment

import (
	"fmt"
	"time"

	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/shared/errors"
)

// Assignment binds one record to one agent.
type Assignment struct {
	id         uint
	agentID    uint
	recordID   uint
	batchID    string
	state      vo.State
	annotation *string
	assignedAt time.Time
	updatedAt  time.Time
}

func NewAssignment(agentID, recordID uint, batchID string, now time.Time) (*Assignment, error) {
	if agentID == 0 {
		return nil, fmt.Errorf("agent ID is required")
	}
	if recordID == 0 {
		return nil, fmt.Errorf("record ID is required")
	}

	return &Assignment{
		agentID:    agentID,
		recordID:   recordID,
		batchID:    batchID,
		state:      vo.StatePending,
		assignedAt: now,
		updatedAt:  now,
	}, nil
}

func ReconstructAssignment(
	id uint,
	agentID uint,
	recordID uint,
	batchID string,
	state vo.State,
	annotation *string,
	assignedAt, updatedAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid assignment state: %s", state)
	}

	return &Assignment{
		id:         id,
		agentID:    agentID,
		recordID:   recordID,
		batchID:    batchID,
		state:      state,
		annotation: annotation,
		assignedAt: assignedAt,
		updatedAt:  updatedAt,
	}, nil
}

func (a *Assignment) ID() uint              { return a.id }
func (a *Assignment) AgentID() uint         { return a.agentID }
func (a *Assignment) RecordID() uint        { return a.recordID }
func (a *Assignment) BatchID() string       { return a.batchID }
func (a *Assignment) State() vo.State       { return a.state }
func (a *Assignment) Annotation() *string   { return a.annotation }
func (a *Assignment) AssignedAt() time.Time { return a.assignedAt }
func (a *Assignment) UpdatedAt() time.Time  { return a.updatedAt }

func (a *Assignment) SetID(id uint) {
	a.id = id
}

func (a *Assignment) IsFinalized() bool {
	return a.state.IsFinal()
}

func (a *Assignment) OwnedBy(agentID uint) bool {
	return a.agentID == agentID
}

// RecordOutcome moves the assignment to a final state and returns the
// history entry describing the transition. A nil annotation keeps the
// current one.
func (a *Assignment) RecordOutcome(next vo.State, annotation *string, now time.Time) (*OutcomeHistoryEntry, error) {
	if !next.IsValid() {
		return nil, errors.NewInvalidStateError(fmt.Sprintf("unknown state %q", next))
	}
	if !a.state.CanTransitionTo(next) {
		return nil, errors.NewInvalidStateError(
			fmt.Sprintf("cannot change state from %s to %s", a.state, next))
	}

	previous := a.state
	a.state = next
	if annotation != nil {
		a.annotation = annotation
	}
	a.updatedAt = now

	return NewOutcomeHistoryEntry(a, previous, now), nil
}
