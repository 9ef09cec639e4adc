package assignment

import (
	"context"

	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/query"
)

// AgentAssignmentFilter selects one agent's assignments.
type AgentAssignmentFilter struct {
	query.PageFilter
	AgentID uint
	State   *vo.State
}

// WithRecord is the agent work-list row: the assignment plus the record it points at.
type WithRecord struct {
	Assignment *Assignment
	Record     *record.Record
}

type Repository interface {
	// CreateBatch inserts every assignment in one statement and sets their IDs.
	CreateBatch(ctx context.Context, assignments []*Assignment) error
	// GetByID returns nil, nil when the assignment does not exist.
	GetByID(ctx context.Context, id uint) (*Assignment, error)
	// Update writes a only while the stored state still equals expected.
	// A row that moved on in the meantime yields an invalid_state error.
	Update(ctx context.Context, a *Assignment, expected vo.State) error
	ListFinalizedByAgent(ctx context.Context, agentID uint) ([]*Assignment, error)
	ListAllByAgent(ctx context.Context, agentID uint) ([]*Assignment, error)
	CountActiveByAgent(ctx context.Context, agentID uint) (int64, error)
	CountPendingByAgents(ctx context.Context, agentIDs []uint) (map[uint]int64, error)
	ListByAgent(ctx context.Context, filter AgentAssignmentFilter) ([]*WithRecord, int64, error)
	// CountByState counts all assignments, or one agent's when agentID is set.
	CountByState(ctx context.Context, agentID *uint) (map[vo.State]int64, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, entry *OutcomeHistoryEntry) error
	// ListByRecord returns entries oldest first.
	ListByRecord(ctx context.Context, recordID uint) ([]*OutcomeHistoryEntry, error)
	DeleteAll(ctx context.Context) (int64, error)
}
