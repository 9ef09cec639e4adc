package usecases

import (
	"context"
	"sync"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/logger"
)

type mockRecordRepository struct {
	InsertIgnoringDuplicatesFunc         func(ctx context.Context, records []*record.Record) (int64, error)
	GetByIDFunc                          func(ctx context.Context, id uint) (*record.Record, error)
	FindByIdentifiersFunc                func(ctx context.Context, identifiers []record.Identifier) ([]*record.Record, error)
	ExistingIdentifiersFunc              func(ctx context.Context, identifiers []record.Identifier) (map[record.Identifier]bool, error)
	ListIdentifiersNeedingEnrichmentFunc func(ctx context.Context) ([]record.Identifier, error)
	UpdateEnrichmentFunc                 func(ctx context.Context, r *record.Record) error
	ListFunc                             func(ctx context.Context, filter record.Filter) ([]*record.ListItem, int64, error)
	CountAvailableFunc                   func(ctx context.Context) (int64, error)
	ListAvailableFunc                    func(ctx context.Context, limit int, excludeIDs []uint) ([]*record.Record, error)
	TransitionAllocationFunc             func(ctx context.Context, ids []uint, from, to record.AllocationStatus) (int64, error)
	CountFunc                            func(ctx context.Context) (int64, error)
	CountByAllocationStatusFunc          func(ctx context.Context) (map[record.AllocationStatus]int64, error)
	CountByEnrichmentStatusFunc          func(ctx context.Context) (map[record.EnrichmentStatus]int64, error)
	DeleteAllFunc                        func(ctx context.Context) (int64, error)
}

func (m *mockRecordRepository) InsertIgnoringDuplicates(ctx context.Context, records []*record.Record) (int64, error) {
	if m.InsertIgnoringDuplicatesFunc != nil {
		return m.InsertIgnoringDuplicatesFunc(ctx, records)
	}
	return int64(len(records)), nil
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id uint) (*record.Record, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecordRepository) FindByIdentifiers(ctx context.Context, identifiers []record.Identifier) ([]*record.Record, error) {
	if m.FindByIdentifiersFunc != nil {
		return m.FindByIdentifiersFunc(ctx, identifiers)
	}
	return nil, nil
}

func (m *mockRecordRepository) ExistingIdentifiers(ctx context.Context, identifiers []record.Identifier) (map[record.Identifier]bool, error) {
	if m.ExistingIdentifiersFunc != nil {
		return m.ExistingIdentifiersFunc(ctx, identifiers)
	}
	return map[record.Identifier]bool{}, nil
}

func (m *mockRecordRepository) ListIdentifiersNeedingEnrichment(ctx context.Context) ([]record.Identifier, error) {
	if m.ListIdentifiersNeedingEnrichmentFunc != nil {
		return m.ListIdentifiersNeedingEnrichmentFunc(ctx)
	}
	return nil, nil
}

func (m *mockRecordRepository) UpdateEnrichment(ctx context.Context, r *record.Record) error {
	if m.UpdateEnrichmentFunc != nil {
		return m.UpdateEnrichmentFunc(ctx, r)
	}
	return nil
}

func (m *mockRecordRepository) List(ctx context.Context, filter record.Filter) ([]*record.ListItem, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRecordRepository) CountAvailable(ctx context.Context) (int64, error) {
	if m.CountAvailableFunc != nil {
		return m.CountAvailableFunc(ctx)
	}
	return 0, nil
}

func (m *mockRecordRepository) ListAvailable(ctx context.Context, limit int, excludeIDs []uint) ([]*record.Record, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx, limit, excludeIDs)
	}
	return nil, nil
}

func (m *mockRecordRepository) TransitionAllocation(ctx context.Context, ids []uint, from, to record.AllocationStatus) (int64, error) {
	if m.TransitionAllocationFunc != nil {
		return m.TransitionAllocationFunc(ctx, ids, from, to)
	}
	return int64(len(ids)), nil
}

func (m *mockRecordRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockRecordRepository) CountByAllocationStatus(ctx context.Context) (map[record.AllocationStatus]int64, error) {
	if m.CountByAllocationStatusFunc != nil {
		return m.CountByAllocationStatusFunc(ctx)
	}
	return map[record.AllocationStatus]int64{}, nil
}

func (m *mockRecordRepository) CountByEnrichmentStatus(ctx context.Context) (map[record.EnrichmentStatus]int64, error) {
	if m.CountByEnrichmentStatusFunc != nil {
		return m.CountByEnrichmentStatusFunc(ctx)
	}
	return map[record.EnrichmentStatus]int64{}, nil
}

func (m *mockRecordRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return 0, nil
}

type mockAssignmentRepository struct {
	CreateBatchFunc          func(ctx context.Context, assignments []*assignment.Assignment) error
	GetByIDFunc              func(ctx context.Context, id uint) (*assignment.Assignment, error)
	UpdateFunc               func(ctx context.Context, a *assignment.Assignment, expected vo.State) error
	ListFinalizedByAgentFunc func(ctx context.Context, agentID uint) ([]*assignment.Assignment, error)
	ListAllByAgentFunc       func(ctx context.Context, agentID uint) ([]*assignment.Assignment, error)
	CountActiveByAgentFunc   func(ctx context.Context, agentID uint) (int64, error)
	CountPendingByAgentsFunc func(ctx context.Context, agentIDs []uint) (map[uint]int64, error)
	ListByAgentFunc          func(ctx context.Context, filter assignment.AgentAssignmentFilter) ([]*assignment.WithRecord, int64, error)
	CountByStateFunc         func(ctx context.Context, agentID *uint) (map[vo.State]int64, error)
	DeleteByIDsFunc          func(ctx context.Context, ids []uint) (int64, error)
	DeleteAllFunc            func(ctx context.Context) (int64, error)
}

func (m *mockAssignmentRepository) CreateBatch(ctx context.Context, assignments []*assignment.Assignment) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, assignments)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment, expected vo.State) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a, expected)
	}
	return nil
}

func (m *mockAssignmentRepository) ListFinalizedByAgent(ctx context.Context, agentID uint) ([]*assignment.Assignment, error) {
	if m.ListFinalizedByAgentFunc != nil {
		return m.ListFinalizedByAgentFunc(ctx, agentID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListAllByAgent(ctx context.Context, agentID uint) ([]*assignment.Assignment, error) {
	if m.ListAllByAgentFunc != nil {
		return m.ListAllByAgentFunc(ctx, agentID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) CountActiveByAgent(ctx context.Context, agentID uint) (int64, error) {
	if m.CountActiveByAgentFunc != nil {
		return m.CountActiveByAgentFunc(ctx, agentID)
	}
	return 0, nil
}

func (m *mockAssignmentRepository) CountPendingByAgents(ctx context.Context, agentIDs []uint) (map[uint]int64, error) {
	if m.CountPendingByAgentsFunc != nil {
		return m.CountPendingByAgentsFunc(ctx, agentIDs)
	}
	return map[uint]int64{}, nil
}

func (m *mockAssignmentRepository) ListByAgent(ctx context.Context, filter assignment.AgentAssignmentFilter) ([]*assignment.WithRecord, int64, error) {
	if m.ListByAgentFunc != nil {
		return m.ListByAgentFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssignmentRepository) CountByState(ctx context.Context, agentID *uint) (map[vo.State]int64, error) {
	if m.CountByStateFunc != nil {
		return m.CountByStateFunc(ctx, agentID)
	}
	return map[vo.State]int64{}, nil
}

func (m *mockAssignmentRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if m.DeleteByIDsFunc != nil {
		return m.DeleteByIDsFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (m *mockAssignmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return 0, nil
}

type mockAgentRepository struct {
	CreateFunc        func(ctx context.Context, a *agent.Agent) error
	UpdateFunc        func(ctx context.Context, a *agent.Agent) error
	GetByIDFunc       func(ctx context.Context, id uint) (*agent.Agent, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*agent.Agent, error)
	GetByIDsFunc      func(ctx context.Context, ids []uint) (map[uint]*agent.Agent, error)
	ListActiveFunc    func(ctx context.Context) ([]*agent.Agent, error)
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockAgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAgentRepository) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAgentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*agent.Agent, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*agent.Agent{}, nil
}

func (m *mockAgentRepository) ListActive(ctx context.Context) ([]*agent.Agent, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockAgentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTxRunner runs fn inline. Calls counts how many transactions were opened.
type mockTxRunner struct {
	Calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

type mockRecorder struct {
	mu          sync.Mutex
	distributed int
}

func (m *mockRecorder) AddRecordsDistributed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distributed += n
}

func newMockLogger() logger.Interface {
	return logger.NewNop()
}
