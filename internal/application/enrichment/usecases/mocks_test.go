package usecases

import (
	"context"

	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/infrastructure/registry"
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

type mockHistoryRepository struct {
	AppendFunc       func(ctx context.Context, entry *assignment.OutcomeHistoryEntry) error
	ListByRecordFunc func(ctx context.Context, recordID uint) ([]*assignment.OutcomeHistoryEntry, error)
	DeleteAllFunc    func(ctx context.Context) (int64, error)

	appended []*assignment.OutcomeHistoryEntry
}

func (m *mockHistoryRepository) Append(ctx context.Context, entry *assignment.OutcomeHistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	m.appended = append(m.appended, entry)
	return nil
}

func (m *mockHistoryRepository) ListByRecord(ctx context.Context, recordID uint) ([]*assignment.OutcomeHistoryEntry, error) {
	if m.ListByRecordFunc != nil {
		return m.ListByRecordFunc(ctx, recordID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return 0, nil
}

// mockTxRunner runs fn inline. Calls counts how many transactions were opened.
type mockTxRunner struct {
	Calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

type mockEnricher struct {
	EnrichBatchFunc func(ctx context.Context, identifiers []record.Identifier) []record.EnrichmentOutcome

	calls [][]record.Identifier
}

func (m *mockEnricher) EnrichBatch(ctx context.Context, identifiers []record.Identifier) []record.EnrichmentOutcome {
	m.calls = append(m.calls, identifiers)
	if m.EnrichBatchFunc != nil {
		return m.EnrichBatchFunc(ctx, identifiers)
	}
	out := make([]record.EnrichmentOutcome, 0, len(identifiers))
	for _, id := range identifiers {
		out = append(out, record.EnrichmentOutcome{
			Identifier: id,
			Enrichment: &record.Enrichment{LegalName: "EMPRESA " + id.String(), RegistrationStatus: "Ativa"},
		})
	}
	return out
}

type mockPoolLocker struct {
	runs int
}

func (m *mockPoolLocker) Run(fn func() error) error {
	m.runs++
	return fn()
}

type mockRegistryCache struct {
	CacheStatsFunc func(ctx context.Context) (registry.CacheStats, error)
	ClearCacheFunc func(ctx context.Context) error
}

func (m *mockRegistryCache) CacheStats(ctx context.Context) (registry.CacheStats, error) {
	if m.CacheStatsFunc != nil {
		return m.CacheStatsFunc(ctx)
	}
	return registry.CacheStats{}, nil
}

func (m *mockRegistryCache) ClearCache(ctx context.Context) error {
	if m.ClearCacheFunc != nil {
		return m.ClearCacheFunc(ctx)
	}
	return nil
}
