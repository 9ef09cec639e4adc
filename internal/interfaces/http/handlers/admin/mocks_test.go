package admin

import (
	"context"

	agentUsecases "dialpool/internal/application/agent/usecases"
	allocationUsecases "dialpool/internal/application/allocation/usecases"
	assignmentdto "dialpool/internal/application/assignment/dto"
	assignmentUsecases "dialpool/internal/application/assignment/usecases"
	commondto "dialpool/internal/application/common/dto"
	enrichmentUsecases "dialpool/internal/application/enrichment/usecases"
	"dialpool/internal/infrastructure/registry"
)

type mockDistributeUC struct {
	result *allocationUsecases.DistributeResult
	err    error
	got    allocationUsecases.DistributeCommand
}

func (m *mockDistributeUC) Execute(_ context.Context, cmd allocationUsecases.DistributeCommand) (*allocationUsecases.DistributeResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRenewUC struct {
	result *allocationUsecases.RenewResult
	err    error
	got    allocationUsecases.RenewCommand
}

func (m *mockRenewUC) Execute(_ context.Context, cmd allocationUsecases.RenewCommand) (*allocationUsecases.RenewResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListActiveAgentsUC struct {
	result []*allocationUsecases.AgentSummary
	err    error
}

func (m *mockListActiveAgentsUC) Execute(_ context.Context) ([]*allocationUsecases.AgentSummary, error) {
	return m.result, m.err
}

type mockCreateAgentUC struct {
	result *agentUsecases.AgentResult
	err    error
	got    agentUsecases.CreateAgentCommand
}

func (m *mockCreateAgentUC) Execute(_ context.Context, cmd agentUsecases.CreateAgentCommand) (*agentUsecases.AgentResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateAgentUC struct {
	result *agentUsecases.AgentResult
	err    error
	got    agentUsecases.UpdateAgentCommand
}

func (m *mockUpdateAgentUC) Execute(_ context.Context, cmd agentUsecases.UpdateAgentCommand) (*agentUsecases.AgentResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteAgentUC struct {
	result *allocationUsecases.DeleteAgentResult
	err    error
	got    allocationUsecases.DeleteAgentCommand
}

func (m *mockDeleteAgentUC) Execute(_ context.Context, cmd allocationUsecases.DeleteAgentCommand) (*allocationUsecases.DeleteAgentResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockAgentStatsUC struct {
	result *assignmentUsecases.AgentStatsResult
	err    error
	got    assignmentUsecases.GetAgentStatsQuery
}

func (m *mockAgentStatsUC) Execute(_ context.Context, q assignmentUsecases.GetAgentStatsQuery) (*assignmentUsecases.AgentStatsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockListRecordsUC struct {
	result *enrichmentUsecases.ListRecordsResult
	err    error
	got    enrichmentUsecases.ListRecordsQuery
}

func (m *mockListRecordsUC) Execute(_ context.Context, q enrichmentUsecases.ListRecordsQuery) (*enrichmentUsecases.ListRecordsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockGetRecordUC struct {
	result *commondto.RecordDetailDTO
	err    error
}

func (m *mockGetRecordUC) Execute(_ context.Context, _ enrichmentUsecases.GetRecordQuery) (*commondto.RecordDetailDTO, error) {
	return m.result, m.err
}

type mockGetHistoryUC struct {
	result []assignmentdto.HistoryEntryDTO
	err    error
	got    assignmentUsecases.GetHistoryQuery
}

func (m *mockGetHistoryUC) Execute(_ context.Context, q assignmentUsecases.GetHistoryQuery) ([]assignmentdto.HistoryEntryDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockImportRecordsUC struct {
	result *enrichmentUsecases.ImportResult
	err    error
	got    enrichmentUsecases.ImportCommand
}

func (m *mockImportRecordsUC) Execute(_ context.Context, cmd enrichmentUsecases.ImportCommand) (*enrichmentUsecases.ImportResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockBackfillUC struct {
	result *enrichmentUsecases.BackfillResult
	err    error
	got    enrichmentUsecases.BackfillCommand
}

func (m *mockBackfillUC) Execute(_ context.Context, cmd enrichmentUsecases.BackfillCommand) (*enrichmentUsecases.BackfillResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockPurgeUC struct {
	result *enrichmentUsecases.PurgeResult
	err    error
}

func (m *mockPurgeUC) Execute(_ context.Context) (*enrichmentUsecases.PurgeResult, error) {
	return m.result, m.err
}

type mockGlobalStatsUC struct {
	result *assignmentUsecases.GlobalStatsResult
	err    error
}

func (m *mockGlobalStatsUC) Execute(_ context.Context) (*assignmentUsecases.GlobalStatsResult, error) {
	return m.result, m.err
}

type mockCacheStatsUC struct {
	result *registry.CacheStats
	err    error
}

func (m *mockCacheStatsUC) Execute(_ context.Context) (*registry.CacheStats, error) {
	return m.result, m.err
}

type mockClearCacheUC struct {
	err    error
	called bool
}

func (m *mockClearCacheUC) Execute(_ context.Context) error {
	m.called = true
	return m.err
}
