package http

import (
	agentUsecases "dialpool/internal/application/agent/usecases"
	allocationUsecases "dialpool/internal/application/allocation/usecases"
	assignmentUsecases "dialpool/internal/application/assignment/usecases"
	enrichmentUsecases "dialpool/internal/application/enrichment/usecases"
	"dialpool/internal/shared/services/sanitize"
)

// UseCases groups every use case. Fields are exported so CLI commands can
// drive the same instances the HTTP handlers use.
type UseCases struct {
	Distribute       *allocationUsecases.DistributeUseCase
	Renew            *allocationUsecases.RenewUseCase
	ListActiveAgents *allocationUsecases.ListActiveAgentsUseCase
	DeleteAgent      *allocationUsecases.DeleteAgentUseCase

	UpdateStatus         *assignmentUsecases.UpdateStatusUseCase
	GetAgentStats        *assignmentUsecases.GetAgentStatsUseCase
	GetGlobalStats       *assignmentUsecases.GetGlobalStatsUseCase
	ListAgentAssignments *assignmentUsecases.ListAgentAssignmentsUseCase
	GetHistory           *assignmentUsecases.GetHistoryUseCase

	ImportRecords *enrichmentUsecases.ImportRecordsUseCase
	Backfill      *enrichmentUsecases.BackfillUseCase
	Purge         *enrichmentUsecases.PurgeUseCase
	ListRecords   *enrichmentUsecases.ListRecordsUseCase
	GetRecord     *enrichmentUsecases.GetRecordUseCase
	CacheStats    *enrichmentUsecases.GetCacheStatsUseCase
	ClearCache    *enrichmentUsecases.ClearCacheUseCase

	CreateAgent *agentUsecases.CreateAgentUseCase
	UpdateAgent *agentUsecases.UpdateAgentUseCase
	Login       *agentUsecases.LoginUseCase
}

func (c *Container) newUseCases() *UseCases {
	r := c.repos
	log := c.log

	return &UseCases{
		Distribute: allocationUsecases.NewDistributeUseCase(
			r.recordRepo, r.assignmentRepo, r.agentRepo, c.txMgr, c.poolGuard, c.metrics, log),
		Renew: allocationUsecases.NewRenewUseCase(
			r.recordRepo, r.assignmentRepo, r.agentRepo, c.txMgr, c.poolGuard, c.metrics, log),
		ListActiveAgents: allocationUsecases.NewListActiveAgentsUseCase(r.agentRepo, r.assignmentRepo, log),
		DeleteAgent: allocationUsecases.NewDeleteAgentUseCase(
			r.recordRepo, r.assignmentRepo, r.agentRepo, c.txMgr, c.poolGuard, log),

		UpdateStatus: assignmentUsecases.NewUpdateStatusUseCase(
			r.assignmentRepo, r.historyRepo, c.txMgr, sanitize.NewTextSanitizer(), log),
		GetAgentStats:        assignmentUsecases.NewGetAgentStatsUseCase(r.assignmentRepo, r.agentRepo, log),
		GetGlobalStats:       assignmentUsecases.NewGetGlobalStatsUseCase(r.assignmentRepo, r.recordRepo, log),
		ListAgentAssignments: assignmentUsecases.NewListAgentAssignmentsUseCase(r.assignmentRepo, log),
		GetHistory:           assignmentUsecases.NewGetHistoryUseCase(r.recordRepo, r.historyRepo, log),

		ImportRecords: enrichmentUsecases.NewImportRecordsUseCase(r.recordRepo, c.registryClient, log),
		Backfill:      enrichmentUsecases.NewBackfillUseCase(r.recordRepo, c.registryClient, log),
		Purge: enrichmentUsecases.NewPurgeUseCase(
			r.recordRepo, r.assignmentRepo, r.historyRepo, c.txMgr, c.poolGuard, log),
		ListRecords: enrichmentUsecases.NewListRecordsUseCase(r.recordRepo, log),
		GetRecord:   enrichmentUsecases.NewGetRecordUseCase(r.recordRepo, log),
		CacheStats:  enrichmentUsecases.NewGetCacheStatsUseCase(c.registryClient, log),
		ClearCache:  enrichmentUsecases.NewClearCacheUseCase(c.registryClient, log),

		CreateAgent: agentUsecases.NewCreateAgentUseCase(
			r.agentRepo, c.hasher, c.cfg.Allocation.DefaultDailyQuota, log),
		UpdateAgent: agentUsecases.NewUpdateAgentUseCase(r.agentRepo, log),
		Login:       agentUsecases.NewLoginUseCase(r.agentRepo, c.hasher, c.jwtSvc, log),
	}
}
