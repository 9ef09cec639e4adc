package http

import (
	"dialpool/internal/interfaces/http/handlers"
	adminHandlers "dialpool/internal/interfaces/http/handlers/admin"
	agentHandlers "dialpool/internal/interfaces/http/handlers/agent"
)

type allHandlers struct {
	authHandler       *handlers.AuthHandler
	allocationHandler *adminHandlers.AllocationHandler
	agentHandler      *adminHandlers.AgentHandler
	recordHandler     *adminHandlers.RecordHandler
	statsHandler      *adminHandlers.StatsHandler
	assignmentHandler *agentHandlers.AssignmentHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	log := c.log

	return &allHandlers{
		authHandler:       handlers.NewAuthHandler(u.Login, log),
		allocationHandler: adminHandlers.NewAllocationHandler(u.Distribute, u.Renew, log),
		agentHandler:      adminHandlers.NewAgentHandler(
			u.ListActiveAgents, u.CreateAgent, u.UpdateAgent, u.DeleteAgent, u.GetAgentStats, log),
		recordHandler: adminHandlers.NewRecordHandler(
			u.ListRecords, u.GetRecord, u.GetHistory, u.ImportRecords, u.Backfill, u.Purge, log),
		statsHandler:      adminHandlers.NewStatsHandler(u.GetGlobalStats, u.CacheStats, u.ClearCache, log),
		assignmentHandler: agentHandlers.NewAssignmentHandler(u.ListAgentAssignments, u.UpdateStatus, u.GetAgentStats, u.Renew, log),
	}
}
