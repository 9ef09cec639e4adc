package admin

import (
	agentUsecases "dialpool/internal/application/agent/usecases"
	allocationUsecases "dialpool/internal/application/allocation/usecases"
	enrichmentUsecases "dialpool/internal/application/enrichment/usecases"
)

type AllocationRequestItem struct {
	AgentID  uint `json:"agent_id" binding:"required,gt=0"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

type DistributeRequest struct {
	Requests []AllocationRequestItem `json:"requests" binding:"required,min=1,dive"`
}

func (r *DistributeRequest) ToCommand() allocationUsecases.DistributeCommand {
	requests := make([]allocationUsecases.AllocationRequest, 0, len(r.Requests))
	for _, item := range r.Requests {
		requests = append(requests, allocationUsecases.AllocationRequest{
			AgentID:  item.AgentID,
			Quantity: item.Quantity,
		})
	}
	return allocationUsecases.DistributeCommand{Requests: requests}
}

type AgentAllocationResponse struct {
	AgentID             uint     `json:"agent_id"`
	Requested           int      `json:"requested"`
	Distributed         int      `json:"distributed"`
	Shortfall           int      `json:"shortfall"`
	AssignedIdentifiers []string `json:"assigned_identifiers"`
	Error               string   `json:"error,omitempty"`
}

type DistributeResponse struct {
	BatchID          string                    `json:"batch_id"`
	DistributedTotal int                       `json:"distributed_total"`
	PerAgent         []AgentAllocationResponse `json:"per_agent"`
}

func toDistributeResponse(result *allocationUsecases.DistributeResult) DistributeResponse {
	perAgent := make([]AgentAllocationResponse, 0, len(result.PerAgent))
	for _, a := range result.PerAgent {
		perAgent = append(perAgent, AgentAllocationResponse{
			AgentID:             a.AgentID,
			Requested:           a.Requested,
			Distributed:         a.Distributed,
			Shortfall:           a.Shortfall,
			AssignedIdentifiers: nonNil(a.AssignedIdentifiers),
			Error:               a.Error,
		})
	}
	return DistributeResponse{
		BatchID:          result.BatchID,
		DistributedTotal: result.DistributedTotal,
		PerAgent:         perAgent,
	}
}

type ReclaimResponse struct {
	BatchID             string   `json:"batch_id,omitempty"`
	Reclaimed           int      `json:"reclaimed"`
	Redistributed       int      `json:"redistributed"`
	AssignedIdentifiers []string `json:"assigned_identifiers"`
}

func toReclaimResponse(result *allocationUsecases.RenewResult) ReclaimResponse {
	return ReclaimResponse{
		BatchID:             result.BatchID,
		Reclaimed:           result.Reclaimed,
		Redistributed:       result.Redistributed,
		AssignedIdentifiers: nonNil(result.AssignedIdentifiers),
	}
}

type AgentSummaryResponse struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	DailyQuota   int    `json:"daily_quota"`
	PendingCount int64  `json:"pending_count"`
}

func toAgentSummaryResponses(agents []*allocationUsecases.AgentSummary) []AgentSummaryResponse {
	out := make([]AgentSummaryResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, AgentSummaryResponse{
			ID:           a.ID,
			Username:     a.Username,
			DisplayName:  a.DisplayName,
			DailyQuota:   a.DailyQuota,
			PendingCount: a.PendingCount,
		})
	}
	return out
}

type CreateAgentRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=64"`
	DisplayName string `json:"display_name" binding:"required,max=128"`
	Password    string `json:"password" binding:"required"`
	DailyQuota  int    `json:"daily_quota" binding:"omitempty,gt=0"`
}

func (r *CreateAgentRequest) ToCommand() agentUsecases.CreateAgentCommand {
	return agentUsecases.CreateAgentCommand{
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Password:    r.Password,
		DailyQuota:  r.DailyQuota,
	}
}

type UpdateAgentRequest struct {
	Active     *bool `json:"active"`
	DailyQuota *int  `json:"daily_quota" binding:"omitempty,gt=0"`
}

type ImportRowRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Name       string `json:"name"`
}

type ImportRecordsRequest struct {
	Records []ImportRowRequest `json:"records" binding:"required,min=1,dive"`
}

func (r *ImportRecordsRequest) ToCommand() enrichmentUsecases.ImportCommand {
	rows := make([]enrichmentUsecases.ImportRow, 0, len(r.Records))
	for _, row := range r.Records {
		rows = append(rows, enrichmentUsecases.ImportRow{
			Identifier: row.Identifier,
			Name:       row.Name,
		})
	}
	return enrichmentUsecases.ImportCommand{Rows: rows}
}

// BackfillRequest selects either every record needing enrichment or an
// explicit identifier list.
type BackfillRequest struct {
	All         bool     `json:"all"`
	Identifiers []string `json:"identifiers"`
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
