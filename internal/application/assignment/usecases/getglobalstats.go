package usecases

import (
	"context"

	"dialpool/internal/domain/assignment"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/logger"
)

type GlobalStatsResult struct {
	Assignments      map[string]int64 `json:"assignments"`
	TotalAssignments int64            `json:"total_assignments"`
	Allocation       map[string]int64 `json:"allocation"`
	Enrichment       map[string]int64 `json:"enrichment"`
	TotalRecords     int64            `json:"total_records"`
}

type GetGlobalStatsUseCase struct {
	assignmentRepo assignment.Repository
	recordRepo     record.Repository
	logger         logger.Interface
}

func NewGetGlobalStatsUseCase(
	assignmentRepo assignment.Repository,
	recordRepo record.Repository,
	logger logger.Interface,
) *GetGlobalStatsUseCase {
	return &GetGlobalStatsUseCase{
		assignmentRepo: assignmentRepo,
		recordRepo:     recordRepo,
		logger:         logger,
	}
}

func (uc *GetGlobalStatsUseCase) Execute(ctx context.Context) (*GlobalStatsResult, error) {
	states, err := uc.assignmentRepo.CountByState(ctx, nil)
	if err != nil {
		uc.logger.Errorw("failed to count assignments by state", "error", err)
		return nil, err
	}

	allocation, err := uc.recordRepo.CountByAllocationStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count records by allocation status", "error", err)
		return nil, err
	}

	enrichment, err := uc.recordRepo.CountByEnrichmentStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count records by enrichment status", "error", err)
		return nil, err
	}

	total, err := uc.recordRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count records", "error", err)
		return nil, err
	}

	byState, totalAssignments := stateCounts(states)
	result := &GlobalStatsResult{
		Assignments:      byState,
		TotalAssignments: totalAssignments,
		Allocation:       make(map[string]int64, 2),
		Enrichment:       make(map[string]int64, 3),
		TotalRecords:     total,
	}
	for _, s := range record.AllAllocationStatuses() {
		result.Allocation[s.String()] = allocation[s]
	}
	for _, s := range record.AllEnrichmentStatuses() {
		result.Enrichment[s.String()] = enrichment[s]
	}
	return result, nil
}
