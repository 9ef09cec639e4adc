package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dialpool/internal/domain/record"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

// BackfillCommand selects either every record still missing registry data
// (All) or the listed identifiers.
type BackfillCommand struct {
	All         bool
	Identifiers []string
}

type BackfillResult struct {
	RunID        string   `json:"run_id"`
	Processed    int      `json:"processed"`
	Successes    int      `json:"successes"`
	Errors       int      `json:"errors"`
	Updated      []string `json:"updated"`
	NotFound     []string `json:"not_found"`
	ErrorDetails []string `json:"error_details"`
}

type BackfillUseCase struct {
	recordRepo record.Repository
	enricher   Enricher
	logger     logger.Interface
}

func NewBackfillUseCase(
	recordRepo record.Repository,
	enricher Enricher,
	logger logger.Interface,
) *BackfillUseCase {
	return &BackfillUseCase{
		recordRepo: recordRepo,
		enricher:   enricher,
		logger:     logger,
	}
}

func (uc *BackfillUseCase) Execute(ctx context.Context, cmd BackfillCommand) (*BackfillResult, error) {
	result := &BackfillResult{
		RunID:        uuid.New().String(),
		Updated:      []string{},
		NotFound:     []string{},
		ErrorDetails: []string{},
	}
	log := uc.logger.With("run_id", result.RunID)
	log.Infow("executing backfill use case", "all", cmd.All, "identifiers", len(cmd.Identifiers))

	if !cmd.All && len(cmd.Identifiers) == 0 {
		return nil, errors.NewValidationError("either all or a list of identifiers is required")
	}

	targets, err := uc.resolveTargets(ctx, cmd, result)
	if err != nil {
		log.Errorw("failed to resolve backfill targets", "error", err)
		return nil, err
	}
	if len(targets) == 0 {
		log.Infow("backfill has nothing to do", "not_found", len(result.NotFound))
		return result, nil
	}

	identifiers := make([]record.Identifier, 0, len(targets))
	byIdentifier := make(map[record.Identifier]*record.Record, len(targets))
	for _, r := range targets {
		identifiers = append(identifiers, r.Identifier())
		byIdentifier[r.Identifier()] = r
	}

	outcomes := uc.enricher.EnrichBatch(ctx, identifiers)

	for _, outcome := range outcomes {
		r := byIdentifier[outcome.Identifier]
		if r == nil {
			continue
		}
		result.Processed++
		now := biztime.NowUTC()

		failure := outcome.Err
		if outcome.Success() {
			failure = r.ApplyEnrichment(outcome.Enrichment, now)
		}
		if failure != nil {
			r.MarkEnrichmentFailed(now)
			result.Errors++
			result.ErrorDetails = append(result.ErrorDetails, fmt.Sprintf("%s: %v", outcome.Identifier, failure))
			log.Warnw("enrichment failed", "identifier", outcome.Identifier, "error", failure)
		} else {
			result.Successes++
			result.Updated = append(result.Updated, outcome.Identifier.String())
		}

		if err := uc.recordRepo.UpdateEnrichment(ctx, r); err != nil {
			log.Errorw("failed to save enrichment, aborting backfill", "identifier", outcome.Identifier, "error", err)
			return nil, err
		}
	}

	log.Infow("backfill completed",
		"processed", result.Processed,
		"successes", result.Successes,
		"errors", result.Errors,
	)
	return result, nil
}

func (uc *BackfillUseCase) resolveTargets(ctx context.Context, cmd BackfillCommand, result *BackfillResult) ([]*record.Record, error) {
	var identifiers []record.Identifier

	if cmd.All {
		ids, err := uc.recordRepo.ListIdentifiersNeedingEnrichment(ctx)
		if err != nil {
			return nil, err
		}
		identifiers = ids
	} else {
		seen := make(map[record.Identifier]bool, len(cmd.Identifiers))
		for _, raw := range cmd.Identifiers {
			id, err := record.NormalizeIdentifier(raw)
			if err != nil {
				result.ErrorDetails = append(result.ErrorDetails, fmt.Sprintf("malformed identifier %q", raw))
				continue
			}
			if !seen[id] {
				seen[id] = true
				identifiers = append(identifiers, id)
			}
		}
	}
	if len(identifiers) == 0 {
		return nil, nil
	}

	found, err := uc.recordRepo.FindByIdentifiers(ctx, identifiers)
	if err != nil {
		return nil, err
	}

	stored := make(map[record.Identifier]*record.Record, len(found))
	for _, r := range found {
		stored[r.Identifier()] = r
	}

	targets := make([]*record.Record, 0, len(identifiers))
	for _, id := range identifiers {
		r, ok := stored[id]
		if !ok {
			result.NotFound = append(result.NotFound, id.String())
			continue
		}
		targets = append(targets, r)
	}
	return targets, nil
}
