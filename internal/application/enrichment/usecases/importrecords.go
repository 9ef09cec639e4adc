package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dialpool/internal/domain/record"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

// ImportRow is one line of an uploaded file. Name is optional.
type ImportRow struct {
	Identifier string
	Name       string
}

type ImportCommand struct {
	Rows []ImportRow
}

type ImportResult struct {
	RunID           string   `json:"run_id"`
	TotalReceived   int      `json:"total_received"`
	TotalValid      int      `json:"total_valid"`
	Dropped         int      `json:"dropped"`
	Duplicates      int      `json:"duplicates"`
	Imported        int      `json:"imported"`
	Skipped         int      `json:"skipped"`
	EnrichSuccesses int      `json:"enrich_successes"`
	EnrichErrors    int      `json:"enrich_errors"`
	ErrorDetails    []string `json:"error_details"`
}

type ImportRecordsUseCase struct {
	recordRepo record.Repository
	enricher   Enricher
	logger     logger.Interface
}

func NewImportRecordsUseCase(
	recordRepo record.Repository,
	enricher Enricher,
	logger logger.Interface,
) *ImportRecordsUseCase {
	return &ImportRecordsUseCase{
		recordRepo: recordRepo,
		enricher:   enricher,
		logger:     logger,
	}
}

func (uc *ImportRecordsUseCase) Execute(ctx context.Context, cmd ImportCommand) (*ImportResult, error) {
	result := &ImportResult{
		RunID:         uuid.New().String(),
		TotalReceived: len(cmd.Rows),
		ErrorDetails:  []string{},
	}
	log := uc.logger.With("run_id", result.RunID)
	log.Infow("executing import records use case", "rows", len(cmd.Rows))

	identifiers, names := uc.normalizeRows(cmd.Rows, result)
	result.TotalValid = len(identifiers)
	if result.TotalValid == 0 {
		log.Warnw("import has no valid identifiers", "dropped", result.Dropped)
		return nil, errors.NewValidationError("no valid identifiers to import")
	}

	existing, err := uc.recordRepo.ExistingIdentifiers(ctx, identifiers)
	if err != nil {
		log.Errorw("failed to check existing identifiers", "error", err)
		return nil, err
	}

	fresh := make([]record.Identifier, 0, len(identifiers))
	for _, id := range identifiers {
		if existing[id] {
			result.Skipped++
			continue
		}
		fresh = append(fresh, id)
	}
	if len(fresh) == 0 {
		log.Infow("import finished, every identifier already stored", "skipped", result.Skipped)
		return result, nil
	}

	outcomes := uc.enricher.EnrichBatch(ctx, fresh)

	now := biztime.NowUTC()
	records := make([]*record.Record, 0, len(outcomes))
	for _, outcome := range outcomes {
		r, err := record.NewRecord(outcome.Identifier, names[outcome.Identifier], now)
		if err != nil {
			result.ErrorDetails = append(result.ErrorDetails, fmt.Sprintf("%s: %v", outcome.Identifier, err))
			continue
		}

		if outcome.Success() {
			if err := r.ApplyEnrichment(outcome.Enrichment, now); err != nil {
				r.MarkEnrichmentFailed(now)
				result.EnrichErrors++
				result.ErrorDetails = append(result.ErrorDetails, fmt.Sprintf("%s: %v", outcome.Identifier, err))
			} else {
				result.EnrichSuccesses++
			}
		} else {
			r.MarkEnrichmentFailed(now)
			result.EnrichErrors++
			result.ErrorDetails = append(result.ErrorDetails, fmt.Sprintf("%s: %v", outcome.Identifier, outcome.Err))
			log.Warnw("enrichment failed", "identifier", outcome.Identifier, "error", outcome.Err)
		}
		records = append(records, r)
	}

	inserted, err := uc.recordRepo.InsertIgnoringDuplicates(ctx, records)
	if err != nil {
		log.Errorw("failed to insert records", "error", err)
		return nil, err
	}
	result.Imported = int(inserted)
	// rows that lost a race with a concurrent import
	result.Skipped += len(records) - int(inserted)

	log.Infow("import completed",
		"received", result.TotalReceived,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"dropped", result.Dropped,
		"enrich_successes", result.EnrichSuccesses,
		"enrich_errors", result.EnrichErrors,
	)
	return result, nil
}

// normalizeRows drops malformed identifiers and collapses repeats, keeping
// the first row's name.
func (uc *ImportRecordsUseCase) normalizeRows(rows []ImportRow, result *ImportResult) ([]record.Identifier, map[record.Identifier]string) {
	identifiers := make([]record.Identifier, 0, len(rows))
	names := make(map[record.Identifier]string, len(rows))

	for i, row := range rows {
		id, err := record.NormalizeIdentifier(row.Identifier)
		if err != nil {
			result.Dropped++
			result.ErrorDetails = append(result.ErrorDetails, fmt.Sprintf("row %d: malformed identifier %q", i+1, row.Identifier))
			continue
		}
		if _, seen := names[id]; seen {
			result.Duplicates++
			continue
		}
		names[id] = strings.TrimSpace(row.Name)
		identifiers = append(identifiers, id)
	}
	return identifiers, names
}
