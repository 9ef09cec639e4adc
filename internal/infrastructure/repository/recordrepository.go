package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/infrastructure/persistence/mappers"
	"dialpool/internal/infrastructure/persistence/models"
	"dialpool/internal/shared/db"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

const insertBatchSize = 500

type RecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RecordMapper
	logger logger.Interface
}

func NewRecordRepository(gdb *gorm.DB, logger logger.Interface) record.Repository {
	return &RecordRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewRecordMapper(),
		logger: logger,
	}
}

func (r *RecordRepositoryImpl) InsertIgnoringDuplicates(ctx context.Context, records []*record.Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	rows := make([]*models.RecordModel, 0, len(records))
	for _, rec := range records {
		model, err := r.mapper.ToModel(rec)
		if err != nil {
			return 0, errors.NewStoreError("failed to map record", err)
		}
		rows = append(rows, model)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identifier"}},
			DoNothing: true,
		}).
		CreateInBatches(rows, insertBatchSize)
	if result.Error != nil {
		r.logger.Errorw("failed to insert records", "count", len(rows), "error", result.Error)
		return 0, errors.NewStoreError("failed to insert records", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *RecordRepositoryImpl) GetByID(ctx context.Context, id uint) (*record.Record, error) {
	var model models.RecordModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewStoreError("failed to get record", err)
	}
	return r.toDomain(&model)
}

func (r *RecordRepositoryImpl) FindByIdentifiers(ctx context.Context, identifiers []record.Identifier) ([]*record.Record, error) {
	if len(identifiers) == 0 {
		return nil, nil
	}

	var rows []models.RecordModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("identifier IN ?", identifierStrings(identifiers)).
		Scopes(db.OldestFirst("records")).
		Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to find records by identifier", err)
	}
	return r.toDomainList(rows)
}

func (r *RecordRepositoryImpl) ExistingIdentifiers(ctx context.Context, identifiers []record.Identifier) (map[record.Identifier]bool, error) {
	existing := make(map[record.Identifier]bool)
	if len(identifiers) == 0 {
		return existing, nil
	}

	var found []string
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RecordModel{}).
		Where("identifier IN ?", identifierStrings(identifiers)).
		Pluck("identifier", &found).Error; err != nil {
		return nil, errors.NewStoreError("failed to check existing identifiers", err)
	}

	for _, id := range found {
		existing[record.Identifier(id)] = true
	}
	return existing, nil
}

func (r *RecordRepositoryImpl) ListIdentifiersNeedingEnrichment(ctx context.Context) ([]record.Identifier, error) {
	var found []string
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RecordModel{}).
		Where("enrichment_status IN ?", []string{
			record.EnrichmentUnset.String(),
			record.EnrichmentError.String(),
		}).
		Scopes(db.OldestFirst("records")).
		Pluck("identifier", &found).Error; err != nil {
		return nil, errors.NewStoreError("failed to list records needing enrichment", err)
	}

	identifiers := make([]record.Identifier, len(found))
	for i, id := range found {
		identifiers[i] = record.Identifier(id)
	}
	return identifiers, nil
}

// UpdateEnrichment writes every enrichment column including NULLs, and
// leaves allocation_status alone.
func (r *RecordRepositoryImpl) UpdateEnrichment(ctx context.Context, rec *record.Record) error {
	model, err := r.mapper.ToModel(rec)
	if err != nil {
		return errors.NewStoreError("failed to map record", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RecordModel{}).
		Where("id = ?", model.ID).
		Select(
			"name", "search_key", "enrichment_status",
			"formatted_identifier", "legal_name", "trade_name",
			"registration_status", "registration_status_date", "activity_start_date",
			"primary_activity", "secondary_activities", "legal_nature", "size_class",
			"capital", "address", "phone", "phone2", "email", "owners", "raw_payload",
			"enriched_at", "updated_at",
		).
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update record enrichment", "id", model.ID, "error", result.Error)
		return errors.NewStoreError("failed to update record enrichment", result.Error)
	}
	return nil
}

func (r *RecordRepositoryImpl) List(ctx context.Context, filter record.Filter) ([]*record.ListItem, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.RecordModel{})

	if pattern := searchPattern(filter.Search); pattern != "" {
		q = q.Where("records.search_key LIKE ? ESCAPE '!'", pattern)
	}
	if filter.AllocationStatus != nil {
		q = q.Where("records.allocation_status = ?", filter.AllocationStatus.String())
	}
	if filter.AssignmentState != nil {
		q = q.Where("EXISTS (SELECT 1 FROM assignments a WHERE a.record_id = records.id AND a.state = ?)",
			filter.AssignmentState.String())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.NewStoreError("failed to count records", err)
	}

	var rows []models.RecordModel
	if err := q.
		Order("records.created_at DESC").Order("records.id DESC").
		Scopes(db.Paginate(filter.PageFilter)).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.NewStoreError("failed to list records", err)
	}

	recs, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}

	current, err := r.currentAssignments(ctx, recs)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*record.ListItem, len(recs))
	for i, rec := range recs {
		items[i] = &record.ListItem{Record: rec, Assignment: current[rec.ID()]}
	}
	return items, total, nil
}

type currentAssignmentRow struct {
	AssignmentID uint
	RecordID     uint
	AgentID      uint
	AgentName    string
	State        string
	Annotation   *string
	AssignedAt   int64
}

func (r *RecordRepositoryImpl) currentAssignments(ctx context.Context, recs []*record.Record) (map[uint]*record.CurrentAssignment, error) {
	result := make(map[uint]*record.CurrentAssignment)
	if len(recs) == 0 {
		return result, nil
	}

	ids := make([]uint, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID()
	}

	var rows []currentAssignmentRow
	if err := db.GetTxFromContext(ctx, r.db).
		Table("assignments").
		Select("assignments.id AS assignment_id, assignments.record_id, assignments.agent_id, " +
			"COALESCE(agents.display_name, '') AS agent_name, assignments.state, " +
			"assignments.annotation, assignments.assigned_at").
		Joins("LEFT JOIN agents ON agents.id = assignments.agent_id").
		Where("assignments.record_id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to load current assignments", err)
	}

	for _, row := range rows {
		result[row.RecordID] = &record.CurrentAssignment{
			AssignmentID: row.AssignmentID,
			AgentID:      row.AgentID,
			AgentName:    row.AgentName,
			State:        vo.State(row.State),
			Annotation:   row.Annotation,
			AssignedAt:   millisToTime(row.AssignedAt),
		}
	}
	return result, nil
}

func (r *RecordRepositoryImpl) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RecordModel{}).
		Where("allocation_status = ?", record.AllocationAvailable.String()).
		Count(&count).Error; err != nil {
		return 0, errors.NewStoreError("failed to count available records", err)
	}
	return count, nil
}

func (r *RecordRepositoryImpl) ListAvailable(ctx context.Context, limit int, excludeIDs []uint) ([]*record.Record, error) {
	if limit <= 0 {
		return nil, nil
	}

	q := db.GetTxFromContext(ctx, r.db).
		Where("allocation_status = ?", record.AllocationAvailable.String())
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var rows []models.RecordModel
	if err := q.Scopes(db.OldestFirst("records")).Limit(limit).Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to list available records", err)
	}
	return r.toDomainList(rows)
}

// TransitionAllocation only touches rows currently in from, so the caller
// can compare the returned count against len(ids) to detect a lost race.
func (r *RecordRepositoryImpl) TransitionAllocation(ctx context.Context, ids []uint, from, to record.AllocationStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RecordModel{}).
		Where("id IN ? AND allocation_status = ?", ids, from.String()).
		Update("allocation_status", to.String())
	if result.Error != nil {
		return 0, errors.NewStoreError("failed to update allocation status", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RecordRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.RecordModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewStoreError("failed to count records", err)
	}
	return count, nil
}

type statusCount struct {
	Status string
	Total  int64
}

func (r *RecordRepositoryImpl) countGroupedBy(ctx context.Context, column string) ([]statusCount, error) {
	var rows []statusCount
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RecordModel{}).
		Select(column + " AS status, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	return rows, err
}

func (r *RecordRepositoryImpl) CountByAllocationStatus(ctx context.Context) (map[record.AllocationStatus]int64, error) {
	rows, err := r.countGroupedBy(ctx, "allocation_status")
	if err != nil {
		return nil, errors.NewStoreError("failed to count records by allocation status", err)
	}

	counts := make(map[record.AllocationStatus]int64)
	for _, s := range record.AllAllocationStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[record.AllocationStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *RecordRepositoryImpl) CountByEnrichmentStatus(ctx context.Context) (map[record.EnrichmentStatus]int64, error) {
	rows, err := r.countGroupedBy(ctx, "enrichment_status")
	if err != nil {
		return nil, errors.NewStoreError("failed to count records by enrichment status", err)
	}

	counts := make(map[record.EnrichmentStatus]int64)
	for _, s := range record.AllEnrichmentStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[record.EnrichmentStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *RecordRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.RecordModel{})
	if result.Error != nil {
		return 0, errors.NewStoreError("failed to delete records", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RecordRepositoryImpl) toDomain(model *models.RecordModel) (*record.Record, error) {
	rec, err := r.mapper.ToDomain(model)
	if err != nil {
		r.logger.Errorw("failed to map record model", "id", model.ID, "error", err)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to map record %d", model.ID), err)
	}
	return rec, nil
}

func (r *RecordRepositoryImpl) toDomainList(rows []models.RecordModel) ([]*record.Record, error) {
	recs := make([]*record.Record, 0, len(rows))
	for i := range rows {
		rec, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func identifierStrings(identifiers []record.Identifier) []string {
	out := make([]string, len(identifiers))
	for i, id := range identifiers {
		out[i] = id.String()
	}
	return out
}

// searchPattern builds a LIKE pattern against search_key. Input made only of
// digits and identifier punctuation matches on the bare digits.
func searchPattern(search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return ""
	}

	term := record.FoldSearchText(search)
	if digits, ok := identifierDigits(search); ok {
		term = digits
	}

	escaper := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + escaper.Replace(term) + "%"
}

func identifierDigits(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '/' || r == '-' || r == ' ':
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}
