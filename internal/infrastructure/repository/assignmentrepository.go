package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/infrastructure/persistence/mappers"
	"dialpool/internal/infrastructure/persistence/models"
	"dialpool/internal/shared/db"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type AssignmentRepositoryImpl struct {
	db           *gorm.DB
	mapper       mappers.AssignmentMapper
	recordMapper mappers.RecordMapper
	logger       logger.Interface
}

func NewAssignmentRepository(gdb *gorm.DB, logger logger.Interface) assignment.Repository {
	return &AssignmentRepositoryImpl{
		db:           gdb,
		mapper:       mappers.NewAssignmentMapper(),
		recordMapper: mappers.NewRecordMapper(),
		logger:       logger,
	}
}

func (r *AssignmentRepositoryImpl) CreateBatch(ctx context.Context, assignments []*assignment.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	rows := make([]*models.AssignmentModel, len(assignments))
	for i, a := range assignments {
		rows[i] = r.mapper.ToModel(a)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to create assignments", "count", len(rows), "error", err)
		return errors.NewStoreError("failed to create assignments", err)
	}

	for i, a := range assignments {
		a.SetID(rows[i].ID)
	}
	return nil
}

func (r *AssignmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewStoreError("failed to get assignment", err)
	}
	return r.toDomain(&model)
}

func (r *AssignmentRepositoryImpl) Update(ctx context.Context, a *assignment.Assignment, expected vo.State) error {
	model := r.mapper.ToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssignmentModel{}).
		Where("id = ? AND state = ?", model.ID, expected.String()).
		Select("state", "annotation", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update assignment", "id", model.ID, "error", result.Error)
		return errors.NewStoreError("failed to update assignment", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("assignment changed before update", "id", model.ID, "expected_state", expected)
		return errors.NewInvalidStateError(
			fmt.Sprintf("assignment %d is no longer %s", model.ID, expected))
	}
	return nil
}

func (r *AssignmentRepositoryImpl) ListFinalizedByAgent(ctx context.Context, agentID uint) ([]*assignment.Assignment, error) {
	var rows []models.AssignmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("agent_id = ? AND state <> ?", agentID, vo.StatePending.String()).
		Order("assigned_at ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to list finalized assignments", err)
	}
	return r.toDomainList(rows)
}

func (r *AssignmentRepositoryImpl) ListAllByAgent(ctx context.Context, agentID uint) ([]*assignment.Assignment, error) {
	var rows []models.AssignmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("agent_id = ?", agentID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to list agent assignments", err)
	}
	return r.toDomainList(rows)
}

func (r *AssignmentRepositoryImpl) CountActiveByAgent(ctx context.Context, agentID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssignmentModel{}).
		Where("agent_id = ?", agentID).
		Count(&count).Error; err != nil {
		return 0, errors.NewStoreError("failed to count agent assignments", err)
	}
	return count, nil
}

func (r *AssignmentRepositoryImpl) CountPendingByAgents(ctx context.Context, agentIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(agentIDs))
	if len(agentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AgentID uint
		Total   int64
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssignmentModel{}).
		Select("agent_id, COUNT(*) AS total").
		Where("agent_id IN ? AND state = ?", agentIDs, vo.StatePending.String()).
		Group("agent_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to count pending assignments", err)
	}

	for _, id := range agentIDs {
		counts[id] = 0
	}
	for _, row := range rows {
		counts[row.AgentID] = row.Total
	}
	return counts, nil
}

func (r *AssignmentRepositoryImpl) ListByAgent(ctx context.Context, filter assignment.AgentAssignmentFilter) ([]*assignment.WithRecord, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssignmentModel{}).
		Where("agent_id = ?", filter.AgentID)
	if filter.State != nil {
		q = q.Where("state = ?", filter.State.String())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.NewStoreError("failed to count agent assignments", err)
	}

	var rows []models.AssignmentModel
	if err := q.
		Order("assigned_at DESC").Order("id DESC").
		Scopes(db.Paginate(filter.PageFilter)).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.NewStoreError("failed to list agent assignments", err)
	}
	if len(rows) == 0 {
		return []*assignment.WithRecord{}, total, nil
	}

	recordIDs := make([]uint, len(rows))
	for i, row := range rows {
		recordIDs[i] = row.RecordID
	}

	var recordRows []models.RecordModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", recordIDs).
		Find(&recordRows).Error; err != nil {
		return nil, 0, errors.NewStoreError("failed to load assigned records", err)
	}

	recordsByID := make(map[uint]*record.Record, len(recordRows))
	for i := range recordRows {
		rec, err := r.recordMapper.ToDomain(&recordRows[i])
		if err != nil {
			return nil, 0, errors.NewStoreError("failed to map assigned record", err)
		}
		recordsByID[rec.ID()] = rec
	}

	items := make([]*assignment.WithRecord, 0, len(rows))
	for i := range rows {
		a, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, &assignment.WithRecord{Assignment: a, Record: recordsByID[a.RecordID()]})
	}
	return items, total, nil
}

func (r *AssignmentRepositoryImpl) CountByState(ctx context.Context, agentID *uint) (map[vo.State]int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.AssignmentModel{})
	if agentID != nil {
		q = q.Where("agent_id = ?", *agentID)
	}

	var rows []statusCount
	if err := q.Select("state AS status, COUNT(*) AS total").Group("state").Scan(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to count assignments by state", err)
	}

	counts := make(map[vo.State]int64)
	for _, s := range vo.AllStates() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[vo.State(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *AssignmentRepositoryImpl) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Delete(&models.AssignmentModel{})
	if result.Error != nil {
		return 0, errors.NewStoreError("failed to delete assignments", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *AssignmentRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.AssignmentModel{})
	if result.Error != nil {
		return 0, errors.NewStoreError("failed to delete assignments", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *AssignmentRepositoryImpl) toDomain(model *models.AssignmentModel) (*assignment.Assignment, error) {
	a, err := r.mapper.ToDomain(model)
	if err != nil {
		r.logger.Errorw("failed to map assignment model", "id", model.ID, "error", err)
		return nil, errors.NewStoreError("failed to map assignment", err)
	}
	return a, nil
}

func (r *AssignmentRepositoryImpl) toDomainList(rows []models.AssignmentModel) ([]*assignment.Assignment, error) {
	out := make([]*assignment.Assignment, 0, len(rows))
	for i := range rows {
		a, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
