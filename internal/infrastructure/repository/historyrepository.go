package repository

import (
	"context"

	"gorm.io/gorm"

	"dialpool/internal/domain/assignment"
	"dialpool/internal/infrastructure/persistence/mappers"
	"dialpool/internal/infrastructure/persistence/models"
	"dialpool/internal/shared/db"
	"dialpool/internal/shared/errors"
)

// HistoryRepositoryImpl never updates rows; entries only leave through DeleteAll.
type HistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
}

func NewHistoryRepository(gdb *gorm.DB) assignment.HistoryRepository {
	return &HistoryRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAssignmentMapper(),
	}
}

func (r *HistoryRepositoryImpl) Append(ctx context.Context, entry *assignment.OutcomeHistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return errors.NewStoreError("failed to append outcome history", err)
	}
	entry.ID = model.ID
	return nil
}

func (r *HistoryRepositoryImpl) ListByRecord(ctx context.Context, recordID uint) ([]*assignment.OutcomeHistoryEntry, error) {
	var rows []models.OutcomeHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("record_id = ?", recordID).
		Scopes(db.OldestFirst("outcome_history")).
		Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to list outcome history", err)
	}

	entries := make([]*assignment.OutcomeHistoryEntry, len(rows))
	for i := range rows {
		entries[i] = r.mapper.HistoryToDomain(&rows[i])
	}
	return entries, nil
}

func (r *HistoryRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.OutcomeHistoryModel{})
	if result.Error != nil {
		return 0, errors.NewStoreError("failed to delete outcome history", result.Error)
	}
	return result.RowsAffected, nil
}
