package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dialpool/internal/domain/agent"
	"dialpool/internal/infrastructure/persistence/mappers"
	"dialpool/internal/infrastructure/persistence/models"
	"dialpool/internal/shared/db"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type AgentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
	logger logger.Interface
}

func NewAgentRepository(gdb *gorm.DB, logger logger.Interface) agent.Repository {
	return &AgentRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAgentMapper(),
		logger: logger,
	}
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("username already taken", a.Username())
		}
		r.logger.Errorw("failed to create agent", "username", a.Username(), "error", err)
		return errors.NewStoreError("failed to create agent", err)
	}

	a.SetID(model.ID)
	r.logger.Infow("agent created", "id", model.ID, "username", model.Username)
	return nil
}

func (r *AgentRepositoryImpl) Update(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AgentModel{}).
		Where("id = ?", model.ID).
		Select("display_name", "active", "daily_quota", "password_hash", "updated_at").
		Updates(model)
	if result.Error != nil {
		return errors.NewStoreError("failed to update agent", result.Error)
	}
	return nil
}

func (r *AgentRepositoryImpl) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	var model models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewStoreError("failed to get agent", err)
	}
	return r.toDomain(&model)
}

func (r *AgentRepositoryImpl) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	var model models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewStoreError("failed to get agent by username", err)
	}
	return r.toDomain(&model)
}

func (r *AgentRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*agent.Agent, error) {
	result := make(map[uint]*agent.Agent, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to get agents", err)
	}

	for i := range rows {
		a, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[a.ID()] = a
	}
	return result, nil
}

func (r *AgentRepositoryImpl) ListActive(ctx context.Context) ([]*agent.Agent, error) {
	var rows []models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("display_name ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.NewStoreError("failed to list active agents", err)
	}

	agents := make([]*agent.Agent, 0, len(rows))
	for i := range rows {
		a, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}

func (r *AgentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AgentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete agent", "id", id, "error", result.Error)
		return errors.NewStoreError("failed to delete agent", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agent not found", fmt.Sprintf("agent %d", id))
	}
	r.logger.Infow("agent deleted", "id", id)
	return nil
}

func (r *AgentRepositoryImpl) toDomain(model *models.AgentModel) (*agent.Agent, error) {
	a, err := r.mapper.ToDomain(model)
	if err != nil {
		return nil, errors.NewStoreError("failed to map agent", err)
	}
	return a, nil
}
