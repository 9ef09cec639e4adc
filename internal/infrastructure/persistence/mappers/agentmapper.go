package mappers

import (
	"dialpool/internal/domain/agent"
	"dialpool/internal/infrastructure/persistence/models"
)

type AgentMapper interface {
	ToModel(a *agent.Agent) *models.AgentModel
	ToDomain(model *models.AgentModel) (*agent.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToModel(a *agent.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:           a.ID(),
		Username:     a.Username(),
		DisplayName:  a.DisplayName(),
		Active:       a.IsActive(),
		DailyQuota:   a.DailyQuota(),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}
}

func (m *AgentMapperImpl) ToDomain(model *models.AgentModel) (*agent.Agent, error) {
	return agent.ReconstructAgent(
		model.ID,
		model.Username,
		model.DisplayName,
		model.Active,
		model.DailyQuota,
		model.PasswordHash,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
