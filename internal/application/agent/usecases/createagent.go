package usecases

import (
	"context"
	"time"

	"dialpool/internal/domain/agent"
	"dialpool/internal/shared/biztime"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type CreateAgentCommand struct {
	Username    string
	DisplayName string
	Password    string
	// DailyQuota 0 uses the configured default.
	DailyQuota int
}

type AgentResult struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Active      bool      `json:"active"`
	DailyQuota  int       `json:"daily_quota"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAgentResult(a *agent.Agent) *AgentResult {
	return &AgentResult{
		ID:          a.ID(),
		Username:    a.Username(),
		DisplayName: a.DisplayName(),
		Active:      a.IsActive(),
		DailyQuota:  a.DailyQuota(),
		CreatedAt:   a.CreatedAt(),
	}
}

type CreateAgentUseCase struct {
	agentRepo    agent.Repository
	hasher       agent.PasswordHasher
	defaultQuota int
	logger       logger.Interface
}

func NewCreateAgentUseCase(
	agentRepo agent.Repository,
	hasher agent.PasswordHasher,
	defaultQuota int,
	logger logger.Interface,
) *CreateAgentUseCase {
	return &CreateAgentUseCase{
		agentRepo:    agentRepo,
		hasher:       hasher,
		defaultQuota: defaultQuota,
		logger:       logger,
	}
}

func (uc *CreateAgentUseCase) Execute(ctx context.Context, cmd CreateAgentCommand) (*AgentResult, error) {
	uc.logger.Infow("executing create agent use case", "username", cmd.Username)

	quota := cmd.DailyQuota
	if quota == 0 {
		quota = uc.defaultQuota
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		if errors.IsValidationError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	a, err := agent.NewAgent(cmd.Username, cmd.DisplayName, hash, quota, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.agentRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create agent", "username", a.Username(), "error", err)
		return nil, err
	}

	uc.logger.Infow("agent created successfully", "agent_id", a.ID(), "username", a.Username())
	return toAgentResult(a), nil
}
