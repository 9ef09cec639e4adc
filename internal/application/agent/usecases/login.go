package usecases

import (
	"context"
	"strings"

	"dialpool/internal/domain/agent"
	"dialpool/internal/shared/authorization"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Agent       *AgentResult
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	agentRepo agent.Repository
	hasher    agent.PasswordHasher
	tokens    TokenIssuer
	logger    logger.Interface
}

func NewLoginUseCase(
	agentRepo agent.Repository,
	hasher agent.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		agentRepo: agentRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(cmd.Username))
	uc.logger.Infow("executing login use case", "username", username)

	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	a, err := uc.agentRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get agent", "username", username, "error", err)
		return nil, err
	}
	// unknown, inactive and wrong password all look the same to the caller
	if a == nil || !a.IsActive() {
		uc.logger.Warnw("login rejected", "username", username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}
	if err := uc.hasher.Verify(cmd.Password, a.PasswordHash()); err != nil {
		uc.logger.Warnw("login rejected", "username", username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, err := uc.tokens.Generate(authorization.AgentPrincipal(a.ID()))
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "agent_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("agent logged in", "agent_id", a.ID())
	return &LoginResult{
		Agent:       toAgentResult(a),
		AccessToken: token.Token,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
