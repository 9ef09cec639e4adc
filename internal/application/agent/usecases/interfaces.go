package usecases

import (
	"context"

	"dialpool/internal/infrastructure/auth"
	"dialpool/internal/shared/authorization"
)

type CreateAgentExecutor interface {
	Execute(ctx context.Context, cmd CreateAgentCommand) (*AgentResult, error)
}

type UpdateAgentExecutor interface {
	Execute(ctx context.Context, cmd UpdateAgentCommand) (*AgentResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type TokenIssuer interface {
	Generate(p authorization.Principal) (*auth.AccessToken, error)
}
