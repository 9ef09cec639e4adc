package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dialpool/internal/domain/agent"
	"dialpool/internal/infrastructure/auth"
	"dialpool/internal/shared/authorization"
	"dialpool/internal/shared/config"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
)

func newHasher() *auth.AgentPasswordPolicy {
	return auth.NewAgentPasswordPolicy(config.PasswordConfig{BcryptCost: bcrypt.MinCost})
}

func TestCreateAgentUseCase_Execute(t *testing.T) {
	var created *agent.Agent
	repo := &mockAgentRepository{
		CreateFunc: func(ctx context.Context, a *agent.Agent) error {
			a.SetID(5)
			created = a
			return nil
		},
	}
	hasher := newHasher()
	uc := NewCreateAgentUseCase(repo, hasher, 150, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreateAgentCommand{
		Username:    "Maria.Silva",
		DisplayName: "Maria Silva",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), result.ID)
	assert.Equal(t, "maria.silva", result.Username)
	assert.Equal(t, 150, result.DailyQuota)
	assert.True(t, result.Active)

	require.NotNil(t, created)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash())
	assert.NoError(t, hasher.Verify("s3cret-pass", created.PasswordHash()))
}

func TestCreateAgentUseCase_Execute_Rejections(t *testing.T) {
	uc := NewCreateAgentUseCase(&mockAgentRepository{}, newHasher(), 200, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateAgentCommand{Username: "maria", DisplayName: "Maria", Password: "short"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateAgentCommand{Username: "m a", DisplayName: "Maria", Password: "long-enough"})
	assert.True(t, errors.IsValidationError(err))

	conflict := &mockAgentRepository{
		CreateFunc: func(ctx context.Context, a *agent.Agent) error {
			return errors.NewConflictError("username already taken", a.Username())
		},
	}
	_, err = NewCreateAgentUseCase(conflict, newHasher(), 200, logger.NewNop()).Execute(context.Background(),
		CreateAgentCommand{Username: "maria", DisplayName: "Maria", Password: "long-enough"})
	assert.True(t, errors.IsConflictError(err))
}

func TestUpdateAgentUseCase_Execute(t *testing.T) {
	now := time.Now().UTC()
	existing, err := agent.ReconstructAgent(3, "pedro", "Pedro", true, 200, "hash", now, now)
	require.NoError(t, err)

	var saved *agent.Agent
	repo := &mockAgentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*agent.Agent, error) {
			if id == 3 {
				return existing, nil
			}
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, a *agent.Agent) error {
			saved = a
			return nil
		},
	}
	uc := NewUpdateAgentUseCase(repo, logger.NewNop())

	inactive := false
	quota := 80
	result, err := uc.Execute(context.Background(), UpdateAgentCommand{AgentID: 3, Active: &inactive, DailyQuota: &quota})
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.Equal(t, 80, result.DailyQuota)
	assert.Same(t, existing, saved)

	_, err = uc.Execute(context.Background(), UpdateAgentCommand{AgentID: 4, Active: &inactive})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), UpdateAgentCommand{AgentID: 3})
	assert.True(t, errors.IsValidationError(err))

	bad := 0
	_, err = uc.Execute(context.Background(), UpdateAgentCommand{AgentID: 3, DailyQuota: &bad})
	assert.True(t, errors.IsValidationError(err))
}

func TestLoginUseCase_Execute(t *testing.T) {
	hasher := newHasher()
	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	now := time.Now().UTC()
	active, err := agent.ReconstructAgent(3, "pedro", "Pedro", true, 200, hash, now, now)
	require.NoError(t, err)
	inactive, err := agent.ReconstructAgent(4, "ana", "Ana", false, 200, hash, now, now)
	require.NoError(t, err)

	repo := &mockAgentRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*agent.Agent, error) {
			switch username {
			case "pedro":
				return active, nil
			case "ana":
				return inactive, nil
			}
			return nil, nil
		},
	}
	jwtSvc := auth.NewJWTService("test-secret", 60)
	uc := NewLoginUseCase(repo, hasher, jwtSvc, logger.NewNop())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: " Pedro ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), result.ExpiresIn)

	claims, err := jwtSvc.Verify(result.AccessToken)
	require.NoError(t, err)
	p, err := claims.Principal()
	require.NoError(t, err)
	agentID, ok := p.AgentID()
	require.True(t, ok)
	assert.Equal(t, uint(3), agentID)
	assert.Equal(t, authorization.RoleAgent, p.Role())

	for _, cmd := range []LoginCommand{
		{Username: "pedro", Password: "wrong-pass"},
		{Username: "ana", Password: "s3cret-pass"},
		{Username: "nobody", Password: "s3cret-pass"},
	} {
		_, err := uc.Execute(context.Background(), cmd)
		assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized), cmd.Username)
	}

	_, err = uc.Execute(context.Background(), LoginCommand{})
	assert.True(t, errors.IsValidationError(err))
}
