package usecases

import (
	"context"

	"dialpool/internal/domain/agent"
)

type mockAgentRepository struct {
	CreateFunc        func(ctx context.Context, a *agent.Agent) error
	UpdateFunc        func(ctx context.Context, a *agent.Agent) error
	GetByIDFunc       func(ctx context.Context, id uint) (*agent.Agent, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*agent.Agent, error)
	GetByIDsFunc      func(ctx context.Context, ids []uint) (map[uint]*agent.Agent, error)
	ListActiveFunc    func(ctx context.Context) ([]*agent.Agent, error)
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockAgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAgentRepository) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAgentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*agent.Agent, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*agent.Agent{}, nil
}

func (m *mockAgentRepository) ListActive(ctx context.Context) ([]*agent.Agent, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockAgentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

