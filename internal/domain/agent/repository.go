package agent

import "context"

type Repository interface {
	Create(ctx context.Context, a *Agent) error
	Update(ctx context.Context, a *Agent) error
	// GetByID and GetByUsername return nil, nil when nothing matches.
	GetByID(ctx context.Context, id uint) (*Agent, error)
	GetByUsername(ctx context.Context, username string) (*Agent, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Agent, error)
	ListActive(ctx context.Context) ([]*Agent, error)
	// Delete returns a not_found error when no agent has the ID.
	Delete(ctx context.Context, id uint) error
}
