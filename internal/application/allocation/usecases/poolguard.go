package usecases

import "sync"

// PoolGuard serializes every operation that moves records in or out of the
// available pool. Distribute and renew share one guard per process.
type PoolGuard struct {
	mu sync.Mutex
}

func NewPoolGuard() *PoolGuard {
	return &PoolGuard{}
}

// Run holds the guard for the duration of fn.
func (g *PoolGuard) Run(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
