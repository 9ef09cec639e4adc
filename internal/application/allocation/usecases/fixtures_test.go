package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dialpool/internal/domain/agent"
	"dialpool/internal/domain/assignment"
	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/errors"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestRecord(t *testing.T, id uint) *record.Record {
	t.Helper()
	r, err := record.ReconstructRecord(
		id,
		record.Identifier(fmt.Sprintf("%014d", id)),
		fmt.Sprintf("Empresa %d", id),
		"",
		nil,
		record.EnrichmentUnset,
		record.AllocationAvailable,
		baseTime.Add(time.Duration(id)*time.Minute),
		baseTime.Add(time.Duration(id)*time.Minute),
	)
	require.NoError(t, err)
	return r
}

func newTestAgent(t *testing.T, id uint, active bool, quota int) *agent.Agent {
	t.Helper()
	a, err := agent.ReconstructAgent(id, fmt.Sprintf("agent%d", id), fmt.Sprintf("Agent %d", id), active, quota, "hash", baseTime, baseTime)
	require.NoError(t, err)
	return a
}

// fakePool keeps allocation state in memory and exposes it through the
// Func-field mocks, so use cases run against consistent reads and writes.
type fakePool struct {
	t           *testing.T
	order       []*record.Record
	status      map[uint]record.AllocationStatus
	assignments map[uint]*assignment.Assignment
	agents      map[uint]*agent.Agent
	nextID      uint
	createCalls int
}

func newFakePool(t *testing.T, recordCount int) *fakePool {
	p := &fakePool{
		t:           t,
		status:      make(map[uint]record.AllocationStatus),
		assignments: make(map[uint]*assignment.Assignment),
		agents:      make(map[uint]*agent.Agent),
		nextID:      1,
	}
	for i := 1; i <= recordCount; i++ {
		r := newTestRecord(t, uint(i))
		p.order = append(p.order, r)
		p.status[r.ID()] = record.AllocationAvailable
	}
	return p
}

func (p *fakePool) addAgent(a *agent.Agent) {
	p.agents[a.ID()] = a
}

// seedAssignment gives recordID to agentID in the given state.
func (p *fakePool) seedAssignment(agentID, recordID uint, state vo.State) {
	a, err := assignment.ReconstructAssignment(p.nextID, agentID, recordID, "seed", state, nil, baseTime, baseTime)
	require.NoError(p.t, err)
	p.nextID++
	p.assignments[a.ID()] = a
	p.status[recordID] = record.AllocationAssigned
}

func (p *fakePool) available() int {
	n := 0
	for _, s := range p.status {
		if s == record.AllocationAvailable {
			n++
		}
	}
	return n
}

func (p *fakePool) recordRepo() *mockRecordRepository {
	return &mockRecordRepository{
		CountAvailableFunc: func(ctx context.Context) (int64, error) {
			return int64(p.available()), nil
		},
		ListAvailableFunc: func(ctx context.Context, limit int, excludeIDs []uint) ([]*record.Record, error) {
			excluded := make(map[uint]bool, len(excludeIDs))
			for _, id := range excludeIDs {
				excluded[id] = true
			}
			out := make([]*record.Record, 0, limit)
			for _, r := range p.order {
				if len(out) == limit {
					break
				}
				if p.status[r.ID()] == record.AllocationAvailable && !excluded[r.ID()] {
					out = append(out, r)
				}
			}
			return out, nil
		},
		TransitionAllocationFunc: func(ctx context.Context, ids []uint, from, to record.AllocationStatus) (int64, error) {
			var n int64
			for _, id := range ids {
				if p.status[id] == from {
					p.status[id] = to
					n++
				}
			}
			return n, nil
		},
	}
}

func (p *fakePool) assignmentRepo() *mockAssignmentRepository {
	return &mockAssignmentRepository{
		CreateBatchFunc: func(ctx context.Context, batch []*assignment.Assignment) error {
			p.createCalls++
			for _, a := range batch {
				a.SetID(p.nextID)
				p.nextID++
				p.assignments[a.ID()] = a
			}
			return nil
		},
		ListAllByAgentFunc: func(ctx context.Context, agentID uint) ([]*assignment.Assignment, error) {
			var out []*assignment.Assignment
			for _, a := range p.assignments {
				if a.AgentID() == agentID {
					out = append(out, a)
				}
			}
			return out, nil
		},
		ListFinalizedByAgentFunc: func(ctx context.Context, agentID uint) ([]*assignment.Assignment, error) {
			var out []*assignment.Assignment
			for _, a := range p.assignments {
				if a.AgentID() == agentID && a.IsFinalized() {
					out = append(out, a)
				}
			}
			return out, nil
		},
		CountActiveByAgentFunc: func(ctx context.Context, agentID uint) (int64, error) {
			var n int64
			for _, a := range p.assignments {
				if a.AgentID() == agentID {
					n++
				}
			}
			return n, nil
		},
		DeleteByIDsFunc: func(ctx context.Context, ids []uint) (int64, error) {
			var n int64
			for _, id := range ids {
				if _, ok := p.assignments[id]; ok {
					delete(p.assignments, id)
					n++
				}
			}
			return n, nil
		},
	}
}

func (p *fakePool) agentRepo() *mockAgentRepository {
	return &mockAgentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*agent.Agent, error) {
			return p.agents[id], nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			if _, ok := p.agents[id]; !ok {
				return errors.NewNotFoundError("agent not found")
			}
			delete(p.agents, id)
			return nil
		},
		GetByIDsFunc: func(ctx context.Context, ids []uint) (map[uint]*agent.Agent, error) {
			out := make(map[uint]*agent.Agent)
			for _, id := range ids {
				if a, ok := p.agents[id]; ok {
					out[id] = a
				}
			}
			return out, nil
		},
	}
}

func (p *fakePool) recordIDsOf(agentID uint) map[uint]bool {
	out := make(map[uint]bool)
	for _, a := range p.assignments {
		if a.AgentID() == agentID {
			out[a.RecordID()] = true
		}
	}
	return out
}
