package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "dialpool/internal/domain/assignment/valueobjects"
	"dialpool/internal/domain/record"
	"dialpool/internal/shared/errors"
)

func newRenewFromPool(p *fakePool, recorder *mockRecorder) *RenewUseCase {
	return NewRenewUseCase(p.recordRepo(), p.assignmentRepo(), p.agentRepo(), &mockTxRunner{}, NewPoolGuard(), recorder, newMockLogger())
}

func TestRenewUseCase_Execute_ReclaimsFinalizedAndBackfills(t *testing.T) {
	p := newFakePool(t, 8)
	p.addAgent(newTestAgent(t, 1, true, 3))

	p.seedAssignment(1, 1, vo.StateBitten)
	p.seedAssignment(1, 2, vo.StateNoAnswer)
	p.seedAssignment(1, 3, vo.StatePending)

	recorder := &mockRecorder{}
	result, err := newRenewFromPool(p, recorder).Execute(context.Background(), RenewCommand{AgentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Reclaimed)
	assert.Equal(t, 2, result.Redistributed)
	assert.Equal(t, []string{"00000000000004", "00000000000005"}, result.AssignedIdentifiers)
	assert.Equal(t, 2, recorder.distributed)

	held := p.recordIDsOf(1)
	assert.Equal(t, map[uint]bool{3: true, 4: true, 5: true}, held)

	assert.Equal(t, record.AllocationAvailable, p.status[1])
	assert.Equal(t, record.AllocationAvailable, p.status[2])
	assert.Equal(t, len(p.assignments), 8-p.available())
}

func TestRenewUseCase_Execute_NothingFinalized(t *testing.T) {
	p := newFakePool(t, 5)
	p.addAgent(newTestAgent(t, 1, true, 3))
	p.seedAssignment(1, 1, vo.StatePending)

	recordRepo := p.recordRepo()
	listCalled := false
	recordRepo.ListAvailableFunc = func(ctx context.Context, limit int, excludeIDs []uint) ([]*record.Record, error) {
		listCalled = true
		return nil, nil
	}

	uc := NewRenewUseCase(recordRepo, p.assignmentRepo(), p.agentRepo(), &mockTxRunner{}, NewPoolGuard(), &mockRecorder{}, newMockLogger())
	result, err := uc.Execute(context.Background(), RenewCommand{AgentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Reclaimed)
	assert.Equal(t, 0, result.Redistributed)
	assert.Empty(t, result.AssignedIdentifiers)
	assert.False(t, listCalled)
	assert.Len(t, p.assignments, 1)
}

func TestRenewUseCase_Execute_RefillsFromReclaimedWhenPoolHasNothingElse(t *testing.T) {
	p := newFakePool(t, 3)
	p.addAgent(newTestAgent(t, 1, true, 3))
	p.seedAssignment(1, 1, vo.StateNoAnswer)
	p.seedAssignment(1, 2, vo.StateNoAnswer)
	p.seedAssignment(1, 3, vo.StatePending)

	result, err := newRenewFromPool(p, &mockRecorder{}).Execute(context.Background(), RenewCommand{AgentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Reclaimed)
	assert.Equal(t, 2, result.Redistributed)
	assert.Equal(t, map[uint]bool{1: true, 2: true, 3: true}, p.recordIDsOf(1))
	assert.Equal(t, 0, p.available())
	for _, a := range p.assignments {
		assert.Equal(t, vo.StatePending, a.State())
	}
}

func TestRenewUseCase_Execute_PrefersOtherRecordsOverReclaimed(t *testing.T) {
	p := newFakePool(t, 4)
	p.addAgent(newTestAgent(t, 1, true, 3))
	p.seedAssignment(1, 1, vo.StateBitten)
	p.seedAssignment(1, 2, vo.StateNoAnswer)
	p.seedAssignment(1, 3, vo.StatePending)

	result, err := newRenewFromPool(p, &mockRecorder{}).Execute(context.Background(), RenewCommand{AgentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Redistributed)
	assert.Equal(t, []string{"00000000000004", "00000000000001"}, result.AssignedIdentifiers)
	assert.Equal(t, map[uint]bool{1: true, 3: true, 4: true}, p.recordIDsOf(1))
	assert.Equal(t, record.AllocationAvailable, p.status[2])
}

func TestRenewUseCase_Execute_PartialBackfill(t *testing.T) {
	p := newFakePool(t, 3)
	p.addAgent(newTestAgent(t, 1, true, 10))
	p.seedAssignment(1, 1, vo.StateBitten)

	result, err := newRenewFromPool(p, &mockRecorder{}).Execute(context.Background(), RenewCommand{AgentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Reclaimed)
	assert.Equal(t, 3, result.Redistributed)
	assert.Equal(t, map[uint]bool{1: true, 2: true, 3: true}, p.recordIDsOf(1))
}

func TestRenewUseCase_Execute_InactiveAgentIsOnlyReclaimed(t *testing.T) {
	p := newFakePool(t, 5)
	p.addAgent(newTestAgent(t, 1, false, 3))
	p.seedAssignment(1, 1, vo.StateBitten)

	result, err := newRenewFromPool(p, &mockRecorder{}).Execute(context.Background(), RenewCommand{AgentID: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Reclaimed)
	assert.Equal(t, 0, result.Redistributed)
	assert.Empty(t, p.recordIDsOf(1))
}

func TestRenewUseCase_Execute_Errors(t *testing.T) {
	p := newFakePool(t, 1)
	uc := newRenewFromPool(p, &mockRecorder{})

	_, err := uc.Execute(context.Background(), RenewCommand{})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), RenewCommand{AgentID: 42})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRenewUseCase_Execute_ConflictWhenReleaseMismatches(t *testing.T) {
	p := newFakePool(t, 3)
	p.addAgent(newTestAgent(t, 1, true, 3))
	p.seedAssignment(1, 1, vo.StateBitten)
	p.status[1] = record.AllocationAvailable

	_, err := newRenewFromPool(p, &mockRecorder{}).Execute(context.Background(), RenewCommand{AgentID: 1})
	assert.True(t, errors.IsConflictError(err))
}
