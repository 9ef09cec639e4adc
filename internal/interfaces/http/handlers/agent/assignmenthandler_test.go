package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	allocationUsecases "dialpool/internal/application/allocation/usecases"
	"dialpool/internal/application/assignment/dto"
	"dialpool/internal/application/assignment/usecases"
	"dialpool/internal/interfaces/http/handlers/testutil"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/query"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListUC struct {
	result *usecases.ListAgentAssignmentsResult
	err    error
	got    usecases.ListAgentAssignmentsQuery
}

func (m *mockListUC) Execute(_ context.Context, q usecases.ListAgentAssignmentsQuery) (*usecases.ListAgentAssignmentsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	result *dto.AssignmentDTO
	err    error
	got    usecases.UpdateStatusCommand
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateStatusCommand) (*dto.AssignmentDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockStatsUC struct {
	result *usecases.AgentStatsResult
	err    error
	got    usecases.GetAgentStatsQuery
}

func (m *mockStatsUC) Execute(_ context.Context, q usecases.GetAgentStatsQuery) (*usecases.AgentStatsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockRenewUC struct {
	result *allocationUsecases.RenewResult
	err    error
	got    allocationUsecases.RenewCommand
}

func (m *mockRenewUC) Execute(_ context.Context, cmd allocationUsecases.RenewCommand) (*allocationUsecases.RenewResult, error) {
	m.got = cmd
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	list   *mockListUC
	update *mockUpdateStatusUC
	stats  *mockStatsUC
	renew  *mockRenewUC
}

func newTestHandler() (*AssignmentHandler, testDeps) {
	deps := testDeps{
		list:   &mockListUC{},
		update: &mockUpdateStatusUC{},
		stats:  &mockStatsUC{},
		renew:  &mockRenewUC{},
	}
	return NewAssignmentHandler(deps.list, deps.update, deps.stats, deps.renew, testutil.NewMockLogger()), deps
}

// =====================================================================
// ListAssignments
// =====================================================================

func TestAssignmentHandler_ListAssignments(t *testing.T) {
	handler, deps := newTestHandler()
	deps.list.result = &usecases.ListAgentAssignmentsResult{
		Items: []*dto.AssignmentDTO{{ID: 1, AgentID: 7, State: "pending"}},
		Total: 1,
		Page:  query.PageFilter{Page: 1, PageSize: 20},
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/agent/assignments", nil)
	testutil.SetAgentContext(c, 7)
	testutil.SetQueryParams(c, map[string]string{"state": "pending"})
	handler.ListAssignments(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), deps.list.got.AgentID)
	assert.Equal(t, "pending", deps.list.got.State)
}

func TestAssignmentHandler_RejectsNonAgentPrincipals(t *testing.T) {
	handler, deps := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/agent/assignments", nil)
	testutil.SetAdminContext(c)
	handler.ListAssignments(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, deps.list.got.AgentID)

	c, w = testutil.NewTestContext(http.MethodGet, "/agent/stats", nil)
	handler.GetStats(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================================
// UpdateStatus
// =====================================================================

func TestAssignmentHandler_UpdateStatus(t *testing.T) {
	t.Run("scheduled with annotation", func(t *testing.T) {
		handler, deps := newTestHandler()
		note := "callback Tuesday"
		deps.update.result = &dto.AssignmentDTO{ID: 10, AgentID: 7, State: "scheduled", Annotation: &note}

		c, w := testutil.NewTestContext(http.MethodPatch, "/agent/assignments/10/status",
			UpdateStatusRequest{State: "scheduled", Annotation: &note})
		testutil.SetAgentContext(c, 7)
		testutil.SetURLParam(c, "id", "10")
		handler.UpdateStatus(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(10), deps.update.got.AssignmentID)
		assert.Equal(t, uint(7), deps.update.got.AgentID)
		assert.Equal(t, "scheduled", deps.update.got.NewState)
		require.NotNil(t, deps.update.got.Annotation)
		assert.Equal(t, note, *deps.update.got.Annotation)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var data dto.AssignmentDTO
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "scheduled", data.State)
	})

	t.Run("missing state", func(t *testing.T) {
		handler, deps := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodPatch, "/agent/assignments/10/status", map[string]any{})
		testutil.SetAgentContext(c, 7)
		testutil.SetURLParam(c, "id", "10")
		handler.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, deps.update.got.AssignmentID)
	})

	t.Run("unknown state", func(t *testing.T) {
		handler, deps := newTestHandler()
		deps.update.err = errors.NewInvalidStateError("unknown state")

		c, w := testutil.NewTestContext(http.MethodPatch, "/agent/assignments/10/status", UpdateStatusRequest{State: "answered"})
		testutil.SetAgentContext(c, 7)
		testutil.SetURLParam(c, "id", "10")
		handler.UpdateStatus(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("someone else's assignment", func(t *testing.T) {
		handler, deps := newTestHandler()
		deps.update.err = errors.NewNotFoundError("assignment not found")

		c, w := testutil.NewTestContext(http.MethodPatch, "/agent/assignments/11/status", UpdateStatusRequest{State: "bitten"})
		testutil.SetAgentContext(c, 7)
		testutil.SetURLParam(c, "id", "11")
		handler.UpdateStatus(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =====================================================================
// GetStats / Renew
// =====================================================================

func TestAssignmentHandler_GetStats(t *testing.T) {
	handler, deps := newTestHandler()
	deps.stats.result = &usecases.AgentStatsResult{AgentID: 7, ByState: map[string]int64{"pending": 2}, Total: 2}

	c, w := testutil.NewTestContext(http.MethodGet, "/agent/stats", nil)
	testutil.SetAgentContext(c, 7)
	handler.GetStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), deps.stats.got.AgentID)
}

func TestAssignmentHandler_Renew(t *testing.T) {
	handler, deps := newTestHandler()
	deps.renew.result = &allocationUsecases.RenewResult{
		BatchID:             "b",
		Reclaimed:           2,
		Redistributed:       2,
		AssignedIdentifiers: []string{"00000000000004", "00000000000005"},
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/agent/renew", nil)
	testutil.SetAgentContext(c, 7)
	handler.Renew(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), deps.renew.got.AgentID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data RenewResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 2, data.Reclaimed)
	assert.Len(t, data.AssignedIdentifiers, 2)
}
