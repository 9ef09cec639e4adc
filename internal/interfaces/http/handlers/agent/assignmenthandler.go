package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	allocationUsecases "dialpool/internal/application/allocation/usecases"
	"dialpool/internal/application/assignment/usecases"
	"dialpool/internal/shared/authorization"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils"
)

// AssignmentHandler serves the calling agent's own workload. Every route
// scopes by the agent resolved from the token, never by a request field.
type AssignmentHandler struct {
	listUC         usecases.ListAgentAssignmentsExecutor
	updateStatusUC usecases.UpdateStatusExecutor
	statsUC        usecases.GetAgentStatsExecutor
	renewUC        allocationUsecases.RenewExecutor
	logger         logger.Interface
}

func NewAssignmentHandler(
	listUC usecases.ListAgentAssignmentsExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	statsUC usecases.GetAgentStatsExecutor,
	renewUC allocationUsecases.RenewExecutor,
	logger logger.Interface,
) *AssignmentHandler {
	return &AssignmentHandler{
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		statsUC:        statsUC,
		renewUC:        renewUC,
		logger:         logger,
	}
}

type UpdateStatusRequest struct {
	State      string  `json:"state" binding:"required"`
	Annotation *string `json:"annotation"`
}

type RenewResponse struct {
	BatchID             string   `json:"batch_id,omitempty"`
	Reclaimed           int      `json:"reclaimed"`
	Redistributed       int      `json:"redistributed"`
	AssignedIdentifiers []string `json:"assigned_identifiers"`
}

// ListAssignments handles GET /agent/assignments
// @Summary List my assignments
// @Tags Agent
// @Produce json
// @Security Bearer
// @Param state query string false "Filter by state"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /agent/assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	agentID, ok := h.callingAgent(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAgentAssignmentsQuery{
		AgentID: agentID,
		State:   c.Query("state"),
		Page:    utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page)
}

// UpdateStatus handles PATCH /agent/assignments/:id/status
// @Summary Record call outcome
// @Tags Agent
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Assignment ID"
// @Param request body UpdateStatusRequest true "New state and annotation"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /agent/assignments/{id}/status [patch]
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	agentID, ok := h.callingAgent(c)
	if !ok {
		return
	}

	assignmentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid assignment id"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for status update", "agent_id", agentID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		AssignmentID: assignmentID,
		AgentID:      agentID,
		NewState:     req.State,
		Annotation:   req.Annotation,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

// GetStats handles GET /agent/stats
// @Summary Get my stats
// @Tags Agent
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=usecases.AgentStatsResult}
// @Failure 401 {object} utils.APIResponse
// @Router /agent/stats [get]
func (h *AssignmentHandler) GetStats(c *gin.Context) {
	agentID, ok := h.callingAgent(c)
	if !ok {
		return
	}

	result, err := h.statsUC.Execute(c.Request.Context(), usecases.GetAgentStatsQuery{AgentID: agentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Renew handles POST /agent/renew
// @Summary Renew my batch
// @Description Return finalized records to the pool and top up to the daily quota
// @Tags Agent
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=RenewResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agent/renew [post]
func (h *AssignmentHandler) Renew(c *gin.Context) {
	agentID, ok := h.callingAgent(c)
	if !ok {
		return
	}

	result, err := h.renewUC.Execute(c.Request.Context(), allocationUsecases.RenewCommand{AgentID: agentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ids := result.AssignedIdentifiers
	if ids == nil {
		ids = []string{}
	}
	utils.SuccessResponse(c, http.StatusOK, "", RenewResponse{
		BatchID:             result.BatchID,
		Reclaimed:           result.Reclaimed,
		Redistributed:       result.Redistributed,
		AssignedIdentifiers: ids,
	})
}

// callingAgent writes a 401 and returns false when no agent principal is set.
func (h *AssignmentHandler) callingAgent(c *gin.Context) (uint, bool) {
	p, ok := authorization.PrincipalFrom(c)
	if ok {
		if agentID, isAgent := p.AgentID(); isAgent {
			return agentID, true
		}
	}
	utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("agent not authenticated"))
	return 0, false
}
