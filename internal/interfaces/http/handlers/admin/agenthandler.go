package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	agentUsecases "dialpool/internal/application/agent/usecases"
	allocationUsecases "dialpool/internal/application/allocation/usecases"
	assignmentUsecases "dialpool/internal/application/assignment/usecases"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils"
)

type AgentHandler struct {
	listActiveUC  allocationUsecases.ListActiveAgentsExecutor
	createAgentUC agentUsecases.CreateAgentExecutor
	updateAgentUC agentUsecases.UpdateAgentExecutor
	deleteAgentUC allocationUsecases.DeleteAgentExecutor
	agentStatsUC  assignmentUsecases.GetAgentStatsExecutor
	logger        logger.Interface
}

func NewAgentHandler(
	listActiveUC allocationUsecases.ListActiveAgentsExecutor,
	createAgentUC agentUsecases.CreateAgentExecutor,
	updateAgentUC agentUsecases.UpdateAgentExecutor,
	deleteAgentUC allocationUsecases.DeleteAgentExecutor,
	agentStatsUC assignmentUsecases.GetAgentStatsExecutor,
	logger logger.Interface,
) *AgentHandler {
	return &AgentHandler{
		listActiveUC:  listActiveUC,
		createAgentUC: createAgentUC,
		updateAgentUC: updateAgentUC,
		deleteAgentUC: deleteAgentUC,
		agentStatsUC:  agentStatsUC,
		logger:        logger,
	}
}

// ListAgents handles GET /admin/agents. Only active agents are listed,
// each with its pending workload.
// @Summary List active agents
// @Tags Admin Agents
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]AgentSummaryResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admin/agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	agents, err := h.listActiveUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toAgentSummaryResponses(agents))
}

// CreateAgent handles POST /admin/agents
// @Summary Create agent
// @Tags Admin Agents
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateAgentRequest true "Agent details"
// @Success 201 {object} utils.APIResponse{data=agentUsecases.AgentResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create agent", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createAgentUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Agent created")
}

// UpdateAgent handles PATCH /admin/agents/:id
// @Summary Update agent
// @Description Toggle an agent's active flag or change its daily quota
// @Tags Admin Agents
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Agent ID"
// @Param request body UpdateAgentRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=agentUsecases.AgentResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/agents/{id} [patch]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	agentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid agent id"))
		return
	}

	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateAgentUC.Execute(c.Request.Context(), agentUsecases.UpdateAgentCommand{
		AgentID:    agentID,
		Active:     req.Active,
		DailyQuota: req.DailyQuota,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent updated", result)
}

// DeleteAgent handles DELETE /admin/agents/:id. Every record the agent held
// goes back to the pool.
// @Summary Delete agent
// @Tags Admin Agents
// @Produce json
// @Security Bearer
// @Param id path int true "Agent ID"
// @Success 200 {object} utils.APIResponse{data=allocationUsecases.DeleteAgentResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	agentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid agent id"))
		return
	}

	result, err := h.deleteAgentUC.Execute(c.Request.Context(), allocationUsecases.DeleteAgentCommand{AgentID: agentID})
	if err != nil {
		h.logger.Errorw("failed to delete agent", "agent_id", agentID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent deleted", result)
}

// GetAgentStats handles GET /admin/agents/:id/stats
// @Summary Get agent stats
// @Description Count one agent's assignments per state
// @Tags Admin Agents
// @Produce json
// @Security Bearer
// @Param id path int true "Agent ID"
// @Success 200 {object} utils.APIResponse{data=assignmentUsecases.AgentStatsResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/agents/{id}/stats [get]
func (h *AgentHandler) GetAgentStats(c *gin.Context) {
	agentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid agent id"))
		return
	}

	result, err := h.agentStatsUC.Execute(c.Request.Context(), assignmentUsecases.GetAgentStatsQuery{AgentID: agentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
