package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dialpool/internal/application/allocation/usecases"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils"
)

// AllocationHandler drives distribution and reclaim from the admin console.
type AllocationHandler struct {
	distributeUC usecases.DistributeExecutor
	renewUC      usecases.RenewExecutor
	logger       logger.Interface
}

func NewAllocationHandler(
	distributeUC usecases.DistributeExecutor,
	renewUC usecases.RenewExecutor,
	logger logger.Interface,
) *AllocationHandler {
	return &AllocationHandler{
		distributeUC: distributeUC,
		renewUC:      renewUC,
		logger:       logger,
	}
}

// Distribute handles POST /admin/distributions
// @Summary Distribute records
// @Description Hand out available records to agents in one atomic batch
// @Tags Admin Allocation
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body DistributeRequest true "Quantity per agent"
// @Success 201 {object} utils.APIResponse{data=DistributeResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/distributions [post]
func (h *AllocationHandler) Distribute(c *gin.Context) {
	var req DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for distribute", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.distributeUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toDistributeResponse(result), "Records distributed")
}

// Reclaim handles POST /admin/agents/:id/reclaim. It runs the same
// reclaim-and-backfill cycle an agent triggers with renew.
// @Summary Reclaim agent records
// @Tags Admin Allocation
// @Produce json
// @Security Bearer
// @Param id path int true "Agent ID"
// @Success 200 {object} utils.APIResponse{data=ReclaimResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/agents/{id}/reclaim [post]
func (h *AllocationHandler) Reclaim(c *gin.Context) {
	agentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid agent id"))
		return
	}

	result, err := h.renewUC.Execute(c.Request.Context(), usecases.RenewCommand{AgentID: agentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toReclaimResponse(result))
}
