package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assignmentUsecases "dialpool/internal/application/assignment/usecases"
	enrichmentUsecases "dialpool/internal/application/enrichment/usecases"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils"
)

// StatsHandler serves the dashboard counters and the registry cache admin.
type StatsHandler struct {
	globalStatsUC assignmentUsecases.GetGlobalStatsExecutor
	cacheStatsUC  enrichmentUsecases.GetCacheStatsExecutor
	clearCacheUC  enrichmentUsecases.ClearCacheExecutor
	logger        logger.Interface
}

func NewStatsHandler(
	globalStatsUC assignmentUsecases.GetGlobalStatsExecutor,
	cacheStatsUC enrichmentUsecases.GetCacheStatsExecutor,
	clearCacheUC enrichmentUsecases.ClearCacheExecutor,
	logger logger.Interface,
) *StatsHandler {
	return &StatsHandler{
		globalStatsUC: globalStatsUC,
		cacheStatsUC:  cacheStatsUC,
		clearCacheUC:  clearCacheUC,
		logger:        logger,
	}
}

// GetStats handles GET /admin/stats
// @Summary Get dashboard stats
// @Tags Admin Stats
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=assignmentUsecases.GlobalStatsResult}
// @Router /admin/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	result, err := h.globalStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRegistryCache handles GET /admin/registry/cache
// @Summary Get registry cache stats
// @Tags Admin Stats
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /admin/registry/cache [get]
func (h *StatsHandler) GetRegistryCache(c *gin.Context) {
	result, err := h.cacheStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ClearRegistryCache handles DELETE /admin/registry/cache
// @Summary Clear registry cache
// @Tags Admin Stats
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /admin/registry/cache [delete]
func (h *StatsHandler) ClearRegistryCache(c *gin.Context) {
	if err := h.clearCacheUC.Execute(c.Request.Context()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Registry cache cleared", nil)
}
