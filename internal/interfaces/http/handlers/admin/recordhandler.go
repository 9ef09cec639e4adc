package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assignmentUsecases "dialpool/internal/application/assignment/usecases"
	"dialpool/internal/application/enrichment/usecases"
	"dialpool/internal/shared/errors"
	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils"
)

// RecordHandler exposes the record store and the enrichment runs.
type RecordHandler struct {
	listRecordsUC   usecases.ListRecordsExecutor
	getRecordUC     usecases.GetRecordExecutor
	getHistoryUC    assignmentUsecases.GetHistoryExecutor
	importRecordsUC usecases.ImportRecordsExecutor
	backfillUC      usecases.BackfillExecutor
	purgeUC         usecases.PurgeExecutor
	logger          logger.Interface
}

func NewRecordHandler(
	listRecordsUC usecases.ListRecordsExecutor,
	getRecordUC usecases.GetRecordExecutor,
	getHistoryUC assignmentUsecases.GetHistoryExecutor,
	importRecordsUC usecases.ImportRecordsExecutor,
	backfillUC usecases.BackfillExecutor,
	purgeUC usecases.PurgeExecutor,
	logger logger.Interface,
) *RecordHandler {
	return &RecordHandler{
		listRecordsUC:   listRecordsUC,
		getRecordUC:     getRecordUC,
		getHistoryUC:    getHistoryUC,
		importRecordsUC: importRecordsUC,
		backfillUC:      backfillUC,
		purgeUC:         purgeUC,
		logger:          logger,
	}
}

// ListRecords handles GET /admin/records
// @Summary List records
// @Tags Admin Records
// @Produce json
// @Security Bearer
// @Param search query string false "Identifier or name fragment"
// @Param allocation_status query string false "available or assigned"
// @Param assignment_state query string false "Current assignment state"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /admin/records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	page := utils.ParsePagination(c)
	result, err := h.listRecordsUC.Execute(c.Request.Context(), usecases.ListRecordsQuery{
		Search:           c.Query("search"),
		AllocationStatus: c.Query("allocation_status"),
		AssignmentState:  c.Query("assignment_state"),
		Page:             page,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page)
}

// GetRecord handles GET /admin/records/:id
// @Summary Get record
// @Tags Admin Records
// @Produce json
// @Security Bearer
// @Param id path int true "Record ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	recordID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid record id"))
		return
	}

	result, err := h.getRecordUC.Execute(c.Request.Context(), usecases.GetRecordQuery{RecordID: recordID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHistory handles GET /admin/records/:id/history
// @Summary Get record outcome history
// @Tags Admin Records
// @Produce json
// @Security Bearer
// @Param id path int true "Record ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/records/{id}/history [get]
func (h *RecordHandler) GetHistory(c *gin.Context) {
	recordID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid record id"))
		return
	}

	entries, err := h.getHistoryUC.Execute(c.Request.Context(), assignmentUsecases.GetHistoryQuery{RecordID: recordID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// ImportRecords handles POST /admin/records/import. The request blocks until
// every fresh identifier has been looked up at the registry pace.
// @Summary Import records
// @Tags Admin Records
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ImportRecordsRequest true "Rows to import"
// @Success 200 {object} utils.APIResponse{data=usecases.ImportResult}
// @Failure 400 {object} utils.APIResponse
// @Router /admin/records/import [post]
func (h *RecordHandler) ImportRecords(c *gin.Context) {
	var req ImportRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for import", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.importRecordsUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import finished", result)
}

// Backfill handles POST /admin/records/backfill
// @Summary Backfill registry data
// @Tags Admin Records
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body BackfillRequest true "Records to enrich"
// @Success 200 {object} utils.APIResponse{data=usecases.BackfillResult}
// @Failure 400 {object} utils.APIResponse
// @Router /admin/records/backfill [post]
func (h *RecordHandler) Backfill(c *gin.Context) {
	var req BackfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.backfillUC.Execute(c.Request.Context(), usecases.BackfillCommand{
		All:         req.All,
		Identifiers: req.Identifiers,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Backfill finished", result)
}

// PurgeRecords handles DELETE /admin/records
// @Summary Delete all records
// @Description Remove every record, assignment and history entry
// @Tags Admin Records
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=usecases.PurgeResult}
// @Router /admin/records [delete]
func (h *RecordHandler) PurgeRecords(c *gin.Context) {
	result, err := h.purgeUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Warnw("record store purged",
		"records", result.RecordsDeleted,
		"assignments", result.AssignmentsDeleted,
		"history", result.HistoryDeleted,
		"client_ip", c.ClientIP(),
	)
	utils.SuccessResponse(c, http.StatusOK, "All records deleted", result)
}
