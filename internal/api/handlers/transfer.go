package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles HTTP requests for transfer operations
type TransferHandler struct {
	transferService *service.TransferService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// InternalTransfer handles POST /transfers/internal
// @Summary Move records between users
// @Description Transfer prospects and sales from one user to another. Ids that do not belong to the source are skipped; moving nothing fails.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body service.InternalTransferRequest true "Transfer data"
// @Success 200 {object} map[string]interface{} "Transfer completed"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Participants outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Nothing was moved"
// @Security BearerAuth
// @Router /transfers/internal [post]
func (h *TransferHandler) InternalTransfer(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req service.InternalTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.transferService.InternalTransfer(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, result)
}

// FinanceTransfer handles POST /transfers/finance
// @Summary Hand sales over to finance
// @Description Flag sales as transferred to finance. Already-flagged sales are skipped. Managers only.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body service.FinanceTransferRequest true "Sale ids"
// @Success 200 {object} map[string]interface{} "Handover completed"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "No pending sales among the given ids"
// @Security BearerAuth
// @Router /transfers/finance [post]
func (h *TransferHandler) FinanceTransfer(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req service.FinanceTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.transferService.FinanceTransfer(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, result)
}

// InternalHistory handles GET /transfers/internal
// @Summary List internal transfer history
// @Description Managers see all internal transfers; team leads see the transfers they initiated
// @Tags transfers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved history"
// @Failure 403 {object} map[string]interface{} "Executives have no transfer surface"
// @Security BearerAuth
// @Router /transfers/internal [get]
func (h *TransferHandler) InternalHistory(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	limit, offset := parsePagination(c)
	logs, total, err := h.transferService.InternalTransferHistory(caller, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, listEnvelope("transfers", logs, total, limit, offset))
}

// FinanceHistory handles GET /transfers/finance
// @Summary List finance handover history
// @Description List finance handover audit records. Managers only.
// @Tags transfers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved history"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Security BearerAuth
// @Router /transfers/finance [get]
func (h *TransferHandler) FinanceHistory(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	limit, offset := parsePagination(c)
	logs, total, err := h.transferService.FinanceTransferHistory(caller, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, listEnvelope("transfers", logs, total, limit, offset))
}
