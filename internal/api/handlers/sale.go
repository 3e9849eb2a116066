package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles HTTP requests for sale operations
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// CreateSale handles POST /sales
// @Summary Record a sale
// @Description Record a closed deal. A referenced prospect is marked Converted in the same operation.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body service.CreateSaleRequest true "Sale data"
// @Success 201 {object} map[string]interface{} "Successfully created sale"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Target outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Referenced prospect not found"
// @Security BearerAuth
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.CreateSale(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"sale": sale})
}

// GetSale handles GET /sales/:id
// @Summary Get sale by ID
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved sale"
// @Failure 403 {object} map[string]interface{} "Sale outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"sale": sale})
}

// ListSales handles GET /sales
// @Summary List visible sales
// @Description List sales in the caller's scope, optionally narrowed by month, team lead, executive, or client name
// @Tags sales
// @Produce json
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param team_lead_id query string false "Narrow to one team lead and their reports (UUID)"
// @Param executive_id query string false "Narrow to a single executive (UUID)"
// @Param client_name query string false "Filter by client name"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved sales"
// @Failure 403 {object} map[string]interface{} "Narrowing id outside caller's scope"
// @Security BearerAuth
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	teamLeadID, ok := parseUUIDQuery(c, "team_lead_id")
	if !ok {
		return
	}
	executiveID, ok := parseUUIDQuery(c, "executive_id")
	if !ok {
		return
	}

	limit, offset := parsePagination(c)
	query := service.SaleListQuery{
		Month:       c.Query("month"),
		TeamLeadID:  teamLeadID,
		ExecutiveID: executiveID,
		ClientName:  c.Query("client_name"),
		Limit:       limit,
		Offset:      offset,
	}

	sales, total, err := h.saleService.ListSales(caller, query)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, listEnvelope("sales", sales, total, limit, offset))
}

// DeleteSale handles DELETE /sales/:id
// @Summary Delete a sale
// @Description Hard-delete a sale. Managers only.
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID (UUID)"
// @Success 204 "Successfully deleted sale"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(caller, id); err != nil {
		respondError(c, err)
		return
	}

	respondDeleted(c)
}
