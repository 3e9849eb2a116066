package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PayoutHandler handles HTTP requests for payout operations
type PayoutHandler struct {
	payoutService *service.PayoutService
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(payoutService *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// CreatePayout handles POST /payouts
// @Summary Create a payout
// @Description Record a payout for a user. Managers only.
// @Tags payouts
// @Accept json
// @Produce json
// @Param payout body service.CreatePayoutRequest true "Payout data"
// @Success 201 {object} map[string]interface{} "Successfully created payout"
// @Failure 400 {object} map[string]interface{} "Invalid request body or month format"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /payouts [post]
func (h *PayoutHandler) CreatePayout(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req service.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	payout, err := h.payoutService.CreatePayout(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"payout": payout})
}

// GetPayout handles GET /payouts/:id
// @Summary Get payout by ID
// @Tags payouts
// @Produce json
// @Param id path string true "Payout ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved payout"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Payout not found"
// @Security BearerAuth
// @Router /payouts/{id} [get]
func (h *PayoutHandler) GetPayout(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payout, err := h.payoutService.GetPayout(caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"payout": payout})
}

// ListPayouts handles GET /payouts
// @Summary List payouts
// @Description List payouts, optionally for a single month. Managers only.
// @Tags payouts
// @Produce json
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved payouts"
// @Failure 400 {object} map[string]interface{} "Invalid month format"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Security BearerAuth
// @Router /payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	limit, offset := parsePagination(c)
	payouts, total, err := h.payoutService.ListPayouts(caller, c.Query("month"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, listEnvelope("payouts", payouts, total, limit, offset))
}

// UpdatePayout handles PATCH /payouts/:id
// @Summary Update a payout
// @Description Partially update a payout. Managers only.
// @Tags payouts
// @Accept json
// @Produce json
// @Param id path string true "Payout ID (UUID)"
// @Param payout body service.UpdatePayoutRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Successfully updated payout"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Payout not found"
// @Security BearerAuth
// @Router /payouts/{id} [patch]
func (h *PayoutHandler) UpdatePayout(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	payout, err := h.payoutService.UpdatePayout(caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"payout": payout})
}

// DeletePayout handles DELETE /payouts/:id
// @Summary Delete a payout
// @Description Remove a payout. Managers only.
// @Tags payouts
// @Produce json
// @Param id path string true "Payout ID (UUID)"
// @Success 204 "Successfully deleted payout"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Payout not found"
// @Security BearerAuth
// @Router /payouts/{id} [delete]
func (h *PayoutHandler) DeletePayout(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.payoutService.DeletePayout(caller, id); err != nil {
		respondError(c, err)
		return
	}

	respondDeleted(c)
}
