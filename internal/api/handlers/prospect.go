package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProspectHandler handles HTTP requests for prospect operations
type ProspectHandler struct {
	prospectService *service.ProspectService
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(prospectService *service.ProspectService) *ProspectHandler {
	return &ProspectHandler{
		prospectService: prospectService,
	}
}

// CreateProspect handles POST /prospects
// @Summary Create a prospect
// @Description Create a prospect owned by the caller or a named executive
// @Tags prospects
// @Accept json
// @Produce json
// @Param prospect body service.CreateProspectRequest true "Prospect data"
// @Success 201 {object} map[string]interface{} "Successfully created prospect"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Target outside caller's scope"
// @Security BearerAuth
// @Router /prospects [post]
func (h *ProspectHandler) CreateProspect(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req service.CreateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	prospect, err := h.prospectService.CreateProspect(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"prospect": prospect})
}

// GetProspect handles GET /prospects/:id
// @Summary Get prospect by ID
// @Tags prospects
// @Produce json
// @Param id path string true "Prospect ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved prospect"
// @Failure 403 {object} map[string]interface{} "Prospect outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Prospect not found"
// @Security BearerAuth
// @Router /prospects/{id} [get]
func (h *ProspectHandler) GetProspect(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	prospect, err := h.prospectService.GetProspect(caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"prospect": prospect})
}

// ListProspects handles GET /prospects
// @Summary List visible prospects
// @Description List prospects in the caller's scope, optionally narrowed by member, team lead, date, or untouched flag
// @Tags prospects
// @Produce json
// @Param member_id query string false "Narrow to a single user (UUID)"
// @Param team_lead_id query string false "Narrow to one team lead and their reports (UUID)"
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Param untouched query bool false "Only untouched prospects"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved prospects"
// @Failure 403 {object} map[string]interface{} "Narrowing id outside caller's scope"
// @Security BearerAuth
// @Router /prospects [get]
func (h *ProspectHandler) ListProspects(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	memberID, ok := parseUUIDQuery(c, "member_id")
	if !ok {
		return
	}
	teamLeadID, ok := parseUUIDQuery(c, "team_lead_id")
	if !ok {
		return
	}

	limit, offset := parsePagination(c)
	query := service.ProspectListQuery{
		MemberID:   memberID,
		TeamLeadID: teamLeadID,
		Date:       c.Query("date"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Untouched:  c.Query("untouched") == "true",
		Limit:      limit,
		Offset:     offset,
	}

	prospects, total, err := h.prospectService.ListProspects(caller, query)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, listEnvelope("prospects", prospects, total, limit, offset))
}

// UpdateProspect handles PATCH /prospects/:id
// @Summary Update a prospect
// @Description Partially update a prospect. Any activity change marks it touched.
// @Tags prospects
// @Accept json
// @Produce json
// @Param id path string true "Prospect ID (UUID)"
// @Param prospect body service.UpdateProspectRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Successfully updated prospect"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Prospect outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Prospect not found"
// @Security BearerAuth
// @Router /prospects/{id} [patch]
func (h *ProspectHandler) UpdateProspect(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	prospect, err := h.prospectService.UpdateProspect(caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"prospect": prospect})
}

// DeleteProspect handles DELETE /prospects/:id
// @Summary Delete a prospect
// @Description Hard-delete a prospect. Managers only.
// @Tags prospects
// @Produce json
// @Param id path string true "Prospect ID (UUID)"
// @Success 204 "Successfully deleted prospect"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Prospect not found"
// @Security BearerAuth
// @Router /prospects/{id} [delete]
func (h *ProspectHandler) DeleteProspect(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.prospectService.DeleteProspect(caller, id); err != nil {
		respondError(c, err)
		return
	}

	respondDeleted(c)
}
