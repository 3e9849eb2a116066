package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team for a team lead who has none yet. Managers only.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} map[string]interface{} "Successfully created team"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Team lead not found"
// @Failure 409 {object} map[string]interface{} "Lead already has a team or name taken"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.CreateTeam(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"team": team})
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team with its lead and members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"team": team})
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	limit, offset := parsePagination(c)
	teams, total, err := h.teamService.ListTeams(caller, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, listEnvelope("teams", teams, total, limit, offset))
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Rename a team or hand it to a different team lead. Managers only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Updated team data"
// @Success 200 {object} map[string]interface{} "Successfully updated team"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Team or lead not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.UpdateTeam(caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"team": team})
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Unassign all members and the lead, then remove the team. Managers only.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(caller, id); err != nil {
		respondError(c, err)
		return
	}

	respondDeleted(c)
}

// AddMembers handles POST /teams/:id/members
// @Summary Add members to a team
// @Description Assign executives to the team, all or nothing. Managers only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param members body service.MembersRequest true "Member ids"
// @Success 200 {object} map[string]interface{} "Successfully added members"
// @Failure 400 {object} map[string]interface{} "Invalid request or non-executive member"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMembers(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.MembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.AddMembers(caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"team": team})
}

// RemoveMembers handles DELETE /teams/:id/members
// @Summary Remove members from a team
// @Description Unassign executives that currently belong to this team. Managers only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param members body service.MembersRequest true "Member ids"
// @Success 200 {object} map[string]interface{} "Successfully removed members"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/members [delete]
func (h *TeamHandler) RemoveMembers(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.MembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.RemoveMembers(caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"team": team})
}
