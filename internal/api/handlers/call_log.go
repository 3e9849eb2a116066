package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CallLogHandler handles HTTP requests for call log operations
type CallLogHandler struct {
	callLogService *service.CallLogService
}

// NewCallLogHandler creates a new call log handler
func NewCallLogHandler(callLogService *service.CallLogService) *CallLogHandler {
	return &CallLogHandler{
		callLogService: callLogService,
	}
}

// CreateCallLog handles POST /call-logs
// @Summary Log a call
// @Description Record a call made by the calling executive. Logging against a prospect marks it touched.
// @Tags call-logs
// @Accept json
// @Produce json
// @Param call body service.CreateCallLogRequest true "Call data"
// @Success 201 {object} map[string]interface{} "Successfully created call log"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Only executives log calls"
// @Failure 404 {object} map[string]interface{} "Referenced prospect not found"
// @Security BearerAuth
// @Router /call-logs [post]
func (h *CallLogHandler) CreateCallLog(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req service.CreateCallLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	log, err := h.callLogService.CreateCallLog(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"call_log": log})
}

// GetCallLog handles GET /call-logs/:id
// @Summary Get call log by ID
// @Tags call-logs
// @Produce json
// @Param id path string true "Call log ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved call log"
// @Failure 403 {object} map[string]interface{} "Call log outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Call log not found"
// @Security BearerAuth
// @Router /call-logs/{id} [get]
func (h *CallLogHandler) GetCallLog(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	log, err := h.callLogService.GetCallLog(caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"call_log": log})
}

// ListCallLogs handles GET /call-logs
// @Summary List visible call logs
// @Description List call logs in the caller's scope, optionally narrowed by member or time window
// @Tags call-logs
// @Produce json
// @Param member_id query string false "Narrow to a single user (UUID)"
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved call logs"
// @Failure 403 {object} map[string]interface{} "Narrowing id outside caller's scope"
// @Security BearerAuth
// @Router /call-logs [get]
func (h *CallLogHandler) ListCallLogs(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	memberID, ok := parseUUIDQuery(c, "member_id")
	if !ok {
		return
	}

	limit, offset := parsePagination(c)
	query := service.CallLogListQuery{
		MemberID:  memberID,
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     limit,
		Offset:    offset,
	}

	logs, total, err := h.callLogService.ListCallLogs(caller, query)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, listEnvelope("call_logs", logs, total, limit, offset))
}

// UpdateCallLog handles PATCH /call-logs/:id
// @Summary Amend a call log
// @Description Update a call log's activity or comment. Setting the activity to the delete marker tombstones the referenced prospect.
// @Tags call-logs
// @Accept json
// @Produce json
// @Param id path string true "Call log ID (UUID)"
// @Param call body service.UpdateCallLogRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Successfully updated call log"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Call log outside caller's scope"
// @Failure 404 {object} map[string]interface{} "Call log not found"
// @Security BearerAuth
// @Router /call-logs/{id} [patch]
func (h *CallLogHandler) UpdateCallLog(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateCallLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	log, err := h.callLogService.UpdateCallLog(caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"call_log": log})
}
