package handlers

import (
	"net/http"

	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for reporting operations
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Dashboard handles GET /reports/dashboard
// @Summary Get the role-shaped dashboard summary
// @Description Executives see their own pipeline, team leads their team's, managers the whole org plus headcounts
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved summary"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	summary, err := h.reportService.Dashboard(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, summary)
}

// Performance handles GET /reports/performance
// @Summary Get per-user performance rows
// @Description Per-user call, prospect, and sale counts over an optional window for every user in the caller's scope
// @Tags reports
// @Produce json
// @Param team_lead_id query string false "Narrow to one team lead and their reports (UUID)"
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved rows"
// @Failure 403 {object} map[string]interface{} "Narrowing id outside caller's scope"
// @Security BearerAuth
// @Router /reports/performance [get]
func (h *ReportHandler) Performance(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	teamLeadID, ok := parseUUIDQuery(c, "team_lead_id")
	if !ok {
		return
	}

	rows, err := h.reportService.Performance(caller, service.PerformanceQuery{
		TeamLeadID: teamLeadID,
		Date:       c.Query("date"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"rows": rows})
}

// CallVolume handles GET /reports/calls
// @Summary Get per-executive call counts for a day
// @Description Call counts per executive in the caller's scope. Defaults to today. Not available to executives.
// @Tags reports
// @Produce json
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved rows"
// @Failure 403 {object} map[string]interface{} "Team leads and managers only"
// @Security BearerAuth
// @Router /reports/calls [get]
func (h *ReportHandler) CallVolume(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	rows, err := h.reportService.CallVolume(caller, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"rows": rows})
}

// ActivityLogs handles GET /reports/activity
// @Summary Get the recent activity feed
// @Description Recently updated prospects and recent calls merged into one feed, newest first
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved feed"
// @Security BearerAuth
// @Router /reports/activity [get]
func (h *ReportHandler) ActivityLogs(c *gin.Context) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	entries, err := h.reportService.ActivityLogs(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"activity": entries})
}
