package service

import (
	"sort"
	"time"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportService aggregates dashboard, performance, and activity reporting
// over the caller's visibility scope
type ReportService struct {
	userRepo     repository.UserRepositoryInterface
	prospectRepo repository.ProspectRepositoryInterface
	saleRepo     repository.SaleRepositoryInterface
	callLogRepo  repository.CallLogRepositoryInterface
	resolver     *access.Resolver
}

// NewReportService creates a new report service
func NewReportService(userRepo repository.UserRepositoryInterface, prospectRepo repository.ProspectRepositoryInterface, saleRepo repository.SaleRepositoryInterface, callLogRepo repository.CallLogRepositoryInterface, resolver *access.Resolver) *ReportService {
	return &ReportService{
		userRepo:     userRepo,
		prospectRepo: prospectRepo,
		saleRepo:     saleRepo,
		callLogRepo:  callLogRepo,
		resolver:     resolver,
	}
}

// DashboardSummary is the role-shaped landing page aggregate
type DashboardSummary struct {
	Role models.Role `json:"role"`

	// Executive and team lead fields
	ProspectsConverted int64   `json:"prospects_converted,omitempty"`
	OpenProspects      int64   `json:"open_prospects,omitempty"`
	TotalSalesAmount   float64 `json:"total_sales_amount,omitempty"`
	TeamSize           int64   `json:"team_size,omitempty"`
	CallsToday         int64   `json:"calls_today,omitempty"`

	// Manager fields
	SalesToday     int64 `json:"sales_today,omitempty"`
	SalesThisMonth int64 `json:"sales_this_month,omitempty"`
	SalesLastMonth int64 `json:"sales_last_month,omitempty"`
	Executives     int64 `json:"executives,omitempty"`
	TeamLeads      int64 `json:"team_leads,omitempty"`
}

// PerformanceRow summarizes one user's output over an optional window
type PerformanceRow struct {
	UserID     uuid.UUID   `json:"user_id"`
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	Calls      int64       `json:"calls"`
	Prospects  int64       `json:"prospects"`
	Untouched  int64       `json:"untouched"`
	Sales      int64       `json:"sales"`
	SaleAmount float64     `json:"sale_amount"`
}

// CallVolumeRow reports one executive's call count for a day
type CallVolumeRow struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Calls  int64     `json:"calls"`
}

// ActivityEntry is one item of the merged recent-activity feed
type ActivityEntry struct {
	Kind       string    `json:"kind"`
	EntityID   uuid.UUID `json:"entity_id"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

const activityFeedSize = 20

// Dashboard builds the role-shaped summary for the caller. Executives see
// their own pipeline, team leads their team's, managers the whole org plus
// headcounts.
func (s *ReportService) Dashboard(caller access.Caller) (*DashboardSummary, error) {
	scope, err := s.resolver.Resolve(caller, access.Narrowing{})
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{Role: caller.Role}
	ownerIDs := scope.UserIDs
	if scope.All {
		ownerIDs = nil
	}

	switch caller.Role {
	case models.RoleSalesExecutive, models.RoleTeamLead:
		converted, err := s.prospectRepo.CountByActivity(ownerIDs, models.ProspectActivityConverted)
		if err != nil {
			return nil, err
		}
		open, err := s.prospectRepo.CountOpen(ownerIDs)
		if err != nil {
			return nil, err
		}
		amount, err := s.saleRepo.SumAmount(repository.RecordFilter{OwnerIDs: ownerIDs})
		if err != nil {
			return nil, err
		}
		today := access.Today()
		calls, err := s.callLogRepo.Count(repository.RecordFilter{OwnerIDs: ownerIDs, Range: &today})
		if err != nil {
			return nil, err
		}
		summary.ProspectsConverted = converted
		summary.OpenProspects = open
		summary.TotalSalesAmount = amount
		summary.CallsToday = calls
		if caller.Role == models.RoleTeamLead {
			size, err := s.userRepo.CountReports(caller.ID)
			if err != nil {
				return nil, err
			}
			summary.TeamSize = size
		}
	case models.RoleManager:
		for _, window := range []struct {
			r    access.TimeRange
			dest *int64
		}{
			{access.Today(), &summary.SalesToday},
			{access.ThisMonth(), &summary.SalesThisMonth},
			{access.LastMonth(), &summary.SalesLastMonth},
		} {
			r := window.r
			count, err := s.saleRepo.Count(repository.RecordFilter{Range: &r})
			if err != nil {
				return nil, err
			}
			*window.dest = count
		}
		amount, err := s.saleRepo.SumAmount(repository.RecordFilter{})
		if err != nil {
			return nil, err
		}
		open, err := s.prospectRepo.CountOpen(nil)
		if err != nil {
			return nil, err
		}
		execs, err := s.userRepo.CountByRole(models.RoleSalesExecutive)
		if err != nil {
			return nil, err
		}
		leads, err := s.userRepo.CountByRole(models.RoleTeamLead)
		if err != nil {
			return nil, err
		}
		summary.TotalSalesAmount = amount
		summary.OpenProspects = open
		summary.Executives = execs
		summary.TeamLeads = leads
	default:
		return nil, apperrors.ErrForbidden
	}
	return summary, nil
}

// PerformanceQuery carries the filters for the performance report
type PerformanceQuery struct {
	TeamLeadID *uuid.UUID
	Date       string
	StartDate  string
	EndDate    string
}

// Performance builds per-user output rows for every user in the caller's
// scope over an optional time window
func (s *ReportService) Performance(caller access.Caller, query PerformanceQuery) ([]PerformanceRow, error) {
	scope, err := s.resolver.Resolve(caller, access.Narrowing{TeamLeadID: query.TeamLeadID})
	if err != nil {
		return nil, err
	}

	timeRange, err := access.ParseRange(query.Date, query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	users, err := s.scopedUsers(scope)
	if err != nil {
		return nil, err
	}

	rows := make([]PerformanceRow, 0, len(users))
	for _, u := range users {
		owner := []uuid.UUID{u.ID}
		filter := repository.RecordFilter{OwnerIDs: owner, Range: timeRange}
		calls, err := s.callLogRepo.Count(filter)
		if err != nil {
			return nil, err
		}
		prospects, err := s.prospectRepo.Count(filter, false)
		if err != nil {
			return nil, err
		}
		untouched, err := s.prospectRepo.Count(filter, true)
		if err != nil {
			return nil, err
		}
		sales, err := s.saleRepo.Count(filter)
		if err != nil {
			return nil, err
		}
		amount, err := s.saleRepo.SumAmount(filter)
		if err != nil {
			return nil, err
		}
		rows = append(rows, PerformanceRow{
			UserID:     u.ID,
			Name:       u.Name,
			Role:       u.Role,
			Calls:      calls,
			Prospects:  prospects,
			Untouched:  untouched,
			Sales:      sales,
			SaleAmount: amount,
		})
	}
	return rows, nil
}

// scopedUsers materializes the users behind a scope. An unrestricted scope
// covers every executive and team lead; managers hold no records and are
// never reported on.
func (s *ReportService) scopedUsers(scope access.Scope) ([]models.User, error) {
	if !scope.All {
		return s.userRepo.GetByIDs(scope.UserIDs)
	}
	execs, err := s.userRepo.GetByRole(models.RoleSalesExecutive)
	if err != nil {
		return nil, err
	}
	leads, err := s.userRepo.GetByRole(models.RoleTeamLead)
	if err != nil {
		return nil, err
	}
	return append(execs, leads...), nil
}

// CallVolume reports per-executive call counts for a single day across the
// caller's scope. Defaults to today.
func (s *ReportService) CallVolume(caller access.Caller, date string) ([]CallVolumeRow, error) {
	if caller.Role == models.RoleSalesExecutive {
		return nil, apperrors.ErrForbidden
	}

	scope, err := s.resolver.Resolve(caller, access.Narrowing{})
	if err != nil {
		return nil, err
	}

	day := access.Today()
	if date != "" {
		parsed, err := access.ParseRange(date, "", "")
		if err != nil {
			return nil, err
		}
		day = *parsed
	}

	users, err := s.scopedUsers(scope)
	if err != nil {
		return nil, err
	}

	rows := make([]CallVolumeRow, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleSalesExecutive {
			continue
		}
		calls, err := s.callLogRepo.Count(repository.RecordFilter{OwnerIDs: []uuid.UUID{u.ID}, Range: &day})
		if err != nil {
			return nil, err
		}
		rows = append(rows, CallVolumeRow{UserID: u.ID, Name: u.Name, Calls: calls})
	}
	return rows, nil
}

// ActivityLogs merges recently updated prospects and recent calls into one
// feed ordered newest first
func (s *ReportService) ActivityLogs(caller access.Caller) ([]ActivityEntry, error) {
	scope, err := s.resolver.Resolve(caller, access.Narrowing{})
	if err != nil {
		return nil, err
	}
	ownerIDs := scope.UserIDs
	if scope.All {
		ownerIDs = nil
	}

	prospects, err := s.prospectRepo.RecentUpdated(ownerIDs, activityFeedSize)
	if err != nil {
		return nil, err
	}
	calls, err := s.callLogRepo.Recent(ownerIDs, activityFeedSize)
	if err != nil {
		return nil, err
	}

	entries := make([]ActivityEntry, 0, len(prospects)+len(calls))
	for _, p := range prospects {
		entries = append(entries, ActivityEntry{
			Kind:       "prospect",
			EntityID:   p.ID,
			Summary:    p.CompanyName + " - " + p.Activity,
			OccurredAt: p.LastUpdate,
		})
	}
	for _, c := range calls {
		entries = append(entries, ActivityEntry{
			Kind:       "call",
			EntityID:   c.ID,
			Summary:    c.Activity,
			OccurredAt: c.CallDate,
		})
	}

	// Each stream is already capped at activityFeedSize; the merge keeps
	// both in full so one busy stream cannot crowd the other out.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})
	return entries, nil
}
