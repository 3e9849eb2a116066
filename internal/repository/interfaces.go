package repository

import (
	"time"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RecordFilter narrows list queries for owned collections. A nil OwnerIDs
// slice means unrestricted (manager scope); an empty slice matches nothing.
type RecordFilter struct {
	OwnerIDs []uuid.UUID
	Range    *access.TimeRange
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByRole(role models.Role) ([]models.User, error)
	GetDirectReports(leadID uuid.UUID) ([]models.User, error)
	GetDirectReportIDs(leadID uuid.UUID) ([]uuid.UUID, error)
	Update(user *models.User) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	AssignToTeam(ids []uuid.UUID, leadID, teamID uuid.UUID) error
	UnassignFromTeam(ids []uuid.UUID, teamID uuid.UUID) error
	UnassignReportsOf(leadID uuid.UUID) error
	UnlinkManagerFromLeads(managerID uuid.UUID) error
	CountByRole(role models.Role) (int64, error)
	CountReports(leadID uuid.UUID) (int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetByTeamLeadID(leadID uuid.UUID) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// ProspectRepositoryInterface defines the interface for prospect repository operations
type ProspectRepositoryInterface interface {
	Create(prospect *models.Prospect) error
	GetByID(id uuid.UUID) (*models.Prospect, error)
	List(filter RecordFilter, untouchedOnly bool, limit, offset int) ([]models.Prospect, int64, error)
	Update(prospect *models.Prospect) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	TransferOwnership(ids []uuid.UUID, fromID, toID uuid.UUID, newTeamLeadID *uuid.UUID) (int64, error)
	MarkConverted(id uuid.UUID) error
	Touch(id uuid.UUID) error
	Count(filter RecordFilter, untouchedOnly bool) (int64, error)
	CountByActivity(ownerIDs []uuid.UUID, activity string) (int64, error)
	CountOpen(ownerIDs []uuid.UUID) (int64, error)
	RecentUpdated(ownerIDs []uuid.UUID, limit int) ([]models.Prospect, error)
}

// SaleFilter narrows sale list queries beyond the common record filter
type SaleFilter struct {
	RecordFilter
	TeamLeadID *uuid.UUID
	ClientName string
}

// SaleRepositoryInterface defines the interface for sale repository operations
type SaleRepositoryInterface interface {
	Create(sale *models.Sale) error
	GetByID(id uuid.UUID) (*models.Sale, error)
	List(filter SaleFilter, limit, offset int) ([]models.Sale, int64, error)
	Delete(id uuid.UUID) error
	TransferOwnership(ids []uuid.UUID, fromID, toID uuid.UUID, newTeamLeadID *uuid.UUID) (int64, error)
	GetPendingFinance(ids []uuid.UUID) ([]models.Sale, error)
	MarkTransferredToFinance(ids []uuid.UUID, at time.Time) (int64, error)
	Count(filter RecordFilter) (int64, error)
	SumAmount(filter RecordFilter) (float64, error)
}

// CallLogRepositoryInterface defines the interface for call log repository operations
type CallLogRepositoryInterface interface {
	Create(log *models.CallLog) error
	GetByID(id uuid.UUID) (*models.CallLog, error)
	List(filter RecordFilter, limit, offset int) ([]models.CallLog, int64, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Count(filter RecordFilter) (int64, error)
	Recent(ownerIDs []uuid.UUID, limit int) ([]models.CallLog, error)
}

// PayoutRepositoryInterface defines the interface for payout repository operations
type PayoutRepositoryInterface interface {
	Create(payout *models.Payout) error
	GetByID(id uuid.UUID) (*models.Payout, error)
	GetAll(month string, limit, offset int) ([]models.Payout, int64, error)
	Update(payout *models.Payout) error
	Delete(id uuid.UUID) error
}

// TransferLogRepositoryInterface defines the interface for transfer log repository operations
type TransferLogRepositoryInterface interface {
	Create(log *models.TransferLog) error
	ListByType(transferType models.TransferType, transferredBy *uuid.UUID, limit, offset int) ([]models.TransferLog, int64, error)
}
