package service

import (
	"errors"
	"fmt"
	"time"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProspectService handles business logic for prospects
type ProspectService struct {
	prospectRepo repository.ProspectRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	resolver     *access.Resolver
	validator    *validator.Validate
}

// NewProspectService creates a new prospect service
func NewProspectService(prospectRepo repository.ProspectRepositoryInterface, userRepo repository.UserRepositoryInterface, resolver *access.Resolver, validator *validator.Validate) *ProspectService {
	return &ProspectService{
		prospectRepo: prospectRepo,
		userRepo:     userRepo,
		resolver:     resolver,
		validator:    validator,
	}
}

// CreateProspectRequest represents the request to create a prospect
type CreateProspectRequest struct {
	CompanyName      string     `json:"companyName" validate:"required,max=200"`
	ClientName       string     `json:"clientName" validate:"required,max=100"`
	ContactNo        string     `json:"contactNo,omitempty"`
	Email            string     `json:"email,omitempty" validate:"omitempty,email"`
	SalesExecutiveID *uuid.UUID `json:"salesExecutiveId,omitempty"`
}

// UpdateProspectRequest represents the request to update a prospect
type UpdateProspectRequest struct {
	CompanyName string `json:"companyName,omitempty" validate:"omitempty,max=200"`
	ClientName  string `json:"clientName,omitempty" validate:"omitempty,max=100"`
	ContactNo   string `json:"contactNo,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Activity    string `json:"activity,omitempty" validate:"omitempty,max=50"`
}

// ProspectListQuery carries the query parameters for prospect listing
type ProspectListQuery struct {
	MemberID   *uuid.UUID
	TeamLeadID *uuid.UUID
	Date       string
	StartDate  string
	EndDate    string
	Untouched  bool
	Limit      int
	Offset     int
}

// CreateProspect creates a prospect owned by the caller or a named
// executive. New prospects start as "New" and untouched, with the team
// lead pointer derived from the owner's reporting chain.
func (s *ProspectService) CreateProspect(caller access.Caller, req *CreateProspectRequest) (*models.Prospect, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	owner, err := resolveOwner(s.userRepo, caller, req.SalesExecutiveID)
	if err != nil {
		return nil, err
	}
	if err := access.CanCreateRecordFor(caller, owner); err != nil {
		return nil, err
	}

	prospect := &models.Prospect{
		CompanyName:      req.CompanyName,
		ClientName:       req.ClientName,
		ContactNo:        req.ContactNo,
		Email:            req.Email,
		Activity:         models.ProspectActivityNew,
		SalesExecutiveID: owner.ID,
		TeamLeadID:       denormalizedTeamLead(owner),
		IsUntouched:      true,
		LastUpdate:       time.Now(),
	}
	if err := s.prospectRepo.Create(prospect); err != nil {
		return nil, fmt.Errorf("failed to create prospect: %w", err)
	}
	return prospect, nil
}

// GetProspect retrieves a prospect visible to the caller. An existing
// prospect outside the caller's scope yields a 403, not a 404.
func (s *ProspectService) GetProspect(caller access.Caller, id uuid.UUID) (*models.Prospect, error) {
	prospect, err := s.prospectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProspectNotFound
		}
		return nil, fmt.Errorf("failed to get prospect: %w", err)
	}

	owner, err := getOwner(s.userRepo, prospect.SalesExecutiveID)
	if err != nil {
		return nil, err
	}
	if err := access.CanAccessRecordOf(caller, owner); err != nil {
		return nil, err
	}
	return prospect, nil
}

// ListProspects retrieves prospects in the caller's scope, optionally
// narrowed by member, team lead, or time window
func (s *ProspectService) ListProspects(caller access.Caller, query ProspectListQuery) ([]models.Prospect, int64, error) {
	scope, err := s.resolver.Resolve(caller, access.Narrowing{MemberID: query.MemberID, TeamLeadID: query.TeamLeadID})
	if err != nil {
		return nil, 0, err
	}

	timeRange, err := access.ParseRange(query.Date, query.StartDate, query.EndDate)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.RecordFilter{Range: timeRange}
	if !scope.All {
		filter.OwnerIDs = scope.UserIDs
	}
	return s.prospectRepo.List(filter, query.Untouched, query.Limit, query.Offset)
}

// UpdateProspect applies a partial update. Any activity change marks the
// prospect as touched; the untouched flag never comes back.
func (s *ProspectService) UpdateProspect(caller access.Caller, id uuid.UUID, req *UpdateProspectRequest) (*models.Prospect, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	prospect, err := s.GetProspect(caller, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"last_update": time.Now()}
	if req.CompanyName != "" {
		updates["company_name"] = req.CompanyName
	}
	if req.ClientName != "" {
		updates["client_name"] = req.ClientName
	}
	if req.ContactNo != "" {
		updates["contact_no"] = req.ContactNo
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Activity != "" {
		updates["activity"] = req.Activity
		updates["is_untouched"] = false
	}

	if err := s.prospectRepo.UpdateFields(prospect.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update prospect: %w", err)
	}
	return s.prospectRepo.GetByID(prospect.ID)
}

// DeleteProspect removes a prospect. Managers only.
func (s *ProspectService) DeleteProspect(caller access.Caller, id uuid.UUID) error {
	if err := access.CanDeleteRecord(caller); err != nil {
		return err
	}
	if _, err := s.prospectRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProspectNotFound
		}
		return fmt.Errorf("failed to get prospect: %w", err)
	}
	return s.prospectRepo.Delete(id)
}
