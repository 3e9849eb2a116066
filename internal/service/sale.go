package service

import (
	"errors"
	"fmt"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleService handles business logic for sales. Sales are immutable after
// creation; only the transfer engine touches them again.
type SaleService struct {
	saleRepo     repository.SaleRepositoryInterface
	prospectRepo repository.ProspectRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	resolver     *access.Resolver
	validator    *validator.Validate
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepositoryInterface, prospectRepo repository.ProspectRepositoryInterface, userRepo repository.UserRepositoryInterface, resolver *access.Resolver, validator *validator.Validate) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		prospectRepo: prospectRepo,
		userRepo:     userRepo,
		resolver:     resolver,
		validator:    validator,
	}
}

// CreateSaleRequest represents the request to create a sale
type CreateSaleRequest struct {
	CompanyName      string     `json:"companyName" validate:"required,max=200"`
	ClientName       string     `json:"clientName" validate:"required,max=100"`
	Amount           float64    `json:"amount" validate:"required,gt=0"`
	SalesExecutiveID *uuid.UUID `json:"salesExecutiveId,omitempty"`
	ProspectID       *uuid.UUID `json:"prospectId,omitempty"`
}

// SaleListQuery carries the query parameters for sale listing
type SaleListQuery struct {
	Month       string
	TeamLeadID  *uuid.UUID
	ExecutiveID *uuid.UUID
	ClientName  string
	Limit       int
	Offset      int
}

// CreateSale records a closed deal. When the sale references a prospect,
// that prospect is marked Converted and touched as part of the same
// operation.
func (s *SaleService) CreateSale(caller access.Caller, req *CreateSaleRequest) (*models.Sale, error) {
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

	if req.ProspectID != nil {
		if _, err := s.prospectRepo.GetByID(*req.ProspectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProspectNotFound
			}
			return nil, fmt.Errorf("failed to look up prospect: %w", err)
		}
	}

	sale := &models.Sale{
		CompanyName:      req.CompanyName,
		ClientName:       req.ClientName,
		Amount:           req.Amount,
		SalesExecutiveID: owner.ID,
		TeamLeadID:       denormalizedTeamLead(owner),
		ProspectID:       req.ProspectID,
	}
	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	if req.ProspectID != nil {
		if err := s.prospectRepo.MarkConverted(*req.ProspectID); err != nil {
			return nil, fmt.Errorf("failed to mark prospect converted: %w", err)
		}
	}
	return sale, nil
}

// GetSale retrieves a sale visible to the caller
func (s *SaleService) GetSale(caller access.Caller, id uuid.UUID) (*models.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	owner, err := getOwner(s.userRepo, sale.SalesExecutiveID)
	if err != nil {
		return nil, err
	}
	if err := access.CanAccessRecordOf(caller, owner); err != nil {
		return nil, err
	}
	return sale, nil
}

// ListSales retrieves sales in the caller's scope with the optional month,
// team lead, executive, and client filters
func (s *SaleService) ListSales(caller access.Caller, query SaleListQuery) ([]models.Sale, int64, error) {
	scope, err := s.resolver.Resolve(caller, access.Narrowing{MemberID: query.ExecutiveID, TeamLeadID: query.TeamLeadID})
	if err != nil {
		return nil, 0, err
	}

	filter := repository.SaleFilter{ClientName: query.ClientName}
	if !scope.All {
		filter.OwnerIDs = scope.UserIDs
	}
	if query.Month != "" {
		monthRange, err := access.MonthRange(query.Month)
		if err != nil {
			return nil, 0, err
		}
		filter.Range = &monthRange
	}
	return s.saleRepo.List(filter, query.Limit, query.Offset)
}

// DeleteSale removes a sale. Managers only.
func (s *SaleService) DeleteSale(caller access.Caller, id uuid.UUID) error {
	if err := access.CanDeleteRecord(caller); err != nil {
		return err
	}
	if _, err := s.saleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSaleNotFound
		}
		return fmt.Errorf("failed to get sale: %w", err)
	}
	return s.saleRepo.Delete(id)
}
