package service

import (
	"errors"
	"fmt"
	"regexp"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PayoutService handles business logic for payouts. Payouts are a
// manager-only surface.
type PayoutService struct {
	payoutRepo repository.PayoutRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	validator  *validator.Validate
}

// NewPayoutService creates a new payout service
func NewPayoutService(payoutRepo repository.PayoutRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *PayoutService {
	return &PayoutService{
		payoutRepo: payoutRepo,
		userRepo:   userRepo,
		validator:  validator,
	}
}

// CreatePayoutRequest represents the request to create a payout
type CreatePayoutRequest struct {
	UserID      uuid.UUID `json:"userId" validate:"required"`
	Month       string    `json:"month" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Duration    string    `json:"duration,omitempty" validate:"omitempty,max=50"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdatePayoutRequest represents the request to update a payout
type UpdatePayoutRequest struct {
	Month       string   `json:"month,omitempty"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Duration    string   `json:"duration,omitempty" validate:"omitempty,max=50"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreatePayout records a payout for a user, caching the reporting chain at
// creation time so payout history survives later reassignments
func (s *PayoutService) CreatePayout(caller access.Caller, req *CreatePayoutRequest) (*models.Payout, error) {
	if err := access.CanAccessPayouts(caller); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !monthPattern.MatchString(req.Month) {
		return nil, apperrors.ErrInvalidMonthFormat
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Role == models.RoleManager {
		return nil, apperrors.NewValidationError("userId", "payouts cannot target a manager")
	}

	payout := &models.Payout{
		UserID:      user.ID,
		Month:       req.Month,
		Amount:      req.Amount,
		Duration:    req.Duration,
		Description: req.Description,
	}
	if err := s.fillChain(payout, user); err != nil {
		return nil, err
	}

	if err := s.payoutRepo.Create(payout); err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}
	return payout, nil
}

// fillChain denormalizes the recipient's reporting chain onto the payout.
// An executive's payout carries their lead and that lead's manager; a
// lead's payout carries only their manager.
func (s *PayoutService) fillChain(payout *models.Payout, user *models.User) error {
	switch user.Role {
	case models.RoleSalesExecutive:
		payout.TeamLeadID = user.ManagerID
		if user.ManagerID != nil {
			lead, err := s.userRepo.GetByID(*user.ManagerID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up team lead: %w", err)
			}
			if err == nil {
				payout.ManagerID = lead.ManagerID
			}
		}
	case models.RoleTeamLead:
		payout.ManagerID = user.ManagerID
	}
	return nil
}

// GetPayout retrieves a payout. Managers only.
func (s *PayoutService) GetPayout(caller access.Caller, id uuid.UUID) (*models.Payout, error) {
	if err := access.CanAccessPayouts(caller); err != nil {
		return nil, err
	}
	payout, err := s.payoutRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPayoutNotFound
		}
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}
	return payout, nil
}

// ListPayouts retrieves payouts, optionally for a single month
func (s *PayoutService) ListPayouts(caller access.Caller, month string, limit, offset int) ([]models.Payout, int64, error) {
	if err := access.CanAccessPayouts(caller); err != nil {
		return nil, 0, err
	}
	if month != "" && !monthPattern.MatchString(month) {
		return nil, 0, apperrors.ErrInvalidMonthFormat
	}
	return s.payoutRepo.GetAll(month, limit, offset)
}

// UpdatePayout applies a partial update to a payout
func (s *PayoutService) UpdatePayout(caller access.Caller, id uuid.UUID, req *UpdatePayoutRequest) (*models.Payout, error) {
	if err := access.CanAccessPayouts(caller); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	payout, err := s.payoutRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPayoutNotFound
		}
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}

	if req.Month != "" {
		if !monthPattern.MatchString(req.Month) {
			return nil, apperrors.ErrInvalidMonthFormat
		}
		payout.Month = req.Month
	}
	if req.Amount != nil {
		payout.Amount = *req.Amount
	}
	if req.Duration != "" {
		payout.Duration = req.Duration
	}
	if req.Description != "" {
		payout.Description = req.Description
	}

	if err := s.payoutRepo.Update(payout); err != nil {
		return nil, fmt.Errorf("failed to update payout: %w", err)
	}
	return payout, nil
}

// DeletePayout removes a payout. Managers only.
func (s *PayoutService) DeletePayout(caller access.Caller, id uuid.UUID) error {
	if err := access.CanAccessPayouts(caller); err != nil {
		return err
	}
	if _, err := s.payoutRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPayoutNotFound
		}
		return fmt.Errorf("failed to get payout: %w", err)
	}
	return s.payoutRepo.Delete(id)
}
