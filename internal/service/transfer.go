package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/logger"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferService moves prospects and sales between users and hands sales
// over to finance, writing an audit record for every transfer
type TransferService struct {
	prospectRepo    repository.ProspectRepositoryInterface
	saleRepo        repository.SaleRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	transferLogRepo repository.TransferLogRepositoryInterface
	validator       *validator.Validate
}

// NewTransferService creates a new transfer service
func NewTransferService(prospectRepo repository.ProspectRepositoryInterface, saleRepo repository.SaleRepositoryInterface, userRepo repository.UserRepositoryInterface, transferLogRepo repository.TransferLogRepositoryInterface, validator *validator.Validate) *TransferService {
	return &TransferService{
		prospectRepo:    prospectRepo,
		saleRepo:        saleRepo,
		userRepo:        userRepo,
		transferLogRepo: transferLogRepo,
		validator:       validator,
	}
}

// InternalTransferRequest represents the request to move records between
// two users
type InternalTransferRequest struct {
	FromUserID  uuid.UUID   `json:"fromUserId" validate:"required"`
	ToUserID    uuid.UUID   `json:"toUserId" validate:"required"`
	ProspectIDs []uuid.UUID `json:"prospectIds,omitempty"`
	SaleIDs     []uuid.UUID `json:"saleIds,omitempty"`
	Description string      `json:"description,omitempty" validate:"omitempty,max=500"`
}

// FinanceTransferRequest represents the request to hand sales to finance
type FinanceTransferRequest struct {
	SaleIDs     []uuid.UUID `json:"saleIds" validate:"required,min=1"`
	Description string      `json:"description,omitempty" validate:"omitempty,max=500"`
}

// InternalTransferResult reports what an internal transfer moved
type InternalTransferResult struct {
	ProspectsMoved int64               `json:"prospects_moved"`
	SalesMoved     int64               `json:"sales_moved"`
	Log            *models.TransferLog `json:"log"`
}

// FinanceTransferResult reports what a finance handover flagged
type FinanceTransferResult struct {
	SalesTransferred int64               `json:"sales_transferred"`
	TotalAmount      float64             `json:"total_amount"`
	Log              *models.TransferLog `json:"log"`
}

// InternalTransfer moves the named prospects and sales from one user to
// another. The ownership update is filtered by the current owner, so ids
// that do not exist or belong to someone else are silently skipped; a
// transfer that moves nothing fails. The new owner's team lead pointer is
// recomputed on every moved record.
func (s *TransferService) InternalTransfer(caller access.Caller, req *InternalTransferRequest) (*InternalTransferResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if len(req.ProspectIDs) == 0 && len(req.SaleIDs) == 0 {
		return nil, apperrors.NewValidationError("prospectIds", "nothing to transfer")
	}
	if req.FromUserID == req.ToUserID {
		return nil, apperrors.NewValidationError("toUserId", "source and target must differ")
	}

	from, err := s.lookupParticipant(req.FromUserID, "fromUserId")
	if err != nil {
		return nil, err
	}
	to, err := s.lookupParticipant(req.ToUserID, "toUserId")
	if err != nil {
		return nil, err
	}
	if err := access.CanInitiateInternalTransfer(caller, from, to); err != nil {
		return nil, err
	}

	newTeamLead := denormalizedTeamLead(to)

	var prospectsMoved, salesMoved int64
	if len(req.ProspectIDs) > 0 {
		prospectsMoved, err = s.prospectRepo.TransferOwnership(req.ProspectIDs, from.ID, to.ID, newTeamLead)
		if err != nil {
			return nil, fmt.Errorf("failed to transfer prospects: %w", err)
		}
	}
	if len(req.SaleIDs) > 0 {
		salesMoved, err = s.saleRepo.TransferOwnership(req.SaleIDs, from.ID, to.ID, newTeamLead)
		if err != nil {
			return nil, fmt.Errorf("failed to transfer sales: %w", err)
		}
	}
	if prospectsMoved+salesMoved == 0 {
		return nil, apperrors.ErrNothingToTransfer
	}

	dataIDs := make(models.UUIDList, 0, len(req.ProspectIDs)+len(req.SaleIDs))
	dataIDs = append(dataIDs, req.ProspectIDs...)
	dataIDs = append(dataIDs, req.SaleIDs...)

	log := &models.TransferLog{
		TransferType:    models.TransferTypeInternal,
		TransferredByID: caller.ID,
		TransferredFrom: from.ID,
		TransferredTo:   &to.ID,
		DataIDs:         dataIDs,
		DataCount:       int(prospectsMoved + salesMoved),
		Description:     req.Description,
		TransferDate:    time.Now(),
	}
	if err := s.transferLogRepo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to write transfer log: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"user":            caller.Email,
		"from":            from.ID,
		"to":              to.ID,
		"prospects_moved": prospectsMoved,
		"sales_moved":     salesMoved,
	}).Info("internal transfer completed")

	return &InternalTransferResult{
		ProspectsMoved: prospectsMoved,
		SalesMoved:     salesMoved,
		Log:            log,
	}, nil
}

// lookupParticipant fetches a transfer endpoint and rejects managers;
// records only ever belong to executives and team leads
func (s *TransferService) lookupParticipant(id uuid.UUID, field string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Role == models.RoleManager {
		return nil, apperrors.NewValidationError(field, "records cannot be transferred to or from a manager")
	}
	return user, nil
}

// FinanceTransfer flags the named sales as handed over to finance. Sales
// already flagged are skipped rather than re-flagged; the audit record
// aggregates the amounts and clients of the sales actually moved.
func (s *TransferService) FinanceTransfer(caller access.Caller, req *FinanceTransferRequest) (*FinanceTransferResult, error) {
	if err := access.CanInitiateFinanceTransfer(caller); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	pending, err := s.saleRepo.GetPendingFinance(req.SaleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending sales: %w", err)
	}
	if len(pending) == 0 {
		return nil, apperrors.ErrSaleNotFound
	}

	now := time.Now()
	pendingIDs := make([]uuid.UUID, len(pending))
	var total float64
	clients := make([]string, 0, len(pending))
	for i, sale := range pending {
		pendingIDs[i] = sale.ID
		total += sale.Amount
		clients = append(clients, fmt.Sprintf("%s (%s)", sale.CompanyName, sale.ClientName))
	}

	moved, err := s.saleRepo.MarkTransferredToFinance(pendingIDs, now)
	if err != nil {
		return nil, fmt.Errorf("failed to flag sales: %w", err)
	}

	description := req.Description
	if description == "" {
		description = "Transferred to finance: " + strings.Join(clients, ", ")
	}

	log := &models.TransferLog{
		TransferType:    models.TransferTypeFinance,
		TransferredByID: caller.ID,
		TransferredFrom: caller.ID,
		DataIDs:         models.UUIDList(req.SaleIDs),
		DataCount:       int(moved),
		Amount:          total,
		Description:     description,
		TransferDate:    now,
	}
	if err := s.transferLogRepo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to write transfer log: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"user":         caller.Email,
		"sales_moved":  moved,
		"total_amount": total,
	}).Info("finance handover completed")

	return &FinanceTransferResult{
		SalesTransferred: moved,
		TotalAmount:      total,
		Log:              log,
	}, nil
}

// InternalTransferHistory lists internal transfer audit records. Managers
// see everything; team leads see the transfers they initiated; executives
// have no transfer surface at all.
func (s *TransferService) InternalTransferHistory(caller access.Caller, limit, offset int) ([]models.TransferLog, int64, error) {
	switch caller.Role {
	case models.RoleSalesExecutive:
		return nil, 0, apperrors.ErrForbidden
	case models.RoleTeamLead:
		return s.transferLogRepo.ListByType(models.TransferTypeInternal, &caller.ID, limit, offset)
	case models.RoleManager:
		return s.transferLogRepo.ListByType(models.TransferTypeInternal, nil, limit, offset)
	}
	return nil, 0, apperrors.ErrForbidden
}

// FinanceTransferHistory lists finance handover audit records. Managers only.
func (s *TransferService) FinanceTransferHistory(caller access.Caller, limit, offset int) ([]models.TransferLog, int64, error) {
	if err := access.CanInitiateFinanceTransfer(caller); err != nil {
		return nil, 0, err
	}
	return s.transferLogRepo.ListByType(models.TransferTypeFinance, nil, limit, offset)
}
