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

// CallLogService handles business logic for call logs
type CallLogService struct {
	callLogRepo  repository.CallLogRepositoryInterface
	prospectRepo repository.ProspectRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	resolver     *access.Resolver
	validator    *validator.Validate
}

// NewCallLogService creates a new call log service
func NewCallLogService(callLogRepo repository.CallLogRepositoryInterface, prospectRepo repository.ProspectRepositoryInterface, userRepo repository.UserRepositoryInterface, resolver *access.Resolver, validator *validator.Validate) *CallLogService {
	return &CallLogService{
		callLogRepo:  callLogRepo,
		prospectRepo: prospectRepo,
		userRepo:     userRepo,
		resolver:     resolver,
		validator:    validator,
	}
}

// CreateCallLogRequest represents the request to log a call
type CreateCallLogRequest struct {
	Activity   string     `json:"activity" validate:"required,max=50"`
	Comment    string     `json:"comment,omitempty" validate:"omitempty,max=500"`
	CallDate   *time.Time `json:"callDate,omitempty"`
	ProspectID *uuid.UUID `json:"prospectId,omitempty"`
}

// UpdateCallLogRequest represents the request to amend a call log. Only
// activity and comment are updateable.
type UpdateCallLogRequest struct {
	Activity string `json:"activity,omitempty" validate:"omitempty,max=50"`
	Comment  string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

// CallLogListQuery carries the query parameters for call log listing
type CallLogListQuery struct {
	MemberID  *uuid.UUID
	Date      string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// CreateCallLog records a call made by the calling executive. Logging
// against a prospect marks that prospect as touched. Only executives log
// calls, and only as themselves.
func (s *CallLogService) CreateCallLog(caller access.Caller, req *CreateCallLogRequest) (*models.CallLog, error) {
	if err := access.CanCreateCallLog(caller, caller.ID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if req.ProspectID != nil {
		prospect, err := s.prospectRepo.GetByID(*req.ProspectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProspectNotFound
			}
			return nil, fmt.Errorf("failed to look up prospect: %w", err)
		}
		if prospect.SalesExecutiveID != caller.ID {
			return nil, apperrors.ErrOutOfScope
		}
	}

	callDate := time.Now()
	if req.CallDate != nil {
		callDate = *req.CallDate
	}

	log := &models.CallLog{
		Activity:         req.Activity,
		Comment:          req.Comment,
		CallDate:         callDate,
		SalesExecutiveID: caller.ID,
		ProspectID:       req.ProspectID,
	}
	if err := s.callLogRepo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create call log: %w", err)
	}

	if req.ProspectID != nil {
		if err := s.prospectRepo.Touch(*req.ProspectID); err != nil {
			return nil, fmt.Errorf("failed to touch prospect: %w", err)
		}
	}
	return log, nil
}

// GetCallLog retrieves a call log visible to the caller
func (s *CallLogService) GetCallLog(caller access.Caller, id uuid.UUID) (*models.CallLog, error) {
	log, err := s.callLogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallLogNotFound
		}
		return nil, fmt.Errorf("failed to get call log: %w", err)
	}

	owner, err := getOwner(s.userRepo, log.SalesExecutiveID)
	if err != nil {
		return nil, err
	}
	if err := access.CanAccessRecordOf(caller, owner); err != nil {
		return nil, err
	}
	return log, nil
}

// ListCallLogs retrieves call logs in the caller's scope
func (s *CallLogService) ListCallLogs(caller access.Caller, query CallLogListQuery) ([]models.CallLog, int64, error) {
	scope, err := s.resolver.Resolve(caller, access.Narrowing{MemberID: query.MemberID})
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
	return s.callLogRepo.List(filter, query.Limit, query.Offset)
}

// UpdateCallLog amends a call log's activity or comment. Setting the
// activity to the delete marker tombstones the referenced prospect.
func (s *CallLogService) UpdateCallLog(caller access.Caller, id uuid.UUID, req *UpdateCallLogRequest) (*models.CallLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	log, err := s.GetCallLog(caller, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Activity != "" {
		updates["activity"] = req.Activity
	}
	if req.Comment != "" {
		updates["comment"] = req.Comment
	}
	if len(updates) > 0 {
		if err := s.callLogRepo.UpdateFields(log.ID, updates); err != nil {
			return nil, fmt.Errorf("failed to update call log: %w", err)
		}
	}

	if req.Activity == models.ProspectActivityDeleted && log.ProspectID != nil {
		if err := s.prospectRepo.UpdateFields(*log.ProspectID, map[string]interface{}{
			"activity":     models.ProspectActivityDeleted,
			"is_untouched": false,
			"last_update":  time.Now(),
		}); err != nil {
			return nil, fmt.Errorf("failed to tombstone prospect: %w", err)
		}
	}

	return s.callLogRepo.GetByID(log.ID)
}
