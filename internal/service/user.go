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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users, including the ownership
// cascades that fire when team leads or managers are removed
type UserService struct {
	userRepo  repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	resolver  *access.Resolver
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, resolver *access.Resolver, validator *validator.Validate) *UserService {
	return &UserService{
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name      string     `json:"name" validate:"required,max=100"`
	Email     string     `json:"email" validate:"required,email,max=255"`
	Password  string     `json:"password" validate:"required,min=8"`
	Role      string     `json:"role" validate:"required"`
	ContactNo string     `json:"contactNo,omitempty"`
	Location  string     `json:"location,omitempty"`
	ManagerID *uuid.UUID `json:"managerId,omitempty"`
}

// CreateUser creates a user on behalf of the caller. Team leads may only
// onboard sales executives under themselves; managers may create any role.
func (s *UserService) CreateUser(caller access.Caller, req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	if err := access.CanCreateUser(caller, role, req.ManagerID); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		ContactNo: req.ContactNo,
		Location:  req.Location,
		Role:      role,
		Status:    models.UserStatusActive,
	}

	// An executive created under a team lead joins that lead's team at once,
	// keeping the manager/team pair consistent from the start. A team lead's
	// manager pointer may only name a manager; a manager has none.
	if req.ManagerID != nil {
		switch role {
		case models.RoleSalesExecutive:
			lead, teamID, err := s.requireLeadWithTeam(*req.ManagerID)
			if err != nil {
				return nil, err
			}
			user.ManagerID = &lead.ID
			user.TeamID = teamID
		case models.RoleTeamLead:
			manager, err := s.requireManager(*req.ManagerID)
			if err != nil {
				return nil, err
			}
			user.ManagerID = &manager.ID
		case models.RoleManager:
			return nil, apperrors.NewValidationError("managerId", "a manager has no manager")
		}
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// requireLeadWithTeam loads a team lead and their team id, failing when the
// user is not a lead or has no team yet
func (s *UserService) requireLeadWithTeam(leadID uuid.UUID) (*models.User, *uuid.UUID, error) {
	lead, err := s.userRepo.GetByID(leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrTeamLeadNotFound
		}
		return nil, nil, fmt.Errorf("failed to look up team lead: %w", err)
	}
	if lead.Role != models.RoleTeamLead {
		return nil, nil, apperrors.NewValidationError("managerId", "target user is not a team lead")
	}
	if lead.TeamID == nil {
		return nil, nil, apperrors.ErrTeamLeadWithoutTeam
	}
	return lead, lead.TeamID, nil
}

// requireManager loads a user and fails unless they hold the manager role
func (s *UserService) requireManager(id uuid.UUID) (*models.User, error) {
	manager, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up manager: %w", err)
	}
	if manager.Role != models.RoleManager {
		return nil, apperrors.NewValidationError("managerId", "target user is not a manager")
	}
	return manager, nil
}

// GetUser retrieves a user visible to the caller. An existing user outside
// the caller's scope yields a 403, not a 404.
func (s *UserService) GetUser(caller access.Caller, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := access.CanAccessRecordOf(caller, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetMe retrieves the caller's own profile
func (s *UserService) GetMe(caller access.Caller) (*models.User, error) {
	user, err := s.userRepo.GetByID(caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves the users inside the caller's scope
func (s *UserService) ListUsers(caller access.Caller, limit, offset int) ([]models.User, int64, error) {
	scope, err := s.resolver.Resolve(caller, access.Narrowing{})
	if err != nil {
		return nil, 0, err
	}
	if scope.All {
		return s.userRepo.GetAll(limit, offset)
	}
	users, err := s.userRepo.GetByIDs(scope.UserIDs)
	if err != nil {
		return nil, 0, err
	}
	return users, int64(len(users)), nil
}

// UpdateUser applies a partial update to a user. Fields outside the
// caller's allowed set are silently dropped. Manager and team pointers are
// only ever rewritten together, through the reassignment path.
func (s *UserService) UpdateUser(caller access.Caller, id uuid.UUID, updates map[string]interface{}) (*models.User, error) {
	target, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	allowed := access.AllowedUserFields(caller, target)
	if allowed == nil {
		return nil, apperrors.ErrOutOfScope
	}

	filtered := access.FilterFields(updates, allowed)
	if err := s.normalizeUserUpdates(target, filtered); err != nil {
		return nil, err
	}

	if len(filtered) > 0 {
		if err := s.userRepo.UpdateFields(id, filtered); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return s.userRepo.GetByID(id)
}

// normalizeUserUpdates validates enum fields and rewrites manager/team
// changes into a consistent pair update
func (s *UserService) normalizeUserUpdates(target *models.User, filtered map[string]interface{}) error {
	if raw, ok := filtered["status"]; ok {
		status, _ := raw.(string)
		if !models.UserStatus(status).IsValid() {
			return apperrors.NewValidationError("status", "unknown status")
		}
	}
	if raw, ok := filtered["role"]; ok {
		role, _ := raw.(string)
		if !models.Role(role).IsValid() {
			return apperrors.NewValidationError("role", "unknown role")
		}
	}

	// A team lead's manager pointer may only name a manager (or be cleared).
	if raw, ok := filtered["manager_id"]; ok && target.Role == models.RoleTeamLead {
		managerID, err := parseUUIDValue(raw)
		if err != nil {
			return apperrors.NewValidationError("manager_id", "invalid id")
		}
		if managerID == nil {
			filtered["manager_id"] = nil
			return nil
		}
		if _, err := s.requireManager(*managerID); err != nil {
			return err
		}
		filtered["manager_id"] = *managerID
		return nil
	}

	// Assigning an executive to a team lead: both pointers move together.
	if raw, ok := filtered["manager_id"]; ok && target.Role == models.RoleSalesExecutive {
		leadID, err := parseUUIDValue(raw)
		if err != nil {
			return apperrors.NewValidationError("manager_id", "invalid id")
		}
		if leadID == nil {
			filtered["team_id"] = nil
			return nil
		}
		_, teamID, err := s.requireLeadWithTeam(*leadID)
		if err != nil {
			return err
		}
		filtered["manager_id"] = *leadID
		filtered["team_id"] = *teamID
		return nil
	}

	// Assigning by team: derive the lead from the team.
	if raw, ok := filtered["team_id"]; ok && target.Role == models.RoleSalesExecutive {
		teamID, err := parseUUIDValue(raw)
		if err != nil {
			return apperrors.NewValidationError("team_id", "invalid id")
		}
		if teamID == nil {
			filtered["manager_id"] = nil
			return nil
		}
		team, err := s.teamRepo.GetByID(*teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to look up team: %w", err)
		}
		filtered["team_id"] = team.ID
		filtered["manager_id"] = team.TeamLeadID
	}
	return nil
}

// parseUUIDValue reads an optional uuid out of a raw JSON value
func parseUUIDValue(raw interface{}) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	str, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("not a string")
	}
	if str == "" {
		return nil, nil
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// DeleteUser removes a user, cascading per role. Dependent reassignments
// always run before the destructive delete so a crash mid-sequence leaves
// at worst an already-consistent subset, never a dangling pointer.
func (s *UserService) DeleteUser(caller access.Caller, id uuid.UUID) error {
	if err := access.CanDeleteUser(caller); err != nil {
		return err
	}

	target, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	switch target.Role {
	case models.RoleTeamLead:
		if err := s.cascadeDeleteTeamLead(target); err != nil {
			return err
		}
	case models.RoleManager:
		if err := s.userRepo.UnlinkManagerFromLeads(target.ID); err != nil {
			return fmt.Errorf("failed to unlink team leads: %w", err)
		}
	case models.RoleSalesExecutive:
		// Historical records keep their owner pointer; nothing to cascade.
	}

	return s.userRepo.Delete(id)
}

// cascadeDeleteTeamLead unassigns every direct report (manager and team
// cleared in one batch), then deletes the lead's team. The executives and
// their records survive as unassigned.
func (s *UserService) cascadeDeleteTeamLead(lead *models.User) error {
	if err := s.userRepo.UnassignReportsOf(lead.ID); err != nil {
		return fmt.Errorf("failed to unassign reports: %w", err)
	}

	team, err := s.teamRepo.GetByTeamLeadID(lead.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up team: %w", err)
	}
	return s.teamRepo.Delete(team.ID)
}
