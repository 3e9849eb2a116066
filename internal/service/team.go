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

// TeamService handles business logic for teams and team membership
type TeamService struct {
	teamRepo  repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name       string    `json:"name" validate:"required,max=100"`
	TeamLeadID uuid.UUID `json:"teamLeadId" validate:"required"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name       string     `json:"name,omitempty" validate:"omitempty,max=100"`
	TeamLeadID *uuid.UUID `json:"teamLeadId,omitempty"`
}

// MembersRequest carries the executives to add to or remove from a team
type MembersRequest struct {
	MemberIDs []uuid.UUID `json:"memberIds" validate:"required,min=1"`
}

// CreateTeam creates a team for a team lead who has none yet
func (s *TeamService) CreateTeam(caller access.Caller, req *CreateTeamRequest) (*models.Team, error) {
	if err := access.CanManageTeams(caller); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	lead, err := s.userRepo.GetByID(req.TeamLeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamLeadNotFound
		}
		return nil, fmt.Errorf("failed to look up team lead: %w", err)
	}
	if lead.Role != models.RoleTeamLead {
		return nil, apperrors.NewValidationError("teamLeadId", "target user is not a team lead")
	}

	// One team per lead
	if _, err := s.teamRepo.GetByTeamLeadID(lead.ID); err == nil {
		return nil, apperrors.ErrTeamLeadHasTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}

	if _, err := s.teamRepo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrTeamExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	team := &models.Team{
		Name:       req.Name,
		TeamLeadID: lead.ID,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if err := s.userRepo.UpdateFields(lead.ID, map[string]interface{}{"team_id": team.ID}); err != nil {
		return nil, fmt.Errorf("failed to link team lead: %w", err)
	}
	return team, nil
}

// GetTeam retrieves a team with its members
func (s *TeamService) GetTeam(caller access.Caller, id uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams retrieves all teams with pagination
func (s *TeamService) ListTeams(caller access.Caller, limit, offset int) ([]models.Team, int64, error) {
	return s.teamRepo.GetAll(limit, offset)
}

// UpdateTeam renames a team or hands it to a different team lead. The old
// lead's team pointer is cleared and the new lead's set, never one without
// the other.
func (s *TeamService) UpdateTeam(caller access.Caller, id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := access.CanManageTeams(caller); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != "" && req.Name != team.Name {
		if _, err := s.teamRepo.GetByName(req.Name); err == nil {
			return nil, apperrors.ErrTeamExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
		team.Name = req.Name
	}

	if req.TeamLeadID != nil && *req.TeamLeadID != team.TeamLeadID {
		if err := s.reassignTeamLead(team, *req.TeamLeadID); err != nil {
			return nil, err
		}
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// reassignTeamLead swaps the lead of a team, updating both users' team
// pointers. Fails when the new lead already leads a different team.
func (s *TeamService) reassignTeamLead(team *models.Team, newLeadID uuid.UUID) error {
	newLead, err := s.userRepo.GetByID(newLeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamLeadNotFound
		}
		return fmt.Errorf("failed to look up team lead: %w", err)
	}
	if newLead.Role != models.RoleTeamLead {
		return apperrors.NewValidationError("teamLeadId", "target user is not a team lead")
	}

	if other, err := s.teamRepo.GetByTeamLeadID(newLeadID); err == nil && other.ID != team.ID {
		return apperrors.NewValidationError("teamLeadId", "team lead already leads a different team")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing team: %w", err)
	}

	oldLeadID := team.TeamLeadID
	if err := s.userRepo.UpdateFields(oldLeadID, map[string]interface{}{"team_id": nil}); err != nil {
		return fmt.Errorf("failed to unassign old lead: %w", err)
	}
	if err := s.userRepo.UpdateFields(newLeadID, map[string]interface{}{"team_id": team.ID}); err != nil {
		return fmt.Errorf("failed to assign new lead: %w", err)
	}
	team.TeamLeadID = newLeadID
	return nil
}

// DeleteTeam unassigns all members and the lead before removing the team
// row, so the destructive step runs last
func (s *TeamService) DeleteTeam(caller access.Caller, id uuid.UUID) error {
	if err := access.CanManageTeams(caller); err != nil {
		return err
	}

	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.userRepo.UnassignReportsOf(team.TeamLeadID); err != nil {
		return fmt.Errorf("failed to unassign members: %w", err)
	}
	if err := s.userRepo.UpdateFields(team.TeamLeadID, map[string]interface{}{"team_id": nil}); err != nil {
		return fmt.Errorf("failed to unassign lead: %w", err)
	}
	return s.teamRepo.Delete(team.ID)
}

// AddMembers assigns a set of executives to the team, all or nothing. Every
// id must name an existing sales executive before any write happens; the
// assignment itself is a single batch update of both pointers.
func (s *TeamService) AddMembers(caller access.Caller, teamID uuid.UUID, req *MembersRequest) (*models.Team, error) {
	if err := access.CanManageTeams(caller); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	users, err := s.userRepo.GetByIDs(req.MemberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to look up members: %w", err)
	}
	if len(users) != len(req.MemberIDs) {
		return nil, apperrors.NewValidationError("memberIds", "one or more users do not exist")
	}
	for _, u := range users {
		if u.Role != models.RoleSalesExecutive {
			return nil, apperrors.ErrNotAnExecutive
		}
	}

	if err := s.userRepo.AssignToTeam(req.MemberIDs, team.TeamLeadID, team.ID); err != nil {
		return nil, fmt.Errorf("failed to assign members: %w", err)
	}
	return s.teamRepo.GetWithMembers(team.ID)
}

// RemoveMembers unassigns executives from the team. Only users verified to
// currently belong to this exact team are touched.
func (s *TeamService) RemoveMembers(caller access.Caller, teamID uuid.UUID, req *MembersRequest) (*models.Team, error) {
	if err := access.CanManageTeams(caller); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.userRepo.UnassignFromTeam(req.MemberIDs, team.ID); err != nil {
		return nil, fmt.Errorf("failed to unassign members: %w", err)
	}
	return s.teamRepo.GetWithMembers(team.ID)
}
