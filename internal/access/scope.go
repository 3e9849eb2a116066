// Package access implements the hierarchical access-control layer: the scope
// resolver that computes which records a caller may see, and the policy that
// decides which actions and fields a caller may touch.
package access

import (
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"

	"github.com/google/uuid"
)

// Caller identifies the authenticated user making a request
type Caller struct {
	ID    uuid.UUID
	Role  models.Role
	Email string
}

// UserDirectory is the subset of the user repository the resolver needs
type UserDirectory interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetDirectReportIDs(leadID uuid.UUID) ([]uuid.UUID, error)
}

// Scope is the set of owner ids a caller may see for a collection. A manager
// scope is unrestricted unless narrowed.
type Scope struct {
	All     bool
	UserIDs []uuid.UUID
}

// Contains reports whether the given owner id falls inside the scope
func (s Scope) Contains(id uuid.UUID) bool {
	if s.All {
		return true
	}
	for _, uid := range s.UserIDs {
		if uid == id {
			return true
		}
	}
	return false
}

// Narrowing carries the optional query parameters that shrink a scope
type Narrowing struct {
	// MemberID restricts the scope to a single user. Validated against the
	// caller's own scope except for managers, whose unrestricted scope
	// accepts any id.
	MemberID *uuid.UUID
	// TeamLeadID restricts a manager's scope to one team lead plus that
	// lead's direct reports.
	TeamLeadID *uuid.UUID
}

// Resolver computes visibility scopes from the reporting hierarchy
type Resolver struct {
	users UserDirectory
}

// NewResolver creates a new scope resolver
func NewResolver(users UserDirectory) *Resolver {
	return &Resolver{users: users}
}

// Resolve computes the visible-owner scope for the caller, applying any
// narrowing parameters. Narrowing ids outside the caller's scope fail with
// an AuthorizationError; a manager's scope never rejects a narrowing id.
func (r *Resolver) Resolve(caller Caller, narrow Narrowing) (Scope, error) {
	base, err := r.baseScope(caller)
	if err != nil {
		return Scope{}, err
	}

	if narrow.TeamLeadID != nil {
		base, err = r.narrowToTeamLead(caller, base, *narrow.TeamLeadID)
		if err != nil {
			return Scope{}, err
		}
	}

	if narrow.MemberID != nil {
		if !base.Contains(*narrow.MemberID) {
			return Scope{}, apperrors.ErrOutOfScope
		}
		return Scope{UserIDs: []uuid.UUID{*narrow.MemberID}}, nil
	}

	return base, nil
}

// baseScope returns the unfiltered scope for the caller's role
func (r *Resolver) baseScope(caller Caller) (Scope, error) {
	switch caller.Role {
	case models.RoleSalesExecutive:
		return Scope{UserIDs: []uuid.UUID{caller.ID}}, nil
	case models.RoleTeamLead:
		reports, err := r.users.GetDirectReportIDs(caller.ID)
		if err != nil {
			return Scope{}, err
		}
		return Scope{UserIDs: append([]uuid.UUID{caller.ID}, reports...)}, nil
	case models.RoleManager:
		return Scope{All: true}, nil
	}
	return Scope{}, apperrors.ErrForbidden
}

// narrowToTeamLead shrinks the scope to one team lead plus their reports.
// For non-managers the team lead must be the caller themselves.
func (r *Resolver) narrowToTeamLead(caller Caller, base Scope, leadID uuid.UUID) (Scope, error) {
	if caller.Role != models.RoleManager && leadID != caller.ID {
		return Scope{}, apperrors.ErrOutOfScope
	}

	lead, err := r.users.GetByID(leadID)
	if err != nil {
		return Scope{}, apperrors.ErrTeamLeadNotFound
	}
	if lead.Role != models.RoleTeamLead {
		return Scope{}, apperrors.ErrTeamLeadNotFound
	}

	reports, err := r.users.GetDirectReportIDs(leadID)
	if err != nil {
		return Scope{}, err
	}
	return Scope{UserIDs: append([]uuid.UUID{leadID}, reports...)}, nil
}
