package access

import (
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"

	"github.com/google/uuid"
)

// isDirectReport reports whether target reports directly to the caller
func isDirectReport(caller Caller, target *models.User) bool {
	return target.ManagerID != nil && *target.ManagerID == caller.ID
}

// CanCreateRecordFor decides whether the caller may create a prospect or
// sale owned by the target executive. Executives create only for themselves,
// team leads for themselves or a direct report, managers for any executive.
func CanCreateRecordFor(caller Caller, target *models.User) error {
	switch caller.Role {
	case models.RoleSalesExecutive:
		if target.ID != caller.ID {
			return apperrors.ErrForbidden
		}
		return nil
	case models.RoleTeamLead:
		if target.ID == caller.ID || isDirectReport(caller, target) {
			return nil
		}
		return apperrors.ErrNotDirectReport
	case models.RoleManager:
		// A manager holds no records of their own; they assign to a named user.
		if target.ID == caller.ID {
			return apperrors.ErrForbidden
		}
		return nil
	}
	return apperrors.ErrForbidden
}

// CanAccessRecordOf decides whether the caller may read or update a record
// owned by the given user
func CanAccessRecordOf(caller Caller, owner *models.User) error {
	switch caller.Role {
	case models.RoleSalesExecutive:
		if owner.ID != caller.ID {
			return apperrors.ErrOutOfScope
		}
		return nil
	case models.RoleTeamLead:
		if owner.ID == caller.ID || isDirectReport(caller, owner) {
			return nil
		}
		return apperrors.ErrOutOfScope
	case models.RoleManager:
		return nil
	}
	return apperrors.ErrForbidden
}

// CanDeleteRecord decides whether the caller may hard-delete prospects or
// sales. Managers only.
func CanDeleteRecord(caller Caller) error {
	if caller.Role != models.RoleManager {
		return apperrors.ErrManagerOnly
	}
	return nil
}

// CanCreateCallLog decides whether the caller may log a call. Only sales
// executives log calls, and only as themselves; higher roles get a 403, not
// an impersonated log.
func CanCreateCallLog(caller Caller, ownerID uuid.UUID) error {
	if caller.Role != models.RoleSalesExecutive {
		return apperrors.ErrExecutiveOnly
	}
	if ownerID != caller.ID {
		return apperrors.ErrForbidden
	}
	return nil
}

// CanUpdateCallLog decides whether the caller may amend a call log's
// activity or comment
func CanUpdateCallLog(caller Caller, owner *models.User) error {
	return CanAccessRecordOf(caller, owner)
}

// CanManageTeams decides whether the caller may create, update, or delete
// teams. Managers only.
func CanManageTeams(caller Caller) error {
	if caller.Role != models.RoleManager {
		return apperrors.ErrManagerOnly
	}
	return nil
}

// CanCreateUser decides whether the caller may create a user with the given
// role reporting to the given manager. Team leads may only onboard sales
// executives under themselves.
func CanCreateUser(caller Caller, newRole models.Role, managerID *uuid.UUID) error {
	switch caller.Role {
	case models.RoleSalesExecutive:
		return apperrors.ErrForbidden
	case models.RoleTeamLead:
		if newRole != models.RoleSalesExecutive {
			return apperrors.ErrForbidden
		}
		if managerID == nil || *managerID != caller.ID {
			return apperrors.ErrForbidden
		}
		return nil
	case models.RoleManager:
		return nil
	}
	return apperrors.ErrForbidden
}

// CanDeleteUser decides whether the caller may delete users. Managers only;
// the cascade itself is handled by the ownership layer.
func CanDeleteUser(caller Caller) error {
	if caller.Role != models.RoleManager {
		return apperrors.ErrManagerOnly
	}
	return nil
}

// CanAccessPayouts decides whether the caller may view or modify salary
// records. Managers only.
func CanAccessPayouts(caller Caller) error {
	if caller.Role != models.RoleManager {
		return apperrors.ErrManagerOnly
	}
	return nil
}

// CanInitiateInternalTransfer decides whether the caller may move records
// between the source and target users. A team lead may transfer between
// themselves and a direct report or between two of their reports; a manager
// is unrestricted.
func CanInitiateInternalTransfer(caller Caller, source, target *models.User) error {
	switch caller.Role {
	case models.RoleSalesExecutive:
		return apperrors.ErrForbidden
	case models.RoleTeamLead:
		if !isSelfOrReport(caller, source) || !isSelfOrReport(caller, target) {
			return apperrors.ErrNotDirectReport
		}
		return nil
	case models.RoleManager:
		return nil
	}
	return apperrors.ErrForbidden
}

func isSelfOrReport(caller Caller, u *models.User) bool {
	return u.ID == caller.ID || isDirectReport(caller, u)
}

// CanInitiateFinanceTransfer decides whether the caller may hand sales over
// to finance. Managers only.
func CanInitiateFinanceTransfer(caller Caller) error {
	if caller.Role != models.RoleManager {
		return apperrors.ErrManagerOnly
	}
	return nil
}
