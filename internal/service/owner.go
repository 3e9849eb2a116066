package service

import (
	"errors"
	"fmt"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveOwner determines the owning user for a new record: the explicitly
// named executive, or the caller themselves. Managers hold no records of
// their own, so they must always name a target.
func resolveOwner(userRepo repository.UserRepositoryInterface, caller access.Caller, explicit *uuid.UUID) (*models.User, error) {
	ownerID := caller.ID
	if explicit != nil {
		ownerID = *explicit
	} else if caller.Role == models.RoleManager {
		return nil, apperrors.NewValidationError("salesExecutiveId", "a manager must assign the record to an executive")
	}

	owner, err := userRepo.GetByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if owner.Role == models.RoleManager {
		return nil, apperrors.NewValidationError("salesExecutiveId", "records cannot be owned by a manager")
	}
	return owner, nil
}

// denormalizedTeamLead computes the team-lead pointer cached on owned
// records: a team lead owns their records directly, an executive's records
// point at their manager. Recomputed on every ownership-affecting write.
func denormalizedTeamLead(owner *models.User) *uuid.UUID {
	if owner.Role == models.RoleTeamLead {
		id := owner.ID
		return &id
	}
	return owner.ManagerID
}

// getOwner fetches the owning user of a record for policy checks
func getOwner(userRepo repository.UserRepositoryInterface, ownerID uuid.UUID) (*models.User, error) {
	owner, err := userRepo.GetByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Owner deleted out from under the record; treat as unassigned.
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	return owner, nil
}
