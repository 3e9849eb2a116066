package access

import (
	"testing"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func executive(id uuid.UUID, managerID *uuid.UUID) *models.User {
	u := &models.User{Role: models.RoleSalesExecutive, ManagerID: managerID}
	u.ID = id
	return u
}

func teamLead(id uuid.UUID) *models.User {
	u := &models.User{Role: models.RoleTeamLead}
	u.ID = id
	return u
}

func TestCanCreateRecordFor(t *testing.T) {
	execID := uuid.New()
	leadID := uuid.New()
	managerID := uuid.New()
	otherID := uuid.New()

	execCaller := Caller{ID: execID, Role: models.RoleSalesExecutive}
	leadCaller := Caller{ID: leadID, Role: models.RoleTeamLead}
	managerCaller := Caller{ID: managerID, Role: models.RoleManager}

	tests := []struct {
		name    string
		caller  Caller
		target  *models.User
		wantErr error
	}{
		{"executive for self", execCaller, executive(execID, &leadID), nil},
		{"executive for someone else", execCaller, executive(otherID, &leadID), apperrors.ErrForbidden},
		{"lead for self", leadCaller, teamLead(leadID), nil},
		{"lead for direct report", leadCaller, executive(execID, &leadID), nil},
		{"lead for foreign executive", leadCaller, executive(otherID, &managerID), apperrors.ErrNotDirectReport},
		{"manager for any executive", managerCaller, executive(execID, &leadID), nil},
		{"manager for self", managerCaller, &models.User{Role: models.RoleManager, BaseModel: models.BaseModel{ID: managerID}}, apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCreateRecordFor(tt.caller, tt.target)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCanAccessRecordOf(t *testing.T) {
	execID := uuid.New()
	leadID := uuid.New()
	otherLeadID := uuid.New()

	execCaller := Caller{ID: execID, Role: models.RoleSalesExecutive}
	leadCaller := Caller{ID: leadID, Role: models.RoleTeamLead}
	managerCaller := Caller{ID: uuid.New(), Role: models.RoleManager}

	tests := []struct {
		name    string
		caller  Caller
		owner   *models.User
		wantErr error
	}{
		{"executive own record", execCaller, executive(execID, &leadID), nil},
		{"executive peer record", execCaller, executive(uuid.New(), &leadID), apperrors.ErrOutOfScope},
		{"lead own record", leadCaller, teamLead(leadID), nil},
		{"lead report record", leadCaller, executive(uuid.New(), &leadID), nil},
		{"lead other team record", leadCaller, executive(uuid.New(), &otherLeadID), apperrors.ErrOutOfScope},
		{"manager anything", managerCaller, executive(uuid.New(), &leadID), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAccessRecordOf(tt.caller, tt.owner)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestManagerOnlySurfaces(t *testing.T) {
	execCaller := Caller{ID: uuid.New(), Role: models.RoleSalesExecutive}
	leadCaller := Caller{ID: uuid.New(), Role: models.RoleTeamLead}
	managerCaller := Caller{ID: uuid.New(), Role: models.RoleManager}

	checks := map[string]func(Caller) error{
		"delete record":    CanDeleteRecord,
		"manage teams":     CanManageTeams,
		"delete user":      CanDeleteUser,
		"payouts":          CanAccessPayouts,
		"finance transfer": CanInitiateFinanceTransfer,
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, check(execCaller), apperrors.ErrManagerOnly)
			assert.ErrorIs(t, check(leadCaller), apperrors.ErrManagerOnly)
			assert.NoError(t, check(managerCaller))
		})
	}
}

func TestCanCreateCallLog(t *testing.T) {
	execID := uuid.New()
	execCaller := Caller{ID: execID, Role: models.RoleSalesExecutive}

	assert.NoError(t, CanCreateCallLog(execCaller, execID))
	assert.ErrorIs(t, CanCreateCallLog(execCaller, uuid.New()), apperrors.ErrForbidden)
	assert.ErrorIs(t, CanCreateCallLog(Caller{ID: uuid.New(), Role: models.RoleTeamLead}, uuid.New()), apperrors.ErrExecutiveOnly)
	assert.ErrorIs(t, CanCreateCallLog(Caller{ID: uuid.New(), Role: models.RoleManager}, uuid.New()), apperrors.ErrExecutiveOnly)
}

func TestCanCreateUser(t *testing.T) {
	leadID := uuid.New()
	leadCaller := Caller{ID: leadID, Role: models.RoleTeamLead}
	managerCaller := Caller{ID: uuid.New(), Role: models.RoleManager}

	assert.ErrorIs(t, CanCreateUser(Caller{ID: uuid.New(), Role: models.RoleSalesExecutive}, models.RoleSalesExecutive, nil), apperrors.ErrForbidden)

	// Lead may only onboard executives reporting to themselves
	assert.NoError(t, CanCreateUser(leadCaller, models.RoleSalesExecutive, &leadID))
	otherID := uuid.New()
	assert.ErrorIs(t, CanCreateUser(leadCaller, models.RoleSalesExecutive, &otherID), apperrors.ErrForbidden)
	assert.ErrorIs(t, CanCreateUser(leadCaller, models.RoleTeamLead, &leadID), apperrors.ErrForbidden)

	assert.NoError(t, CanCreateUser(managerCaller, models.RoleTeamLead, nil))
}

func TestCanInitiateInternalTransfer(t *testing.T) {
	leadID := uuid.New()
	leadCaller := Caller{ID: leadID, Role: models.RoleTeamLead}
	managerCaller := Caller{ID: uuid.New(), Role: models.RoleManager}

	report := executive(uuid.New(), &leadID)
	otherReport := executive(uuid.New(), &leadID)
	foreign := executive(uuid.New(), nil)

	assert.NoError(t, CanInitiateInternalTransfer(leadCaller, report, otherReport))
	assert.NoError(t, CanInitiateInternalTransfer(leadCaller, teamLead(leadID), report))
	assert.ErrorIs(t, CanInitiateInternalTransfer(leadCaller, report, foreign), apperrors.ErrNotDirectReport)
	assert.ErrorIs(t, CanInitiateInternalTransfer(Caller{ID: uuid.New(), Role: models.RoleSalesExecutive}, report, otherReport), apperrors.ErrForbidden)
	assert.NoError(t, CanInitiateInternalTransfer(managerCaller, report, foreign))
}
