package access

import (
	"testing"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory is an in-memory UserDirectory for resolver tests
type fakeDirectory struct {
	users   map[uuid.UUID]*models.User
	reports map[uuid.UUID][]uuid.UUID
}

func (d *fakeDirectory) GetByID(id uuid.UUID) (*models.User, error) {
	if u, ok := d.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (d *fakeDirectory) GetDirectReportIDs(leadID uuid.UUID) ([]uuid.UUID, error) {
	return d.reports[leadID], nil
}

func newHierarchy() (*fakeDirectory, Caller, Caller, Caller, []uuid.UUID) {
	leadID := uuid.New()
	otherLeadID := uuid.New()
	managerID := uuid.New()
	reportIDs := []uuid.UUID{uuid.New(), uuid.New()}

	dir := &fakeDirectory{
		users: map[uuid.UUID]*models.User{
			leadID:      {Role: models.RoleTeamLead, BaseModel: models.BaseModel{ID: leadID}},
			otherLeadID: {Role: models.RoleTeamLead, BaseModel: models.BaseModel{ID: otherLeadID}},
			managerID:   {Role: models.RoleManager, BaseModel: models.BaseModel{ID: managerID}},
		},
		reports: map[uuid.UUID][]uuid.UUID{
			leadID:      reportIDs,
			otherLeadID: {uuid.New()},
		},
	}
	for _, id := range reportIDs {
		dir.users[id] = &models.User{Role: models.RoleSalesExecutive, ManagerID: &leadID, BaseModel: models.BaseModel{ID: id}}
	}

	exec := Caller{ID: reportIDs[0], Role: models.RoleSalesExecutive}
	lead := Caller{ID: leadID, Role: models.RoleTeamLead}
	manager := Caller{ID: managerID, Role: models.RoleManager}
	return dir, exec, lead, manager, reportIDs
}

func TestResolveBaseScopes(t *testing.T) {
	dir, exec, lead, manager, reportIDs := newHierarchy()
	resolver := NewResolver(dir)

	execScope, err := resolver.Resolve(exec, Narrowing{})
	require.NoError(t, err)
	assert.False(t, execScope.All)
	assert.Equal(t, []uuid.UUID{exec.ID}, execScope.UserIDs)

	leadScope, err := resolver.Resolve(lead, Narrowing{})
	require.NoError(t, err)
	assert.False(t, leadScope.All)
	assert.Contains(t, leadScope.UserIDs, lead.ID)
	for _, id := range reportIDs {
		assert.Contains(t, leadScope.UserIDs, id)
	}

	managerScope, err := resolver.Resolve(manager, Narrowing{})
	require.NoError(t, err)
	assert.True(t, managerScope.All)
	assert.True(t, managerScope.Contains(uuid.New()))
}

func TestResolveMemberNarrowing(t *testing.T) {
	dir, exec, lead, manager, reportIDs := newHierarchy()
	resolver := NewResolver(dir)

	// A lead narrows to one of their own reports
	scope, err := resolver.Resolve(lead, Narrowing{MemberID: &reportIDs[1]})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{reportIDs[1]}, scope.UserIDs)

	// An executive cannot narrow to a peer
	peer := reportIDs[1]
	_, err = resolver.Resolve(exec, Narrowing{MemberID: &peer})
	assert.ErrorIs(t, err, apperrors.ErrOutOfScope)

	// A manager's unrestricted scope accepts any id
	random := uuid.New()
	scope, err = resolver.Resolve(manager, Narrowing{MemberID: &random})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{random}, scope.UserIDs)
}

func TestResolveTeamLeadNarrowing(t *testing.T) {
	dir, _, lead, manager, reportIDs := newHierarchy()
	resolver := NewResolver(dir)

	// Manager narrows to a lead plus that lead's reports
	scope, err := resolver.Resolve(manager, Narrowing{TeamLeadID: &lead.ID})
	require.NoError(t, err)
	assert.False(t, scope.All)
	assert.Contains(t, scope.UserIDs, lead.ID)
	for _, id := range reportIDs {
		assert.Contains(t, scope.UserIDs, id)
	}

	// A lead may only name themselves
	other := uuid.New()
	_, err = resolver.Resolve(lead, Narrowing{TeamLeadID: &other})
	assert.ErrorIs(t, err, apperrors.ErrOutOfScope)

	self := lead.ID
	scope, err = resolver.Resolve(lead, Narrowing{TeamLeadID: &self})
	require.NoError(t, err)
	assert.Contains(t, scope.UserIDs, lead.ID)

	// Naming a non-lead fails
	badLead := reportIDs[0]
	_, err = resolver.Resolve(manager, Narrowing{TeamLeadID: &badLead})
	assert.ErrorIs(t, err, apperrors.ErrTeamLeadNotFound)
}

func TestLeadNeverSeesOtherTeams(t *testing.T) {
	dir, _, lead, _, _ := newHierarchy()
	resolver := NewResolver(dir)

	scope, err := resolver.Resolve(lead, Narrowing{})
	require.NoError(t, err)

	// No id from another lead's team leaks into this lead's scope
	for otherLead, others := range dir.reports {
		if otherLead == lead.ID {
			continue
		}
		assert.False(t, scope.Contains(otherLead))
		for _, id := range others {
			assert.False(t, scope.Contains(id))
		}
	}
}
