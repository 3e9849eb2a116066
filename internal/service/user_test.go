package service_test

import (
	"testing"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/mocks"
	"sales-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	userService  *service.UserService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := access.NewResolver(suite.mockUserRepo)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockTeamRepo, resolver, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateExecutiveJoinsLeadTeam tests that an executive onboarded under a
// lead gets the manager and team pointers set together
func (suite *UserServiceTestSuite) TestCreateExecutiveJoinsLeadTeam() {
	managerID := uuid.New()
	leadID := uuid.New()
	teamID := uuid.New()
	caller := access.Caller{ID: leadID, Role: models.RoleTeamLead}

	lead := testTeamLead(leadID, &managerID)
	lead.TeamID = &teamID

	req := &service.CreateUserRequest{
		Name:      "New Exec",
		Email:     "exec@example.com",
		Password:  "password123",
		Role:      string(models.RoleSalesExecutive),
		ManagerID: &leadID,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(leadID).Return(lead, nil).Times(1)

	var created *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			created = u
			return nil
		}).
		Times(1)

	user, err := suite.userService.CreateUser(caller, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
	assert.Equal(suite.T(), leadID, *created.ManagerID)
	assert.Equal(suite.T(), teamID, *created.TeamID)
	assert.Equal(suite.T(), models.UserStatusActive, created.Status)
	// The stored password is a hash, never the raw value
	assert.NotEqual(suite.T(), req.Password, created.Password)
}

// TestCreateUserUnderLeadWithoutTeam tests onboarding under a lead who has no team yet
func (suite *UserServiceTestSuite) TestCreateUserUnderLeadWithoutTeam() {
	managerID := uuid.New()
	leadID := uuid.New()
	caller := access.Caller{ID: leadID, Role: models.RoleTeamLead}

	req := &service.CreateUserRequest{
		Name:      "New Exec",
		Email:     "exec@example.com",
		Password:  "password123",
		Role:      string(models.RoleSalesExecutive),
		ManagerID: &leadID,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(leadID).Return(testTeamLead(leadID, &managerID), nil).Times(1)

	user, err := suite.userService.CreateUser(caller, req)

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamLeadWithoutTeam)
}

// TestCreateUserDuplicateEmail tests the email uniqueness check
func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}
	req := &service.CreateUserRequest{
		Name:     "New Lead",
		Email:    "lead@example.com",
		Password: "password123",
		Role:     string(models.RoleTeamLead),
	}

	existing := testTeamLead(uuid.New(), nil)
	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(existing, nil).Times(1)

	user, err := suite.userService.CreateUser(caller, req)

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestCreateUserLeadForeignReport tests that a lead cannot onboard an
// executive under a different lead
func (suite *UserServiceTestSuite) TestCreateUserLeadForeignReport() {
	leadID := uuid.New()
	otherLeadID := uuid.New()
	caller := access.Caller{ID: leadID, Role: models.RoleTeamLead}

	req := &service.CreateUserRequest{
		Name:      "New Exec",
		Email:     "exec@example.com",
		Password:  "password123",
		Role:      string(models.RoleSalesExecutive),
		ManagerID: &otherLeadID,
	}

	user, err := suite.userService.CreateUser(caller, req)

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// TestGetUserOutOfScope tests that an existing but invisible user yields a
// forbidden error, not a missing one
func (suite *UserServiceTestSuite) TestGetUserOutOfScope() {
	leadID := uuid.New()
	targetID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleSalesExecutive}

	suite.mockUserRepo.EXPECT().GetByID(targetID).Return(testExecutive(targetID, &leadID), nil).Times(1)

	user, err := suite.userService.GetUser(caller, targetID)

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOutOfScope)
}

// TestUpdateUserSilentlyDropsForbiddenFields tests that fields outside the
// caller's allowed set never reach the repository
func (suite *UserServiceTestSuite) TestUpdateUserSilentlyDropsForbiddenFields() {
	leadID := uuid.New()
	execID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}

	target := testExecutive(execID, &leadID)

	suite.mockUserRepo.EXPECT().GetByID(execID).Return(target, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		UpdateFields(execID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), map[string]interface{}{"name": "Renamed"}, updates)
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().GetByID(execID).Return(target, nil).Times(1)

	_, err := suite.userService.UpdateUser(caller, execID, map[string]interface{}{
		"name": "Renamed",
		"role": "manager",
	})

	assert.NoError(suite.T(), err)
}

// TestUpdateUserNothingAllowed tests updating a user entirely outside scope
func (suite *UserServiceTestSuite) TestUpdateUserNothingAllowed() {
	leadID := uuid.New()
	targetID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleSalesExecutive}

	suite.mockUserRepo.EXPECT().GetByID(targetID).Return(testExecutive(targetID, &leadID), nil).Times(1)

	user, err := suite.userService.UpdateUser(caller, targetID, map[string]interface{}{"name": "X"})

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOutOfScope)
}

// TestUpdateUserReassignsManagerAndTeamTogether tests that moving an
// executive to a new lead rewrites both pointers in one update
func (suite *UserServiceTestSuite) TestUpdateUserReassignsManagerAndTeamTogether() {
	execID := uuid.New()
	newLeadID := uuid.New()
	newTeamID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	target := testExecutive(execID, nil)
	newLead := testTeamLead(newLeadID, nil)
	newLead.TeamID = &newTeamID

	suite.mockUserRepo.EXPECT().GetByID(execID).Return(target, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(newLeadID).Return(newLead, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		UpdateFields(execID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), newLeadID, updates["manager_id"])
			assert.Equal(suite.T(), newTeamID, updates["team_id"])
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().GetByID(execID).Return(target, nil).Times(1)

	_, err := suite.userService.UpdateUser(caller, execID, map[string]interface{}{
		"manager_id": newLeadID.String(),
	})

	assert.NoError(suite.T(), err)
}

// TestUpdateTeamLeadManagerMustBeManager tests that a lead's manager pointer
// cannot be rewritten to a non-manager
func (suite *UserServiceTestSuite) TestUpdateTeamLeadManagerMustBeManager() {
	leadID := uuid.New()
	execID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	suite.mockUserRepo.EXPECT().GetByID(leadID).Return(testTeamLead(leadID, nil), nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(execID).Return(testExecutive(execID, nil), nil).Times(1)

	user, err := suite.userService.UpdateUser(caller, leadID, map[string]interface{}{
		"manager_id": execID.String(),
	})

	assert.Nil(suite.T(), user)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateTeamLeadManagerRewrite tests the validated manager reassignment
// of a team lead
func (suite *UserServiceTestSuite) TestUpdateTeamLeadManagerRewrite() {
	leadID := uuid.New()
	managerID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	target := testTeamLead(leadID, nil)
	manager := &models.User{Name: "Manager", Role: models.RoleManager}
	manager.ID = managerID

	suite.mockUserRepo.EXPECT().GetByID(leadID).Return(target, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(managerID).Return(manager, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		UpdateFields(leadID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), managerID, updates["manager_id"])
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().GetByID(leadID).Return(target, nil).Times(1)

	_, err := suite.userService.UpdateUser(caller, leadID, map[string]interface{}{
		"manager_id": managerID.String(),
	})

	assert.NoError(suite.T(), err)
}

// TestUpdateTeamLeadManagerMalformedID tests that a malformed manager id is
// rejected as invalid input rather than reaching the database
func (suite *UserServiceTestSuite) TestUpdateTeamLeadManagerMalformedID() {
	leadID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	suite.mockUserRepo.EXPECT().GetByID(leadID).Return(testTeamLead(leadID, nil), nil).Times(1)

	user, err := suite.userService.UpdateUser(caller, leadID, map[string]interface{}{
		"manager_id": "not-a-uuid",
	})

	assert.Nil(suite.T(), user)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateTeamLeadUnderManager tests onboarding a lead with a validated
// manager link
func (suite *UserServiceTestSuite) TestCreateTeamLeadUnderManager() {
	managerID := uuid.New()
	caller := access.Caller{ID: managerID, Role: models.RoleManager}

	manager := &models.User{Name: "Manager", Role: models.RoleManager}
	manager.ID = managerID

	req := &service.CreateUserRequest{
		Name:      "New Lead",
		Email:     "lead@example.com",
		Password:  "password123",
		Role:      string(models.RoleTeamLead),
		ManagerID: &managerID,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(managerID).Return(manager, nil).Times(1)

	var created *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			created = u
			return nil
		}).
		Times(1)

	user, err := suite.userService.CreateUser(caller, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
	assert.Equal(suite.T(), managerID, *created.ManagerID)
}

// TestCreateTeamLeadUnderNonManager tests that a lead's manager link may not
// point at a sales executive
func (suite *UserServiceTestSuite) TestCreateTeamLeadUnderNonManager() {
	execID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	req := &service.CreateUserRequest{
		Name:      "New Lead",
		Email:     "lead@example.com",
		Password:  "password123",
		Role:      string(models.RoleTeamLead),
		ManagerID: &execID,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(execID).Return(testExecutive(execID, nil), nil).Times(1)

	user, err := suite.userService.CreateUser(caller, req)

	assert.Nil(suite.T(), user)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteTeamLeadCascades tests that deleting a lead unassigns reports
// and removes their team before the lead row goes away
func (suite *UserServiceTestSuite) TestDeleteTeamLeadCascades() {
	managerID := uuid.New()
	leadID := uuid.New()
	teamID := uuid.New()
	caller := access.Caller{ID: managerID, Role: models.RoleManager}

	team := &models.Team{Name: "North Region", TeamLeadID: leadID}
	team.ID = teamID

	suite.mockUserRepo.EXPECT().GetByID(leadID).Return(testTeamLead(leadID, &managerID), nil).Times(1)
	gomock.InOrder(
		suite.mockUserRepo.EXPECT().UnassignReportsOf(leadID).Return(nil),
		suite.mockTeamRepo.EXPECT().GetByTeamLeadID(leadID).Return(team, nil),
		suite.mockTeamRepo.EXPECT().Delete(teamID).Return(nil),
		suite.mockUserRepo.EXPECT().Delete(leadID).Return(nil),
	)

	err := suite.userService.DeleteUser(caller, leadID)

	assert.NoError(suite.T(), err)
}

// TestDeleteManagerUnlinksLeads tests that deleting a manager clears the
// manager pointer on their leads
func (suite *UserServiceTestSuite) TestDeleteManagerUnlinksLeads() {
	callerID := uuid.New()
	targetID := uuid.New()
	caller := access.Caller{ID: callerID, Role: models.RoleManager}

	target := &models.User{Role: models.RoleManager}
	target.ID = targetID

	suite.mockUserRepo.EXPECT().GetByID(targetID).Return(target, nil).Times(1)
	gomock.InOrder(
		suite.mockUserRepo.EXPECT().UnlinkManagerFromLeads(targetID).Return(nil),
		suite.mockUserRepo.EXPECT().Delete(targetID).Return(nil),
	)

	err := suite.userService.DeleteUser(caller, targetID)

	assert.NoError(suite.T(), err)
}

// TestDeleteExecutiveKeepsRecords tests that deleting an executive cascades nothing
func (suite *UserServiceTestSuite) TestDeleteExecutiveKeepsRecords() {
	leadID := uuid.New()
	execID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	suite.mockUserRepo.EXPECT().GetByID(execID).Return(testExecutive(execID, &leadID), nil).Times(1)
	suite.mockUserRepo.EXPECT().Delete(execID).Return(nil).Times(1)

	err := suite.userService.DeleteUser(caller, execID)

	assert.NoError(suite.T(), err)
}

// TestDeleteUserManagerOnly tests that leads cannot delete users
func (suite *UserServiceTestSuite) TestDeleteUserManagerOnly() {
	caller := access.Caller{ID: uuid.New(), Role: models.RoleTeamLead}

	err := suite.userService.DeleteUser(caller, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerOnly)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
