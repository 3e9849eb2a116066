package service_test

import (
	"testing"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/mocks"
	"sales-crm-backend/internal/repository"
	"sales-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// testExecutive builds a sales executive reporting to the given lead
func testExecutive(id uuid.UUID, leadID *uuid.UUID) *models.User {
	u := &models.User{Name: "Exec", Role: models.RoleSalesExecutive, ManagerID: leadID}
	u.ID = id
	return u
}

// testTeamLead builds a team lead reporting to the given manager
func testTeamLead(id uuid.UUID, managerID *uuid.UUID) *models.User {
	u := &models.User{Name: "Lead", Role: models.RoleTeamLead, ManagerID: managerID}
	u.ID = id
	return u
}

// ProspectServiceTestSuite defines the test suite for ProspectService
type ProspectServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockProspectRepo *mocks.MockProspectRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	prospectService  *service.ProspectService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ProspectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProspectRepo = mocks.NewMockProspectRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := access.NewResolver(suite.mockUserRepo)
	suite.prospectService = service.NewProspectService(suite.mockProspectRepo, suite.mockUserRepo, resolver, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ProspectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProspect tests an executive creating a prospect for themselves
func (suite *ProspectServiceTestSuite) TestCreateProspect() {
	leadID := uuid.New()
	execID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}
	req := &service.CreateProspectRequest{
		CompanyName: "Acme Corp",
		ClientName:  "Jane Smith",
		Email:       "jane@acme.example",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(execID).
		Return(testExecutive(execID, &leadID), nil).
		Times(1)

	var created *models.Prospect
	suite.mockProspectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Prospect) error {
			created = p
			return nil
		}).
		Times(1)

	prospect, err := suite.prospectService.CreateProspect(caller, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), prospect)
	assert.Equal(suite.T(), models.ProspectActivityNew, created.Activity)
	assert.True(suite.T(), created.IsUntouched)
	assert.Equal(suite.T(), execID, created.SalesExecutiveID)
	// The cached team lead pointer follows the owner's reporting chain
	assert.NotNil(suite.T(), created.TeamLeadID)
	assert.Equal(suite.T(), leadID, *created.TeamLeadID)
}

// TestCreateProspectForTeamLeadOwner tests that a lead's own prospect points at the lead
func (suite *ProspectServiceTestSuite) TestCreateProspectForTeamLeadOwner() {
	managerID := uuid.New()
	leadID := uuid.New()
	caller := access.Caller{ID: leadID, Role: models.RoleTeamLead}
	req := &service.CreateProspectRequest{
		CompanyName: "Acme Corp",
		ClientName:  "Jane Smith",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(leadID).
		Return(testTeamLead(leadID, &managerID), nil).
		Times(1)

	var created *models.Prospect
	suite.mockProspectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Prospect) error {
			created = p
			return nil
		}).
		Times(1)

	_, err := suite.prospectService.CreateProspect(caller, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), leadID, *created.TeamLeadID)
}

// TestCreateProspectForPeerForbidden tests an executive naming another owner
func (suite *ProspectServiceTestSuite) TestCreateProspectForPeerForbidden() {
	leadID := uuid.New()
	execID := uuid.New()
	peerID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}
	req := &service.CreateProspectRequest{
		CompanyName:      "Acme Corp",
		ClientName:       "Jane Smith",
		SalesExecutiveID: &peerID,
	}

	suite.mockUserRepo.EXPECT().
		GetByID(peerID).
		Return(testExecutive(peerID, &leadID), nil).
		Times(1)

	prospect, err := suite.prospectService.CreateProspect(caller, req)

	assert.Nil(suite.T(), prospect)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// TestCreateProspectManagerMustNameOwner tests that a manager cannot own records
func (suite *ProspectServiceTestSuite) TestCreateProspectManagerMustNameOwner() {
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}
	req := &service.CreateProspectRequest{
		CompanyName: "Acme Corp",
		ClientName:  "Jane Smith",
	}

	prospect, err := suite.prospectService.CreateProspect(caller, req)

	assert.Nil(suite.T(), prospect)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateProspectValidationError tests creating a prospect with a missing company name
func (suite *ProspectServiceTestSuite) TestCreateProspectValidationError() {
	caller := access.Caller{ID: uuid.New(), Role: models.RoleSalesExecutive}
	req := &service.CreateProspectRequest{ClientName: "Jane Smith"}

	prospect, err := suite.prospectService.CreateProspect(caller, req)

	assert.Nil(suite.T(), prospect)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetProspectOutOfScope tests that an existing prospect outside the
// caller's scope yields a forbidden error, not a missing one
func (suite *ProspectServiceTestSuite) TestGetProspectOutOfScope() {
	leadID := uuid.New()
	ownerID := uuid.New()
	prospectID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleSalesExecutive}

	prospect := &models.Prospect{SalesExecutiveID: ownerID}
	prospect.ID = prospectID

	suite.mockProspectRepo.EXPECT().
		GetByID(prospectID).
		Return(prospect, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(ownerID).
		Return(testExecutive(ownerID, &leadID), nil).
		Times(1)

	result, err := suite.prospectService.GetProspect(caller, prospectID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOutOfScope)
}

// TestGetProspectNotFound tests retrieving a missing prospect
func (suite *ProspectServiceTestSuite) TestGetProspectNotFound() {
	prospectID := uuid.New()
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	suite.mockProspectRepo.EXPECT().
		GetByID(prospectID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.prospectService.GetProspect(caller, prospectID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProspectNotFound)
}

// TestListProspectsExecutiveScope tests that an executive's list is filtered to themselves
func (suite *ProspectServiceTestSuite) TestListProspectsExecutiveScope() {
	execID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}

	suite.mockProspectRepo.EXPECT().
		List(gomock.Any(), false, 20, 0).
		DoAndReturn(func(filter repository.RecordFilter, untouchedOnly bool, limit, offset int) ([]models.Prospect, int64, error) {
			assert.Equal(suite.T(), []uuid.UUID{execID}, filter.OwnerIDs)
			return []models.Prospect{}, 0, nil
		}).
		Times(1)

	_, _, err := suite.prospectService.ListProspects(caller, service.ProspectListQuery{Limit: 20})

	assert.NoError(suite.T(), err)
}

// TestListProspectsManagerUnrestricted tests that a manager's list carries no owner filter
func (suite *ProspectServiceTestSuite) TestListProspectsManagerUnrestricted() {
	caller := access.Caller{ID: uuid.New(), Role: models.RoleManager}

	suite.mockProspectRepo.EXPECT().
		List(gomock.Any(), true, 10, 0).
		DoAndReturn(func(filter repository.RecordFilter, untouchedOnly bool, limit, offset int) ([]models.Prospect, int64, error) {
			assert.Nil(suite.T(), filter.OwnerIDs)
			return []models.Prospect{}, 0, nil
		}).
		Times(1)

	_, _, err := suite.prospectService.ListProspects(caller, service.ProspectListQuery{Untouched: true, Limit: 10})

	assert.NoError(suite.T(), err)
}

// TestUpdateProspectActivityClearsUntouched tests that an activity change
// permanently marks the prospect as touched
func (suite *ProspectServiceTestSuite) TestUpdateProspectActivityClearsUntouched() {
	leadID := uuid.New()
	execID := uuid.New()
	prospectID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}

	prospect := &models.Prospect{SalesExecutiveID: execID, IsUntouched: true}
	prospect.ID = prospectID

	suite.mockProspectRepo.EXPECT().GetByID(prospectID).Return(prospect, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(execID).Return(testExecutive(execID, &leadID), nil).Times(1)
	suite.mockProspectRepo.EXPECT().
		UpdateFields(prospectID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), "Follow-up", updates["activity"])
			assert.Equal(suite.T(), false, updates["is_untouched"])
			assert.Contains(suite.T(), updates, "last_update")
			return nil
		}).
		Times(1)
	suite.mockProspectRepo.EXPECT().GetByID(prospectID).Return(prospect, nil).Times(1)

	_, err := suite.prospectService.UpdateProspect(caller, prospectID, &service.UpdateProspectRequest{
		Activity: "Follow-up",
	})

	assert.NoError(suite.T(), err)
}

// TestDeleteProspectManagerOnly tests that only managers delete prospects
func (suite *ProspectServiceTestSuite) TestDeleteProspectManagerOnly() {
	caller := access.Caller{ID: uuid.New(), Role: models.RoleTeamLead}

	err := suite.prospectService.DeleteProspect(caller, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerOnly)
}

// TestProspectServiceTestSuite runs the test suite
func TestProspectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProspectServiceTestSuite))
}
