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
)

// CallLogServiceTestSuite defines the test suite for CallLogService
type CallLogServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCallLogRepo  *mocks.MockCallLogRepositoryInterface
	mockProspectRepo *mocks.MockProspectRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	callLogService   *service.CallLogService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *CallLogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCallLogRepo = mocks.NewMockCallLogRepositoryInterface(suite.ctrl)
	suite.mockProspectRepo = mocks.NewMockProspectRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := access.NewResolver(suite.mockUserRepo)
	suite.callLogService = service.NewCallLogService(suite.mockCallLogRepo, suite.mockProspectRepo, suite.mockUserRepo, resolver, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *CallLogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCallLogTouchesProspect tests that logging a call against a
// prospect marks that prospect as touched
func (suite *CallLogServiceTestSuite) TestCreateCallLogTouchesProspect() {
	execID := uuid.New()
	prospectID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}

	prospect := &models.Prospect{SalesExecutiveID: execID}
	prospect.ID = prospectID

	req := &service.CreateCallLogRequest{
		Activity:   "Intro call",
		Comment:    "Left a voicemail",
		ProspectID: &prospectID,
	}

	suite.mockProspectRepo.EXPECT().GetByID(prospectID).Return(prospect, nil).Times(1)
	suite.mockCallLogRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockProspectRepo.EXPECT().Touch(prospectID).Return(nil).Times(1)

	log, err := suite.callLogService.CreateCallLog(caller, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), execID, log.SalesExecutiveID)
	assert.False(suite.T(), log.CallDate.IsZero())
}

// TestCreateCallLogForeignProspect tests logging against someone else's prospect
func (suite *CallLogServiceTestSuite) TestCreateCallLogForeignProspect() {
	execID := uuid.New()
	prospectID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}

	prospect := &models.Prospect{SalesExecutiveID: uuid.New()}
	prospect.ID = prospectID

	req := &service.CreateCallLogRequest{Activity: "Intro call", ProspectID: &prospectID}

	suite.mockProspectRepo.EXPECT().GetByID(prospectID).Return(prospect, nil).Times(1)

	log, err := suite.callLogService.CreateCallLog(caller, req)

	assert.Nil(suite.T(), log)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOutOfScope)
}

// TestCreateCallLogExecutivesOnly tests that leads and managers cannot log calls
func (suite *CallLogServiceTestSuite) TestCreateCallLogExecutivesOnly() {
	req := &service.CreateCallLogRequest{Activity: "Intro call"}

	_, err := suite.callLogService.CreateCallLog(access.Caller{ID: uuid.New(), Role: models.RoleTeamLead}, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExecutiveOnly)

	_, err = suite.callLogService.CreateCallLog(access.Caller{ID: uuid.New(), Role: models.RoleManager}, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExecutiveOnly)
}

// TestUpdateCallLogDeleteTombstonesProspect tests that the delete marker on
// a call log tombstones the referenced prospect
func (suite *CallLogServiceTestSuite) TestUpdateCallLogDeleteTombstonesProspect() {
	leadID := uuid.New()
	execID := uuid.New()
	logID := uuid.New()
	prospectID := uuid.New()
	caller := access.Caller{ID: execID, Role: models.RoleSalesExecutive}

	log := &models.CallLog{SalesExecutiveID: execID, ProspectID: &prospectID, Activity: "Intro call"}
	log.ID = logID

	suite.mockCallLogRepo.EXPECT().GetByID(logID).Return(log, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(execID).Return(testExecutive(execID, &leadID), nil).Times(1)
	suite.mockCallLogRepo.EXPECT().UpdateFields(logID, gomock.Any()).Return(nil).Times(1)
	suite.mockProspectRepo.EXPECT().
		UpdateFields(prospectID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), models.ProspectActivityDeleted, updates["activity"])
			assert.Equal(suite.T(), false, updates["is_untouched"])
			return nil
		}).
		Times(1)
	suite.mockCallLogRepo.EXPECT().GetByID(logID).Return(log, nil).Times(1)

	_, err := suite.callLogService.UpdateCallLog(caller, logID, &service.UpdateCallLogRequest{
		Activity: models.ProspectActivityDeleted,
	})

	assert.NoError(suite.T(), err)
}

// TestCallLogServiceTestSuite runs the test suite
func TestCallLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CallLogServiceTestSuite))
}
