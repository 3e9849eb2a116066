//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProspectRepositoryTestSuite tests the ProspectRepository
type ProspectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProspectRepository
	userRepo      *UserRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ProspectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProspectRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProspectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProspectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProspectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// newOwner persists an executive to own records under test
func (suite *ProspectRepositoryTestSuite) newOwner() *models.User {
	user := testutils.UserFactory()
	suite.Require().NoError(suite.userRepo.Create(user))
	return user
}

func (suite *ProspectRepositoryTestSuite) mustCreate(p *models.Prospect) *models.Prospect {
	suite.Require().NoError(suite.repo.Create(p))
	return p
}

// TestCreate tests creating a prospect with factory defaults
func (suite *ProspectRepositoryTestSuite) TestCreate() {
	owner := suite.newOwner()
	prospect := testutils.ProspectFactory(owner.ID)

	err := suite.repo.Create(prospect)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, prospect.ID)
	suite.True(prospect.IsUntouched)
	suite.Equal(models.ProspectActivityNew, prospect.Activity)
}

// TestListScopedByOwner tests that the owner filter bounds the result set
func (suite *ProspectRepositoryTestSuite) TestListScopedByOwner() {
	owner := suite.newOwner()
	other := suite.newOwner()

	suite.mustCreate(testutils.ProspectFactory(owner.ID))
	suite.mustCreate(testutils.ProspectFactory(owner.ID))
	suite.mustCreate(testutils.ProspectFactory(other.ID))

	prospects, total, err := suite.repo.List(RecordFilter{OwnerIDs: []uuid.UUID{owner.ID}}, false, 10, 0)
	suite.NoError(err)
	suite.EqualValues(2, total)
	for _, p := range prospects {
		suite.Equal(owner.ID, p.SalesExecutiveID)
	}

	// nil owner slice means unrestricted
	_, total, err = suite.repo.List(RecordFilter{}, false, 10, 0)
	suite.NoError(err)
	suite.EqualValues(3, total)

	// an empty slice matches nothing
	_, total, err = suite.repo.List(RecordFilter{OwnerIDs: []uuid.UUID{}}, false, 10, 0)
	suite.NoError(err)
	suite.Zero(total)
}

// TestListUntouchedOnly tests the untouched filter
func (suite *ProspectRepositoryTestSuite) TestListUntouchedOnly() {
	owner := suite.newOwner()
	fresh := suite.mustCreate(testutils.ProspectFactory(owner.ID))
	suite.mustCreate(testutils.ProspectFactory(owner.ID, testutils.WithActivity("Follow-up")))

	prospects, total, err := suite.repo.List(RecordFilter{OwnerIDs: []uuid.UUID{owner.ID}}, true, 10, 0)

	suite.NoError(err)
	suite.EqualValues(1, total)
	suite.Require().Len(prospects, 1)
	suite.Equal(fresh.ID, prospects[0].ID)
}

// TestListTimeWindow tests that the range filter applies to created_at
func (suite *ProspectRepositoryTestSuite) TestListTimeWindow() {
	owner := suite.newOwner()
	suite.mustCreate(testutils.ProspectFactory(owner.ID))

	now := time.Now()
	current := access.TimeRange{Start: now.Add(-time.Hour), End: now.Add(time.Hour)}
	_, total, err := suite.repo.List(RecordFilter{Range: &current}, false, 10, 0)
	suite.NoError(err)
	suite.EqualValues(1, total)

	past := access.TimeRange{Start: now.AddDate(0, -2, 0), End: now.AddDate(0, -1, 0)}
	_, total, err = suite.repo.List(RecordFilter{Range: &past}, false, 10, 0)
	suite.NoError(err)
	suite.Zero(total)
}

// TestTransferOwnership tests the owner-filtered move and its returned count
func (suite *ProspectRepositoryTestSuite) TestTransferOwnership() {
	from := suite.newOwner()
	to := suite.newOwner()
	stranger := suite.newOwner()
	newLeadID := uuid.New()

	mine1 := suite.mustCreate(testutils.ProspectFactory(from.ID))
	mine2 := suite.mustCreate(testutils.ProspectFactory(from.ID))
	foreign := suite.mustCreate(testutils.ProspectFactory(stranger.ID))

	moved, err := suite.repo.TransferOwnership(
		[]uuid.UUID{mine1.ID, mine2.ID, foreign.ID}, from.ID, to.ID, &newLeadID)

	suite.NoError(err)
	suite.EqualValues(2, moved)

	got, err := suite.repo.GetByID(mine1.ID)
	suite.Require().NoError(err)
	suite.Equal(to.ID, got.SalesExecutiveID)
	suite.Require().NotNil(got.TeamLeadID)
	suite.Equal(newLeadID, *got.TeamLeadID)

	// the foreign prospect is skipped, not stolen
	kept, err := suite.repo.GetByID(foreign.ID)
	suite.Require().NoError(err)
	suite.Equal(stranger.ID, kept.SalesExecutiveID)
}

// TestTransferOwnershipEmpty tests that an empty id list is a no-op
func (suite *ProspectRepositoryTestSuite) TestTransferOwnershipEmpty() {
	moved, err := suite.repo.TransferOwnership(nil, uuid.New(), uuid.New(), nil)
	suite.NoError(err)
	suite.Zero(moved)
}

// TestMarkConverted tests the conversion tagging
func (suite *ProspectRepositoryTestSuite) TestMarkConverted() {
	owner := suite.newOwner()
	prospect := suite.mustCreate(testutils.ProspectFactory(owner.ID))

	err := suite.repo.MarkConverted(prospect.ID)
	suite.NoError(err)

	got, err := suite.repo.GetByID(prospect.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ProspectActivityConverted, got.Activity)
	suite.False(got.IsUntouched)
}

// TestTouch tests that first interaction clears the untouched flag
func (suite *ProspectRepositoryTestSuite) TestTouch() {
	owner := suite.newOwner()
	prospect := suite.mustCreate(testutils.ProspectFactory(owner.ID))
	before := prospect.LastUpdate

	err := suite.repo.Touch(prospect.ID)
	suite.NoError(err)

	got, err := suite.repo.GetByID(prospect.ID)
	suite.Require().NoError(err)
	suite.False(got.IsUntouched)
	suite.True(got.LastUpdate.After(before) || got.LastUpdate.Equal(before))
}

// TestCountOpen tests that converted and deleted prospects fall out of the
// open count
func (suite *ProspectRepositoryTestSuite) TestCountOpen() {
	owner := suite.newOwner()
	suite.mustCreate(testutils.ProspectFactory(owner.ID))
	suite.mustCreate(testutils.ProspectFactory(owner.ID, testutils.WithActivity("Follow-up")))
	suite.mustCreate(testutils.ProspectFactory(owner.ID, testutils.WithActivity(models.ProspectActivityConverted)))
	suite.mustCreate(testutils.ProspectFactory(owner.ID, testutils.WithActivity(models.ProspectActivityDeleted)))

	open, err := suite.repo.CountOpen([]uuid.UUID{owner.ID})
	suite.NoError(err)
	suite.EqualValues(2, open)
}

// TestCountByActivity tests counting per activity tag
func (suite *ProspectRepositoryTestSuite) TestCountByActivity() {
	owner := suite.newOwner()
	suite.mustCreate(testutils.ProspectFactory(owner.ID, testutils.WithActivity(models.ProspectActivityConverted)))
	suite.mustCreate(testutils.ProspectFactory(owner.ID, testutils.WithActivity(models.ProspectActivityConverted)))
	suite.mustCreate(testutils.ProspectFactory(owner.ID))

	converted, err := suite.repo.CountByActivity([]uuid.UUID{owner.ID}, models.ProspectActivityConverted)
	suite.NoError(err)
	suite.EqualValues(2, converted)
}

// TestProspectRepositoryTestSuite runs the test suite
func TestProspectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProspectRepositoryTestSuite))
}
