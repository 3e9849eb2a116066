//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// SaleRepositoryTestSuite tests the SaleRepository
type SaleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SaleRepository
	userRepo      *UserRepository
}

// SetupSuite runs before all tests in the suite
func (suite *SaleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSaleRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SaleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SaleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SaleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SaleRepositoryTestSuite) newOwner() *models.User {
	user := testutils.UserFactory()
	suite.Require().NoError(suite.userRepo.Create(user))
	return user
}

func (suite *SaleRepositoryTestSuite) mustCreate(s *models.Sale) *models.Sale {
	suite.Require().NoError(suite.repo.Create(s))
	return s
}

// TestCreate tests creating a sale
func (suite *SaleRepositoryTestSuite) TestCreate() {
	owner := suite.newOwner()
	sale := testutils.SaleFactory(owner.ID, testutils.WithAmount(2500))

	err := suite.repo.Create(sale)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, sale.ID)
	suite.False(sale.IsTransferredToFinance)
	suite.Nil(sale.TransferredToFinanceDate)
}

// TestListByTeamLead tests narrowing the list to one team lead's records
func (suite *SaleRepositoryTestSuite) TestListByTeamLead() {
	owner := suite.newOwner()
	leadID := uuid.New()
	otherLeadID := uuid.New()

	suite.mustCreate(testutils.SaleFactory(owner.ID, testutils.WithSaleTeamLead(leadID)))
	suite.mustCreate(testutils.SaleFactory(owner.ID, testutils.WithSaleTeamLead(leadID)))
	suite.mustCreate(testutils.SaleFactory(owner.ID, testutils.WithSaleTeamLead(otherLeadID)))

	sales, total, err := suite.repo.List(SaleFilter{TeamLeadID: &leadID}, 10, 0)

	suite.NoError(err)
	suite.EqualValues(2, total)
	for _, s := range sales {
		suite.Require().NotNil(s.TeamLeadID)
		suite.Equal(leadID, *s.TeamLeadID)
	}
}

// TestListByClientName tests the case-insensitive client match
func (suite *SaleRepositoryTestSuite) TestListByClientName() {
	owner := suite.newOwner()
	target := testutils.SaleFactory(owner.ID)
	target.ClientName = "Jane Smith"
	suite.mustCreate(target)
	suite.mustCreate(testutils.SaleFactory(owner.ID))

	sales, total, err := suite.repo.List(SaleFilter{ClientName: "jane"}, 10, 0)

	suite.NoError(err)
	suite.EqualValues(1, total)
	suite.Require().Len(sales, 1)
	suite.Equal(target.ID, sales[0].ID)
}

// TestTransferOwnership tests the owner-filtered move for sales
func (suite *SaleRepositoryTestSuite) TestTransferOwnership() {
	from := suite.newOwner()
	to := suite.newOwner()
	newLeadID := uuid.New()

	sale := suite.mustCreate(testutils.SaleFactory(from.ID))
	alreadyMoved := suite.mustCreate(testutils.SaleFactory(to.ID))

	moved, err := suite.repo.TransferOwnership(
		[]uuid.UUID{sale.ID, alreadyMoved.ID}, from.ID, to.ID, &newLeadID)

	suite.NoError(err)
	suite.EqualValues(1, moved)

	got, err := suite.repo.GetByID(sale.ID)
	suite.Require().NoError(err)
	suite.Equal(to.ID, got.SalesExecutiveID)
	suite.Require().NotNil(got.TeamLeadID)
	suite.Equal(newLeadID, *got.TeamLeadID)
}

// TestGetPendingFinance tests that flagged sales drop out of the pending set
func (suite *SaleRepositoryTestSuite) TestGetPendingFinance() {
	owner := suite.newOwner()
	fresh := suite.mustCreate(testutils.SaleFactory(owner.ID))
	flagged := suite.mustCreate(testutils.SaleFactory(owner.ID))

	_, err := suite.repo.MarkTransferredToFinance([]uuid.UUID{flagged.ID}, time.Now())
	suite.Require().NoError(err)

	pending, err := suite.repo.GetPendingFinance([]uuid.UUID{fresh.ID, flagged.ID})

	suite.NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(fresh.ID, pending[0].ID)
}

// TestMarkTransferredToFinance tests that the flag is set once and the
// second pass affects nothing
func (suite *SaleRepositoryTestSuite) TestMarkTransferredToFinance() {
	owner := suite.newOwner()
	sale := suite.mustCreate(testutils.SaleFactory(owner.ID))

	at := time.Now()
	count, err := suite.repo.MarkTransferredToFinance([]uuid.UUID{sale.ID}, at)
	suite.NoError(err)
	suite.EqualValues(1, count)

	got, err := suite.repo.GetByID(sale.ID)
	suite.Require().NoError(err)
	suite.True(got.IsTransferredToFinance)
	suite.NotNil(got.TransferredToFinanceDate)

	count, err = suite.repo.MarkTransferredToFinance([]uuid.UUID{sale.ID}, time.Now())
	suite.NoError(err)
	suite.Zero(count)
}

// TestSumAmount tests totaling within the owner scope
func (suite *SaleRepositoryTestSuite) TestSumAmount() {
	owner := suite.newOwner()
	other := suite.newOwner()

	suite.mustCreate(testutils.SaleFactory(owner.ID, testutils.WithAmount(1000)))
	suite.mustCreate(testutils.SaleFactory(owner.ID, testutils.WithAmount(2500)))
	suite.mustCreate(testutils.SaleFactory(other.ID, testutils.WithAmount(9000)))

	total, err := suite.repo.SumAmount(RecordFilter{OwnerIDs: []uuid.UUID{owner.ID}})
	suite.NoError(err)
	suite.InDelta(3500, total, 0.001)

	// empty table slice of another owner still sums to zero, not NULL
	total, err = suite.repo.SumAmount(RecordFilter{OwnerIDs: []uuid.UUID{uuid.New()}})
	suite.NoError(err)
	suite.Zero(total)
}

// TestSaleRepositoryTestSuite runs the test suite
func TestSaleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SaleRepositoryTestSuite))
}
