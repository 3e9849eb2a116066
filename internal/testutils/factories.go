package testutils

import (
	"fmt"
	"time"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext behind every factory user's password hash
const TestPassword = "password123"

var testPasswordHash string

func init() {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	testPasswordHash = string(hash)
}

// UserFactory builds a user with sensible defaults, overridable per test
func UserFactory(overrides ...func(*models.User)) *models.User {
	id := uuid.New()
	user := &models.User{
		Name:      fmt.Sprintf("User %s", id.String()[:8]),
		Email:     fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		Password:  testPasswordHash,
		ContactNo: "0500000000",
		Location:  "Tel Aviv",
		Role:      models.RoleSalesExecutive,
		RefID:     "EXEC-REF",
		Status:    models.UserStatusActive,
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// WithRole sets the user's role
func WithRole(role models.Role) func(*models.User) {
	return func(u *models.User) { u.Role = role }
}

// WithManager points the user at a manager in the reporting chain
func WithManager(managerID uuid.UUID) func(*models.User) {
	return func(u *models.User) { u.ManagerID = &managerID }
}

// WithTeam places the user on a team
func WithTeam(teamID uuid.UUID) func(*models.User) {
	return func(u *models.User) { u.TeamID = &teamID }
}

// TeamFactory builds a team for the given lead
func TeamFactory(leadID uuid.UUID, overrides ...func(*models.Team)) *models.Team {
	team := &models.Team{
		Name:       fmt.Sprintf("Team %s", uuid.New().String()[:8]),
		TeamLeadID: leadID,
	}
	for _, override := range overrides {
		override(team)
	}
	return team
}

// ProspectFactory builds a fresh prospect owned by the given executive
func ProspectFactory(ownerID uuid.UUID, overrides ...func(*models.Prospect)) *models.Prospect {
	prospect := &models.Prospect{
		CompanyName:      fmt.Sprintf("Company %s", uuid.New().String()[:8]),
		ClientName:       "Test Client",
		ContactNo:        "0500000001",
		Email:            fmt.Sprintf("client-%s@example.com", uuid.New().String()[:8]),
		Activity:         models.ProspectActivityNew,
		SalesExecutiveID: ownerID,
		IsUntouched:      true,
		LastUpdate:       time.Now(),
	}
	for _, override := range overrides {
		override(prospect)
	}
	return prospect
}

// WithProspectTeamLead sets the denormalized team lead pointer
func WithProspectTeamLead(leadID uuid.UUID) func(*models.Prospect) {
	return func(p *models.Prospect) { p.TeamLeadID = &leadID }
}

// WithActivity sets the prospect's lifecycle tag and marks it touched
func WithActivity(activity string) func(*models.Prospect) {
	return func(p *models.Prospect) {
		p.Activity = activity
		p.IsUntouched = false
	}
}

// SaleFactory builds a sale owned by the given executive
func SaleFactory(ownerID uuid.UUID, overrides ...func(*models.Sale)) *models.Sale {
	sale := &models.Sale{
		CompanyName:      fmt.Sprintf("Company %s", uuid.New().String()[:8]),
		ClientName:       "Test Client",
		Amount:           1000,
		SalesExecutiveID: ownerID,
	}
	for _, override := range overrides {
		override(sale)
	}
	return sale
}

// WithSaleTeamLead sets the denormalized team lead pointer
func WithSaleTeamLead(leadID uuid.UUID) func(*models.Sale) {
	return func(s *models.Sale) { s.TeamLeadID = &leadID }
}

// WithAmount sets the sale amount
func WithAmount(amount float64) func(*models.Sale) {
	return func(s *models.Sale) { s.Amount = amount }
}

// CallLogFactory builds a call log owned by the given executive
func CallLogFactory(ownerID uuid.UUID, overrides ...func(*models.CallLog)) *models.CallLog {
	log := &models.CallLog{
		Activity:         "Follow up",
		Comment:          "left a voicemail",
		CallDate:         time.Now(),
		SalesExecutiveID: ownerID,
	}
	for _, override := range overrides {
		override(log)
	}
	return log
}

// PayoutFactory builds a payout for the given user
func PayoutFactory(userID uuid.UUID, overrides ...func(*models.Payout)) *models.Payout {
	payout := &models.Payout{
		UserID:      userID,
		Month:       time.Now().Format("2006-01"),
		Amount:      5000,
		Duration:    "monthly",
		Description: "base salary",
	}
	for _, override := range overrides {
		override(payout)
	}
	return payout
}
