package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sales-crm-backend/internal/config"
	"sales-crm-backend/internal/database"
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema. Users reference their
// manager by email so the YAML stays readable; the loader resolves the
// hierarchy top-down (managers, then leads, then executives).
type UserData struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	ContactNo    string `yaml:"contact_no,omitempty"`
	Location     string `yaml:"location,omitempty"`
	Role         string `yaml:"role"`
	Status       string `yaml:"status,omitempty"`
	ManagerEmail string `yaml:"manager_email,omitempty"`
	TeamName     string `yaml:"team_name,omitempty"`
}

type TeamData struct {
	Name          string `yaml:"name"`
	TeamLeadEmail string `yaml:"team_lead_email"`
}

type ProspectData struct {
	CompanyName string `yaml:"company_name"`
	ClientName  string `yaml:"client_name"`
	ContactNo   string `yaml:"contact_no,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Activity    string `yaml:"activity,omitempty"`
	OwnerEmail  string `yaml:"owner_email"`
}

type SaleData struct {
	CompanyName string  `yaml:"company_name"`
	ClientName  string  `yaml:"client_name"`
	Amount      float64 `yaml:"amount"`
	OwnerEmail  string  `yaml:"owner_email"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type ProspectsFile struct {
	Prospects []ProspectData `yaml:"prospects"`
}

type SalesFile struct {
	Sales []SaleData `yaml:"sales"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	prospects, err := loadProspects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load prospects: %w", err)
	}

	sales, err := loadSales(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sales: %w", err)
	}

	// Create users top-down so manager links always resolve: managers first,
	// then team leads, then executives.
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, role := range []string{"manager", "team_lead", "sales_executive"} {
		for _, userData := range users {
			if userData.Role != role {
				continue
			}
			user, created, err := createUser(db, userData, userMap)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
			}
			userMap[userData.Email] = user
			if created {
				userCreated++
			}
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create teams and link each lead to their team
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	// Attach executives to their teams now that both sides exist
	if err := assignTeams(db, users, userMap, teamMap); err != nil {
		return err
	}

	prospectCreated := 0
	for _, prospectData := range prospects {
		created, err := createProspect(db, prospectData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create prospect %s: %v", prospectData.CompanyName, err)
			continue
		}
		if created {
			prospectCreated++
		}
	}
	log.Printf("Prospects: %d created, %d total", prospectCreated, len(prospects))

	saleCreated := 0
	for _, saleData := range sales {
		created, err := createSale(db, saleData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create sale %s: %v", saleData.CompanyName, err)
			continue
		}
		if created {
			saleCreated++
		}
	}
	log.Printf("Sales: %d created, %d total", saleCreated, len(sales))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})

	return allUsers, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := walkYAML(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allTeams = append(allTeams, file.Teams...)
		return nil
	})

	return allTeams, err
}

func loadProspects(dataDir string) ([]ProspectData, error) {
	var allProspects []ProspectData

	err := walkYAML(dataDir, "prospects", func(data []byte) error {
		var file ProspectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allProspects = append(allProspects, file.Prospects...)
		return nil
	})

	return allProspects, err
}

func loadSales(dataDir string) ([]SaleData, error) {
	var allSales []SaleData

	err := walkYAML(dataDir, "sales", func(data []byte) error {
		var file SalesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allSales = append(allSales, file.Sales...)
		return nil
	})

	return allSales, err
}

// walkYAML runs fn over every YAML file in dataDir whose path contains kind
func walkYAML(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return fn(data)
		}
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData, userMap map[string]*models.User) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			status := models.UserStatusActive
			if userData.Status != "" {
				status = models.UserStatus(userData.Status)
			}

			user = models.User{
				Name:      userData.Name,
				Email:     userData.Email,
				Password:  string(hash),
				ContactNo: userData.ContactNo,
				Location:  userData.Location,
				Role:      models.Role(userData.Role),
				Status:    status,
			}

			if userData.ManagerEmail != "" {
				manager := userMap[userData.ManagerEmail]
				if manager == nil {
					return nil, false, fmt.Errorf("manager %s not found for user %s", userData.ManagerEmail, userData.Email)
				}
				user.ManagerID = &manager.ID
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	lead := userMap[teamData.TeamLeadEmail]
	if lead == nil {
		return nil, false, fmt.Errorf("team lead %s not found for team %s", teamData.TeamLeadEmail, teamData.Name)
	}

	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:       teamData.Name,
				TeamLeadID: lead.ID,
			}
			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			// Link the lead to their team
			if err := db.Model(&models.User{}).Where("id = ?", lead.ID).
				Update("team_id", team.ID).Error; err != nil {
				log.Printf("Warning: failed to link team lead %s: %v", teamData.TeamLeadEmail, err)
			}
			return &team, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // created = false (existing)
}

// assignTeams sets the team pointer on executives whose YAML names a team.
// Manager and team pointers always move together.
func assignTeams(db *gorm.DB, users []UserData, userMap map[string]*models.User, teamMap map[string]*models.Team) error {
	for _, userData := range users {
		if userData.Role != "sales_executive" || userData.TeamName == "" {
			continue
		}
		user := userMap[userData.Email]
		team := teamMap[userData.TeamName]
		if user == nil || team == nil {
			log.Printf("Warning: team %s not found for user %s", userData.TeamName, userData.Email)
			continue
		}
		if err := db.Model(&models.User{}).Where("id = ?", user.ID).
			Updates(map[string]interface{}{"team_id": team.ID, "manager_id": team.TeamLeadID}).Error; err != nil {
			return fmt.Errorf("failed to assign user %s to team: %w", userData.Email, err)
		}
	}
	return nil
}

func createProspect(db *gorm.DB, prospectData ProspectData, userMap map[string]*models.User) (bool, error) {
	owner := userMap[prospectData.OwnerEmail]
	if owner == nil {
		return false, fmt.Errorf("owner %s not found", prospectData.OwnerEmail)
	}

	var prospect models.Prospect
	err := db.Where("company_name = ? AND sales_executive_id = ?", prospectData.CompanyName, owner.ID).
		First(&prospect).Error
	if err == nil {
		return false, nil // existing
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query prospect: %w", err)
	}

	activity := models.ProspectActivityNew
	if prospectData.Activity != "" {
		activity = prospectData.Activity
	}

	prospect = models.Prospect{
		CompanyName:      prospectData.CompanyName,
		ClientName:       prospectData.ClientName,
		ContactNo:        prospectData.ContactNo,
		Email:            prospectData.Email,
		Activity:         activity,
		SalesExecutiveID: owner.ID,
		TeamLeadID:       teamLeadOf(owner),
		IsUntouched:      activity == models.ProspectActivityNew,
		LastUpdate:       time.Now(),
	}
	if err := db.Create(&prospect).Error; err != nil {
		return false, fmt.Errorf("failed to create prospect: %w", err)
	}
	return true, nil
}

func createSale(db *gorm.DB, saleData SaleData, userMap map[string]*models.User) (bool, error) {
	owner := userMap[saleData.OwnerEmail]
	if owner == nil {
		return false, fmt.Errorf("owner %s not found", saleData.OwnerEmail)
	}

	var sale models.Sale
	err := db.Where("company_name = ? AND sales_executive_id = ?", saleData.CompanyName, owner.ID).
		First(&sale).Error
	if err == nil {
		return false, nil // existing
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query sale: %w", err)
	}

	sale = models.Sale{
		CompanyName:      saleData.CompanyName,
		ClientName:       saleData.ClientName,
		Amount:           saleData.Amount,
		SalesExecutiveID: owner.ID,
		TeamLeadID:       teamLeadOf(owner),
	}
	if err := db.Create(&sale).Error; err != nil {
		return false, fmt.Errorf("failed to create sale: %w", err)
	}
	return true, nil
}

// teamLeadOf mirrors the ownership layer's denormalization: a lead's records
// point at the lead, an executive's at their manager
func teamLeadOf(owner *models.User) *uuid.UUID {
	if owner.Role == models.RoleTeamLead {
		id := owner.ID
		return &id
	}
	return owner.ManagerID
}
