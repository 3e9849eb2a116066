package repository

import (
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves the users matching the given ids
func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Model(&models.User{}).Limit(limit).Offset(offset).Order("created_at").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByRole retrieves all users holding the given role
func (r *UserRepository) GetByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetDirectReports retrieves the users whose manager is the given team lead
func (r *UserRepository) GetDirectReports(leadID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("manager_id = ?", leadID).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetDirectReportIDs retrieves only the ids of a team lead's direct reports
func (r *UserRepository) GetDirectReportIDs(leadID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.User{}).Where("manager_id = ?", leadID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateFields applies a partial update to a user
func (r *UserRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// AssignToTeam sets manager and team together for a batch of executives.
// Both pointers move in one statement so a reader never observes a half set
// pair.
func (r *UserRepository) AssignToTeam(ids []uuid.UUID, leadID, teamID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).Where("id IN ?", ids).
		Updates(map[string]interface{}{"manager_id": leadID, "team_id": teamID}).Error
}

// UnassignFromTeam clears manager and team only for users currently on the
// given team
func (r *UserRepository) UnassignFromTeam(ids []uuid.UUID, teamID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).Where("id IN ? AND team_id = ?", ids, teamID).
		Updates(map[string]interface{}{"manager_id": nil, "team_id": nil}).Error
}

// UnassignReportsOf clears manager and team for every direct report of the
// given team lead in a single statement
func (r *UserRepository) UnassignReportsOf(leadID uuid.UUID) error {
	return r.db.Model(&models.User{}).Where("manager_id = ?", leadID).
		Updates(map[string]interface{}{"manager_id": nil, "team_id": nil}).Error
}

// UnlinkManagerFromLeads clears the manager pointer of every team lead
// reporting to the given manager. Teams and executives stay untouched.
func (r *UserRepository) UnlinkManagerFromLeads(managerID uuid.UUID) error {
	return r.db.Model(&models.User{}).
		Where("manager_id = ? AND role = ?", managerID, models.RoleTeamLead).
		Update("manager_id", nil).Error
}

// CountByRole counts users holding the given role
func (r *UserRepository) CountByRole(role models.Role) (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&total).Error
	return total, err
}

// CountReports counts a team lead's direct reports
func (r *UserRepository) CountReports(leadID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Where("manager_id = ?", leadID).Count(&total).Error
	return total, err
}
