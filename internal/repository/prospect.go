package repository

import (
	"time"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProspectRepository handles database operations for prospects
type ProspectRepository struct {
	db *gorm.DB
}

// NewProspectRepository creates a new prospect repository
func NewProspectRepository(db *gorm.DB) *ProspectRepository {
	return &ProspectRepository{db: db}
}

// Create creates a new prospect
func (r *ProspectRepository) Create(prospect *models.Prospect) error {
	return r.db.Create(prospect).Error
}

// GetByID retrieves a prospect by ID
func (r *ProspectRepository) GetByID(id uuid.UUID) (*models.Prospect, error) {
	var prospect models.Prospect
	err := r.db.First(&prospect, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &prospect, nil
}

// scoped applies the owner and time filters to a prospect query
func (r *ProspectRepository) scoped(filter RecordFilter) *gorm.DB {
	query := r.db.Model(&models.Prospect{})
	if filter.OwnerIDs != nil {
		query = query.Where("sales_executive_id IN ?", filter.OwnerIDs)
	}
	if filter.Range != nil {
		query = query.Where("created_at BETWEEN ? AND ?", filter.Range.Start, filter.Range.End)
	}
	return query
}

// List retrieves prospects within the owner scope and time window
func (r *ProspectRepository) List(filter RecordFilter, untouchedOnly bool, limit, offset int) ([]models.Prospect, int64, error) {
	var prospects []models.Prospect
	var total int64

	query := r.scoped(filter)
	if untouchedOnly {
		query = query.Where("is_untouched = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("last_update DESC").Find(&prospects).Error
	if err != nil {
		return nil, 0, err
	}

	return prospects, total, nil
}

// Update updates a prospect
func (r *ProspectRepository) Update(prospect *models.Prospect) error {
	return r.db.Save(prospect).Error
}

// UpdateFields applies a partial update to a prospect
func (r *ProspectRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Prospect{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a prospect
func (r *ProspectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Prospect{}, "id = ?", id).Error
}

// TransferOwnership moves the given prospects from one owner to another in a
// single filtered update. Matching on the current owner makes the update act
// as a lightweight compare-and-swap: rows already reassigned by a concurrent
// transfer are skipped, and the returned count reflects only actual moves.
func (r *ProspectRepository) TransferOwnership(ids []uuid.UUID, fromID, toID uuid.UUID, newTeamLeadID *uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Prospect{}).
		Where("id IN ? AND sales_executive_id = ?", ids, fromID).
		Updates(map[string]interface{}{
			"sales_executive_id": toID,
			"team_lead_id":       newTeamLeadID,
			"last_update":        time.Now(),
		})
	return result.RowsAffected, result.Error
}

// MarkConverted tags a prospect as converted and touched in one statement
func (r *ProspectRepository) MarkConverted(id uuid.UUID) error {
	return r.db.Model(&models.Prospect{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"activity":     models.ProspectActivityConverted,
			"is_untouched": false,
			"last_update":  time.Now(),
		}).Error
}

// Touch records first interaction: clears the untouched flag and bumps the
// update timestamp. The flag never transitions back to true.
func (r *ProspectRepository) Touch(id uuid.UUID) error {
	return r.db.Model(&models.Prospect{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_untouched": false,
			"last_update":  time.Now(),
		}).Error
}

// Count counts prospects within the owner scope and time window
func (r *ProspectRepository) Count(filter RecordFilter, untouchedOnly bool) (int64, error) {
	var total int64
	query := r.scoped(filter)
	if untouchedOnly {
		query = query.Where("is_untouched = ?", true)
	}
	err := query.Count(&total).Error
	return total, err
}

// CountByActivity counts prospects in scope carrying the given activity tag
func (r *ProspectRepository) CountByActivity(ownerIDs []uuid.UUID, activity string) (int64, error) {
	var total int64
	query := r.db.Model(&models.Prospect{}).Where("activity = ?", activity)
	if ownerIDs != nil {
		query = query.Where("sales_executive_id IN ?", ownerIDs)
	}
	err := query.Count(&total).Error
	return total, err
}

// CountOpen counts prospects in scope still in play, i.e. neither converted
// nor deleted
func (r *ProspectRepository) CountOpen(ownerIDs []uuid.UUID) (int64, error) {
	var total int64
	query := r.db.Model(&models.Prospect{}).
		Where("activity NOT IN ?", []string{models.ProspectActivityConverted, models.ProspectActivityDeleted})
	if ownerIDs != nil {
		query = query.Where("sales_executive_id IN ?", ownerIDs)
	}
	err := query.Count(&total).Error
	return total, err
}

// RecentUpdated retrieves the most recently updated prospects in scope,
// newest first
func (r *ProspectRepository) RecentUpdated(ownerIDs []uuid.UUID, limit int) ([]models.Prospect, error) {
	var prospects []models.Prospect
	query := r.db.Model(&models.Prospect{})
	if ownerIDs != nil {
		query = query.Where("sales_executive_id IN ?", ownerIDs)
	}
	err := query.Order("last_update DESC").Limit(limit).Find(&prospects).Error
	if err != nil {
		return nil, err
	}
	return prospects, nil
}
