package repository

import (
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallLogRepository handles database operations for call logs
type CallLogRepository struct {
	db *gorm.DB
}

// NewCallLogRepository creates a new call log repository
func NewCallLogRepository(db *gorm.DB) *CallLogRepository {
	return &CallLogRepository{db: db}
}

// Create creates a new call log
func (r *CallLogRepository) Create(log *models.CallLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves a call log by ID
func (r *CallLogRepository) GetByID(id uuid.UUID) (*models.CallLog, error) {
	var log models.CallLog
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// scoped applies the owner and time filters to a call log query
func (r *CallLogRepository) scoped(filter RecordFilter) *gorm.DB {
	query := r.db.Model(&models.CallLog{})
	if filter.OwnerIDs != nil {
		query = query.Where("sales_executive_id IN ?", filter.OwnerIDs)
	}
	if filter.Range != nil {
		query = query.Where("call_date BETWEEN ? AND ?", filter.Range.Start, filter.Range.End)
	}
	return query
}

// List retrieves call logs within the owner scope and time window
func (r *CallLogRepository) List(filter RecordFilter, limit, offset int) ([]models.CallLog, int64, error) {
	var logs []models.CallLog
	var total int64

	query := r.scoped(filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("call_date DESC").Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// UpdateFields applies a partial update to a call log. Only activity and
// comment are ever passed here; call logs are otherwise immutable.
func (r *CallLogRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.CallLog{}).Where("id = ?", id).Updates(updates).Error
}

// Count counts call logs within the owner scope and time window
func (r *CallLogRepository) Count(filter RecordFilter) (int64, error) {
	var total int64
	err := r.scoped(filter).Count(&total).Error
	return total, err
}

// Recent retrieves the most recent call logs in scope, newest first
func (r *CallLogRepository) Recent(ownerIDs []uuid.UUID, limit int) ([]models.CallLog, error) {
	var logs []models.CallLog
	query := r.db.Model(&models.CallLog{})
	if ownerIDs != nil {
		query = query.Where("sales_executive_id IN ?", ownerIDs)
	}
	err := query.Order("call_date DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
