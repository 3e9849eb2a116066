package repository

import (
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferLogRepository handles database operations for transfer logs.
// Transfer logs are append-only: there is deliberately no update or delete.
type TransferLogRepository struct {
	db *gorm.DB
}

// NewTransferLogRepository creates a new transfer log repository
func NewTransferLogRepository(db *gorm.DB) *TransferLogRepository {
	return &TransferLogRepository{db: db}
}

// Create appends a transfer log entry
func (r *TransferLogRepository) Create(log *models.TransferLog) error {
	return r.db.Create(log).Error
}

// ListByType retrieves transfer logs of one type, newest first, optionally
// restricted to one initiating user
func (r *TransferLogRepository) ListByType(transferType models.TransferType, transferredBy *uuid.UUID, limit, offset int) ([]models.TransferLog, int64, error) {
	var logs []models.TransferLog
	var total int64

	query := r.db.Model(&models.TransferLog{}).Where("transfer_type = ?", transferType)
	if transferredBy != nil {
		query = query.Where("transferred_by_id = ?", *transferredBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("transfer_date DESC").Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
