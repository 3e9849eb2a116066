package repository

import (
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayoutRepository handles database operations for payouts
type PayoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository
func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// Create creates a new payout
func (r *PayoutRepository) Create(payout *models.Payout) error {
	return r.db.Create(payout).Error
}

// GetByID retrieves a payout by ID
func (r *PayoutRepository) GetByID(id uuid.UUID) (*models.Payout, error) {
	var payout models.Payout
	err := r.db.First(&payout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

// GetAll retrieves payouts with pagination, optionally filtered to a month
func (r *PayoutRepository) GetAll(month string, limit, offset int) ([]models.Payout, int64, error) {
	var payouts []models.Payout
	var total int64

	query := r.db.Model(&models.Payout{})
	if month != "" {
		query = query.Where("month = ?", month)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("month DESC").Find(&payouts).Error
	if err != nil {
		return nil, 0, err
	}

	return payouts, total, nil
}

// Update updates a payout
func (r *PayoutRepository) Update(payout *models.Payout) error {
	return r.db.Save(payout).Error
}

// Delete deletes a payout
func (r *PayoutRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Payout{}, "id = ?", id).Error
}
