package repository

import (
	"time"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository handles database operations for sales
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create creates a new sale
func (r *SaleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

// GetByID retrieves a sale by ID
func (r *SaleRepository) GetByID(id uuid.UUID) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// scoped applies the owner and time filters to a sale query
func (r *SaleRepository) scoped(filter RecordFilter) *gorm.DB {
	query := r.db.Model(&models.Sale{})
	if filter.OwnerIDs != nil {
		query = query.Where("sales_executive_id IN ?", filter.OwnerIDs)
	}
	if filter.Range != nil {
		query = query.Where("created_at BETWEEN ? AND ?", filter.Range.Start, filter.Range.End)
	}
	return query
}

// List retrieves sales within the scope, optionally filtered by team lead
// and client name
func (r *SaleRepository) List(filter SaleFilter, limit, offset int) ([]models.Sale, int64, error) {
	var sales []models.Sale
	var total int64

	query := r.scoped(filter.RecordFilter)
	if filter.TeamLeadID != nil {
		query = query.Where("team_lead_id = ?", *filter.TeamLeadID)
	}
	if filter.ClientName != "" {
		query = query.Where("client_name ILIKE ?", "%"+filter.ClientName+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

// Delete deletes a sale
func (r *SaleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Sale{}, "id = ?", id).Error
}

// TransferOwnership moves the given sales from one owner to another. The
// current-owner match makes the filtered update a lightweight
// compare-and-swap under concurrent transfers.
func (r *SaleRepository) TransferOwnership(ids []uuid.UUID, fromID, toID uuid.UUID, newTeamLeadID *uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Sale{}).
		Where("id IN ? AND sales_executive_id = ?", ids, fromID).
		Updates(map[string]interface{}{
			"sales_executive_id": toID,
			"team_lead_id":       newTeamLeadID,
		})
	return result.RowsAffected, result.Error
}

// GetPendingFinance retrieves, among the given ids, the sales not yet
// handed over to finance
func (r *SaleRepository) GetPendingFinance(ids []uuid.UUID) ([]models.Sale, error) {
	var sales []models.Sale
	if len(ids) == 0 {
		return sales, nil
	}
	err := r.db.Where("id IN ? AND is_transferred_to_finance = ?", ids, false).Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// MarkTransferredToFinance flags the given sales as handed over. Already
// flagged sales are skipped by the filter.
func (r *SaleRepository) MarkTransferredToFinance(ids []uuid.UUID, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Sale{}).
		Where("id IN ? AND is_transferred_to_finance = ?", ids, false).
		Updates(map[string]interface{}{
			"is_transferred_to_finance":   true,
			"transferred_to_finance_date": at,
		})
	return result.RowsAffected, result.Error
}

// Count counts sales within the scope and time window
func (r *SaleRepository) Count(filter RecordFilter) (int64, error) {
	var total int64
	err := r.scoped(filter).Count(&total).Error
	return total, err
}

// SumAmount totals sale amounts within the scope and time window
func (r *SaleRepository) SumAmount(filter RecordFilter) (float64, error) {
	var total float64
	err := r.scoped(filter).Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
