package models

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a closed deal. Immutable after creation except for the finance
// transfer flag, which is set once by the transfer engine.
type Sale struct {
	BaseModel
	CompanyName              string     `json:"company_name" gorm:"not null;size:200" validate:"required,max=200"`
	ClientName               string     `json:"client_name" gorm:"not null;size:100" validate:"required,max=100"`
	Amount                   float64    `json:"amount" gorm:"not null" validate:"required,gt=0"`
	SalesExecutiveID         uuid.UUID  `json:"sales_executive_id" gorm:"type:uuid;not null;index"`
	TeamLeadID               *uuid.UUID `json:"team_lead_id,omitempty" gorm:"type:uuid;index"`
	ProspectID               *uuid.UUID `json:"prospect_id,omitempty" gorm:"type:uuid;index"`
	IsTransferredToFinance   bool       `json:"is_transferred_to_finance" gorm:"default:false"`
	TransferredToFinanceDate *time.Time `json:"transferred_to_finance_date,omitempty"`

	// Relationships
	SalesExecutive *User     `json:"sales_executive,omitempty" gorm:"foreignKey:SalesExecutiveID"`
	Prospect       *Prospect `json:"prospect,omitempty" gorm:"foreignKey:ProspectID"`
}

// TableName returns the table name for Sale
func (Sale) TableName() string {
	return "sales"
}
