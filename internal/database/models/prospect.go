package models

import (
	"time"

	"github.com/google/uuid"
)

// Prospect is a potential client owned by a sales executive.
//
// TeamLeadID is a denormalized copy of the owner's ManagerID, recomputed on
// every ownership-affecting write so scoped queries never need a join.
// IsUntouched flips to false on the first call log or activity update and
// never flips back.
type Prospect struct {
	BaseModel
	CompanyName      string     `json:"company_name" gorm:"not null;size:200" validate:"required,max=200"`
	ClientName       string     `json:"client_name" gorm:"not null;size:100" validate:"required,max=100"`
	ContactNo        string     `json:"contact_no" gorm:"size:20"`
	Email            string     `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Activity         string     `json:"activity" gorm:"size:50;not null;default:'New'"`
	SalesExecutiveID uuid.UUID  `json:"sales_executive_id" gorm:"type:uuid;not null;index"`
	TeamLeadID       *uuid.UUID `json:"team_lead_id,omitempty" gorm:"type:uuid;index"`
	IsUntouched      bool       `json:"is_untouched" gorm:"default:true"`
	LastUpdate       time.Time  `json:"last_update"`

	// Relationships
	SalesExecutive *User `json:"sales_executive,omitempty" gorm:"foreignKey:SalesExecutiveID"`
}

// TableName returns the table name for Prospect
func (Prospect) TableName() string {
	return "prospects"
}
