package models

import (
	"github.com/google/uuid"
)

// Payout is a salary record for an employee. TeamLeadID and ManagerID are
// denormalized from the employee's reporting chain at write time.
type Payout struct {
	BaseModel
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamLeadID  *uuid.UUID `json:"team_lead_id,omitempty" gorm:"type:uuid;index"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	Month       string     `json:"month" gorm:"size:7;not null" validate:"required"`
	Amount      float64    `json:"amount" gorm:"not null" validate:"required,gt=0"`
	Duration    string     `json:"duration" gorm:"size:50"`
	Description string     `json:"description" gorm:"size:200"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Payout
func (Payout) TableName() string {
	return "payouts"
}
