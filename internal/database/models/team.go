package models

import (
	"github.com/google/uuid"
)

// Team groups sales executives under exactly one team lead.
// The unique index on TeamLeadID enforces one team per lead.
type Team struct {
	BaseModel
	Name       string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	TeamLeadID uuid.UUID `json:"team_lead_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`

	// Relationships
	TeamLead *User  `json:"team_lead,omitempty" gorm:"foreignKey:TeamLeadID"`
	Members  []User `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
