package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// User represents an employee of the sales organization.
//
// ManagerID semantics depend on Role: for a sales executive it points at
// their team lead, for a team lead at their manager, and a manager has none.
// ManagerID and TeamID are always written together by the ownership layer —
// an executive is never left with one set and the other null.
type User struct {
	BaseModel
	Name        string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email       string          `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password    string          `json:"-" gorm:"not null;size:100"`
	ContactNo   string          `json:"contact_no" gorm:"size:20"`
	Location    string          `json:"location" gorm:"size:100"`
	Role        Role            `json:"role" gorm:"type:varchar(50);not null" validate:"required"`
	RefID       string          `json:"ref_id,omitempty" gorm:"size:50"`
	Status      UserStatus      `json:"status" gorm:"type:varchar(50);not null;default:'active'"`
	ManagerID   *uuid.UUID      `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	TeamID      *uuid.UUID      `json:"team_id,omitempty" gorm:"type:uuid;index"`
	BankDetails json.RawMessage `json:"bank_details,omitempty" gorm:"type:jsonb"`

	// Relationships
	Manager *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
	Team    *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
