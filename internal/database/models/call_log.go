package models

import (
	"time"

	"github.com/google/uuid"
)

// CallLog records a call made by a sales executive, optionally against a
// prospect. Only activity and comment are updateable after creation.
type CallLog struct {
	BaseModel
	Activity         string     `json:"activity" gorm:"size:50;not null" validate:"required,max=50"`
	Comment          string     `json:"comment" gorm:"size:500"`
	CallDate         time.Time  `json:"call_date"`
	SalesExecutiveID uuid.UUID  `json:"sales_executive_id" gorm:"type:uuid;not null;index"`
	ProspectID       *uuid.UUID `json:"prospect_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	SalesExecutive *User     `json:"sales_executive,omitempty" gorm:"foreignKey:SalesExecutiveID"`
	Prospect       *Prospect `json:"prospect,omitempty" gorm:"foreignKey:ProspectID"`
}

// TableName returns the table name for CallLog
func (CallLog) TableName() string {
	return "call_logs"
}
