package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDList stores a list of entity ids as a jsonb column
type UUIDList []uuid.UUID

// Value implements driver.Valuer for UUIDList
func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for UUIDList
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for UUIDList: %T", value)
	}
	return json.Unmarshal(data, l)
}

// TransferLog is an append-only audit record of ownership transfers and
// finance handovers. DataIDs holds the ids the caller requested; DataCount
// holds how many records the transfer actually moved.
type TransferLog struct {
	BaseModel
	TransferType    TransferType `json:"transfer_type" gorm:"type:varchar(50);not null;index"`
	TransferredByID uuid.UUID    `json:"transferred_by_id" gorm:"type:uuid;not null;index"`
	TransferredFrom uuid.UUID    `json:"transferred_from" gorm:"type:uuid;not null"`
	TransferredTo   *uuid.UUID   `json:"transferred_to,omitempty" gorm:"type:uuid"`
	DataIDs         UUIDList     `json:"data_ids" gorm:"type:jsonb"`
	DataCount       int          `json:"data_count"`
	Amount          float64      `json:"amount"`
	Description     string       `json:"description" gorm:"size:500"`
	TransferDate    time.Time    `json:"transfer_date"`

	// Relationships
	TransferredBy *User `json:"transferred_by,omitempty" gorm:"foreignKey:TransferredByID"`
}

// TableName returns the table name for TransferLog
func (TransferLog) TableName() string {
	return "transfer_logs"
}
