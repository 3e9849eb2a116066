package models

// Role represents the three fixed roles of the sales hierarchy.
// The set is closed: every switch over Role must handle all three values.
type Role string

const (
	RoleSalesExecutive Role = "sales_executive"
	RoleTeamLead       Role = "team_lead"
	RoleManager        Role = "manager"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSalesExecutive, RoleTeamLead, RoleManager:
		return true
	}
	return false
}

// UserStatus represents the employment status of a user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusOnLeave  UserStatus = "on_leave"
)

// IsValid checks if the UserStatus is valid
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusOnLeave:
		return true
	}
	return false
}

// TransferType distinguishes ownership transfers from finance handovers
type TransferType string

const (
	TransferTypeInternal TransferType = "internal_data_transfer"
	TransferTypeFinance  TransferType = "transfer_to_finance"
)

// IsValid checks if the TransferType is valid
func (t TransferType) IsValid() bool {
	switch t {
	case TransferTypeInternal, TransferTypeFinance:
		return true
	}
	return false
}

// Well-known prospect activity tags. Activity is a free-form lifecycle tag;
// only these three carry special semantics.
const (
	ProspectActivityNew       = "New"
	ProspectActivityConverted = "Converted"
	ProspectActivityDeleted   = "Deleted"
)
