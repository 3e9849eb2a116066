package access

import (
	"sales-crm-backend/internal/database/models"
)

// Per-role mutable field sets for user profile updates. Keys are the JSON
// field names accepted in update requests.
var (
	selfEditableFields = []string{"name", "email", "contact_no", "location"}

	leadEditableFields = []string{"name", "email", "contact_no", "location", "status"}

	managerEditableFields = []string{
		"name", "email", "contact_no", "location", "status",
		"role", "ref_id", "team_id", "manager_id", "bank_details",
	}
)

// AllowedUserFields returns the set of user fields the caller may mutate on
// the target. An empty set means the caller may not update the target at all.
func AllowedUserFields(caller Caller, target *models.User) []string {
	switch caller.Role {
	case models.RoleSalesExecutive:
		if target.ID == caller.ID {
			return selfEditableFields
		}
		return nil
	case models.RoleTeamLead:
		if target.ID == caller.ID {
			return selfEditableFields
		}
		if isDirectReport(caller, target) {
			return leadEditableFields
		}
		return nil
	case models.RoleManager:
		return managerEditableFields
	}
	return nil
}

// FilterFields drops every key of the update payload that is not in the
// allowed set. Out-of-set fields are silently discarded, never rejected.
func FilterFields(updates map[string]interface{}, allowed []string) map[string]interface{} {
	filtered := make(map[string]interface{}, len(updates))
	for _, key := range allowed {
		if value, ok := updates[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}
