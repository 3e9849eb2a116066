package access

import (
	"testing"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllowedUserFields(t *testing.T) {
	execID := uuid.New()
	leadID := uuid.New()

	execCaller := Caller{ID: execID, Role: models.RoleSalesExecutive}
	leadCaller := Caller{ID: leadID, Role: models.RoleTeamLead}
	managerCaller := Caller{ID: uuid.New(), Role: models.RoleManager}

	self := executive(execID, &leadID)
	report := executive(uuid.New(), &leadID)
	stranger := executive(uuid.New(), nil)

	// Executives edit only their own contact fields
	assert.ElementsMatch(t, []string{"name", "email", "contact_no", "location"}, AllowedUserFields(execCaller, self))
	assert.Nil(t, AllowedUserFields(execCaller, report))

	// A lead gains status on direct reports, nothing on strangers
	assert.Contains(t, AllowedUserFields(leadCaller, report), "status")
	assert.NotContains(t, AllowedUserFields(leadCaller, report), "role")
	assert.Nil(t, AllowedUserFields(leadCaller, stranger))

	// Managers edit the structural fields too
	managerFields := AllowedUserFields(managerCaller, stranger)
	assert.Contains(t, managerFields, "role")
	assert.Contains(t, managerFields, "manager_id")
	assert.Contains(t, managerFields, "bank_details")
}

func TestFilterFieldsSilentlyDiscards(t *testing.T) {
	updates := map[string]interface{}{
		"name":   "New Name",
		"role":   "manager",
		"status": "inactive",
	}

	filtered := FilterFields(updates, selfEditableFields)

	assert.Equal(t, map[string]interface{}{"name": "New Name"}, filtered)
}

func TestFilterFieldsEmptyAllowedSet(t *testing.T) {
	filtered := FilterFields(map[string]interface{}{"name": "x"}, nil)
	assert.Empty(t, filtered)
}
