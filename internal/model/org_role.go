// internal/model/org_role.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ModuleAccessLevel grades what an organization role may do inside a module.
type ModuleAccessLevel string

const (
	AccessFull     ModuleAccessLevel = "full"
	AccessLimited  ModuleAccessLevel = "limited"
	AccessViewOnly ModuleAccessLevel = "view_only"
)

// OrganizationRole is the coarse role tier: hierarchy level 1 (management)
// through 3 (executive), with module-level grants.
type OrganizationRole struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_orgrole_org_name" json:"organization_id"`
	Name           string    `gorm:"type:text;not null;uniqueIndex:idx_orgrole_org_name" json:"name"`
	Level          int       `gorm:"not null" json:"level"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	ModuleAssignments []RoleModuleAssignment `gorm:"foreignKey:OrganizationRoleID" json:"module_assignments,omitempty"`
}

// RoleModuleAssignment grants an organization role access to one module at a
// given level.
type RoleModuleAssignment struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationRoleID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_role_module" json:"organization_role_id"`
	Module             string            `gorm:"type:text;not null;uniqueIndex:idx_role_module" json:"module"`
	AccessLevel        ModuleAccessLevel `gorm:"type:text;not null;default:'view_only'" json:"access_level"`
	CreatedAt          time.Time         `json:"created_at"`
}

// UserOrganizationRole binds a user to an organization role. The manager
// assignment map resolves an executive's effective approver per module.
type UserOrganizationRole struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_user_orgrole" json:"user_id"`
	OrganizationRoleID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_user_orgrole" json:"organization_role_id"`
	ManagerAssignments ManagerAssignments `gorm:"type:jsonb" json:"manager_assignments,omitempty"`
	IsActive           bool               `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	OrganizationRole OrganizationRole `gorm:"foreignKey:OrganizationRoleID" json:"-"`
}

// ManagerAssignments maps a module name to the manager user id responsible for
// approvals in that module. Implements sql.Scanner and driver.Valuer for
// jsonb storage.
type ManagerAssignments map[string]uuid.UUID

// Scan implements the sql.Scanner interface
func (m *ManagerAssignments) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, m)
	}

	return json.Unmarshal(raw, m)
}

// Value implements the driver.Valuer interface
func (m ManagerAssignments) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
