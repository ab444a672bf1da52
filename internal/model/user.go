// internal/model/user.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoleTier is the closed set of coarse role tags a user carries. Finer-grained
// capability comes from assigned roles; the tier drives the organization-role
// hierarchy and the approval chain.
type RoleTier string

const (
	TierOrgAdmin   RoleTier = "org_admin"
	TierManagement RoleTier = "management"
	TierManager    RoleTier = "manager"
	TierExecutive  RoleTier = "executive"
)

// TierLevel returns the hierarchy level for a tier: 1 is highest below the
// organization admin. Unknown tiers rank below everything.
func TierLevel(t RoleTier) int {
	switch t {
	case TierManagement:
		return 1
	case TierManager:
		return 2
	case TierExecutive:
		return 3
	default:
		return 99
	}
}

// Valid reports whether t is one of the closed tier values.
func (t RoleTier) Valid() bool {
	switch t {
	case TierOrgAdmin, TierManagement, TierManager, TierExecutive:
		return true
	}
	return false
}

// User belongs to at most one organization. Users are soft-disabled via
// IsActive and never hard-deleted while referenced by historical approvals.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	Email          string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName      string     `gorm:"type:text;not null" json:"first_name"`
	LastName       string     `gorm:"type:text" json:"last_name"`
	PasswordHash   string     `gorm:"type:text;not null" json:"-"`
	Tier           RoleTier   `gorm:"type:text;not null;default:'executive'" json:"tier"`
	IsSuperAdmin   bool       `gorm:"not null;default:false" json:"is_super_admin"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	ManagerID      *uuid.UUID `gorm:"type:uuid" json:"manager_id,omitempty"`

	// SubPermissions optionally narrows a user's access inside a module,
	// keyed by module name.
	SubPermissions SubPermissionMap `gorm:"type:jsonb" json:"sub_permissions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Manager *User `gorm:"foreignKey:ManagerID" json:"-"`
}

// SubPermissionMap maps a module name to the sub-permissions granted within
// it. Implements sql.Scanner and driver.Valuer for jsonb storage.
type SubPermissionMap map[string][]string

// Scan implements the sql.Scanner interface
func (m *SubPermissionMap) Scan(value interface{}) error {
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
func (m SubPermissionMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
