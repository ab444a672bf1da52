// internal/model/role.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is an organization-scoped named permission bundle. Level drives
// can-manage comparisons: a role can manage another only when its level is
// strictly lower in number (level 1 outranks level 2).
type Role struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_org_name" json:"organization_id"`
	Name           string    `gorm:"type:text;not null;uniqueIndex:idx_role_org_name" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Level          int       `gorm:"not null;default:99" json:"level"`
	Version        int       `gorm:"not null;default:1" json:"version"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Permissions []RolePermission `gorm:"foreignKey:RoleID" json:"permissions,omitempty"`
}

// CanManage reports whether r outranks target. Strictly greater rank only:
// no self- or lateral-management.
func (r *Role) CanManage(target *Role) bool {
	return r.Level < target.Level
}

// RolePermission links a role to one catalog permission. Resolution is always
// a set union over a user's active assignments, never an ordered override.
type RolePermission struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoleID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_permission" json:"role_id"`
	PermissionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_permission" json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`

	Permission Permission `gorm:"foreignKey:PermissionID" json:"-"`
}

// UserRole assigns a role to a user.
type UserRole struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role" json:"user_id"`
	RoleID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role" json:"role_id"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`

	Role Role `gorm:"foreignKey:RoleID" json:"-"`
}
