// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant root. Every scoped entity carries exactly one
// organization id; nothing references across organizations.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Companies []Company `gorm:"foreignKey:OrganizationID" json:"companies,omitempty"`
}

// Company is a sub-unit of an organization. Its organization id never changes
// after creation.
type Company struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_company_org_name" json:"organization_id"`
	Name           string    `gorm:"type:text;not null;uniqueIndex:idx_company_org_name" json:"name"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// UserCompany joins a user to a company they may act within. One row per
// (user, company) pair; the admin flag marks company administrators.
type UserCompany struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_company" json:"user_id"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_company" json:"company_id"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsCompanyAdmin bool      `gorm:"not null;default:false" json:"is_company_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}
