// internal/model/permission.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Permission is an immutable catalog entry. Names are lowercase dotted
// "module.action"; the underscore spelling "module_action" also occurs in the
// default catalog and both forms resolve to the same capability. Retired
// permissions are soft-disabled via IsActive, never removed.
type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NormalizePermission folds both catalog spellings onto "module.action". Only
// the first separator splits; actions may themselves contain underscores.
func NormalizePermission(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.Contains(name, ".") {
		return name
	}
	if i := strings.Index(name, "_"); i > 0 {
		return name[:i] + "." + name[i+1:]
	}
	return name
}

// SplitPermission returns the module and action parts of a permission name.
func SplitPermission(name string) (module, action string) {
	name = NormalizePermission(name)
	if i := strings.Index(name, "."); i > 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

// PermissionName builds "module.action" from parts.
func PermissionName(module, action string) string {
	return strings.ToLower(module) + "." + strings.ToLower(action)
}

// WildcardFor returns the wildcard grant covering every action in a module.
func WildcardFor(module string) string {
	return strings.ToLower(module) + ".*"
}

// Modules of the platform whose operations pass through the authorization
// engine.
const (
	ModuleVouchers   = "vouchers"
	ModuleInvoices   = "invoices"
	ModuleCampaigns  = "campaigns"
	ModuleProducts   = "products"
	ModuleReports    = "reports"
	ModuleDashboards = "dashboards"
	ModuleUsers      = "users"
	ModuleRoles      = "roles"
	ModuleCompanies  = "companies"
	ModuleSettings   = "settings"
	ModuleWorkflows  = "workflows"
)

// Organization-level permissions that a company admin does NOT gain through
// the company-admin shortcut. These always require an explicit grant.
const (
	PermSettingsManageApprovals = "settings.manage_approvals"
	PermRolesManage             = "roles.manage"
	PermUsersManage             = "users.manage"
	PermCompaniesManage         = "companies.manage"
)

// OrganizationOnlyPermissions is the fixed set excluded from the
// company-admin bypass.
var OrganizationOnlyPermissions = map[string]struct{}{
	PermSettingsManageApprovals: {},
	PermRolesManage:             {},
	PermUsersManage:             {},
	PermCompaniesManage:         {},
}

// DefaultCatalog is the closed default permission catalog seeded into new
// installations. The mixed separator spellings are deliberate: both occur in
// production data and the engine resolves either.
var DefaultCatalog = []Permission{
	{Name: "vouchers.create", Description: "Create vouchers"},
	{Name: "vouchers.view", Description: "View vouchers"},
	{Name: "vouchers.edit", Description: "Edit vouchers"},
	{Name: "vouchers.delete", Description: "Delete vouchers"},
	{Name: "vouchers.submit", Description: "Submit vouchers for approval"},
	{Name: "vouchers.approve", Description: "Approve vouchers"},
	{Name: "invoices.create", Description: "Create invoices"},
	{Name: "invoices.view", Description: "View invoices"},
	{Name: "invoices.edit", Description: "Edit invoices"},
	{Name: "invoices_delete", Description: "Delete invoices"},
	{Name: "invoices.submit", Description: "Submit invoices for approval"},
	{Name: "invoices.approve", Description: "Approve invoices"},
	{Name: "campaigns.create", Description: "Create campaigns"},
	{Name: "campaigns.view", Description: "View campaigns"},
	{Name: "campaigns_edit", Description: "Edit campaigns"},
	{Name: "campaigns.delete", Description: "Delete campaigns"},
	{Name: "products.create", Description: "Create products"},
	{Name: "products.view", Description: "View products"},
	{Name: "products.edit", Description: "Edit products"},
	{Name: "products.delete", Description: "Delete products"},
	{Name: "reports.view", Description: "View reports"},
	{Name: "reports.export", Description: "Export reports"},
	{Name: "dashboards.view", Description: "View dashboards"},
	{Name: "users.view", Description: "View users"},
	{Name: "users.manage", Description: "Create, edit and deactivate users"},
	{Name: "roles.view", Description: "View roles"},
	{Name: "roles.manage", Description: "Create and edit roles"},
	{Name: "companies.view", Description: "View companies"},
	{Name: "companies.manage", Description: "Create and edit companies"},
	{Name: "settings.view", Description: "View organization settings"},
	{Name: "settings.manage_approvals", Description: "Manage approval settings"},
	{Name: "workflows.view", Description: "View workflows"},
	{Name: "workflows.manage", Description: "Manage workflow templates"},
	{Name: "workflows.decide", Description: "Act on workflow steps"},
}

// RoleTemplate is a seedable role definition: a named permission bundle with a
// hierarchy level.
type RoleTemplate struct {
	Name        string
	Level       int
	Permissions []string
}

// DefaultRoleTemplates are seeded per organization on first use.
var DefaultRoleTemplates = []RoleTemplate{
	{
		Name:  "management",
		Level: 1,
		Permissions: []string{
			"vouchers.*", "invoices.*", "campaigns.*", "products.*",
			"reports.*", "dashboards.view", "users.view", "roles.view",
			"companies.view", "settings.view", "workflows.*",
		},
	},
	{
		Name:  "manager",
		Level: 2,
		Permissions: []string{
			"vouchers.*", "invoices.*", "campaigns.view", "products.view",
			"reports.view", "dashboards.view", "workflows.decide", "workflows.view",
		},
	},
	{
		Name:  "accountant",
		Level: 3,
		Permissions: []string{
			"vouchers.create", "vouchers.view", "vouchers.edit", "vouchers.submit",
			"invoices.create", "invoices.view", "invoices.edit", "invoices.submit",
			"reports.view", "dashboards.view",
		},
	},
	{
		Name:  "viewer",
		Level: 4,
		Permissions: []string{
			"vouchers.view", "invoices.view", "campaigns.view", "products.view",
			"reports.view", "dashboards.view",
		},
	},
}
