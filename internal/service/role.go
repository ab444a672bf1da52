// internal/service/role.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/tenant"
)

// RoleService manages organization-scoped roles and their permission sets.
// Every mutation passes the authorization engine first; editing an existing
// role additionally requires outranking it.
type RoleService struct {
	roles    repository.RoleRepositoryIface
	perms    repository.PermissionRepositoryIface
	orgRoles repository.OrgRoleRepositoryIface
	authz    *AuthorizationService
	validate *validator.Validate
}

func NewRoleService(
	roles repository.RoleRepositoryIface,
	perms repository.PermissionRepositoryIface,
	orgRoles repository.OrgRoleRepositoryIface,
	authz *AuthorizationService,
) *RoleService {
	return &RoleService{
		roles:    roles,
		perms:    perms,
		orgRoles: orgRoles,
		authz:    authz,
		validate: validator.New(),
	}
}

type CreateRoleInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Level       int      `json:"level" validate:"required,gte=1"`
	Permissions []string `json:"permissions"`
}

func (s *RoleService) Create(ctx context.Context, input CreateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermRolesManage); err != nil {
		return nil, err
	}

	role := &model.Role{
		OrganizationID: orgID,
		Name:           input.Name,
		Description:    input.Description,
		Level:          input.Level,
		IsActive:       true,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	if len(input.Permissions) > 0 {
		if err := s.setPermissions(ctx, role.ID, input.Permissions); err != nil {
			return nil, err
		}
	}
	return role, nil
}

type UpdateRoleInput struct {
	RoleID      uuid.UUID `json:"role_id" validate:"required"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
}

// Update edits a role. The actor's most senior role must strictly outrank the
// target: a level-2 manager cannot touch a level-1 management role.
func (s *RoleService) Update(ctx context.Context, input UpdateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermRolesManage); err != nil {
		return nil, err
	}

	canManage, err := s.authz.CanManageRole(ctx, actorID, input.RoleID)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, domain.ErrCannotManageRole
	}

	role, err := s.roles.FindByID(ctx, orgID, input.RoleID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = *input.Description
	}
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	if input.Permissions != nil {
		if err := s.setPermissions(ctx, role.ID, input.Permissions); err != nil {
			return nil, err
		}
	}
	return s.roles.FindByID(ctx, orgID, role.ID)
}

type AssignRoleInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	RoleID uuid.UUID `json:"role_id" validate:"required"`
}

func (s *RoleService) Assign(ctx context.Context, input AssignRoleInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermRolesManage); err != nil {
		return err
	}

	canManage, err := s.authz.CanManageRole(ctx, actorID, input.RoleID)
	if err != nil {
		return err
	}
	if !canManage {
		return domain.ErrCannotManageRole
	}

	return s.roles.AssignToUser(ctx, &model.UserRole{
		OrganizationID: orgID,
		UserID:         input.UserID,
		RoleID:         input.RoleID,
		IsActive:       true,
	})
}

func (s *RoleService) Remove(ctx context.Context, userID, roleID uuid.UUID) error {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermRolesManage); err != nil {
		return err
	}
	canManage, err := s.authz.CanManageRole(ctx, actorID, roleID)
	if err != nil {
		return err
	}
	if !canManage {
		return domain.ErrCannotManageRole
	}
	return s.roles.RemoveFromUser(ctx, orgID, userID, roleID)
}

func (s *RoleService) List(ctx context.Context) ([]*model.Role, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.roles.FindAllByOrganization(ctx, orgID)
}

// SeedTemplates creates the default role bundles for the organization,
// skipping names that already exist.
func (s *RoleService) SeedTemplates(ctx context.Context) error {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	for _, tpl := range model.DefaultRoleTemplates {
		role := &model.Role{
			OrganizationID: orgID,
			Name:           tpl.Name,
			Level:          tpl.Level,
			IsActive:       true,
		}
		if err := s.roles.Create(ctx, role); err != nil {
			if err == domain.ErrDuplicateName {
				continue
			}
			return err
		}
		if err := s.setPermissions(ctx, role.ID, tpl.Permissions); err != nil {
			return err
		}
	}
	return nil
}

type CreateOrgRoleInput struct {
	Name              string `json:"name" validate:"required"`
	Level             int    `json:"level" validate:"required,gte=1,lte=3"`
	ModuleAssignments []ModuleAssignmentInput `json:"module_assignments"`
}

type ModuleAssignmentInput struct {
	Module      string                  `json:"module" validate:"required"`
	AccessLevel model.ModuleAccessLevel `json:"access_level" validate:"required,oneof=full limited view_only"`
}

// CreateOrgRole creates a coarse organization-role tier with its module
// grants.
func (s *RoleService) CreateOrgRole(ctx context.Context, input CreateOrgRoleInput) (*model.OrganizationRole, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermRolesManage); err != nil {
		return nil, err
	}

	role := &model.OrganizationRole{
		OrganizationID: orgID,
		Name:           input.Name,
		Level:          input.Level,
		IsActive:       true,
	}
	if err := s.orgRoles.Create(ctx, role); err != nil {
		return nil, err
	}
	if len(input.ModuleAssignments) > 0 {
		assignments := make([]model.RoleModuleAssignment, 0, len(input.ModuleAssignments))
		for _, a := range input.ModuleAssignments {
			assignments = append(assignments, model.RoleModuleAssignment{
				OrganizationRoleID: role.ID,
				Module:             a.Module,
				AccessLevel:        a.AccessLevel,
			})
		}
		if err := s.orgRoles.SetModuleAssignments(ctx, role.ID, assignments); err != nil {
			return nil, err
		}
	}
	return s.orgRoles.FindByID(ctx, orgID, role.ID)
}

type AssignOrgRoleInput struct {
	UserID             uuid.UUID                 `json:"user_id" validate:"required"`
	OrganizationRoleID uuid.UUID                 `json:"organization_role_id" validate:"required"`
	ManagerAssignments model.ManagerAssignments  `json:"manager_assignments,omitempty"`
}

// AssignOrgRole binds a user to an organization-role tier, optionally with
// per-module manager assignments used by approver resolution.
func (s *RoleService) AssignOrgRole(ctx context.Context, input AssignOrgRoleInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermRolesManage); err != nil {
		return err
	}
	// Role must exist in this organization before binding.
	if _, err := s.orgRoles.FindByID(ctx, orgID, input.OrganizationRoleID); err != nil {
		return err
	}
	return s.orgRoles.AssignToUser(ctx, &model.UserOrganizationRole{
		OrganizationID:     orgID,
		UserID:             input.UserID,
		OrganizationRoleID: input.OrganizationRoleID,
		ManagerAssignments: input.ManagerAssignments,
		IsActive:           true,
	})
}

// setPermissions resolves names against the catalog and replaces the role's
// set. Wildcard grants are stored verbatim as catalog-less names.
func (s *RoleService) setPermissions(ctx context.Context, roleID uuid.UUID, names []string) error {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		normalized = append(normalized, model.NormalizePermission(name))
	}

	found, err := s.perms.FindByNames(ctx, normalized)
	if err != nil {
		return err
	}
	byName := make(map[string]uuid.UUID, len(found))
	for _, p := range found {
		byName[model.NormalizePermission(p.Name)] = p.ID
	}

	ids := make([]uuid.UUID, 0, len(normalized))
	for _, name := range normalized {
		id, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: unknown permission %s", domain.ErrInvalidInput, name)
		}
		ids = append(ids, id)
	}
	return s.roles.SetPermissions(ctx, roleID, ids)
}
