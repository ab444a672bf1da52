// internal/service/authorization.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/tenant"
)

// maxManagerChainDepth bounds reporting-edge traversal. The edge is
// self-referential on users and misconfiguration can introduce cycles.
const maxManagerChainDepth = 10

// AuthorizationService is the single decision point for
// (user, permission-or-module, optional company) checks. All checks are pure
// reads; a denial is always reported, never downgraded.
type AuthorizationService struct {
	users     repository.UserRepositoryIface
	roles     repository.RoleRepositoryIface
	orgRoles  repository.OrgRoleRepositoryIface
	companies repository.CompanyRepositoryIface
}

func NewAuthorizationService(
	users repository.UserRepositoryIface,
	roles repository.RoleRepositoryIface,
	orgRoles repository.OrgRoleRepositoryIface,
	companies repository.CompanyRepositoryIface,
) *AuthorizationService {
	return &AuthorizationService{
		users:     users,
		roles:     roles,
		orgRoles:  orgRoles,
		companies: companies,
	}
}

// permissionCache memoizes resolved permission sets for the lifetime of one
// inbound operation. It lives in the request context and dies with it;
// nothing is ever cached across operations.
type permissionCache struct {
	mu   sync.Mutex
	sets map[uuid.UUID]map[string]struct{}
}

type permissionCacheKey struct{}

// WithPermissionCache arms per-operation permission memoization on ctx.
// Installed by the request middleware.
func WithPermissionCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, permissionCacheKey{}, &permissionCache{
		sets: make(map[uuid.UUID]map[string]struct{}),
	})
}

func cacheFromContext(ctx context.Context) *permissionCache {
	c, _ := ctx.Value(permissionCacheKey{}).(*permissionCache)
	return c
}

// HasPermission resolves a boolean decision for (user, permission) inside the
// current tenant scope.
func (s *AuthorizationService) HasPermission(ctx context.Context, userID uuid.UUID, permission string) (bool, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return false, err
	}

	user, err := s.users.FindByID(ctx, orgID, userID)
	if err != nil {
		return false, err
	}
	if !user.IsActive {
		return false, nil
	}

	// Super admins and the org-admin tier bypass resolution entirely.
	if user.IsSuperAdmin || user.Tier == model.TierOrgAdmin {
		return true, nil
	}

	name := model.NormalizePermission(permission)
	set, err := s.permissionSet(ctx, orgID, userID)
	if err != nil {
		return false, err
	}
	if matchPermission(set, name) {
		return true, nil
	}

	// Coarse tier: module grants on the user's organization role.
	module, action := model.SplitPermission(name)
	granted, err := s.moduleGrant(ctx, orgID, user, module, action)
	if err != nil {
		return false, err
	}
	return granted, nil
}

// CanAccessModule answers the module-level form of the decision.
func (s *AuthorizationService) CanAccessModule(ctx context.Context, userID uuid.UUID, module, action string) (bool, error) {
	return s.HasPermission(ctx, userID, model.PermissionName(module, action))
}

// Enforce fails with a PermissionDeniedError naming the missing permission.
func (s *AuthorizationService) Enforce(ctx context.Context, userID uuid.UUID, permission string) error {
	ok, err := s.HasPermission(ctx, userID, permission)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("permission denied",
			"user_id", userID,
			"permission", model.NormalizePermission(permission))
		return domain.PermissionDenied(model.NormalizePermission(permission))
	}
	return nil
}

// HasCompanyPermission is the company-scoped variant. Company access is
// independent and non-bypassable: without an active UserCompany row the
// answer is no, whatever roles the user holds organization-wide.
func (s *AuthorizationService) HasCompanyPermission(ctx context.Context, userID, companyID uuid.UUID, permission string) (bool, error) {
	access, err := s.companies.FindAccess(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCompanyAccess) {
			return false, nil
		}
		return false, err
	}
	// The access lookup is keyed by user and company, not organization, so the
	// row's organization is checked against the scope explicitly.
	if err := tenant.RequireSameOrg(ctx, access.OrganizationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	name := model.NormalizePermission(permission)

	// Company admins clear every check except the fixed organization-only
	// permission set.
	if access.IsCompanyAdmin {
		if _, orgOnly := model.OrganizationOnlyPermissions[name]; !orgOnly {
			return true, nil
		}
	}

	return s.HasPermission(ctx, userID, name)
}

// EnforceCompany is Enforce for company-scoped checks.
func (s *AuthorizationService) EnforceCompany(ctx context.Context, userID, companyID uuid.UUID, permission string) error {
	ok, err := s.HasCompanyPermission(ctx, userID, companyID, permission)
	if err != nil {
		return err
	}
	if !ok {
		return domain.PermissionDenied(model.NormalizePermission(permission))
	}
	return nil
}

// CanManageRole reports whether the actor's most senior role strictly
// outranks the target role. Equal or junior rank never manages; there is no
// self- or lateral-management.
func (s *AuthorizationService) CanManageRole(ctx context.Context, actorID, targetRoleID uuid.UUID) (bool, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return false, err
	}

	actor, err := s.users.FindByID(ctx, orgID, actorID)
	if err != nil {
		return false, err
	}
	if actor.IsSuperAdmin || actor.Tier == model.TierOrgAdmin {
		return true, nil
	}

	target, err := s.roles.FindByID(ctx, orgID, targetRoleID)
	if err != nil {
		return false, err
	}

	actorRoles, err := s.roles.FindRolesForUser(ctx, orgID, actorID)
	if err != nil {
		return false, err
	}
	best := 0
	for _, role := range actorRoles {
		if best == 0 || role.Level < best {
			best = role.Level
		}
	}
	if best == 0 {
		return false, nil
	}
	return best < target.Level, nil
}

// ResolveApprover walks from user to the approver responsible for module:
// first the org-role manager assignment for that module, then the reporting
// manager edge. The walk is cycle-guarded since the source data is not.
func (s *AuthorizationService) ResolveApprover(ctx context.Context, orgID uuid.UUID, user *model.User, module string) (uuid.UUID, error) {
	binding, err := s.orgRoles.FindForUser(ctx, orgID, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, err
	}
	if binding != nil {
		if managerID, ok := binding.ManagerAssignments[module]; ok && managerID != uuid.Nil {
			return managerID, nil
		}
	}

	visited := map[uuid.UUID]struct{}{user.ID: {}}
	current := user
	for depth := 0; depth < maxManagerChainDepth; depth++ {
		if current.ManagerID == nil {
			break
		}
		if _, seen := visited[*current.ManagerID]; seen {
			return uuid.Nil, domain.ErrManagerChainCycle
		}
		manager, err := s.users.FindByID(ctx, orgID, *current.ManagerID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("resolving manager chain: %w", err)
		}
		if manager.IsActive {
			return manager.ID, nil
		}
		// Skip over deactivated managers to the next edge up.
		visited[manager.ID] = struct{}{}
		current = manager
	}
	return uuid.Nil, nil
}

// permissionSet resolves the union of the user's permissions over active role
// assignments, memoized per operation.
func (s *AuthorizationService) permissionSet(ctx context.Context, orgID, userID uuid.UUID) (map[string]struct{}, error) {
	cache := cacheFromContext(ctx)
	if cache != nil {
		cache.mu.Lock()
		if set, ok := cache.sets[userID]; ok {
			cache.mu.Unlock()
			return set, nil
		}
		cache.mu.Unlock()
	}

	names, err := s.roles.ResolveUserPermissions(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[model.NormalizePermission(n)] = struct{}{}
	}

	if cache != nil {
		cache.mu.Lock()
		cache.sets[userID] = set
		cache.mu.Unlock()
	}
	return set, nil
}

// moduleGrant evaluates the organization-role module grants, narrowed by the
// user's per-module sub-permissions when present.
func (s *AuthorizationService) moduleGrant(ctx context.Context, orgID uuid.UUID, user *model.User, module, action string) (bool, error) {
	binding, err := s.orgRoles.FindForUser(ctx, orgID, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	var grant *model.RoleModuleAssignment
	for i := range binding.OrganizationRole.ModuleAssignments {
		if binding.OrganizationRole.ModuleAssignments[i].Module == module {
			grant = &binding.OrganizationRole.ModuleAssignments[i]
			break
		}
	}
	if grant == nil {
		return false, nil
	}

	if !accessLevelAllows(grant.AccessLevel, action) {
		return false, nil
	}

	// A sub-permission map narrows the grant inside the module.
	if subs, ok := user.SubPermissions[module]; ok {
		for _, sub := range subs {
			if sub == action || sub == "*" {
				return true, nil
			}
		}
		return false, nil
	}
	return true, nil
}

// accessLevelAllows maps coarse access levels onto actions: view_only covers
// reads, limited adds create/edit/submit, full covers everything.
func accessLevelAllows(level model.ModuleAccessLevel, action string) bool {
	switch level {
	case model.AccessFull:
		return true
	case model.AccessLimited:
		switch action {
		case "view", "export", "create", "edit", "submit":
			return true
		}
		return false
	case model.AccessViewOnly:
		return action == "view" || action == "export"
	}
	return false
}

// matchPermission checks an exact grant, then a module wildcard.
func matchPermission(set map[string]struct{}, name string) bool {
	if _, ok := set[name]; ok {
		return true
	}
	module, _ := model.SplitPermission(name)
	if _, ok := set[model.WildcardFor(module)]; ok {
		return true
	}
	return false
}
