// internal/repository/role.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"gorm.io/gorm"
)

// RoleRepositoryIface is the read/write surface for organization-scoped roles
// and their permission assignments.
type RoleRepositoryIface interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Role, error)
	FindAllByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	SetPermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error
	AssignToUser(ctx context.Context, assignment *model.UserRole) error
	RemoveFromUser(ctx context.Context, orgID, userID, roleID uuid.UUID) error
	// ResolveUserPermissions returns the union of active permission names over
	// the user's active role assignments.
	ResolveUserPermissions(ctx context.Context, orgID, userID uuid.UUID) ([]string, error)
	FindRolesForUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Role, error)
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Name collisions are checked pre-insert so the caller gets a clean
		// domain error; the unique index still backstops races.
		var count int64
		if err := tx.Model(&model.Role{}).
			Where("organization_id = ? AND name = ?", role.OrganizationID, role.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking role name: %w", err)
		}
		if count > 0 {
			return domain.ErrDuplicateName
		}
		if err := tx.Create(role).Error; err != nil {
			return fmt.Errorf("creating role: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) || isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions.Permission").
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("finding role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) FindAllByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Role, error) {
	var roles []*model.Role
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("level ASC, name ASC").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("finding organization roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Save(role).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("updating role: %w", err)
	}
	return nil
}

// SetPermissions replaces a role's permission set as one atomic write and
// bumps the role version. Concurrent checks never observe a partial set.
func (r *RoleRepository) SetPermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&model.RolePermission{}).Error; err != nil {
			return fmt.Errorf("clearing role permissions: %w", err)
		}
		for _, pid := range permissionIDs {
			rp := model.RolePermission{RoleID: roleID, PermissionID: pid}
			if err := tx.Create(&rp).Error; err != nil {
				return fmt.Errorf("assigning permission: %w", err)
			}
		}
		if err := tx.Model(&model.Role{}).
			Where("id = ?", roleID).
			Update("version", gorm.Expr("version + 1")).Error; err != nil {
			return fmt.Errorf("bumping role version: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *RoleRepository) AssignToUser(ctx context.Context, assignment *model.UserRole) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		if isUniqueViolation(err) {
			// Re-assigning an existing role is a no-op.
			return nil
		}
		return fmt.Errorf("assigning role to user: %w", err)
	}
	return nil
}

func (r *RoleRepository) RemoveFromUser(ctx context.Context, orgID, userID, roleID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ? AND role_id = ?", orgID, userID, roleID).
		Delete(&model.UserRole{}).Error
	if err != nil {
		return fmt.Errorf("removing role from user: %w", err)
	}
	return nil
}

func (r *RoleRepository) ResolveUserPermissions(ctx context.Context, orgID, userID uuid.UUID) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("user_roles").
		Select("DISTINCT permissions.name").
		Joins("JOIN roles ON roles.id = user_roles.role_id AND roles.is_active").
		Joins("JOIN role_permissions ON role_permissions.role_id = roles.id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id AND permissions.is_active").
		Where("user_roles.organization_id = ? AND user_roles.user_id = ? AND user_roles.is_active", orgID, userID).
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("resolving user permissions: %w", err)
	}
	return names, nil
}

func (r *RoleRepository) FindRolesForUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Role, error) {
	var roles []*model.Role
	err := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id AND user_roles.is_active").
		Where("user_roles.organization_id = ? AND user_roles.user_id = ?", orgID, userID).
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("finding roles for user: %w", err)
	}
	return roles, nil
}
