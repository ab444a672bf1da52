// internal/repository/orgrole.go
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

// OrgRoleRepositoryIface is the read/write surface for the coarse
// organization-role tier and its module grants.
type OrgRoleRepositoryIface interface {
	Create(ctx context.Context, role *model.OrganizationRole) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.OrganizationRole, error)
	SetModuleAssignments(ctx context.Context, roleID uuid.UUID, assignments []model.RoleModuleAssignment) error
	AssignToUser(ctx context.Context, binding *model.UserOrganizationRole) error
	// FindForUser returns the user's active organization-role binding with the
	// role and its module grants preloaded, or domain.ErrNotFound.
	FindForUser(ctx context.Context, orgID, userID uuid.UUID) (*model.UserOrganizationRole, error)
}

type OrgRoleRepository struct {
	db *gorm.DB
}

func NewOrgRoleRepository(db *gorm.DB) *OrgRoleRepository {
	return &OrgRoleRepository{db: db}
}

func (r *OrgRoleRepository) Create(ctx context.Context, role *model.OrganizationRole) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("creating organization role: %w", err)
	}
	return nil
}

func (r *OrgRoleRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.OrganizationRole, error) {
	var role model.OrganizationRole
	err := r.db.WithContext(ctx).
		Preload("ModuleAssignments").
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("finding organization role: %w", err)
	}
	return &role, nil
}

// SetModuleAssignments replaces a role's module grants atomically.
func (r *OrgRoleRepository) SetModuleAssignments(ctx context.Context, roleID uuid.UUID, assignments []model.RoleModuleAssignment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_role_id = ?", roleID).Delete(&model.RoleModuleAssignment{}).Error; err != nil {
			return fmt.Errorf("clearing module assignments: %w", err)
		}
		for i := range assignments {
			assignments[i].OrganizationRoleID = roleID
			if err := tx.Create(&assignments[i]).Error; err != nil {
				return fmt.Errorf("creating module assignment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *OrgRoleRepository) AssignToUser(ctx context.Context, binding *model.UserOrganizationRole) error {
	if err := r.db.WithContext(ctx).Create(binding).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("assigning organization role: %w", err)
	}
	return nil
}

func (r *OrgRoleRepository) FindForUser(ctx context.Context, orgID, userID uuid.UUID) (*model.UserOrganizationRole, error) {
	var binding model.UserOrganizationRole
	err := r.db.WithContext(ctx).
		Preload("OrganizationRole.ModuleAssignments").
		Where("organization_id = ? AND user_id = ? AND is_active", orgID, userID).
		First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding organization role binding: %w", err)
	}
	return &binding, nil
}
