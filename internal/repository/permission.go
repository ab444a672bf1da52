// internal/repository/permission.go
package repository

import (
	"context"
	"fmt"

	"github.com/nexasuite/platform/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PermissionRepositoryIface is the read surface of the permission catalog.
type PermissionRepositoryIface interface {
	ListActive(ctx context.Context) ([]*model.Permission, error)
	FindByNames(ctx context.Context, names []string) ([]*model.Permission, error)
	Seed(ctx context.Context, catalog []model.Permission) error
}

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) ListActive(ctx context.Context) ([]*model.Permission, error) {
	var perms []*model.Permission
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}
	return perms, nil
}

func (r *PermissionRepository) FindByNames(ctx context.Context, names []string) ([]*model.Permission, error) {
	var perms []*model.Permission
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("finding permissions by name: %w", err)
	}
	return perms, nil
}

// Seed inserts the default catalog, leaving already-present entries untouched.
func (r *PermissionRepository) Seed(ctx context.Context, catalog []model.Permission) error {
	for i := range catalog {
		catalog[i].IsActive = true
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&catalog).Error
	if err != nil {
		return fmt.Errorf("seeding permission catalog: %w", err)
	}
	return nil
}
