// internal/repository/settings.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/model"
	"gorm.io/gorm"
)

// SettingsRepositoryIface is the surface for the per-organization approval
// policy singleton.
type SettingsRepositoryIface interface {
	// GetByOrganization returns the organization's settings, falling back to
	// the no-approval default when none were ever saved.
	GetByOrganization(ctx context.Context, orgID uuid.UUID) (*model.OrganizationApprovalSettings, error)
	Upsert(ctx context.Context, settings *model.OrganizationApprovalSettings) error
}

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetByOrganization(ctx context.Context, orgID uuid.UUID) (*model.OrganizationApprovalSettings, error) {
	var settings model.OrganizationApprovalSettings
	err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unconfigured organizations run without approvals.
			return &model.OrganizationApprovalSettings{
				OrganizationID: orgID,
				Model:          model.ApprovalModelNone,
			}, nil
		}
		return nil, fmt.Errorf("finding approval settings: %w", err)
	}
	return &settings, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, settings *model.OrganizationApprovalSettings) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.OrganizationApprovalSettings
		err := tx.Where("organization_id = ?", settings.OrganizationID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(settings).Error
		}
		if err != nil {
			return err
		}
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		return tx.Save(settings).Error
	})
	if err != nil {
		return fmt.Errorf("saving approval settings: %w", err)
	}
	return nil
}
