// internal/repository/company.go
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

// CompanyRepositoryIface is the read/write surface for companies and the
// user↔company access store.
type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Company, error)
	FindAllByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Company, error)
	GrantAccess(ctx context.Context, access *model.UserCompany) error
	RevokeAccess(ctx context.Context, orgID, userID, companyID uuid.UUID) error
	SetCompanyAdmin(ctx context.Context, orgID, userID, companyID uuid.UUID, isAdmin bool) error
	// FindAccess returns the active access row for (user, company), or
	// domain.ErrNoCompanyAccess when none exists.
	FindAccess(ctx context.Context, userID, companyID uuid.UUID) (*model.UserCompany, error)
	FindCompaniesForUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Company, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("creating company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) FindAllByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Company, error) {
	var companies []*model.Company
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("finding organization companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) GrantAccess(ctx context.Context, access *model.UserCompany) error {
	if err := r.db.WithContext(ctx).Create(access).Error; err != nil {
		if isUniqueViolation(err) {
			// Reactivate an existing assignment instead of duplicating it.
			result := r.db.WithContext(ctx).
				Model(&model.UserCompany{}).
				Where("user_id = ? AND company_id = ?", access.UserID, access.CompanyID).
				Updates(map[string]interface{}{
					"is_active":        true,
					"is_company_admin": access.IsCompanyAdmin,
				})
			if result.Error != nil {
				return fmt.Errorf("reactivating company access: %w", result.Error)
			}
			return nil
		}
		return fmt.Errorf("granting company access: %w", err)
	}
	return nil
}

func (r *CompanyRepository) RevokeAccess(ctx context.Context, orgID, userID, companyID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserCompany{}).
		Where("organization_id = ? AND user_id = ? AND company_id = ?", orgID, userID, companyID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("revoking company access: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoCompanyAccess
	}
	return nil
}

func (r *CompanyRepository) SetCompanyAdmin(ctx context.Context, orgID, userID, companyID uuid.UUID, isAdmin bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserCompany{}).
		Where("organization_id = ? AND user_id = ? AND company_id = ? AND is_active", orgID, userID, companyID).
		Update("is_company_admin", isAdmin)
	if result.Error != nil {
		return fmt.Errorf("setting company admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoCompanyAccess
	}
	return nil
}

func (r *CompanyRepository) FindAccess(ctx context.Context, userID, companyID uuid.UUID) (*model.UserCompany, error) {
	var access model.UserCompany
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ? AND is_active", userID, companyID).
		First(&access).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoCompanyAccess
		}
		return nil, fmt.Errorf("finding company access: %w", err)
	}
	return &access, nil
}

func (r *CompanyRepository) FindCompaniesForUser(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Company, error) {
	var companies []*model.Company
	err := r.db.WithContext(ctx).
		Joins("JOIN user_companies ON user_companies.company_id = companies.id AND user_companies.is_active").
		Where("companies.organization_id = ? AND user_companies.user_id = ?", orgID, userID).
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("finding companies for user: %w", err)
	}
	return companies, nil
}
