// internal/service/company.go
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

// CompanyService manages companies and the per-company access store.
type CompanyService struct {
	companies repository.CompanyRepositoryIface
	users     repository.UserRepositoryIface
	authz     *AuthorizationService
	validate  *validator.Validate
}

func NewCompanyService(
	companies repository.CompanyRepositoryIface,
	users repository.UserRepositoryIface,
	authz *AuthorizationService,
) *CompanyService {
	return &CompanyService{
		companies: companies,
		users:     users,
		authz:     authz,
		validate:  validator.New(),
	}
}

type CreateCompanyInput struct {
	Name string `json:"name" validate:"required"`
}

func (s *CompanyService) Create(ctx context.Context, input CreateCompanyInput) (*model.Company, error) {
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
	if err := s.authz.Enforce(ctx, actorID, model.PermCompaniesManage); err != nil {
		return nil, err
	}

	company := &model.Company{
		OrganizationID: orgID,
		Name:           input.Name,
		IsActive:       true,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

type GrantAccessInput struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	CompanyID      uuid.UUID `json:"company_id" validate:"required"`
	IsCompanyAdmin bool      `json:"is_company_admin"`
}

// GrantAccess gives a user access to one company. Both user and company must
// belong to the actor's organization.
func (s *CompanyService) GrantAccess(ctx context.Context, input GrantAccessInput) error {
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
	if err := s.authz.Enforce(ctx, actorID, model.PermCompaniesManage); err != nil {
		return err
	}
	if _, err := s.companies.FindByID(ctx, orgID, input.CompanyID); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, orgID, input.UserID); err != nil {
		return err
	}

	return s.companies.GrantAccess(ctx, &model.UserCompany{
		OrganizationID: orgID,
		UserID:         input.UserID,
		CompanyID:      input.CompanyID,
		IsCompanyAdmin: input.IsCompanyAdmin,
		IsActive:       true,
	})
}

func (s *CompanyService) RevokeAccess(ctx context.Context, userID, companyID uuid.UUID) error {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermCompaniesManage); err != nil {
		return err
	}
	return s.companies.RevokeAccess(ctx, orgID, userID, companyID)
}

func (s *CompanyService) SetCompanyAdmin(ctx context.Context, userID, companyID uuid.UUID, isAdmin bool) error {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermCompaniesManage); err != nil {
		return err
	}
	return s.companies.SetCompanyAdmin(ctx, orgID, userID, companyID, isAdmin)
}

// ListForUser returns the companies the given user can act in.
func (s *CompanyService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Company, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.companies.FindCompaniesForUser(ctx, orgID, userID)
}

func (s *CompanyService) List(ctx context.Context) ([]*model.Company, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.companies.FindAllByOrganization(ctx, orgID)
}
