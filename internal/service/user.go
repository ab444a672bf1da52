// internal/service/user.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/auth"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/tenant"
)

// UserService provisions users and handles credential checks. Authentication
// itself (token issuance) lives in the handler layer; this service only
// verifies passwords and returns the account.
type UserService struct {
	users    repository.UserRepositoryIface
	hasher   *auth.PasswordHasher
	validate *validator.Validate
	authz    *AuthorizationService
}

func NewUserService(users repository.UserRepositoryIface, hasher *auth.PasswordHasher, authz *AuthorizationService) *UserService {
	return &UserService{
		users:    users,
		hasher:   hasher,
		validate: validator.New(),
		authz:    authz,
	}
}

type CreateUserInput struct {
	Email     string         `json:"email" validate:"required,email"`
	FirstName string         `json:"first_name" validate:"required"`
	LastName  string         `json:"last_name"`
	Password  string         `json:"password" validate:"required,min=8"`
	Tier      model.RoleTier `json:"tier" validate:"required"`
	ManagerID *uuid.UUID     `json:"manager_id,omitempty"`
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if !input.Tier.Valid() {
		return nil, fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidInput, input.Tier)
	}
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermUsersManage); err != nil {
		return nil, err
	}

	// A manager edge may only point inside the same organization.
	if input.ManagerID != nil {
		if _, err := s.users.FindByID(ctx, orgID, *input.ManagerID); err != nil {
			return nil, err
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		OrganizationID: orgID,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PasswordHash:   hash,
		Tier:           input.Tier,
		IsActive:       true,
		ManagerID:      input.ManagerID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateUserInput struct {
	UserID         uuid.UUID               `json:"user_id" validate:"required"`
	FirstName      *string                 `json:"first_name,omitempty"`
	LastName       *string                 `json:"last_name,omitempty"`
	Tier           *model.RoleTier         `json:"tier,omitempty"`
	ManagerID      *uuid.UUID              `json:"manager_id,omitempty"`
	SubPermissions *model.SubPermissionMap `json:"sub_permissions,omitempty"`
}

func (s *UserService) Update(ctx context.Context, input UpdateUserInput) (*model.User, error) {
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
	if err := s.authz.Enforce(ctx, actorID, model.PermUsersManage); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, orgID, input.UserID)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Tier != nil {
		if !input.Tier.Valid() {
			return nil, fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidInput, *input.Tier)
		}
		user.Tier = *input.Tier
	}
	if input.ManagerID != nil {
		if _, err := s.users.FindByID(ctx, orgID, *input.ManagerID); err != nil {
			return nil, err
		}
		user.ManagerID = input.ManagerID
	}
	if input.SubPermissions != nil {
		user.SubPermissions = *input.SubPermissions
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	actorID, err := tenant.UserID(ctx)
	if err != nil {
		return err
	}
	if err := s.authz.Enforce(ctx, actorID, model.PermUsersManage); err != nil {
		return err
	}
	return s.users.Deactivate(ctx, orgID, userID)
}

// Authenticate verifies the credentials and returns the account. Lookup is
// unscoped: the email uniquely identifies the user, and the caller derives the
// tenant scope from the returned organization id.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	// Re-hash on login when the stored digest uses weaker parameters than the
	// hasher now issues. Best effort: the login already succeeded.
	if s.hasher.NeedsRehash(user.PasswordHash) {
		if rehashed, err := s.hasher.Hash(password); err == nil {
			user.PasswordHash = rehashed
			_ = s.users.Update(ctx, user)
		}
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, orgID, userID)
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.users.FindAllByOrganization(ctx, orgID)
}
