// internal/repository/user.go
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

// UserRepositoryIface is the read/write surface for users.
type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAllByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Deactivate(ctx context.Context, orgID, id uuid.UUID) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// FindByID resolves a user within one organization. Users from other
// organizations read as absent.
func (r *UserRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

// FindByEmail is unscoped: emails are globally unique and resolved before a
// tenant scope exists (login).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindAllByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("finding organization users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

// Deactivate soft-disables a user. Users referenced by historical approvals
// are never hard-deleted.
func (r *UserRepository) Deactivate(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("deactivating user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
