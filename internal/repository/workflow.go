// internal/repository/workflow.go
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

// WorkflowRepositoryIface is the persistence surface of the workflow template
// engine.
type WorkflowRepositoryIface interface {
	CreateTemplate(ctx context.Context, template *model.WorkflowTemplate) error
	FindTemplate(ctx context.Context, orgID, id uuid.UUID) (*model.WorkflowTemplate, error)
	FindTemplatesByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.WorkflowTemplate, error)
	// CreateInstance inserts the instance and all its step instances in one
	// transaction.
	CreateInstance(ctx context.Context, instance *model.WorkflowInstance, steps []*model.WorkflowStepInstance) error
	FindInstance(ctx context.Context, orgID, id uuid.UUID) (*model.WorkflowInstance, error)
	// UpdateStepInstanceIf conditionally moves a step off its expected status;
	// zero rows affected reports domain.InvalidStateError.
	UpdateStepInstanceIf(ctx context.Context, stepInstanceID uuid.UUID, expected model.StepStatus, updates map[string]interface{}) error
	UpdateInstance(ctx context.Context, instanceID uuid.UUID, updates map[string]interface{}) error
	FindStepInstances(ctx context.Context, instanceID uuid.UUID) ([]*model.WorkflowStepInstance, error)
	CancelPendingSteps(ctx context.Context, instanceID uuid.UUID) error
}

type WorkflowRepository struct {
	db *gorm.DB
}

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

func (r *WorkflowRepository) CreateTemplate(ctx context.Context, template *model.WorkflowTemplate) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("creating workflow template: %w", err)
	}
	return nil
}

func (r *WorkflowRepository) FindTemplate(ctx context.Context, orgID, id uuid.UUID) (*model.WorkflowTemplate, error) {
	var template model.WorkflowTemplate
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_order ASC") }).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("finding workflow template: %w", err)
	}
	return &template, nil
}

func (r *WorkflowRepository) FindTemplatesByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.WorkflowTemplate, error) {
	var templates []*model.WorkflowTemplate
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND is_active", orgID).
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("finding workflow templates: %w", err)
	}
	return templates, nil
}

func (r *WorkflowRepository) CreateInstance(ctx context.Context, instance *model.WorkflowInstance, steps []*model.WorkflowStepInstance) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(instance).Error; err != nil {
			return fmt.Errorf("creating workflow instance: %w", err)
		}
		for _, step := range steps {
			step.InstanceID = instance.ID
			if err := tx.Create(step).Error; err != nil {
				return fmt.Errorf("creating step instance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *WorkflowRepository) FindInstance(ctx context.Context, orgID, id uuid.UUID) (*model.WorkflowInstance, error) {
	var instance model.WorkflowInstance
	err := r.db.WithContext(ctx).
		Preload("StepInstances", func(db *gorm.DB) *gorm.DB { return db.Order("step_order ASC") }).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&instance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("finding workflow instance: %w", err)
	}
	return &instance, nil
}

func (r *WorkflowRepository) UpdateStepInstanceIf(ctx context.Context, stepInstanceID uuid.UUID, expected model.StepStatus, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.WorkflowStepInstance{}).
		Where("id = ? AND status = ?", stepInstanceID, expected).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("updating step instance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.InvalidState("workflow step", "", "")
	}
	return nil
}

func (r *WorkflowRepository) UpdateInstance(ctx context.Context, instanceID uuid.UUID, updates map[string]interface{}) error {
	err := r.db.WithContext(ctx).
		Model(&model.WorkflowInstance{}).
		Where("id = ?", instanceID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("updating workflow instance: %w", err)
	}
	return nil
}

func (r *WorkflowRepository) FindStepInstances(ctx context.Context, instanceID uuid.UUID) ([]*model.WorkflowStepInstance, error) {
	var steps []*model.WorkflowStepInstance
	err := r.db.WithContext(ctx).
		Where("instance_id = ?", instanceID).
		Order("step_order ASC").
		Find(&steps).Error
	if err != nil {
		return nil, fmt.Errorf("finding step instances: %w", err)
	}
	return steps, nil
}

func (r *WorkflowRepository) CancelPendingSteps(ctx context.Context, instanceID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&model.WorkflowStepInstance{}).
		Where("instance_id = ? AND status = ?", instanceID, model.StepPending).
		Update("status", model.StepCancelled).Error
	if err != nil {
		return fmt.Errorf("cancelling pending steps: %w", err)
	}
	return nil
}
