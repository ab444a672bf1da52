// internal/service/workflow.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/tenant"
)

// WorkflowService orchestrates template → instance → step-instance runs. The
// approval machine is a specialization of the same shape; this engine serves
// every other multi-step sign-off in the platform.
type WorkflowService struct {
	workflows repository.WorkflowRepositoryIface
	authz     Authorizer
	validate  *validator.Validate
}

func NewWorkflowService(workflows repository.WorkflowRepositoryIface, authz Authorizer) *WorkflowService {
	return &WorkflowService{
		workflows: workflows,
		authz:     authz,
		validate:  validator.New(),
	}
}

type CreateTemplateInput struct {
	Name                   string `json:"name" validate:"required"`
	Description            string `json:"description"`
	EntityType             string `json:"entity_type" validate:"required,lowercase"`
	AllowParallelExecution bool   `json:"allow_parallel_execution"`
	Steps                  []CreateTemplateStep `json:"steps" validate:"required,min=1,dive"`
}

type CreateTemplateStep struct {
	Name          string     `json:"name" validate:"required"`
	ApproverID    *uuid.UUID `json:"approver_id,omitempty"`
	ParallelGroup int        `json:"parallel_group" validate:"gte=0"`
}

// CreateTemplate stores a step plan. Step order is the input order.
func (s *WorkflowService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*model.WorkflowTemplate, error) {
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
	if err := s.authz.Enforce(ctx, actorID, model.PermissionName(model.ModuleWorkflows, "manage")); err != nil {
		return nil, err
	}

	template := &model.WorkflowTemplate{
		OrganizationID:         orgID,
		Name:                   input.Name,
		Description:            input.Description,
		EntityType:             input.EntityType,
		AllowParallelExecution: input.AllowParallelExecution,
		IsActive:               true,
	}
	for i, step := range input.Steps {
		template.Steps = append(template.Steps, model.WorkflowStep{
			StepOrder:     i + 1,
			Name:          step.Name,
			ApproverID:    step.ApproverID,
			ParallelGroup: step.ParallelGroup,
		})
	}
	if err := s.workflows.CreateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

type StartInstanceInput struct {
	TemplateID uuid.UUID `json:"template_id" validate:"required"`
	EntityType string    `json:"entity_type" validate:"required"`
	EntityID   uuid.UUID `json:"entity_id" validate:"required"`
}

// StartInstance binds a running copy of the template to one entity. With
// parallel execution allowed, every step of the first group opens at once;
// otherwise only the first step opens.
func (s *WorkflowService) StartInstance(ctx context.Context, input StartInstanceInput) (*model.WorkflowInstance, error) {
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

	template, err := s.workflows.FindTemplate(ctx, orgID, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if len(template.Steps) == 0 {
		return nil, fmt.Errorf("%w: template has no steps", domain.ErrInvalidInput)
	}

	instance := &model.WorkflowInstance{
		OrganizationID:         orgID,
		TemplateID:             template.ID,
		EntityType:             input.EntityType,
		EntityID:               input.EntityID,
		AllowParallelExecution: template.AllowParallelExecution,
		Status:                 model.WorkflowRunning,
		CurrentStep:            1,
		TotalSteps:             len(template.Steps),
		StartedByID:            actorID,
	}
	steps := make([]*model.WorkflowStepInstance, 0, len(template.Steps))
	for _, step := range template.Steps {
		steps = append(steps, &model.WorkflowStepInstance{
			StepID:        step.ID,
			StepOrder:     step.StepOrder,
			ParallelGroup: step.ParallelGroup,
			Status:        model.StepPending,
			ApproverID:    step.ApproverID,
		})
	}
	if err := s.workflows.CreateInstance(ctx, instance, steps); err != nil {
		return nil, err
	}
	instance.StepInstances = derefSteps(steps)
	return instance, nil
}

type DecideStepInput struct {
	InstanceID     uuid.UUID      `json:"instance_id" validate:"required"`
	StepInstanceID uuid.UUID      `json:"step_instance_id" validate:"required"`
	Decision       model.Decision `json:"decision" validate:"required,oneof=approved rejected"`
	Comment        string         `json:"comment"`
}

// DecideStep records a decision on one open step and advances the instance.
// A rejected step rejects the whole instance and cancels its open steps.
func (s *WorkflowService) DecideStep(ctx context.Context, input DecideStepInput) (*model.WorkflowInstance, error) {
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
	if err := s.authz.Enforce(ctx, actorID, model.PermissionName(model.ModuleWorkflows, "decide")); err != nil {
		return nil, err
	}

	instance, err := s.workflows.FindInstance(ctx, orgID, input.InstanceID)
	if err != nil {
		return nil, err
	}
	if instance.Status != model.WorkflowRunning {
		return nil, domain.InvalidState("workflow", string(instance.Status), string(input.Decision))
	}

	var step *model.WorkflowStepInstance
	for i := range instance.StepInstances {
		if instance.StepInstances[i].ID == input.StepInstanceID {
			step = &instance.StepInstances[i]
			break
		}
	}
	if step == nil {
		return nil, domain.ErrNotFound
	}
	if step.Status != model.StepPending {
		return nil, domain.InvalidState("workflow step", string(step.Status), string(input.Decision))
	}
	if !s.stepOpen(instance, step) {
		return nil, domain.InvalidState("workflow step", "waiting", string(input.Decision))
	}
	if step.ApproverID != nil && *step.ApproverID != actorID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	newStatus := model.StepApproved
	if input.Decision == model.DecisionRejected {
		newStatus = model.StepRejected
	}
	err = s.workflows.UpdateStepInstanceIf(ctx, step.ID, model.StepPending, map[string]interface{}{
		"status":      newStatus,
		"acted_by_id": actorID,
		"acted_at":    now,
		"comment":     input.Comment,
	})
	if err != nil {
		return nil, err
	}
	step.Status = newStatus

	if newStatus == model.StepRejected {
		if err := s.workflows.CancelPendingSteps(ctx, instance.ID); err != nil {
			return nil, err
		}
		err = s.workflows.UpdateInstance(ctx, instance.ID, map[string]interface{}{
			"status":       model.WorkflowRejected,
			"completed_at": now,
		})
		if err != nil {
			return nil, err
		}
	} else if err := s.advance(ctx, instance, now); err != nil {
		return nil, err
	}

	return s.workflows.FindInstance(ctx, orgID, input.InstanceID)
}

// stepOpen reports whether a step is currently actionable: every step of an
// earlier order (outside the step's own parallel group) must be terminal.
// Parallel groups only relax the ordering when the instance allows parallel
// execution; otherwise groups are documentation and the run is sequential.
func (s *WorkflowService) stepOpen(instance *model.WorkflowInstance, step *model.WorkflowStepInstance) bool {
	for i := range instance.StepInstances {
		other := &instance.StepInstances[i]
		if other.ID == step.ID || other.Status.Terminal() {
			continue
		}
		if other.StepOrder >= step.StepOrder {
			continue
		}
		// An unfinished earlier step blocks, unless it shares the step's
		// parallel group on a parallel-enabled instance.
		if instance.AllowParallelExecution && step.ParallelGroup != 0 && other.ParallelGroup == step.ParallelGroup {
			continue
		}
		return false
	}
	return true
}

// advance recomputes progress after an approval. The instance moves past a
// parallel group only once all members are terminal, and completes when every
// step is.
func (s *WorkflowService) advance(ctx context.Context, instance *model.WorkflowInstance, now time.Time) error {
	completed := 0
	nextOpen := 0
	allDone := true
	for i := range instance.StepInstances {
		step := &instance.StepInstances[i]
		if step.Status.Terminal() {
			completed++
			continue
		}
		allDone = false
		if nextOpen == 0 || step.StepOrder < nextOpen {
			nextOpen = step.StepOrder
		}
	}

	updates := map[string]interface{}{
		"completed_steps": completed,
	}
	if allDone {
		updates["status"] = model.WorkflowApproved
		updates["completed_at"] = now
		updates["current_step"] = instance.TotalSteps
	} else {
		updates["current_step"] = nextOpen
	}
	return s.workflows.UpdateInstance(ctx, instance.ID, updates)
}

// Cancel, Pause and Resume are fire-and-forget state writes. Already
// completed steps are never rolled back.
func (s *WorkflowService) Cancel(ctx context.Context, instanceID uuid.UUID) error {
	return s.setInstanceStatus(ctx, instanceID, model.WorkflowRunning, model.WorkflowCancelled, true)
}

func (s *WorkflowService) Pause(ctx context.Context, instanceID uuid.UUID) error {
	return s.setInstanceStatus(ctx, instanceID, model.WorkflowRunning, model.WorkflowPaused, false)
}

func (s *WorkflowService) Resume(ctx context.Context, instanceID uuid.UUID) error {
	return s.setInstanceStatus(ctx, instanceID, model.WorkflowPaused, model.WorkflowRunning, false)
}

func (s *WorkflowService) setInstanceStatus(ctx context.Context, instanceID uuid.UUID, from, to model.WorkflowInstanceStatus, cancelSteps bool) error {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return err
	}
	instance, err := s.workflows.FindInstance(ctx, orgID, instanceID)
	if err != nil {
		return err
	}
	if instance.Status != from {
		return domain.InvalidState("workflow", string(instance.Status), string(to))
	}

	updates := map[string]interface{}{"status": to}
	if to == model.WorkflowCancelled {
		now := time.Now().UTC()
		updates["completed_at"] = now
	}
	if err := s.workflows.UpdateInstance(ctx, instance.ID, updates); err != nil {
		return err
	}
	if cancelSteps {
		return s.workflows.CancelPendingSteps(ctx, instance.ID)
	}
	return nil
}

// Get returns one instance with its steps.
func (s *WorkflowService) Get(ctx context.Context, instanceID uuid.UUID) (*model.WorkflowInstance, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.workflows.FindInstance(ctx, orgID, instanceID)
}

// Templates lists the organization's active templates.
func (s *WorkflowService) Templates(ctx context.Context) ([]*model.WorkflowTemplate, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.workflows.FindTemplatesByOrganization(ctx, orgID)
}

func derefSteps(steps []*model.WorkflowStepInstance) []model.WorkflowStepInstance {
	out := make([]model.WorkflowStepInstance, 0, len(steps))
	for _, s := range steps {
		out = append(out, *s)
	}
	return out
}
