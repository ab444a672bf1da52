package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/mocks"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actorID := uuid.New()
	ctx := scopedContext(orgID, actorID)

	t.Run("steps get sequential order from input position", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		workflows.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, template *model.WorkflowTemplate) error {
				assert.Equal(t, orgID, template.OrganizationID)
				assert.True(t, template.IsActive)
				assert.Equal(t, 1, template.Steps[0].StepOrder)
				assert.Equal(t, 2, template.Steps[1].StepOrder)
				assert.Equal(t, 3, template.Steps[2].StepOrder)
				return nil
			})

		template, err := svc.CreateTemplate(ctx, service.CreateTemplateInput{
			Name:       "purchase sign-off",
			EntityType: "purchase_order",
			Steps: []service.CreateTemplateStep{
				{Name: "team lead"},
				{Name: "finance"},
				{Name: "director"},
			},
		})
		assert.NoError(t, err)
		assert.Len(t, template.Steps, 3)
	})

	t.Run("template needs at least one step", func(t *testing.T) {
		svc := service.NewWorkflowService(nil, &fakeAuthorizer{})

		_, err := svc.CreateTemplate(ctx, service.CreateTemplateInput{
			Name:       "empty",
			EntityType: "purchase_order",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires workflow management permission", func(t *testing.T) {
		svc := service.NewWorkflowService(nil,
			&fakeAuthorizer{enforceErr: domain.PermissionDenied("workflows.manage")})

		_, err := svc.CreateTemplate(ctx, service.CreateTemplateInput{
			Name:       "purchase sign-off",
			EntityType: "purchase_order",
			Steps:      []service.CreateTemplateStep{{Name: "team lead"}},
		})
		assert.True(t, domain.IsPermissionDenied(err))
	})
}

func TestStartInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actorID := uuid.New()
	templateID := uuid.New()
	entityID := uuid.New()
	ctx := scopedContext(orgID, actorID)

	workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
	svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

	template := &model.WorkflowTemplate{
		ID:                     templateID,
		OrganizationID:         orgID,
		Name:                   "purchase sign-off",
		AllowParallelExecution: true,
		Steps: []model.WorkflowStep{
			{ID: uuid.New(), StepOrder: 1, Name: "team lead"},
			{ID: uuid.New(), StepOrder: 2, Name: "finance"},
		},
	}

	workflows.EXPECT().FindTemplate(gomock.Any(), orgID, templateID).Return(template, nil)
	workflows.EXPECT().CreateInstance(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, instance *model.WorkflowInstance, steps []*model.WorkflowStepInstance) error {
			assert.Equal(t, model.WorkflowRunning, instance.Status)
			assert.Equal(t, 1, instance.CurrentStep)
			assert.Equal(t, 2, instance.TotalSteps)
			assert.Equal(t, actorID, instance.StartedByID)
			assert.True(t, instance.AllowParallelExecution)
			assert.Len(t, steps, 2)
			assert.Equal(t, model.StepPending, steps[0].Status)
			return nil
		})

	instance, err := svc.StartInstance(ctx, service.StartInstanceInput{
		TemplateID: templateID,
		EntityType: "purchase_order",
		EntityID:   entityID,
	})
	assert.NoError(t, err)
	assert.Len(t, instance.StepInstances, 2)
}

func TestDecideStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actorID := uuid.New()
	instanceID := uuid.New()
	ctx := scopedContext(orgID, actorID)

	twoStepInstance := func() *model.WorkflowInstance {
		return &model.WorkflowInstance{
			ID:             instanceID,
			OrganizationID: orgID,
			Status:         model.WorkflowRunning,
			CurrentStep:    1,
			TotalSteps:     2,
			StepInstances: []model.WorkflowStepInstance{
				{ID: uuid.New(), StepOrder: 1, Status: model.StepPending},
				{ID: uuid.New(), StepOrder: 2, Status: model.StepPending},
			},
		}
	}

	t.Run("approving the first step advances to the second", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		instance := twoStepInstance()
		firstStepID := instance.StepInstances[0].ID
		gomock.InOrder(
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
			workflows.EXPECT().UpdateStepInstanceIf(gomock.Any(), firstStepID, model.StepPending, gomock.Any()).
				DoAndReturn(func(_ interface{}, _ uuid.UUID, _ model.StepStatus, updates map[string]interface{}) error {
					assert.Equal(t, model.StepApproved, updates["status"])
					assert.Equal(t, actorID, updates["acted_by_id"])
					return nil
				}),
			workflows.EXPECT().UpdateInstance(gomock.Any(), instanceID, gomock.Any()).
				DoAndReturn(func(_ interface{}, _ uuid.UUID, updates map[string]interface{}) error {
					assert.Equal(t, 1, updates["completed_steps"])
					assert.Equal(t, 2, updates["current_step"])
					_, done := updates["completed_at"]
					assert.False(t, done)
					return nil
				}),
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
		)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: firstStepID,
			Decision:       model.DecisionApproved,
		})
		assert.NoError(t, err)
	})

	t.Run("approving the last open step completes the instance", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		instance := twoStepInstance()
		instance.StepInstances[0].Status = model.StepApproved
		lastStepID := instance.StepInstances[1].ID
		gomock.InOrder(
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
			workflows.EXPECT().UpdateStepInstanceIf(gomock.Any(), lastStepID, model.StepPending, gomock.Any()).Return(nil),
			workflows.EXPECT().UpdateInstance(gomock.Any(), instanceID, gomock.Any()).
				DoAndReturn(func(_ interface{}, _ uuid.UUID, updates map[string]interface{}) error {
					assert.Equal(t, model.WorkflowApproved, updates["status"])
					assert.Equal(t, 2, updates["completed_steps"])
					assert.NotNil(t, updates["completed_at"])
					return nil
				}),
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
		)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: lastStepID,
			Decision:       model.DecisionApproved,
		})
		assert.NoError(t, err)
	})

	t.Run("later step is gated until earlier steps finish", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		instance := twoStepInstance()
		secondStepID := instance.StepInstances[1].ID
		workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: secondStepID,
			Decision:       model.DecisionApproved,
		})
		assert.True(t, domain.IsInvalidState(err))
	})

	t.Run("parallel group members are open together", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		instance := &model.WorkflowInstance{
			ID:                     instanceID,
			OrganizationID:         orgID,
			Status:                 model.WorkflowRunning,
			TotalSteps:             3,
			AllowParallelExecution: true,
			StepInstances: []model.WorkflowStepInstance{
				{ID: uuid.New(), StepOrder: 1, ParallelGroup: 1, Status: model.StepPending},
				{ID: uuid.New(), StepOrder: 2, ParallelGroup: 1, Status: model.StepPending},
				{ID: uuid.New(), StepOrder: 3, Status: model.StepPending},
			},
		}
		// The second member of group 1 is actionable while the first is open.
		groupMemberID := instance.StepInstances[1].ID
		gomock.InOrder(
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
			workflows.EXPECT().UpdateStepInstanceIf(gomock.Any(), groupMemberID, model.StepPending, gomock.Any()).Return(nil),
			workflows.EXPECT().UpdateInstance(gomock.Any(), instanceID, gomock.Any()).
				DoAndReturn(func(_ interface{}, _ uuid.UUID, updates map[string]interface{}) error {
					assert.Equal(t, 1, updates["completed_steps"])
					assert.Equal(t, 1, updates["current_step"])
					return nil
				}),
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
		)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: groupMemberID,
			Decision:       model.DecisionApproved,
		})
		assert.NoError(t, err)
	})

	t.Run("groups stay sequential when the run forbids parallel execution", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		instance := &model.WorkflowInstance{
			ID:             instanceID,
			OrganizationID: orgID,
			Status:         model.WorkflowRunning,
			TotalSteps:     3,
			StepInstances: []model.WorkflowStepInstance{
				{ID: uuid.New(), StepOrder: 1, ParallelGroup: 1, Status: model.StepPending},
				{ID: uuid.New(), StepOrder: 2, ParallelGroup: 1, Status: model.StepPending},
				{ID: uuid.New(), StepOrder: 3, Status: model.StepPending},
			},
		}
		groupMemberID := instance.StepInstances[1].ID
		workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: groupMemberID,
			Decision:       model.DecisionApproved,
		})
		assert.True(t, domain.IsInvalidState(err))
	})

	t.Run("rejecting a step rejects the instance and cancels the rest", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		instance := twoStepInstance()
		firstStepID := instance.StepInstances[0].ID
		gomock.InOrder(
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
			workflows.EXPECT().UpdateStepInstanceIf(gomock.Any(), firstStepID, model.StepPending, gomock.Any()).
				DoAndReturn(func(_ interface{}, _ uuid.UUID, _ model.StepStatus, updates map[string]interface{}) error {
					assert.Equal(t, model.StepRejected, updates["status"])
					return nil
				}),
			workflows.EXPECT().CancelPendingSteps(gomock.Any(), instanceID).Return(nil),
			workflows.EXPECT().UpdateInstance(gomock.Any(), instanceID, gomock.Any()).
				DoAndReturn(func(_ interface{}, _ uuid.UUID, updates map[string]interface{}) error {
					assert.Equal(t, model.WorkflowRejected, updates["status"])
					return nil
				}),
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil),
		)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: firstStepID,
			Decision:       model.DecisionRejected,
			Comment:        "budget exceeded",
		})
		assert.NoError(t, err)
	})

	t.Run("named approver excludes everyone else", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		someoneElse := uuid.New()
		instance := twoStepInstance()
		instance.StepInstances[0].ApproverID = &someoneElse
		workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: instance.StepInstances[0].ID,
			Decision:       model.DecisionApproved,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("paused instance rejects decisions", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		instance := twoStepInstance()
		instance.Status = model.WorkflowPaused
		workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(instance, nil)

		_, err := svc.DecideStep(ctx, service.DecideStepInput{
			InstanceID:     instanceID,
			StepInstanceID: instance.StepInstances[0].ID,
			Decision:       model.DecisionApproved,
		})
		assert.True(t, domain.IsInvalidState(err))
	})
}

func TestInstanceLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actorID := uuid.New()
	instanceID := uuid.New()
	ctx := scopedContext(orgID, actorID)

	running := func() *model.WorkflowInstance {
		return &model.WorkflowInstance{ID: instanceID, OrganizationID: orgID, Status: model.WorkflowRunning}
	}

	t.Run("cancel closes the instance and its open steps", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		gomock.InOrder(
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(running(), nil),
			workflows.EXPECT().UpdateInstance(gomock.Any(), instanceID, gomock.Any()).
				DoAndReturn(func(_ interface{}, _ uuid.UUID, updates map[string]interface{}) error {
					assert.Equal(t, model.WorkflowCancelled, updates["status"])
					assert.NotNil(t, updates["completed_at"])
					return nil
				}),
			workflows.EXPECT().CancelPendingSteps(gomock.Any(), instanceID).Return(nil),
		)

		assert.NoError(t, svc.Cancel(ctx, instanceID))
	})

	t.Run("pause and resume round-trip", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		paused := running()
		paused.Status = model.WorkflowPaused
		gomock.InOrder(
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(running(), nil),
			workflows.EXPECT().UpdateInstance(gomock.Any(), instanceID, map[string]interface{}{"status": model.WorkflowPaused}).Return(nil),
			workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(paused, nil),
			workflows.EXPECT().UpdateInstance(gomock.Any(), instanceID, map[string]interface{}{"status": model.WorkflowRunning}).Return(nil),
		)

		assert.NoError(t, svc.Pause(ctx, instanceID))
		assert.NoError(t, svc.Resume(ctx, instanceID))
	})

	t.Run("resume of a running instance is an invalid transition", func(t *testing.T) {
		workflows := mocks.NewMockWorkflowRepositoryIface(ctrl)
		svc := service.NewWorkflowService(workflows, &fakeAuthorizer{})

		workflows.EXPECT().FindInstance(gomock.Any(), orgID, instanceID).Return(running(), nil)

		err := svc.Resume(ctx, instanceID)
		assert.True(t, domain.IsInvalidState(err))
	})
}
