package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/mocks"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeAuthorizer satisfies the approval service's authorizer slice without the
// full engine behind it.
type fakeAuthorizer struct {
	enforceErr error
	approverID uuid.UUID
	resolveErr error
}

func (f *fakeAuthorizer) Enforce(ctx context.Context, userID uuid.UUID, permission string) error {
	return f.enforceErr
}

func (f *fakeAuthorizer) ResolveApprover(ctx context.Context, orgID uuid.UUID, user *model.User, module string) (uuid.UUID, error) {
	return f.approverID, f.resolveErr
}

// recordingNotifier captures notification calls for assertions.
type recordingNotifier struct {
	assigned  []uuid.UUID
	escalated []uuid.UUID
	decided   int
}

func (n *recordingNotifier) ApprovalAssigned(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID) {
	n.assigned = append(n.assigned, approverID)
}

func (n *recordingNotifier) ApprovalEscalated(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID) {
	n.escalated = append(n.escalated, approverID)
}

func (n *recordingNotifier) ApprovalDecided(ctx context.Context, approval *model.ApprovalRequest) {
	n.decided++
}

func TestSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	submitterID := uuid.New()
	approverID := uuid.New()
	docID := uuid.New()
	ctx := scopedContext(orgID, submitterID)

	submitter := &model.User{ID: submitterID, OrganizationID: orgID, IsActive: true}

	t.Run("no approval model yields no record", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		approvals.EXPECT().FindOpenByDocument(gomock.Any(), orgID, "voucher", docID).
			Return(nil, domain.ErrApprovalNotFound)
		settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
			Return(&model.OrganizationApprovalSettings{Model: model.ApprovalModelNone}, nil)

		approval, err := svc.Submit(ctx, service.SubmitInput{
			DocumentType: "voucher",
			DocumentID:   docID,
			Amount:       10_000,
		})
		assert.NoError(t, err)
		assert.Nil(t, approval)
	})

	t.Run("below threshold auto-approves with an audit record", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		threshold := int64(50_000)
		approvals.EXPECT().FindOpenByDocument(gomock.Any(), orgID, "voucher", docID).
			Return(nil, domain.ErrApprovalNotFound)
		settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
			Return(&model.OrganizationApprovalSettings{
				Model:                model.ApprovalModelLevel1,
				AutoApproveThreshold: &threshold,
			}, nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *model.ApprovalRequest, h *model.ApprovalHistory) error {
				assert.Equal(t, model.ApprovalApproved, a.Status)
				assert.Equal(t, model.DecisionApproved, a.FinalDecision)
				assert.NotNil(t, a.DecidedAt)
				assert.Equal(t, model.ApprovalCreated, h.PreviousStatus)
				assert.Equal(t, model.ApprovalApproved, h.NewStatus)
				return nil
			})

		approval, err := svc.Submit(ctx, service.SubmitInput{
			DocumentType: "voucher",
			DocumentID:   docID,
			Amount:       25_000,
		})
		assert.NoError(t, err)
		assert.Equal(t, model.ApprovalApproved, approval.Status)
	})

	t.Run("above threshold opens pending approval and notifies", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		notifier := &recordingNotifier{}
		svc := service.NewApprovalService(approvals, settings, users, &fakeAuthorizer{approverID: approverID}, notifier)

		approvals.EXPECT().FindOpenByDocument(gomock.Any(), orgID, "voucher", docID).
			Return(nil, domain.ErrApprovalNotFound)
		settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
			Return(&model.OrganizationApprovalSettings{
				Model:             model.ApprovalModelLevel1,
				EscalationTimeout: 48 * time.Hour,
			}, nil)
		users.EXPECT().FindByID(gomock.Any(), orgID, submitterID).Return(submitter, nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *model.ApprovalRequest, h *model.ApprovalHistory) error {
				assert.Equal(t, model.ApprovalPending, a.Status)
				assert.Equal(t, approverID, *a.CurrentApproverID)
				assert.NotNil(t, a.Deadline)
				assert.Equal(t, model.ApprovalCreated, h.PreviousStatus)
				assert.Equal(t, model.ApprovalPending, h.NewStatus)
				return nil
			})

		approval, err := svc.Submit(ctx, service.SubmitInput{
			DocumentType: "voucher",
			DocumentID:   docID,
			Amount:       100_000,
		})
		assert.NoError(t, err)
		assert.Equal(t, model.ApprovalPending, approval.Status)
		assert.Equal(t, []uuid.UUID{approverID}, notifier.assigned)
	})

	t.Run("open approval on the document blocks resubmission", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		approvals.EXPECT().FindOpenByDocument(gomock.Any(), orgID, "voucher", docID).
			Return(&model.ApprovalRequest{ID: uuid.New(), Status: model.ApprovalPending}, nil)

		_, err := svc.Submit(ctx, service.SubmitInput{
			DocumentType: "voucher",
			DocumentID:   docID,
			Amount:       100_000,
		})
		assert.ErrorIs(t, err, domain.ErrApprovalOpen)
	})

	t.Run("no resolvable approver falls back to the pool", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		poolMember := uuid.New()
		svc := service.NewApprovalService(approvals, settings, users, &fakeAuthorizer{}, nil)

		approvals.EXPECT().FindOpenByDocument(gomock.Any(), orgID, "voucher", docID).
			Return(nil, domain.ErrApprovalNotFound)
		settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
			Return(&model.OrganizationApprovalSettings{
				Model:            model.ApprovalModelLevel1,
				FinalApproverIDs: pq.StringArray{poolMember.String()},
			}, nil)
		users.EXPECT().FindByID(gomock.Any(), orgID, submitterID).Return(submitter, nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		approval, err := svc.Submit(ctx, service.SubmitInput{
			DocumentType: "voucher",
			DocumentID:   docID,
			Amount:       100_000,
		})
		assert.NoError(t, err)
		assert.Equal(t, poolMember, *approval.CurrentApproverID)
	})

	t.Run("submitter without permission is refused", func(t *testing.T) {
		svc := service.NewApprovalService(nil, nil, nil,
			&fakeAuthorizer{enforceErr: domain.PermissionDenied("vouchers.submit")}, nil)

		_, err := svc.Submit(ctx, service.SubmitInput{
			DocumentType: "voucher",
			DocumentID:   docID,
			Amount:       100_000,
		})
		assert.True(t, domain.IsPermissionDenied(err))
	})
}

func TestDecide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	approverID := uuid.New()
	approvalID := uuid.New()
	ctx := scopedContext(orgID, approverID)

	pending := func() *model.ApprovalRequest {
		return &model.ApprovalRequest{
			ID:                approvalID,
			OrganizationID:    orgID,
			Status:            model.ApprovalPending,
			CurrentApproverID: &approverID,
			SubmittedByID:     uuid.New(),
		}
	}

	t.Run("single-level approve is final", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		notifier := &recordingNotifier{}
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, notifier)

		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(pending(), nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1}, nil),
			approvals.EXPECT().ApplyTransition(gomock.Any(), approvalID, model.ApprovalPending, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ model.ApprovalStatus, updates map[string]interface{}, _ ...*model.ApprovalHistory) error {
					assert.Equal(t, model.ApprovalApproved, updates["status"])
					assert.Equal(t, approverID, updates["level1_approver_id"])
					return nil
				}),
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).
				Return(&model.ApprovalRequest{ID: approvalID, OrganizationID: orgID, Status: model.ApprovalApproved}, nil),
		)

		updated, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionApproved,
			Comments:   "looks fine",
		})
		assert.NoError(t, err)
		assert.Equal(t, model.ApprovalApproved, updated.Status)
		assert.Equal(t, 1, notifier.decided)
	})

	t.Run("two-level first approve hands record to the pool", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		notifier := &recordingNotifier{}
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, notifier)

		finalApprover := uuid.New()
		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(pending(), nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{
					Model:            model.ApprovalModelLevel2,
					FinalApproverIDs: pq.StringArray{finalApprover.String()},
				}, nil),
			approvals.EXPECT().ApplyTransition(gomock.Any(), approvalID, model.ApprovalPending, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ model.ApprovalStatus, updates map[string]interface{}, _ ...*model.ApprovalHistory) error {
					assert.Equal(t, model.ApprovalLevel1Approved, updates["status"])
					assert.Equal(t, finalApprover, updates["current_approver_id"])
					return nil
				}),
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).
				Return(&model.ApprovalRequest{ID: approvalID, OrganizationID: orgID, Status: model.ApprovalLevel1Approved, CurrentApproverID: &finalApprover}, nil),
		)

		updated, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionApproved,
		})
		assert.NoError(t, err)
		assert.Equal(t, model.ApprovalLevel1Approved, updated.Status)
		assert.Equal(t, []uuid.UUID{finalApprover}, notifier.assigned)
		assert.Equal(t, 0, notifier.decided)
	})

	t.Run("level-2 sign-off restricted to pool members", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		atLevel1 := pending()
		atLevel1.Status = model.ApprovalLevel1Approved
		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(atLevel1, nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{
					Model:            model.ApprovalModelLevel2,
					FinalApproverIDs: pq.StringArray{uuid.New().String()},
				}, nil),
		)

		_, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionApproved,
		})
		assert.ErrorIs(t, err, domain.ErrNotEligible)
	})

	t.Run("escalated past level 1 closes at the final level", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		notifier := &recordingNotifier{}
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, notifier)

		// The record completed level 1, then sat past its deadline. The
		// escalation target closes it; pool membership is not required.
		level1At := time.Now().UTC().Add(-48 * time.Hour)
		escalated := pending()
		escalated.Status = model.ApprovalEscalated
		escalated.Level1ApprovedAt = &level1At

		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(escalated, nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{
					Model:            model.ApprovalModelLevel2,
					FinalApproverIDs: pq.StringArray{uuid.New().String()},
				}, nil),
			approvals.EXPECT().ApplyTransition(gomock.Any(), approvalID, model.ApprovalEscalated, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ model.ApprovalStatus, updates map[string]interface{}, histories ...*model.ApprovalHistory) error {
					assert.Equal(t, model.ApprovalApproved, updates["status"])
					assert.Equal(t, approverID, updates["level2_approver_id"])
					assert.NotContains(t, updates, "level1_approver_id")
					require.Len(t, histories, 1)
					assert.Equal(t, model.ApprovalEscalated, histories[0].PreviousStatus)
					assert.Equal(t, model.ApprovalApproved, histories[0].NewStatus)
					return nil
				}),
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).
				Return(&model.ApprovalRequest{ID: approvalID, OrganizationID: orgID, Status: model.ApprovalApproved}, nil),
		)

		updated, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionApproved,
		})
		assert.NoError(t, err)
		assert.Equal(t, model.ApprovalApproved, updated.Status)
	})

	t.Run("escalated before level 1 runs level 1", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		notifier := &recordingNotifier{}
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, notifier)

		escalated := pending()
		escalated.Status = model.ApprovalEscalated

		finalApprover := uuid.New()
		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(escalated, nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{
					Model:            model.ApprovalModelLevel2,
					FinalApproverIDs: pq.StringArray{finalApprover.String()},
				}, nil),
			approvals.EXPECT().ApplyTransition(gomock.Any(), approvalID, model.ApprovalEscalated, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ model.ApprovalStatus, updates map[string]interface{}, histories ...*model.ApprovalHistory) error {
					assert.Equal(t, model.ApprovalLevel1Approved, updates["status"])
					assert.Equal(t, approverID, updates["level1_approver_id"])
					require.Len(t, histories, 1)
					assert.Equal(t, model.ApprovalEscalated, histories[0].PreviousStatus)
					assert.Equal(t, model.ApprovalLevel1Approved, histories[0].NewStatus)
					return nil
				}),
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).
				Return(&model.ApprovalRequest{ID: approvalID, OrganizationID: orgID, Status: model.ApprovalLevel1Approved, CurrentApproverID: &finalApprover}, nil),
		)

		updated, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionApproved,
		})
		assert.NoError(t, err)
		assert.Equal(t, model.ApprovalLevel1Approved, updated.Status)
		assert.Equal(t, []uuid.UUID{finalApprover}, notifier.assigned)
	})

	t.Run("reject is terminal from any decidable state", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(pending(), nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel2}, nil),
			approvals.EXPECT().ApplyTransition(gomock.Any(), approvalID, model.ApprovalPending, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ model.ApprovalStatus, updates map[string]interface{}, _ ...*model.ApprovalHistory) error {
					assert.Equal(t, model.ApprovalRejected, updates["status"])
					assert.Equal(t, model.DecisionRejected, updates["final_decision"])
					return nil
				}),
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).
				Return(&model.ApprovalRequest{ID: approvalID, OrganizationID: orgID, Status: model.ApprovalRejected}, nil),
		)

		updated, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionRejected,
			Comments:   "wrong cost center",
		})
		assert.NoError(t, err)
		assert.Equal(t, model.ApprovalRejected, updated.Status)
	})

	t.Run("delegation requires a delegate", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(pending(), nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1}, nil),
		)

		_, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionDelegated,
		})
		assert.ErrorIs(t, err, domain.ErrDelegateRequired)
	})

	t.Run("delegation reassigns and resets to pending", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		notifier := &recordingNotifier{}
		svc := service.NewApprovalService(approvals, settings, users, &fakeAuthorizer{}, notifier)

		delegateID := uuid.New()
		gomock.InOrder(
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(pending(), nil),
			settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
				Return(&model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1}, nil),
			users.EXPECT().FindByID(gomock.Any(), orgID, delegateID).
				Return(&model.User{ID: delegateID, IsActive: true}, nil),
			approvals.EXPECT().ApplyTransition(gomock.Any(), approvalID, model.ApprovalPending, gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ model.ApprovalStatus, updates map[string]interface{}, histories ...*model.ApprovalHistory) error {
					assert.Equal(t, model.ApprovalPending, updates["status"])
					assert.Equal(t, delegateID, updates["current_approver_id"])
					// Two rows: into delegated, back to pending.
					assert.Len(t, histories, 2)
					assert.Equal(t, model.ApprovalDelegated, histories[0].NewStatus)
					assert.Equal(t, model.ApprovalPending, histories[1].NewStatus)
					return nil
				}),
			approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).
				Return(&model.ApprovalRequest{ID: approvalID, OrganizationID: orgID, Status: model.ApprovalPending, CurrentApproverID: &delegateID}, nil),
		)

		_, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID:       approvalID,
			Decision:         model.DecisionDelegated,
			DelegatedTo:      &delegateID,
			DelegationReason: "on leave this week",
		})
		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{delegateID}, notifier.assigned)
	})

	t.Run("wrong approver is forbidden", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, nil, nil, &fakeAuthorizer{}, nil)

		someoneElse := uuid.New()
		record := pending()
		record.CurrentApproverID = &someoneElse
		approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(record, nil)

		_, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionApproved,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("terminal approval cannot be decided again", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, nil, nil, &fakeAuthorizer{}, nil)

		record := pending()
		record.Status = model.ApprovalApproved
		approvals.EXPECT().FindByID(gomock.Any(), orgID, approvalID).Return(record, nil)

		_, err := svc.Decide(ctx, service.DecideInput{
			ApprovalID: approvalID,
			Decision:   model.DecisionApproved,
		})
		assert.True(t, domain.IsInvalidState(err))
	})
}

func TestBulkDecide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	approverID := uuid.New()
	ctx := scopedContext(orgID, approverID)

	okID := uuid.New()
	missingID := uuid.New()
	foreignID := uuid.New()

	approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
	settings := mocks.NewMockSettingsRepositoryIface(ctrl)
	svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

	otherApprover := uuid.New()
	approvals.EXPECT().FindByID(gomock.Any(), orgID, okID).
		Return(&model.ApprovalRequest{ID: okID, OrganizationID: orgID, Status: model.ApprovalPending, CurrentApproverID: &approverID}, nil)
	settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
		Return(&model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1}, nil)
	approvals.EXPECT().ApplyTransition(gomock.Any(), okID, model.ApprovalPending, gomock.Any(), gomock.Any()).Return(nil)
	approvals.EXPECT().FindByID(gomock.Any(), orgID, okID).
		Return(&model.ApprovalRequest{ID: okID, OrganizationID: orgID, Status: model.ApprovalApproved}, nil)

	approvals.EXPECT().FindByID(gomock.Any(), orgID, missingID).Return(nil, domain.ErrApprovalNotFound)
	approvals.EXPECT().FindByID(gomock.Any(), orgID, foreignID).
		Return(&model.ApprovalRequest{ID: foreignID, OrganizationID: orgID, Status: model.ApprovalPending, CurrentApproverID: &otherApprover}, nil)

	result, err := svc.BulkDecide(ctx, service.BulkDecideInput{
		ApprovalIDs: []uuid.UUID{okID, missingID, foreignID},
		Decision:    model.DecisionApproved,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Len(t, result.Items, 3)
	assert.True(t, result.Items[0].Succeeded)
	assert.Equal(t, "not found", result.Items[1].Reason)
	assert.Equal(t, "not assigned to actor", result.Items[2].Reason)
}

func TestEscalateOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	targetID := uuid.New()
	now := time.Now().UTC()

	orgSettings := &model.OrganizationApprovalSettings{
		Model:              model.ApprovalModelLevel1,
		EscalationTimeout:  24 * time.Hour,
		EscalationTargetID: &targetID,
	}

	t.Run("overdue approvals move to the escalation target", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		notifier := &recordingNotifier{}
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, notifier)

		first := &model.ApprovalRequest{ID: uuid.New(), OrganizationID: orgID, Status: model.ApprovalPending}
		second := &model.ApprovalRequest{ID: uuid.New(), OrganizationID: orgID, Status: model.ApprovalPending}
		approvals.EXPECT().ListPendingPastDeadline(gomock.Any(), now, 200).
			Return([]*model.ApprovalRequest{first, second}, nil)
		// Settings load once per organization, not per row.
		settings.EXPECT().GetByOrganization(gomock.Any(), orgID).Return(orgSettings, nil).Times(1)
		approvals.EXPECT().ApplyTransition(gomock.Any(), first.ID, model.ApprovalPending, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ model.ApprovalStatus, updates map[string]interface{}, _ ...*model.ApprovalHistory) error {
				assert.Equal(t, model.ApprovalEscalated, updates["status"])
				assert.Equal(t, targetID, updates["current_approver_id"])
				return nil
			})
		approvals.EXPECT().ApplyTransition(gomock.Any(), second.ID, model.ApprovalPending, gomock.Any(), gomock.Any()).Return(nil)

		count, err := svc.EscalateOverdue(context.Background(), now, 200)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, []uuid.UUID{targetID, targetID}, notifier.escalated)
	})

	t.Run("row decided mid-scan is skipped", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		raced := &model.ApprovalRequest{ID: uuid.New(), OrganizationID: orgID, Status: model.ApprovalPending}
		approvals.EXPECT().ListPendingPastDeadline(gomock.Any(), now, 200).
			Return([]*model.ApprovalRequest{raced}, nil)
		settings.EXPECT().GetByOrganization(gomock.Any(), orgID).Return(orgSettings, nil)
		approvals.EXPECT().ApplyTransition(gomock.Any(), raced.ID, model.ApprovalPending, gomock.Any(), gomock.Any()).
			Return(domain.InvalidState("approval", "approved", "escalated"))

		count, err := svc.EscalateOverdue(context.Background(), now, 200)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("organization without escalation config is skipped", func(t *testing.T) {
		approvals := mocks.NewMockApprovalRepositoryIface(ctrl)
		settings := mocks.NewMockSettingsRepositoryIface(ctrl)
		svc := service.NewApprovalService(approvals, settings, nil, &fakeAuthorizer{}, nil)

		row := &model.ApprovalRequest{ID: uuid.New(), OrganizationID: orgID, Status: model.ApprovalPending}
		approvals.EXPECT().ListPendingPastDeadline(gomock.Any(), now, 200).
			Return([]*model.ApprovalRequest{row}, nil)
		settings.EXPECT().GetByOrganization(gomock.Any(), orgID).
			Return(&model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1}, nil)

		count, err := svc.EscalateOverdue(context.Background(), now, 200)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestEvaluatePolicy(t *testing.T) {
	threshold := int64(50_000)

	tests := []struct {
		name     string
		settings *model.OrganizationApprovalSettings
		amount   int64
		want     service.PolicyOutcome
	}{
		{
			name:     "nil settings means no approvals",
			settings: nil,
			amount:   100_000,
			want:     service.PolicyNoApproval,
		},
		{
			name:     "model none means no approvals",
			settings: &model.OrganizationApprovalSettings{Model: model.ApprovalModelNone},
			amount:   100_000,
			want:     service.PolicyNoApproval,
		},
		{
			name:     "at threshold auto-approves",
			settings: &model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1, AutoApproveThreshold: &threshold},
			amount:   50_000,
			want:     service.PolicyAutoApproved,
		},
		{
			name:     "above threshold requires sign-off",
			settings: &model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1, AutoApproveThreshold: &threshold},
			amount:   50_001,
			want:     service.PolicyLevel1,
		},
		{
			name:     "no threshold never auto-approves",
			settings: &model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel1},
			amount:   0,
			want:     service.PolicyLevel1,
		},
		{
			name:     "two-level model above threshold",
			settings: &model.OrganizationApprovalSettings{Model: model.ApprovalModelLevel2, AutoApproveThreshold: &threshold},
			amount:   75_000,
			want:     service.PolicyLevel2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.EvaluatePolicy(tt.settings, tt.amount))
		})
	}
}
