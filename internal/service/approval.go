// internal/service/approval.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/tenant"
)

// Authorizer is the slice of the authorization engine the approval machine
// needs: permission enforcement on submission and approver-chain resolution.
type Authorizer interface {
	Enforce(ctx context.Context, userID uuid.UUID, permission string) error
	ResolveApprover(ctx context.Context, orgID uuid.UUID, user *model.User, module string) (uuid.UUID, error)
}

// Notifier delivers best-effort approval notifications. Failures are logged,
// never propagated.
type Notifier interface {
	ApprovalAssigned(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID)
	ApprovalEscalated(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID)
	ApprovalDecided(ctx context.Context, approval *model.ApprovalRequest)
}

// documentModules maps document types onto the module owning their submit
// permission.
var documentModules = map[string]string{
	"voucher": model.ModuleVouchers,
	"invoice": model.ModuleInvoices,
}

// ApprovalService drives the per-document approval state machine.
type ApprovalService struct {
	approvals repository.ApprovalRepositoryIface
	settings  repository.SettingsRepositoryIface
	users     repository.UserRepositoryIface
	authz     Authorizer
	notifier  Notifier
	validate  *validator.Validate
}

func NewApprovalService(
	approvals repository.ApprovalRepositoryIface,
	settings repository.SettingsRepositoryIface,
	users repository.UserRepositoryIface,
	authz Authorizer,
	notifier Notifier,
) *ApprovalService {
	return &ApprovalService{
		approvals: approvals,
		settings:  settings,
		users:     users,
		authz:     authz,
		notifier:  notifier,
		validate:  validator.New(),
	}
}

type SubmitInput struct {
	DocumentType string     `json:"document_type" validate:"required,lowercase"`
	DocumentID   uuid.UUID  `json:"document_id" validate:"required"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	Amount       int64      `json:"amount" validate:"gte=0"`
}

// Submit consults the organization's approval policy and opens an approval
// for the document when one is required. A below-threshold amount still
// records a terminal approval so the audit trail has no gaps. Returns nil
// when the organization runs without approvals.
func (s *ApprovalService) Submit(ctx context.Context, input SubmitInput) (*model.ApprovalRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	submitterID, err := tenant.UserID(ctx)
	if err != nil {
		return nil, err
	}

	module := moduleForDocument(input.DocumentType)
	if err := s.authz.Enforce(ctx, submitterID, model.PermissionName(module, "submit")); err != nil {
		return nil, err
	}

	// One open approval per document. A resubmission while the first is
	// undecided is rejected, not merged.
	if open, err := s.approvals.FindOpenByDocument(ctx, orgID, input.DocumentType, input.DocumentID); err != nil {
		if !errors.Is(err, domain.ErrApprovalNotFound) && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	} else if open != nil {
		return nil, domain.ErrApprovalOpen
	}

	settings, err := s.settings.GetByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	outcome := EvaluatePolicy(settings, input.Amount)
	switch outcome {
	case PolicyNoApproval:
		return nil, nil

	case PolicyAutoApproved:
		approval := &model.ApprovalRequest{
			OrganizationID: orgID,
			CompanyID:      input.CompanyID,
			DocumentType:   input.DocumentType,
			DocumentID:     input.DocumentID,
			Amount:         input.Amount,
			Status:         model.ApprovalApproved,
			SubmittedByID:  submitterID,
			FinalDecision:  model.DecisionApproved,
			DecidedAt:      &now,
		}
		history := &model.ApprovalHistory{
			PreviousStatus: model.ApprovalCreated,
			NewStatus:      model.ApprovalApproved,
			ActorID:        submitterID,
			Comment:        "auto-approved below threshold",
		}
		if err := s.approvals.Create(ctx, approval, history); err != nil {
			return nil, err
		}
		return approval, nil
	}

	submitter, err := s.users.FindByID(ctx, orgID, submitterID)
	if err != nil {
		return nil, err
	}
	approverID, err := s.authz.ResolveApprover(ctx, orgID, submitter, module)
	if err != nil {
		return nil, err
	}
	if approverID == uuid.Nil {
		// No reporting edge: fall back to the final approver pool.
		approverID = firstPoolMember(settings, uuid.Nil)
	}
	if approverID == uuid.Nil {
		return nil, fmt.Errorf("%w: no approver available for %s", domain.ErrInvalidInput, input.DocumentType)
	}

	approval := &model.ApprovalRequest{
		OrganizationID:    orgID,
		CompanyID:         input.CompanyID,
		DocumentType:      input.DocumentType,
		DocumentID:        input.DocumentID,
		Amount:            input.Amount,
		Status:            model.ApprovalPending,
		SubmittedByID:     submitterID,
		CurrentApproverID: &approverID,
		Deadline:          deadlineFrom(now, settings),
	}
	history := &model.ApprovalHistory{
		PreviousStatus: model.ApprovalCreated,
		NewStatus:      model.ApprovalPending,
		ActorID:        submitterID,
		Comment:        "submitted",
	}
	if err := s.approvals.Create(ctx, approval, history); err != nil {
		return nil, err
	}

	s.notifyAssigned(ctx, approval, approverID)
	return approval, nil
}

type DecideInput struct {
	ApprovalID       uuid.UUID      `json:"approval_id" validate:"required"`
	Decision         model.Decision `json:"decision" validate:"required,oneof=approved rejected delegated"`
	Comments         string         `json:"comments"`
	DelegatedTo      *uuid.UUID     `json:"delegated_to,omitempty"`
	DelegationReason string         `json:"delegation_reason,omitempty"`
}

// Decide applies one approver decision. Exactly one of two concurrent calls
// on the same approval is accepted; the loser sees an InvalidStateError.
func (s *ApprovalService) Decide(ctx context.Context, input DecideInput) (*model.ApprovalRequest, error) {
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

	approval, err := s.approvals.FindByID(ctx, orgID, input.ApprovalID)
	if err != nil {
		return nil, err
	}
	if !approval.Status.Decidable() {
		return nil, domain.InvalidState("approval", string(approval.Status), string(input.Decision))
	}
	if approval.CurrentApproverID == nil || *approval.CurrentApproverID != actorID {
		return nil, domain.ErrForbidden
	}

	settings, err := s.settings.GetByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	switch input.Decision {
	case model.DecisionDelegated:
		err = s.delegate(ctx, approval, actorID, settings, input)
	case model.DecisionApproved:
		err = s.approve(ctx, approval, actorID, settings, input.Comments)
	case model.DecisionRejected:
		err = s.reject(ctx, approval, actorID, input.Comments)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.approvals.FindByID(ctx, orgID, input.ApprovalID)
	if err != nil {
		return nil, err
	}
	if updated.Status.Terminal() {
		s.notifyDecided(ctx, updated)
	}
	return updated, nil
}

// delegate reassigns the approval and resets it to pending with a fresh
// deadline. The level-1 response timestamp is left untouched.
func (s *ApprovalService) delegate(ctx context.Context, approval *model.ApprovalRequest, actorID uuid.UUID, settings *model.OrganizationApprovalSettings, input DecideInput) error {
	if input.DelegatedTo == nil || *input.DelegatedTo == uuid.Nil {
		return domain.ErrDelegateRequired
	}
	delegate, err := s.users.FindByID(ctx, approval.OrganizationID, *input.DelegatedTo)
	if err != nil {
		return err
	}
	if !delegate.IsActive {
		return domain.ErrUserInactive
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":              model.ApprovalPending,
		"current_approver_id": delegate.ID,
		"delegation_reason":   input.DelegationReason,
		"deadline":            deadlineFrom(now, settings),
		"escalated_at":        nil,
	}
	err = s.approvals.ApplyTransition(ctx, approval.ID, approval.Status, updates,
		&model.ApprovalHistory{
			OrganizationID: approval.OrganizationID,
			PreviousStatus: approval.Status,
			NewStatus:      model.ApprovalDelegated,
			ActorID:        actorID,
			Comment:        input.DelegationReason,
		},
		&model.ApprovalHistory{
			OrganizationID: approval.OrganizationID,
			PreviousStatus: model.ApprovalDelegated,
			NewStatus:      model.ApprovalPending,
			ActorID:        actorID,
			Comment:        "reassigned to delegate",
		},
	)
	if err != nil {
		return err
	}

	s.notifyAssigned(ctx, approval, delegate.ID)
	return nil
}

// atFinalLevel reports whether a record has passed level 1. The level-1
// timestamp survives escalation and delegation, so a record escalated out of
// level_1_approved resumes at the final level instead of re-running level 1.
func atFinalLevel(approval *model.ApprovalRequest) bool {
	return approval.Level1ApprovedAt != nil
}

func (s *ApprovalService) approve(ctx context.Context, approval *model.ApprovalRequest, actorID uuid.UUID, settings *model.OrganizationApprovalSettings, comments string) error {
	now := time.Now().UTC()

	// Second-level sign-off closes a record whose level 1 is complete. The
	// pool restriction applies to the regular hand-off; an escalation target
	// holds the record by explicit settings and decides without pool
	// membership.
	if atFinalLevel(approval) {
		if approval.Status == model.ApprovalLevel1Approved && !settings.InFinalApproverPool(actorID) {
			return domain.ErrNotEligible
		}
		updates := map[string]interface{}{
			"status":              model.ApprovalApproved,
			"level2_approver_id":  actorID,
			"level2_approved_at":  now,
			"level2_comment":      comments,
			"final_decision":      model.DecisionApproved,
			"decided_at":          now,
			"current_approver_id": nil,
		}
		return s.approvals.ApplyTransition(ctx, approval.ID, approval.Status, updates,
			&model.ApprovalHistory{
				OrganizationID: approval.OrganizationID,
				PreviousStatus: approval.Status,
				NewStatus:      model.ApprovalApproved,
				ActorID:        actorID,
				Comment:        comments,
			})
	}

	// First sign-off under the two-level model hands the record to the pool.
	if settings.Model == model.ApprovalModelLevel2 {
		nextApprover := firstPoolMember(settings, actorID)
		if nextApprover == uuid.Nil {
			return fmt.Errorf("%w: final approver pool is empty", domain.ErrInvalidInput)
		}
		updates := map[string]interface{}{
			"status":              model.ApprovalLevel1Approved,
			"level1_approver_id":  actorID,
			"level1_approved_at":  now,
			"level1_comment":      comments,
			"current_approver_id": nextApprover,
			"deadline":            deadlineFrom(now, settings),
			"escalated_at":        nil,
		}
		err := s.approvals.ApplyTransition(ctx, approval.ID, approval.Status, updates,
			&model.ApprovalHistory{
				OrganizationID: approval.OrganizationID,
				PreviousStatus: approval.Status,
				NewStatus:      model.ApprovalLevel1Approved,
				ActorID:        actorID,
				Comment:        comments,
			})
		if err != nil {
			return err
		}
		s.notifyAssigned(ctx, approval, nextApprover)
		return nil
	}

	// Single-level model: one approval is final.
	updates := map[string]interface{}{
		"status":              model.ApprovalApproved,
		"level1_approver_id":  actorID,
		"level1_approved_at":  now,
		"level1_comment":      comments,
		"final_decision":      model.DecisionApproved,
		"decided_at":          now,
		"current_approver_id": nil,
	}
	return s.approvals.ApplyTransition(ctx, approval.ID, approval.Status, updates,
		&model.ApprovalHistory{
			OrganizationID: approval.OrganizationID,
			PreviousStatus: approval.Status,
			NewStatus:      model.ApprovalApproved,
			ActorID:        actorID,
			Comment:        comments,
		})
}

func (s *ApprovalService) reject(ctx context.Context, approval *model.ApprovalRequest, actorID uuid.UUID, comments string) error {
	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":              model.ApprovalRejected,
		"final_decision":      model.DecisionRejected,
		"decided_at":          now,
		"current_approver_id": nil,
	}
	if atFinalLevel(approval) {
		updates["level2_approver_id"] = actorID
		updates["level2_approved_at"] = now
		updates["level2_comment"] = comments
	} else {
		updates["level1_approver_id"] = actorID
		updates["level1_approved_at"] = now
		updates["level1_comment"] = comments
	}
	return s.approvals.ApplyTransition(ctx, approval.ID, approval.Status, updates,
		&model.ApprovalHistory{
			OrganizationID: approval.OrganizationID,
			PreviousStatus: approval.Status,
			NewStatus:      model.ApprovalRejected,
			ActorID:        actorID,
			Comment:        comments,
		})
}

// BulkItemResult reports the outcome for one id of a bulk decision.
type BulkItemResult struct {
	ApprovalID uuid.UUID `json:"approval_id"`
	Succeeded  bool      `json:"succeeded"`
	Reason     string    `json:"reason,omitempty"`
}

// BulkResult is the explicit per-id outcome of a bulk decision plus the
// processed count the wire contract promises.
type BulkResult struct {
	Processed int              `json:"processed"`
	Items     []BulkItemResult `json:"items"`
}

type BulkDecideInput struct {
	ApprovalIDs []uuid.UUID    `json:"approval_ids" validate:"required,min=1"`
	Decision    model.Decision `json:"decision" validate:"required,oneof=approved rejected"`
	Comments    string         `json:"comments"`
}

// BulkDecide applies one decision across many approvals. Ids that are absent,
// not owned by the actor, or no longer pending are skipped with a reason
// instead of silently dropped. Delegation is per-approval and not available
// in bulk.
func (s *ApprovalService) BulkDecide(ctx context.Context, input BulkDecideInput) (*BulkResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	result := &BulkResult{Items: make([]BulkItemResult, 0, len(input.ApprovalIDs))}
	for _, id := range input.ApprovalIDs {
		_, err := s.Decide(ctx, DecideInput{
			ApprovalID: id,
			Decision:   input.Decision,
			Comments:   input.Comments,
		})
		item := BulkItemResult{ApprovalID: id, Succeeded: err == nil}
		switch {
		case err == nil:
			result.Processed++
		case errors.Is(err, domain.ErrApprovalNotFound), errors.Is(err, domain.ErrNotFound):
			item.Reason = "not found"
		case errors.Is(err, domain.ErrForbidden):
			item.Reason = "not assigned to actor"
		case domain.IsInvalidState(err):
			item.Reason = "already processed"
		default:
			return nil, err
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}

// EscalateOverdue is the periodic scan entry point: every approval sitting
// past its deadline is handed to the organization's escalation target.
// Repeated scans are idempotent; rows already escalated or decided are not
// selected again and concurrent transitions lose the conditional update.
// batchSize caps one scan's working set; the next scan picks up the rest.
func (s *ApprovalService) EscalateOverdue(ctx context.Context, now time.Time, batchSize int) (int, error) {
	overdue, err := s.approvals.ListPendingPastDeadline(ctx, now, batchSize)
	if err != nil {
		return 0, err
	}

	settingsByOrg := make(map[uuid.UUID]*model.OrganizationApprovalSettings)
	escalated := 0
	for _, approval := range overdue {
		settings, ok := settingsByOrg[approval.OrganizationID]
		if !ok {
			settings, err = s.settings.GetByOrganization(ctx, approval.OrganizationID)
			if err != nil {
				return escalated, err
			}
			settingsByOrg[approval.OrganizationID] = settings
		}
		if settings.EscalationTimeout <= 0 || settings.EscalationTargetID == nil {
			continue
		}

		updates := map[string]interface{}{
			"status":              model.ApprovalEscalated,
			"current_approver_id": *settings.EscalationTargetID,
			"escalated_at":        now,
		}
		err := s.approvals.ApplyTransition(ctx, approval.ID, approval.Status, updates,
			&model.ApprovalHistory{
				OrganizationID: approval.OrganizationID,
				PreviousStatus: approval.Status,
				NewStatus:      model.ApprovalEscalated,
				ActorID:        *settings.EscalationTargetID,
				Comment:        "escalated after deadline",
			})
		if err != nil {
			if domain.IsInvalidState(err) {
				// Raced with a decision or an earlier scan. Nothing to redo.
				continue
			}
			return escalated, err
		}
		escalated++
		s.notifyEscalated(ctx, approval, *settings.EscalationTargetID)
	}
	return escalated, nil
}

// Get returns one approval within the current tenant scope.
func (s *ApprovalService) Get(ctx context.Context, approvalID uuid.UUID) (*model.ApprovalRequest, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.approvals.FindByID(ctx, orgID, approvalID)
}

// History returns the ordered transition log for one approval.
func (s *ApprovalService) History(ctx context.Context, approvalID uuid.UUID) ([]*model.ApprovalHistory, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.approvals.FindByID(ctx, orgID, approvalID); err != nil {
		return nil, err
	}
	return s.approvals.ListHistory(ctx, orgID, approvalID)
}

// PendingForActor lists the approvals currently awaiting the acting user.
func (s *ApprovalService) PendingForActor(ctx context.Context) ([]*model.ApprovalRequest, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := tenant.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.approvals.ListPendingForApprover(ctx, orgID, userID)
}

func (s *ApprovalService) notifyAssigned(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID) {
	if s.notifier == nil {
		return
	}
	s.notifier.ApprovalAssigned(ctx, approval, approverID)
}

func (s *ApprovalService) notifyEscalated(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID) {
	if s.notifier == nil {
		return
	}
	s.notifier.ApprovalEscalated(ctx, approval, approverID)
}

func (s *ApprovalService) notifyDecided(ctx context.Context, approval *model.ApprovalRequest) {
	if s.notifier == nil {
		return
	}
	s.notifier.ApprovalDecided(ctx, approval)
}

func moduleForDocument(documentType string) string {
	if module, ok := documentModules[documentType]; ok {
		return module
	}
	slog.Debug("unmapped document type, using as module", "document_type", documentType)
	return documentType
}

// firstPoolMember returns the first pool member other than exclude.
func firstPoolMember(settings *model.OrganizationApprovalSettings, exclude uuid.UUID) uuid.UUID {
	for _, raw := range settings.FinalApproverIDs {
		id, err := uuid.Parse(raw)
		if err != nil || id == exclude {
			continue
		}
		return id
	}
	return uuid.Nil
}

func deadlineFrom(now time.Time, settings *model.OrganizationApprovalSettings) *time.Time {
	if settings.EscalationTimeout <= 0 {
		return nil
	}
	d := now.Add(settings.EscalationTimeout)
	return &d
}
