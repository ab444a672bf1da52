// internal/repository/approval.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"gorm.io/gorm"
)

// ApprovalRepositoryIface is the persistence surface of the approval state
// machine. Every state change and its history row commit in one transaction:
// no orphaned history without a matching state change, and vice versa.
type ApprovalRepositoryIface interface {
	// Create inserts the approval and its initial history row atomically.
	// Fails with domain.ErrApprovalOpen when the document already has a
	// non-terminal approval.
	Create(ctx context.Context, approval *model.ApprovalRequest, history *model.ApprovalHistory) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.ApprovalRequest, error)
	FindOpenByDocument(ctx context.Context, orgID uuid.UUID, documentType string, documentID uuid.UUID) (*model.ApprovalRequest, error)
	// ApplyTransition performs a conditional update-on-expected-state plus the
	// history appends in one transaction. When the row is no longer in the
	// expected state, meaning a concurrent decision won, it fails with
	// domain.InvalidStateError and writes nothing. Delegation passes two
	// history rows so the log keeps every intermediate transition.
	ApplyTransition(ctx context.Context, approvalID uuid.UUID, expected model.ApprovalStatus, updates map[string]interface{}, histories ...*model.ApprovalHistory) error
	ListPendingForApprover(ctx context.Context, orgID, approverID uuid.UUID) ([]*model.ApprovalRequest, error)
	// ListPendingPastDeadline feeds the periodic escalation scan. It spans
	// organizations: the scan is a system actor, not a tenant operation.
	ListPendingPastDeadline(ctx context.Context, now time.Time, limit int) ([]*model.ApprovalRequest, error)
	ListHistory(ctx context.Context, orgID, approvalID uuid.UUID) ([]*model.ApprovalHistory, error)
}

type ApprovalRepository struct {
	db *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

func (r *ApprovalRepository) Create(ctx context.Context, approval *model.ApprovalRequest, history *model.ApprovalHistory) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.ApprovalRequest{}).
			Where("organization_id = ? AND document_type = ? AND document_id = ? AND status NOT IN ?",
				approval.OrganizationID, approval.DocumentType, approval.DocumentID,
				[]model.ApprovalStatus{model.ApprovalApproved, model.ApprovalRejected}).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("checking open approvals: %w", err)
		}
		if count > 0 {
			return domain.ErrApprovalOpen
		}

		if err := tx.Create(approval).Error; err != nil {
			return fmt.Errorf("creating approval: %w", err)
		}

		history.ApprovalID = approval.ID
		history.OrganizationID = approval.OrganizationID
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("creating approval history: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrApprovalOpen) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ApprovalRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.ApprovalRequest, error) {
	var approval model.ApprovalRequest
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&approval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApprovalNotFound
		}
		return nil, fmt.Errorf("finding approval: %w", err)
	}
	return &approval, nil
}

func (r *ApprovalRepository) FindOpenByDocument(ctx context.Context, orgID uuid.UUID, documentType string, documentID uuid.UUID) (*model.ApprovalRequest, error) {
	var approval model.ApprovalRequest
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND document_type = ? AND document_id = ? AND status NOT IN ?",
			orgID, documentType, documentID,
			[]model.ApprovalStatus{model.ApprovalApproved, model.ApprovalRejected}).
		First(&approval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApprovalNotFound
		}
		return nil, fmt.Errorf("finding open approval: %w", err)
	}
	return &approval, nil
}

func (r *ApprovalRepository) ApplyTransition(ctx context.Context, approvalID uuid.UUID, expected model.ApprovalStatus, updates map[string]interface{}, histories ...*model.ApprovalHistory) error {
	// The history log must stay replayable against the transition table, so an
	// illegal edge is refused before anything is written.
	for _, history := range histories {
		if !model.CanTransition(history.PreviousStatus, history.NewStatus) {
			return domain.InvalidState("approval", string(history.PreviousStatus), string(history.NewStatus))
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serializes concurrent decisions: exactly one caller moves the row
		// off the expected state, everyone else affects zero rows.
		result := tx.Model(&model.ApprovalRequest{}).
			Where("id = ? AND status = ?", approvalID, expected).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("updating approval: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.InvalidState("approval", "", "")
		}

		for _, history := range histories {
			history.ApprovalID = approvalID
			if err := tx.Create(history).Error; err != nil {
				return fmt.Errorf("creating approval history: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if domain.IsInvalidState(err) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ApprovalRepository) ListPendingForApprover(ctx context.Context, orgID, approverID uuid.UUID) ([]*model.ApprovalRequest, error) {
	var approvals []*model.ApprovalRequest
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND current_approver_id = ? AND status IN ?",
			orgID, approverID,
			[]model.ApprovalStatus{model.ApprovalPending, model.ApprovalLevel1Approved, model.ApprovalEscalated}).
		Order("created_at ASC").
		Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("listing pending approvals: %w", err)
	}
	return approvals, nil
}

func (r *ApprovalRepository) ListPendingPastDeadline(ctx context.Context, now time.Time, limit int) ([]*model.ApprovalRequest, error) {
	if limit <= 0 {
		limit = 100
	}
	var approvals []*model.ApprovalRequest
	err := r.db.WithContext(ctx).
		Where("status IN ? AND deadline IS NOT NULL AND deadline < ?",
			[]model.ApprovalStatus{model.ApprovalPending, model.ApprovalLevel1Approved}, now).
		Order("deadline ASC").
		Limit(limit).
		Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("listing overdue approvals: %w", err)
	}
	return approvals, nil
}

func (r *ApprovalRepository) ListHistory(ctx context.Context, orgID, approvalID uuid.UUID) ([]*model.ApprovalHistory, error) {
	var rows []*model.ApprovalHistory
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND approval_id = ?", orgID, approvalID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing approval history: %w", err)
	}
	return rows, nil
}
