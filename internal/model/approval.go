// internal/model/approval.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ApprovalModel selects how many sign-off levels an organization requires.
type ApprovalModel string

const (
	ApprovalModelNone   ApprovalModel = "none"
	ApprovalModelLevel1 ApprovalModel = "level_1"
	ApprovalModelLevel2 ApprovalModel = "level_2"
)

// ApprovalStatus is the state of an approval record.
type ApprovalStatus string

const (
	// ApprovalCreated is the empty previous status on a creation history row;
	// it is never a stored request status.
	ApprovalCreated        ApprovalStatus = ""
	ApprovalPending        ApprovalStatus = "pending"
	ApprovalLevel1Approved ApprovalStatus = "level_1_approved"
	ApprovalApproved       ApprovalStatus = "approved"
	ApprovalRejected       ApprovalStatus = "rejected"
	ApprovalDelegated      ApprovalStatus = "delegated"
	ApprovalEscalated      ApprovalStatus = "escalated"
)

// approvalTransitions is the closed transition table. Terminal states have no
// outgoing edges. An escalated record resumes at whichever level it left, so
// escalation keeps both decision edges plus the return to level 1.
var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalCreated:        {ApprovalPending, ApprovalApproved},
	ApprovalPending:        {ApprovalLevel1Approved, ApprovalApproved, ApprovalRejected, ApprovalDelegated, ApprovalEscalated},
	ApprovalLevel1Approved: {ApprovalApproved, ApprovalRejected, ApprovalEscalated},
	ApprovalDelegated:      {ApprovalPending},
	ApprovalEscalated:      {ApprovalLevel1Approved, ApprovalApproved, ApprovalRejected, ApprovalDelegated},
	ApprovalApproved:       nil,
	ApprovalRejected:       nil,
}

// CanTransition reports whether from → to is an accepted approval transition.
func CanTransition(from, to ApprovalStatus) bool {
	for _, next := range approvalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// Decidable reports whether an approver may still act on an approval in s.
func (s ApprovalStatus) Decidable() bool {
	return s == ApprovalPending || s == ApprovalLevel1Approved || s == ApprovalEscalated
}

// Decision is what an approver submits against an open approval.
type Decision string

const (
	DecisionApproved  Decision = "approved"
	DecisionRejected  Decision = "rejected"
	DecisionDelegated Decision = "delegated"
)

// ApprovalRequest is one approval lineage per (document type, document id).
// At most one open approval exists per document. Rows are created on
// submission — already terminal when auto-approved — and are mutated only via
// the state machine, never deleted.
type ApprovalRequest struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	CompanyID      *uuid.UUID     `gorm:"type:uuid;index" json:"company_id,omitempty"`
	DocumentType   string         `gorm:"type:text;not null;index:idx_approval_document" json:"document_type"`
	DocumentID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_approval_document" json:"document_id"`
	Amount         int64          `gorm:"not null;default:0" json:"amount"`
	Status         ApprovalStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`

	SubmittedByID     uuid.UUID  `gorm:"type:uuid;not null" json:"submitted_by_id"`
	CurrentApproverID *uuid.UUID `gorm:"type:uuid;index" json:"current_approver_id,omitempty"`

	Level1ApproverID *uuid.UUID `gorm:"type:uuid" json:"level_1_approver_id,omitempty"`
	Level1ApprovedAt *time.Time `json:"level_1_approved_at,omitempty"`
	Level1Comment    string     `gorm:"type:text" json:"level_1_comment,omitempty"`

	Level2ApproverID *uuid.UUID `gorm:"type:uuid" json:"level_2_approver_id,omitempty"`
	Level2ApprovedAt *time.Time `json:"level_2_approved_at,omitempty"`
	Level2Comment    string     `gorm:"type:text" json:"level_2_comment,omitempty"`

	FinalDecision    Decision   `gorm:"type:text" json:"final_decision,omitempty"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
	DelegationReason string     `gorm:"type:text" json:"delegation_reason,omitempty"`

	Deadline    *time.Time `json:"deadline,omitempty"`
	EscalatedAt *time.Time `json:"escalated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApprovalHistory is the append-only transition log. Rows are never mutated
// after insert; for one approval they form a total order matching accepted
// transitions.
type ApprovalHistory struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	ApprovalID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"approval_id"`
	PreviousStatus ApprovalStatus `gorm:"type:text;not null" json:"previous_status"`
	NewStatus      ApprovalStatus `gorm:"type:text;not null" json:"new_status"`
	ActorID        uuid.UUID      `gorm:"type:uuid;not null" json:"actor_id"`
	Comment        string         `gorm:"type:text" json:"comment"`
	CreatedAt      time.Time      `json:"created_at"`
}

// OrganizationApprovalSettings is the approval policy singleton per
// organization.
type OrganizationApprovalSettings struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"organization_id"`
	Model          ApprovalModel `gorm:"type:text;not null;default:'none'" json:"model"`

	// FinalApproverIDs is the pool eligible for level-2 sign-off.
	FinalApproverIDs pq.StringArray `gorm:"type:text[]" json:"final_approver_ids"`

	// AutoApproveThreshold auto-approves documents at or below this amount.
	// Nil disables auto-approval.
	AutoApproveThreshold *int64 `json:"auto_approve_threshold,omitempty"`

	// EscalationTimeout is how long an approval may sit pending before the
	// periodic scan escalates it. Zero disables escalation.
	EscalationTimeout time.Duration `gorm:"type:bigint;not null;default:0" json:"escalation_timeout"`

	// EscalationTargetID receives escalated approvals.
	EscalationTargetID *uuid.UUID `gorm:"type:uuid" json:"escalation_target_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InFinalApproverPool reports whether userID may give level-2 sign-off.
func (s *OrganizationApprovalSettings) InFinalApproverPool(userID uuid.UUID) bool {
	id := userID.String()
	for _, v := range s.FinalApproverIDs {
		if v == id {
			return true
		}
	}
	return false
}
