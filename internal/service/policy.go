// internal/service/policy.go
package service

import (
	"github.com/nexasuite/platform/internal/model"
)

// PolicyOutcome is what the approval policy resolver decides for a submitted
// document.
type PolicyOutcome int

const (
	// PolicyNoApproval: the organization runs without approvals; no record.
	PolicyNoApproval PolicyOutcome = iota
	// PolicyAutoApproved: below threshold; a terminal record is still written
	// for audit continuity.
	PolicyAutoApproved
	// PolicyLevel1: one sign-off required.
	PolicyLevel1
	// PolicyLevel2: two sign-offs; the final one restricted to the
	// organization's approver pool.
	PolicyLevel2
)

// EvaluatePolicy resolves the outcome for a document amount under the
// organization's approval settings. Amounts are minor units.
func EvaluatePolicy(settings *model.OrganizationApprovalSettings, amount int64) PolicyOutcome {
	if settings == nil || settings.Model == model.ApprovalModelNone {
		return PolicyNoApproval
	}
	if settings.AutoApproveThreshold != nil && amount <= *settings.AutoApproveThreshold {
		return PolicyAutoApproved
	}
	if settings.Model == model.ApprovalModelLevel2 {
		return PolicyLevel2
	}
	return PolicyLevel1
}
