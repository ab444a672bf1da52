// internal/email/mailer/approval.go
package mailer

import (
	"fmt"
	"time"

	"github.com/nexasuite/platform/internal/email"
	"github.com/nexasuite/platform/internal/model"
)

const fromName = "NexaSuite"

// ApprovalTemplateData feeds the approval notification templates. Amount is
// in minor units and Deadline is raw; the templates format both.
type ApprovalTemplateData struct {
	FirstName    string
	DocumentType string
	Amount       int64
	Link         string
	Deadline     *time.Time
	Decision     string
	Comment      string
}

func approvalData(firstName, baseURL string, approval *model.ApprovalRequest) ApprovalTemplateData {
	return ApprovalTemplateData{
		FirstName:    firstName,
		DocumentType: approval.DocumentType,
		Amount:       approval.Amount,
		Link:         fmt.Sprintf("%s/approvals/%s", baseURL, approval.ID),
		Deadline:     approval.Deadline,
	}
}

// SendApprovalAssigned notifies an approver that a request awaits their decision.
func SendApprovalAssigned(s *email.Service, to, firstName, baseURL string, approval *model.ApprovalRequest) error {
	return s.Send(email.Message{
		To:       to,
		FromName: fromName,
		Subject:  fmt.Sprintf("Approval needed: %s", approval.DocumentType),
		Template: email.TemplateApprovalAssigned,
		Data:     approvalData(firstName, baseURL, approval),
	})
}

// SendApprovalEscalated notifies the escalation target of an overdue request.
func SendApprovalEscalated(s *email.Service, to, firstName, baseURL string, approval *model.ApprovalRequest) error {
	return s.Send(email.Message{
		To:       to,
		FromName: fromName,
		Subject:  fmt.Sprintf("Escalated approval: %s", approval.DocumentType),
		Template: email.TemplateApprovalEscalated,
		Data:     approvalData(firstName, baseURL, approval),
	})
}

// SendApprovalDecided notifies the submitter of the final outcome.
func SendApprovalDecided(s *email.Service, to, firstName, baseURL string, approval *model.ApprovalRequest) error {
	data := approvalData(firstName, baseURL, approval)
	data.Decision = string(approval.FinalDecision)
	if approval.Level2Comment != "" {
		data.Comment = approval.Level2Comment
	} else {
		data.Comment = approval.Level1Comment
	}

	return s.Send(email.Message{
		To:       to,
		FromName: fromName,
		Subject:  fmt.Sprintf("Your %s was %s", approval.DocumentType, approval.FinalDecision),
		Template: email.TemplateApprovalDecided,
		Data:     data,
	})
}
