// internal/email/mailer/notifier.go
package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/email"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
)

// ApprovalNotifier sends approval lifecycle emails. Delivery is best effort:
// failures are logged and swallowed so a mail outage never blocks a decision.
type ApprovalNotifier struct {
	svc     *email.Service
	users   repository.UserRepositoryIface
	baseURL string
	logger  *slog.Logger
}

func NewApprovalNotifier(svc *email.Service, users repository.UserRepositoryIface, baseURL string, logger *slog.Logger) *ApprovalNotifier {
	return &ApprovalNotifier{
		svc:     svc,
		users:   users,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (n *ApprovalNotifier) ApprovalAssigned(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID) {
	user, err := n.users.FindByID(ctx, approval.OrganizationID, approverID)
	if err != nil {
		n.logger.Warn("skipping assignment email", "approval_id", approval.ID, "error", err)
		return
	}
	if err := SendApprovalAssigned(n.svc, user.Email, user.FirstName, n.baseURL, approval); err != nil {
		n.logger.Warn("sending assignment email", "approval_id", approval.ID, "error", err)
	}
}

func (n *ApprovalNotifier) ApprovalEscalated(ctx context.Context, approval *model.ApprovalRequest, approverID uuid.UUID) {
	user, err := n.users.FindByID(ctx, approval.OrganizationID, approverID)
	if err != nil {
		n.logger.Warn("skipping escalation email", "approval_id", approval.ID, "error", err)
		return
	}
	if err := SendApprovalEscalated(n.svc, user.Email, user.FirstName, n.baseURL, approval); err != nil {
		n.logger.Warn("sending escalation email", "approval_id", approval.ID, "error", err)
	}
}

func (n *ApprovalNotifier) ApprovalDecided(ctx context.Context, approval *model.ApprovalRequest) {
	user, err := n.users.FindByID(ctx, approval.OrganizationID, approval.SubmittedByID)
	if err != nil {
		n.logger.Warn("skipping decision email", "approval_id", approval.ID, "error", err)
		return
	}
	if err := SendApprovalDecided(n.svc, user.Email, user.FirstName, n.baseURL, approval); err != nil {
		n.logger.Warn("sending decision email", "approval_id", approval.ID, "error", err)
	}
}

// NoopNotifier drops all notifications. Used when no email provider is
// configured.
type NoopNotifier struct{}

func (NoopNotifier) ApprovalAssigned(context.Context, *model.ApprovalRequest, uuid.UUID)  {}
func (NoopNotifier) ApprovalEscalated(context.Context, *model.ApprovalRequest, uuid.UUID) {}
func (NoopNotifier) ApprovalDecided(context.Context, *model.ApprovalRequest)              {}
