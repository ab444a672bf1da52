// internal/service/settings.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/tenant"
)

// SettingsService manages the per-organization approval policy singleton.
type SettingsService struct {
	settings repository.SettingsRepositoryIface
	users    repository.UserRepositoryIface
	authz    *AuthorizationService
	validate *validator.Validate
}

func NewSettingsService(
	settings repository.SettingsRepositoryIface,
	users repository.UserRepositoryIface,
	authz *AuthorizationService,
) *SettingsService {
	return &SettingsService{
		settings: settings,
		users:    users,
		authz:    authz,
		validate: validator.New(),
	}
}

func (s *SettingsService) Get(ctx context.Context) (*model.OrganizationApprovalSettings, error) {
	orgID, err := tenant.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	return s.settings.GetByOrganization(ctx, orgID)
}

type UpdateSettingsInput struct {
	Model                model.ApprovalModel `json:"model" validate:"required,oneof=none level_1 level_2"`
	FinalApproverIDs     []uuid.UUID         `json:"final_approver_ids"`
	AutoApproveThreshold *int64              `json:"auto_approve_threshold,omitempty"`
	EscalationTimeout    time.Duration       `json:"escalation_timeout"`
	EscalationTargetID   *uuid.UUID          `json:"escalation_target_id,omitempty"`
}

// Update replaces the organization's approval policy. Settings changes apply
// to future submissions only; in-flight approvals keep the chain they started
// with.
func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (*model.OrganizationApprovalSettings, error) {
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
	if err := s.authz.Enforce(ctx, actorID, model.PermSettingsManageApprovals); err != nil {
		return nil, err
	}

	if input.Model == model.ApprovalModelLevel2 && len(input.FinalApproverIDs) == 0 {
		return nil, fmt.Errorf("%w: two-level approval requires a final approver pool", domain.ErrInvalidInput)
	}
	if input.AutoApproveThreshold != nil && *input.AutoApproveThreshold < 0 {
		return nil, fmt.Errorf("%w: auto-approve threshold must not be negative", domain.ErrInvalidInput)
	}
	if input.EscalationTimeout < 0 {
		return nil, fmt.Errorf("%w: escalation timeout must not be negative", domain.ErrInvalidInput)
	}

	// Pool members and the escalation target must be active members of this
	// organization.
	pool := make(pq.StringArray, 0, len(input.FinalApproverIDs))
	for _, id := range input.FinalApproverIDs {
		user, err := s.users.FindByID(ctx, orgID, id)
		if err != nil {
			return nil, err
		}
		if !user.IsActive {
			return nil, fmt.Errorf("%w: final approver %s is inactive", domain.ErrInvalidInput, id)
		}
		pool = append(pool, id.String())
	}
	if input.EscalationTargetID != nil {
		if _, err := s.users.FindByID(ctx, orgID, *input.EscalationTargetID); err != nil {
			return nil, err
		}
	}

	settings := &model.OrganizationApprovalSettings{
		OrganizationID:       orgID,
		Model:                input.Model,
		FinalApproverIDs:     pool,
		AutoApproveThreshold: input.AutoApproveThreshold,
		EscalationTimeout:    input.EscalationTimeout,
		EscalationTargetID:   input.EscalationTargetID,
	}
	if err := s.settings.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
