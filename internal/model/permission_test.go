package model_test

import (
	"testing"

	"github.com/nexasuite/platform/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePermission(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vouchers.view", "vouchers.view"},
		{"vouchers_view", "vouchers.view"},
		{"Vouchers_View", "vouchers.view"},
		{"  invoices.edit  ", "invoices.edit"},
		// Only the first separator splits; the action keeps its underscores.
		{"settings_manage_approvals", "settings.manage_approvals"},
		{"settings.manage_approvals", "settings.manage_approvals"},
		{"reports", "reports"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, model.NormalizePermission(tt.in), tt.in)
	}
}

func TestSplitPermission(t *testing.T) {
	module, action := model.SplitPermission("vouchers_delete")
	assert.Equal(t, "vouchers", module)
	assert.Equal(t, "delete", action)

	module, action = model.SplitPermission("dashboards")
	assert.Equal(t, "dashboards", module)
	assert.Equal(t, "", action)
}

func TestApprovalStatusTransitions(t *testing.T) {
	decidable := []model.ApprovalStatus{
		model.ApprovalPending,
		model.ApprovalLevel1Approved,
		model.ApprovalEscalated,
	}
	for _, s := range decidable {
		assert.True(t, s.Decidable(), string(s))
		assert.False(t, s.Terminal(), string(s))
	}

	terminal := []model.ApprovalStatus{
		model.ApprovalApproved,
		model.ApprovalRejected,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), string(s))
		assert.False(t, s.Decidable(), string(s))
	}

	// Delegated is a transient bookkeeping state: neither decidable nor
	// terminal, the record immediately moves back to pending.
	assert.False(t, model.ApprovalDelegated.Decidable())
	assert.False(t, model.ApprovalDelegated.Terminal())
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]model.ApprovalStatus{
		{model.ApprovalCreated, model.ApprovalPending},
		{model.ApprovalCreated, model.ApprovalApproved},
		{model.ApprovalPending, model.ApprovalApproved},
		{model.ApprovalPending, model.ApprovalRejected},
		{model.ApprovalPending, model.ApprovalLevel1Approved},
		{model.ApprovalPending, model.ApprovalDelegated},
		{model.ApprovalPending, model.ApprovalEscalated},
		{model.ApprovalLevel1Approved, model.ApprovalApproved},
		{model.ApprovalLevel1Approved, model.ApprovalRejected},
		{model.ApprovalLevel1Approved, model.ApprovalEscalated},
		{model.ApprovalDelegated, model.ApprovalPending},
		// An escalated record resumes at whichever level it left off.
		{model.ApprovalEscalated, model.ApprovalLevel1Approved},
		{model.ApprovalEscalated, model.ApprovalApproved},
		{model.ApprovalEscalated, model.ApprovalRejected},
		{model.ApprovalEscalated, model.ApprovalDelegated},
	}
	for _, edge := range allowed {
		assert.True(t, model.CanTransition(edge[0], edge[1]), "%s -> %s", edge[0], edge[1])
	}

	// Terminal states have no outgoing edges.
	for _, to := range []model.ApprovalStatus{
		model.ApprovalPending, model.ApprovalApproved, model.ApprovalRejected,
		model.ApprovalDelegated, model.ApprovalEscalated,
	} {
		assert.False(t, model.CanTransition(model.ApprovalApproved, to))
		assert.False(t, model.CanTransition(model.ApprovalRejected, to))
	}

	// Skipping the second level is not a legal edge under the two-level model.
	assert.False(t, model.CanTransition(model.ApprovalLevel1Approved, model.ApprovalPending))
	assert.False(t, model.CanTransition(model.ApprovalDelegated, model.ApprovalApproved))

	// The creation marker is never a destination.
	assert.False(t, model.CanTransition(model.ApprovalPending, model.ApprovalCreated))
}

func TestStepStatusTerminal(t *testing.T) {
	assert.True(t, model.StepApproved.Terminal())
	assert.True(t, model.StepRejected.Terminal())
	assert.True(t, model.StepCancelled.Terminal())
	assert.False(t, model.StepPending.Terminal())
	assert.False(t, model.StepEscalated.Terminal())
}
