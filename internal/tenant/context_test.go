package tenant_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/tenant"
	"github.com/stretchr/testify/assert"
)

func TestScopeRoundTrip(t *testing.T) {
	orgID := uuid.New()
	userID := uuid.New()

	ctx := tenant.WithScope(context.Background(), tenant.Scope{
		OrganizationID: orgID,
		UserID:         userID,
	})

	got, ok := tenant.FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, orgID, got.OrganizationID)
	assert.Equal(t, userID, got.UserID)

	gotOrg, err := tenant.OrganizationID(ctx)
	assert.NoError(t, err)
	assert.Equal(t, orgID, gotOrg)
}

func TestMissingScopeIsTenantRequired(t *testing.T) {
	_, err := tenant.OrganizationID(context.Background())
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	_, err = tenant.UserID(context.Background())
	assert.ErrorIs(t, err, domain.ErrTenantRequired)

	err = tenant.RequireSameOrg(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrTenantRequired)
}

func TestRequireSameOrg(t *testing.T) {
	orgID := uuid.New()
	ctx := tenant.WithScope(context.Background(), tenant.Scope{
		OrganizationID: orgID,
		UserID:         uuid.New(),
	})

	t.Run("same org passes", func(t *testing.T) {
		assert.NoError(t, tenant.RequireSameOrg(ctx, orgID))
	})

	t.Run("cross-org reference reads as not found", func(t *testing.T) {
		err := tenant.RequireSameOrg(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("super admin bypasses", func(t *testing.T) {
		superCtx := tenant.WithScope(context.Background(), tenant.Scope{
			OrganizationID: orgID,
			UserID:         uuid.New(),
			SuperAdmin:     true,
		})
		assert.NoError(t, tenant.RequireSameOrg(superCtx, uuid.New()))
	})
}
