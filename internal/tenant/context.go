// internal/tenant/context.go
package tenant

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
)

// Scope is the ambient tenancy of one inbound operation: the acting user and
// their organization. It is carried as an explicit context value set once per
// request by the auth middleware and dies with the request context, so no
// state survives into pooled executions.
type Scope struct {
	OrganizationID uuid.UUID
	UserID         uuid.UUID
	SuperAdmin     bool
}

type scopeContextKey struct{}

// WithScope attaches the tenant scope to the context.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, &s)
}

// FromContext extracts the tenant scope, if one was established.
func FromContext(ctx context.Context) (Scope, bool) {
	if ctx == nil {
		return Scope{}, false
	}
	v, ok := ctx.Value(scopeContextKey{}).(*Scope)
	if !ok || v == nil {
		return Scope{}, false
	}
	return *v, true
}

// OrganizationID returns the current organization id or ErrTenantRequired
// when no scope was established. A missing scope is a caller defect; every
// data-access path must run under one.
func OrganizationID(ctx context.Context) (uuid.UUID, error) {
	s, ok := FromContext(ctx)
	if !ok || s.OrganizationID == uuid.Nil {
		return uuid.Nil, domain.ErrTenantRequired
	}
	return s.OrganizationID, nil
}

// UserID returns the acting user id or ErrTenantRequired.
func UserID(ctx context.Context) (uuid.UUID, error) {
	s, ok := FromContext(ctx)
	if !ok || s.UserID == uuid.Nil {
		return uuid.Nil, domain.ErrTenantRequired
	}
	return s.UserID, nil
}

// RequireSameOrg verifies an entity's organization against the current scope.
// A mismatch is reported as ErrNotFound so callers cannot probe for the
// existence of another tenant's data. Super admins pass.
func RequireSameOrg(ctx context.Context, entityOrgID uuid.UUID) error {
	s, ok := FromContext(ctx)
	if !ok || s.OrganizationID == uuid.Nil {
		return domain.ErrTenantRequired
	}
	if s.SuperAdmin {
		return nil
	}
	if s.OrganizationID != entityOrgID {
		return domain.ErrNotFound
	}
	return nil
}
