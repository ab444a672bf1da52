// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Tenant-related errors
	ErrTenantRequired = errors.New("tenant scope is required")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrNoCompanyAccess      = errors.New("user has no access to company")

	// Role-related errors
	ErrRoleNotFound      = errors.New("role not found")
	ErrDuplicateName     = errors.New("name already exists in organization")
	ErrCannotManageRole  = errors.New("role level does not permit managing target role")
	ErrManagerChainCycle = errors.New("manager chain contains a cycle")

	// Approval-related errors
	ErrApprovalNotFound = errors.New("approval not found")
	ErrForbidden        = errors.New("actor may not act on this approval")
	ErrApprovalOpen     = errors.New("document already has an open approval")
	ErrDelegateRequired = errors.New("delegation requires a delegate user")
	ErrNotEligible      = errors.New("user is not in the final approver pool")

	// Workflow-related errors
	ErrTemplateNotFound = errors.New("workflow template not found")
	ErrInstanceNotFound = errors.New("workflow instance not found")
)

// PermissionDeniedError reports a failed authorization check. It always names
// the permission that was missing.
type PermissionDeniedError struct {
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: missing %s", e.Permission)
}

// PermissionDenied builds a denial for the named permission.
func PermissionDenied(permission string) error {
	return &PermissionDeniedError{Permission: permission}
}

// IsPermissionDenied reports whether err is a permission denial.
func IsPermissionDenied(err error) bool {
	var pd *PermissionDeniedError
	return errors.As(err, &pd)
}

// InvalidStateError reports a state-machine precondition violation, such as a
// decision applied to an approval that is no longer pending. A concurrent
// double-decision surfaces as this error and callers should treat it as
// "already processed", not as a fault.
type InvalidStateError struct {
	Entity  string
	Current string
	Attempt string
}

func (e *InvalidStateError) Error() string {
	if e.Current == "" {
		return fmt.Sprintf("%s already processed", e.Entity)
	}
	return fmt.Sprintf("%s in state %q cannot transition to %q", e.Entity, e.Current, e.Attempt)
}

// InvalidState builds an InvalidStateError for the given entity.
func InvalidState(entity, current, attempt string) error {
	return &InvalidStateError{Entity: entity, Current: current, Attempt: attempt}
}

// IsInvalidState reports whether err is a state-machine conflict.
func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}
