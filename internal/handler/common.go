// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps domain errors onto HTTP statuses. Cross-tenant
// lookups surface as 404 so existence never leaks; a lost decision race is a
// 409.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsPermissionDenied(err), errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrCannotManageRole):
		respondWithError(w, http.StatusForbidden, err.Error())
	case domain.IsInvalidState(err):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrApprovalOpen):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDelegateRequired),
		errors.Is(err, domain.ErrNotEligible),
		errors.Is(err, domain.ErrManagerChainCycle):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrTenantRequired):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrApprovalNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrInstanceNotFound),
		errors.Is(err, domain.ErrNoCompanyAccess):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseUUIDParam parses a chi URL parameter as a UUID.
func parseUUIDParam(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	return id, err == nil
}
