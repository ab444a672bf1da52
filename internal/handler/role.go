// internal/handler/role.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/nexasuite/platform/internal/service"
)

type RoleHandler struct {
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	role, err := h.roleService.Create(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Role creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, role)
}

func (h *RoleHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	roleID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid role id")
		return
	}

	var input service.UpdateRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.RoleID = roleID

	role, err := h.roleService.Update(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Role update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, role)
}

func (h *RoleHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.List(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, roles)
}

func (h *RoleHandler) AssignHandler(w http.ResponseWriter, r *http.Request) {
	var input service.AssignRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.roleService.Assign(r.Context(), input); err != nil {
		slog.ErrorContext(r.Context(), "Role assignment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *RoleHandler) RemoveHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(chi.URLParam(r, "userID"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	roleID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid role id")
		return
	}

	if err := h.roleService.Remove(r.Context(), userID, roleID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *RoleHandler) CreateOrgRoleHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrgRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	role, err := h.roleService.CreateOrgRole(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Organization role creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, role)
}

func (h *RoleHandler) AssignOrgRoleHandler(w http.ResponseWriter, r *http.Request) {
	var input service.AssignOrgRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.roleService.AssignOrgRole(r.Context(), input); err != nil {
		slog.ErrorContext(r.Context(), "Organization role assignment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
