// internal/handler/company.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/nexasuite/platform/internal/service"
)

type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.companyService.Create(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Company creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.List(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) GrantAccessHandler(w http.ResponseWriter, r *http.Request) {
	var input service.GrantAccessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.companyService.GrantAccess(r.Context(), input); err != nil {
		slog.ErrorContext(r.Context(), "Company access grant error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *CompanyHandler) RevokeAccessHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}
	userID, ok := parseUUIDParam(chi.URLParam(r, "userID"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.companyService.RevokeAccess(r.Context(), userID, companyID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
