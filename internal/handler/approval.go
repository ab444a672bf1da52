// internal/handler/approval.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/service"
)

type ApprovalHandler struct {
	approvalService *service.ApprovalService
}

func NewApprovalHandler(approvalService *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

type SubmitResponse struct {
	BaseResponse
	// Approval is nil when the organization runs without approvals and the
	// document went straight through.
	Approval *model.ApprovalRequest `json:"approval,omitempty"`
}

func (h *ApprovalHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	approval, err := h.approvalService.Submit(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Approval submission error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SubmitResponse{
		BaseResponse: BaseResponse{Ok: true},
		Approval:     approval,
	})
}

type DecideRequest struct {
	Decision         model.Decision `json:"decision"`
	Comments         string         `json:"comments"`
	DelegatedTo      *uuid.UUID     `json:"delegated_to,omitempty"`
	DelegationReason string         `json:"delegation_reason,omitempty"`
}

type DecideResponse struct {
	BaseResponse
	Approval *model.ApprovalRequest `json:"approval"`
}

func (h *ApprovalHandler) DecideHandler(w http.ResponseWriter, r *http.Request) {
	approvalID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid approval id")
		return
	}

	var req DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	approval, err := h.approvalService.Decide(r.Context(), service.DecideInput{
		ApprovalID:       approvalID,
		Decision:         req.Decision,
		Comments:         req.Comments,
		DelegatedTo:      req.DelegatedTo,
		DelegationReason: req.DelegationReason,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Approval decision error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, DecideResponse{
		BaseResponse: BaseResponse{Ok: true},
		Approval:     approval,
	})
}

type BulkDecideResponse struct {
	BaseResponse
	Result *service.BulkResult `json:"result"`
}

func (h *ApprovalHandler) BulkDecideHandler(w http.ResponseWriter, r *http.Request) {
	var input service.BulkDecideInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	result, err := h.approvalService.BulkDecide(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Bulk decision error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BulkDecideResponse{
		BaseResponse: BaseResponse{Ok: true},
		Result:       result,
	})
}

func (h *ApprovalHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	approvalID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid approval id")
		return
	}

	approval, err := h.approvalService.Get(r.Context(), approvalID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, approval)
}

func (h *ApprovalHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	approvalID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid approval id")
		return
	}

	history, err := h.approvalService.History(r.Context(), approvalID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, history)
}

func (h *ApprovalHandler) PendingHandler(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.approvalService.PendingForActor(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, approvals)
}
