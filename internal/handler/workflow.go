// internal/handler/workflow.go
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/service"
)

type WorkflowHandler struct {
	workflowService *service.WorkflowService
}

func NewWorkflowHandler(workflowService *service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

func (h *WorkflowHandler) CreateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	template, err := h.workflowService.CreateTemplate(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Workflow template creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, template)
}

func (h *WorkflowHandler) ListTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	templates, err := h.workflowService.Templates(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, templates)
}

func (h *WorkflowHandler) StartInstanceHandler(w http.ResponseWriter, r *http.Request) {
	var input service.StartInstanceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	instance, err := h.workflowService.StartInstance(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Workflow start error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, instance)
}

type DecideStepRequest struct {
	StepInstanceID uuid.UUID      `json:"step_instance_id"`
	Decision       model.Decision `json:"decision"`
	Comment        string         `json:"comment"`
}

func (h *WorkflowHandler) DecideStepHandler(w http.ResponseWriter, r *http.Request) {
	instanceID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid instance id")
		return
	}

	var req DecideStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	instance, err := h.workflowService.DecideStep(r.Context(), service.DecideStepInput{
		InstanceID:     instanceID,
		StepInstanceID: req.StepInstanceID,
		Decision:       req.Decision,
		Comment:        req.Comment,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Workflow step decision error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, instance)
}

func (h *WorkflowHandler) GetInstanceHandler(w http.ResponseWriter, r *http.Request) {
	instanceID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid instance id")
		return
	}

	instance, err := h.workflowService.Get(r.Context(), instanceID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, instance)
}

func (h *WorkflowHandler) CancelInstanceHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.workflowService.Cancel)
}

func (h *WorkflowHandler) PauseInstanceHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.workflowService.Pause)
}

func (h *WorkflowHandler) ResumeInstanceHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.workflowService.Resume)
}

func (h *WorkflowHandler) setStatus(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) error) {
	instanceID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid instance id")
		return
	}

	if err := op(r.Context(), instanceID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
