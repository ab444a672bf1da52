// internal/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/nexasuite/platform/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.Create(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.UserID = userID

	user, err := h.userService.Update(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeactivateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Deactivate(r.Context(), userID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *UserHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUUIDParam(chi.URLParam(r, "id"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}
