// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/nexasuite/platform/internal/auth"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/service"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenManager *auth.TokenManager
}

func NewAuthHandler(userService *service.UserService, tokenManager *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenManager: tokenManager,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// A bad password and an unknown email are indistinguishable to the
		// caller.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUserInactive) {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.ErrorContext(r.Context(), "Login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokenManager.Generate(user.ID.String(), user.Email, user.OrganizationID.String(), user.IsSuperAdmin)
	if err != nil {
		slog.ErrorContext(r.Context(), "Token generation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
		Token:        token,
	})
}
