package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velsky/animelist-api/internal/logger"
	"github.com/velsky/animelist-api/internal/models"
	"github.com/velsky/animelist-api/internal/services"
)

// Loginer defines the interface that the auth service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password and return a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse "Login successful"
// @Failure 401 {object} handlers.MessageResponse "Invalid email or password"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{
				Message: "Invalid request body",
			})
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, MessageResponse{
					Message: "Invalid email or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Message: "Login successful",
			Token:   token,
			User:    user.Public(),
		})
	}
}
