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

// Registerer defines the interface that the auth service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (string, *models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful register or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Success message
	Message string `json:"message"`

	// JWT token
	Token string `json:"token"`

	// Registered user
	User models.UserPublic `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with unique username and email and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.MessageResponse "Username or email already exists"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{
				Message: "Invalid request body",
			})
			return
		}

		token, user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusBadRequest, MessageResponse{
					Message: "User with this email or username already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Message: "User registered successfully",
			Token:   token,
			User:    user.Public(),
		})
	}
}
