package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/velsky/animelist-api/internal/logger"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/models"
	"github.com/velsky/animelist-api/internal/services"
)

// Verifier defines the interface that the auth service must implement.
type Verifier interface {
	Verify(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// VerifyResponse carries the token holder, password excluded.
// swagger:model VerifyResponse
type VerifyResponse struct {
	User models.UserPublic `json:"user"`
}

// NewVerifyHandler returns an HTTP handler that resolves the current token
// holder. A token whose user no longer exists is treated as invalid.
// @Summary Verify token
// @Description Returns the user the bearer token belongs to.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.VerifyResponse "Token holder"
// @Failure 401 {object} handlers.MessageResponse "Invalid token"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /auth/verify [get]
// @Security BearerAuth
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{
				Message: "Invalid token",
			})
			return
		}

		user, err := svc.Verify(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeJSON(w, http.StatusUnauthorized, MessageResponse{
					Message: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, VerifyResponse{User: user.Public()})
	}
}
