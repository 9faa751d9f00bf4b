package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/velsky/animelist-api/internal/logger"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/services"
)

// MediaDeleter defines the interface that the media service must implement.
type MediaDeleter interface {
	Delete(ctx context.Context, mediaID, userID uuid.UUID) error
}

// NewMediaDeleteHandler returns an HTTP handler deleting a record owned by
// the caller together with its image file.
// @Summary Delete media
// @Description Deletes a media record and its stored cover image.
// @Tags media
// @Produce json
// @Param id path string true "Media id"
// @Success 200 {object} handlers.MessageResponse "Record deleted"
// @Failure 401 {object} handlers.MessageResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "Media not found or unauthorized"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /media/{id} [delete]
// @Security BearerAuth
func NewMediaDeleteHandler(svc MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Token is not valid"})
			return
		}

		mediaID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Media not found or unauthorized"})
			return
		}

		if err := svc.Delete(r.Context(), mediaID, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrMediaNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Media not found or unauthorized"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted successfully"})
	}
}
