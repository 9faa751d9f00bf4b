package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/velsky/animelist-api/internal/logger"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/models"
)

// MediaLister defines the interface that the media service must implement.
type MediaLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MediaDB, error)
	ListByType(ctx context.Context, userID uuid.UUID, mediaType string) ([]models.MediaDB, error)
}

// NewMediaListHandler returns an HTTP handler listing all media records
// owned by the caller.
// @Summary List media
// @Description Returns every media record owned by the authenticated user.
// @Tags media
// @Produce json
// @Success 200 {array} models.MediaDB "Media records"
// @Failure 401 {object} handlers.MessageResponse "Unauthorized"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /media [get]
// @Security BearerAuth
func NewMediaListHandler(svc MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Token is not valid"})
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// NewMediaListByTypeHandler returns an HTTP handler listing the caller's
// media records of a single type. An unknown type yields an empty list.
// @Summary List media by type
// @Description Returns the authenticated user's media records of the given type.
// @Tags media
// @Produce json
// @Param type path string true "Media type" Enums(anime, manga, manhwa)
// @Success 200 {array} models.MediaDB "Media records"
// @Failure 401 {object} handlers.MessageResponse "Unauthorized"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /media/type/{type} [get]
// @Security BearerAuth
func NewMediaListByTypeHandler(svc MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Token is not valid"})
			return
		}

		items, err := svc.ListByType(r.Context(), userID, chi.URLParam(r, "type"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
