package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/velsky/animelist-api/internal/logger"
	"github.com/velsky/animelist-api/internal/middlewares"
	"github.com/velsky/animelist-api/internal/models"
	"github.com/velsky/animelist-api/internal/services"
	"github.com/velsky/animelist-api/internal/uploads"
)

// MediaUpdater defines the interface that the media service must implement.
type MediaUpdater interface {
	Update(ctx context.Context, mediaID, userID uuid.UUID, in services.MediaUpdate, upload *models.Upload) (*models.MediaDB, error)
}

// NewMediaUpdateHandler returns an HTTP handler applying a partial update to
// a record owned by the caller. Form fields that are absent keep their
// stored value; a new image replaces and removes the old one.
// @Summary Update media
// @Description Updates a media record with optional new cover image.
// @Tags media
// @Accept mpfd
// @Produce json
// @Param id path string true "Media id"
// @Param title formData string false "Title"
// @Param type formData string false "Media type" Enums(anime, manga, manhwa)
// @Param status formData string false "Status"
// @Param rating formData number false "Rating"
// @Param episodes_watched formData integer false "Episodes watched"
// @Param total_episodes formData integer false "Total episodes"
// @Param notes formData string false "Notes"
// @Param image formData file false "Cover image"
// @Success 200 {object} models.MediaDB "Updated record"
// @Failure 400 {object} handlers.MessageResponse "Invalid input or upload"
// @Failure 401 {object} handlers.MessageResponse "Unauthorized"
// @Failure 404 {object} handlers.MessageResponse "Media not found or unauthorized"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /media/{id} [put]
// @Security BearerAuth
func NewMediaUpdateHandler(svc MediaUpdater) http.HandlerFunc {
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

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid multipart form"})
			return
		}

		in, err := parseMediaUpdate(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}

		upload, closeUpload, err := parseMediaUpload(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid image upload"})
			return
		}
		if closeUpload != nil {
			defer closeUpload()
		}

		updated, err := svc.Update(r.Context(), mediaID, userID, in, upload)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMediaNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Media not found or unauthorized"})
			case errors.Is(err, services.ErrInvalidMediaType),
				errors.Is(err, services.ErrMissingTitle),
				errors.Is(err, services.ErrMissingStatus),
				errors.Is(err, uploads.ErrInvalidFileType),
				errors.Is(err, uploads.ErrFileTooLarge):
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeServerError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// parseMediaUpdate builds a partial update from the fields present in the
// multipart form.
func parseMediaUpdate(r *http.Request) (services.MediaUpdate, error) {
	var in services.MediaUpdate

	formValue := func(key string) (string, bool) {
		if r.MultipartForm == nil {
			return "", false
		}
		vals, ok := r.MultipartForm.Value[key]
		if !ok || len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	}

	if v, ok := formValue("title"); ok {
		in.Title = &v
	}
	if v, ok := formValue("type"); ok {
		in.Type = &v
	}
	if v, ok := formValue("status"); ok {
		in.Status = &v
	}
	if v, ok := formValue("notes"); ok {
		in.Notes = &v
	}
	if v, ok := formValue("rating"); ok {
		rating, err := parseOptionalFloat(v)
		if err != nil {
			return in, errors.New("Invalid rating")
		}
		in.Rating = rating
	}
	if v, ok := formValue("episodes_watched"); ok {
		episodes, err := parseOptionalInt(v)
		if err != nil {
			return in, errors.New("Invalid episodes_watched")
		}
		in.EpisodesWatched = episodes
	}
	if v, ok := formValue("total_episodes"); ok {
		total, err := parseOptionalInt(v)
		if err != nil {
			return in, errors.New("Invalid total_episodes")
		}
		in.TotalEpisodes = total
	}

	return in, nil
}
