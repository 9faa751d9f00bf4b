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
	"github.com/velsky/animelist-api/internal/uploads"
)

// MediaCreator defines the interface that the media service must implement.
type MediaCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.MediaInput, upload *models.Upload) (*models.MediaDB, error)
}

// MediaCreateResponse represents a successful create response
// swagger:model MediaCreateResponse
type MediaCreateResponse struct {
	// Success message
	// default: Added Successfully
	Message string `json:"message"`

	// The created record
	NewMedia *models.MediaDB `json:"newMedia"`
}

// NewMediaCreateHandler returns an HTTP handler creating a media record from
// a multipart form with an optional single "image" part. The owner is always
// the authenticated caller.
// @Summary Create media
// @Description Creates a media record with an optional cover image.
// @Tags media
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param type formData string false "Media type" Enums(anime, manga, manhwa)
// @Param status formData string true "Status"
// @Param rating formData number false "Rating"
// @Param episodes_watched formData integer false "Episodes watched"
// @Param total_episodes formData integer false "Total episodes"
// @Param notes formData string false "Notes"
// @Param image formData file false "Cover image"
// @Success 200 {object} handlers.MediaCreateResponse "Record created"
// @Failure 400 {object} handlers.MessageResponse "Invalid input or upload"
// @Failure 401 {object} handlers.MessageResponse "Unauthorized"
// @Failure 500 {object} handlers.ServerErrorResponse "Internal server error"
// @Router /media [post]
// @Security BearerAuth
func NewMediaCreateHandler(svc MediaCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Token is not valid"})
			return
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid multipart form"})
			return
		}

		rating, err := parseOptionalFloat(r.FormValue("rating"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid rating"})
			return
		}
		episodesWatched, err := parseOptionalInt(r.FormValue("episodes_watched"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid episodes_watched"})
			return
		}
		totalEpisodes, err := parseOptionalInt(r.FormValue("total_episodes"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid total_episodes"})
			return
		}

		in := models.MediaInput{
			Title:         r.FormValue("title"),
			Type:          r.FormValue("type"),
			Status:        r.FormValue("status"),
			Rating:        rating,
			TotalEpisodes: totalEpisodes,
		}
		if episodesWatched != nil {
			in.EpisodesWatched = *episodesWatched
		}
		if notes := r.FormValue("notes"); notes != "" {
			in.Notes = &notes
		}

		upload, closeUpload, err := parseMediaUpload(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid image upload"})
			return
		}
		if closeUpload != nil {
			defer closeUpload()
		}

		newMedia, err := svc.Create(r.Context(), userID, in, upload)
		if err != nil {
			switch {
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

		writeJSON(w, http.StatusOK, MediaCreateResponse{
			Message:  "Added Successfully",
			NewMedia: newMedia,
		})
	}
}
