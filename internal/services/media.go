package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/velsky/animelist-api/internal/logger"
	"github.com/velsky/animelist-api/internal/models"
)

// Error variables
var (
	// ErrMediaNotFound covers both an absent record and a record owned by
	// another user. The two cases are deliberately indistinguishable so
	// callers cannot probe for the existence of foreign records.
	ErrMediaNotFound = errors.New("media not found or unauthorized")

	ErrInvalidMediaType = errors.New("invalid media type")
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingStatus    = errors.New("status is required")
)

// MediaReader defines read-only operations for media records.
type MediaReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MediaDB, error)
	ListByUserAndType(ctx context.Context, userID uuid.UUID, mediaType string) ([]models.MediaDB, error)
	GetByIDAndUser(ctx context.Context, mediaID, userID uuid.UUID) (*models.MediaDB, error)
}

// MediaWriter defines write operations for media records.
type MediaWriter interface {
	Save(ctx context.Context, m models.MediaDB) (*models.MediaDB, error)
	Update(ctx context.Context, m models.MediaDB) (*models.MediaDB, error)
	Delete(ctx context.Context, mediaID, userID uuid.UUID) error
}

// FileStore defines the upload store operations the service coordinates.
type FileStore interface {
	Save(ctx context.Context, r io.Reader, originalName, contentType string, size int64) (string, error)
	Remove(ctx context.Context, name string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MediaUpdate carries the fields of a partial media update. Nil fields keep
// their stored value.
type MediaUpdate struct {
	Title           *string
	Type            *string
	Status          *string
	Rating          *float64
	EpisodesWatched *int
	TotalEpisodes   *int
	Notes           *string
}

// MediaService implements owner-scoped media CRUD, coordinating the upload
// store so that no orphaned file survives a failed write.
type MediaService struct {
	reader      MediaReader
	writer      MediaWriter
	files       FileStore
	kafkaWriter KafkaWriter
}

// NewMediaService creates a new MediaService instance. kafkaWriter may be nil
// to disable event publishing.
func NewMediaService(reader MediaReader, writer MediaWriter, files FileStore, kafkaWriter KafkaWriter) *MediaService {
	return &MediaService{
		reader:      reader,
		writer:      writer,
		files:       files,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all media records owned by the caller.
func (svc *MediaService) List(ctx context.Context, userID uuid.UUID) ([]models.MediaDB, error) {
	items, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list media", "userID", userID, "err", err)
		return nil, err
	}
	return items, nil
}

// ListByType returns the caller's records of the given type. A type outside
// the known set yields an empty list rather than an error.
func (svc *MediaService) ListByType(ctx context.Context, userID uuid.UUID, mediaType string) ([]models.MediaDB, error) {
	if !models.ValidMediaType(mediaType) {
		return []models.MediaDB{}, nil
	}

	items, err := svc.reader.ListByUserAndType(ctx, userID, mediaType)
	if err != nil {
		logger.Log.Errorw("failed to list media by type", "userID", userID, "type", mediaType, "err", err)
		return nil, err
	}
	return items, nil
}

// Create stores an optional image and inserts a new record owned by the
// caller. Title and status must be non-empty. The owner is always the
// authenticated user, regardless of input.
// If the insert fails after the image was stored, the file is removed before
// the error is propagated.
func (svc *MediaService) Create(ctx context.Context, userID uuid.UUID, in models.MediaInput, upload *models.Upload) (*models.MediaDB, error) {
	if in.Title == "" {
		return nil, ErrMissingTitle
	}
	if in.Status == "" {
		return nil, ErrMissingStatus
	}

	mediaType := in.Type
	if mediaType == "" {
		mediaType = models.MediaTypeAnime
	}
	if !models.ValidMediaType(mediaType) {
		return nil, ErrInvalidMediaType
	}

	var imageName *string
	if upload != nil {
		name, err := svc.files.Save(ctx, upload.Reader, upload.Filename, upload.ContentType, upload.Size)
		if err != nil {
			logger.Log.Errorw("failed to store upload", "userID", userID, "err", err)
			return nil, err
		}
		imageName = &name
	}

	saved, err := svc.writer.Save(ctx, models.MediaDB{
		UserID:          userID,
		Title:           in.Title,
		Type:            mediaType,
		Status:          in.Status,
		Rating:          in.Rating,
		EpisodesWatched: in.EpisodesWatched,
		TotalEpisodes:   in.TotalEpisodes,
		Image:           imageName,
		Notes:           in.Notes,
	})
	if err != nil {
		logger.Log.Errorw("failed to save media", "userID", userID, "err", err)
		if imageName != nil {
			svc.removeFile(ctx, *imageName)
		}
		return nil, err
	}

	svc.publishEvent(ctx, "media_created", saved)
	return saved, nil
}

// Update applies a partial update to a record owned by the caller. Fields
// that are absent keep their stored value; an explicit empty title or status
// is rejected. A new
// image is stored before the ownership lookup; if the lookup misses or the
// row update fails, the new file is removed before the error is propagated.
// A replaced image has its old file removed.
func (svc *MediaService) Update(ctx context.Context, mediaID, userID uuid.UUID, in MediaUpdate, upload *models.Upload) (*models.MediaDB, error) {
	var newImage *string
	if upload != nil {
		name, err := svc.files.Save(ctx, upload.Reader, upload.Filename, upload.ContentType, upload.Size)
		if err != nil {
			logger.Log.Errorw("failed to store upload", "userID", userID, "err", err)
			return nil, err
		}
		newImage = &name
	}

	media, err := svc.reader.GetByIDAndUser(ctx, mediaID, userID)
	if err != nil {
		if newImage != nil {
			svc.removeFile(ctx, *newImage)
		}
		return nil, err
	}
	if media == nil {
		if newImage != nil {
			svc.removeFile(ctx, *newImage)
		}
		return nil, ErrMediaNotFound
	}

	if newImage != nil {
		// The old file is gone before the row update is persisted; a
		// failure below loses it. Carried over from the original
		// behavior as a known gap.
		if media.Image != nil {
			if err := svc.files.Remove(ctx, *media.Image); err != nil {
				logger.Log.Errorw("failed to remove replaced image", "file", *media.Image, "err", err)
				svc.removeFile(ctx, *newImage)
				return nil, err
			}
		}
		media.Image = newImage
	}

	if in.Title != nil {
		if *in.Title == "" {
			if newImage != nil {
				svc.removeFile(ctx, *newImage)
			}
			return nil, ErrMissingTitle
		}
		media.Title = *in.Title
	}
	if in.Type != nil {
		if !models.ValidMediaType(*in.Type) {
			if newImage != nil {
				svc.removeFile(ctx, *newImage)
			}
			return nil, ErrInvalidMediaType
		}
		media.Type = *in.Type
	}
	if in.Status != nil {
		if *in.Status == "" {
			if newImage != nil {
				svc.removeFile(ctx, *newImage)
			}
			return nil, ErrMissingStatus
		}
		media.Status = *in.Status
	}
	if in.Rating != nil {
		media.Rating = in.Rating
	}
	if in.EpisodesWatched != nil {
		media.EpisodesWatched = *in.EpisodesWatched
	}
	if in.TotalEpisodes != nil {
		media.TotalEpisodes = in.TotalEpisodes
	}
	if in.Notes != nil {
		media.Notes = in.Notes
	}

	updated, err := svc.writer.Update(ctx, *media)
	if err != nil {
		logger.Log.Errorw("failed to update media", "mediaID", mediaID, "err", err)
		if newImage != nil {
			svc.removeFile(ctx, *newImage)
		}
		return nil, err
	}

	svc.publishEvent(ctx, "media_updated", updated)
	return updated, nil
}

// Delete removes a record owned by the caller along with its image file.
// The image is removed after the ownership check and before the row delete;
// a file-removal error aborts the operation with no compensation, matching
// the per-step semantics of the original service.
func (svc *MediaService) Delete(ctx context.Context, mediaID, userID uuid.UUID) error {
	media, err := svc.reader.GetByIDAndUser(ctx, mediaID, userID)
	if err != nil {
		return err
	}
	if media == nil {
		return ErrMediaNotFound
	}

	if media.Image != nil {
		if err := svc.files.Remove(ctx, *media.Image); err != nil {
			logger.Log.Errorw("failed to remove image", "file", *media.Image, "err", err)
			return err
		}
	}

	if err := svc.writer.Delete(ctx, mediaID, userID); err != nil {
		logger.Log.Errorw("failed to delete media", "mediaID", mediaID, "err", err)
		return err
	}

	svc.publishEvent(ctx, "media_deleted", media)
	return nil
}

// removeFile is the best-effort cleanup for files orphaned by a failed
// write. Cleanup failure is logged, not propagated, since the original error
// is the one the caller needs.
func (svc *MediaService) removeFile(ctx context.Context, name string) {
	if err := svc.files.Remove(ctx, name); err != nil {
		logger.Log.Errorw("failed to clean up orphaned file", "file", name, "err", err)
	}
}

// publishEvent publishes a media event to Kafka, best effort. Publishing is
// synchronous and never fails the request.
func (svc *MediaService) publishEvent(ctx context.Context, operation string, m *models.MediaDB) {
	if svc.kafkaWriter == nil {
		return
	}

	event := models.MediaEvent{
		EventID:   uuid.NewString(),
		Operation: operation,
		MediaID:   m.MediaID,
		UserID:    m.UserID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal media event", "operation", operation, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish media event", "operation", operation, "error", err)
		return
	}

	logger.Log.Infow("media event published", "operation", operation, "media_id", m.MediaID)
}
