package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/velsky/animelist-api/internal/logger"
	"github.com/velsky/animelist-api/internal/models"
)

const mediaColumns = `media_id, user_id, title, type, status, rating, episodes_watched, total_episodes, image, notes, created_at`

// MediaReadRepository provides read access to media records. Every query is
// scoped by the owner id so cross-owner reads are impossible at the SQL
// level.
type MediaReadRepository struct {
	db *sqlx.DB
}

// NewMediaReadRepository creates a new MediaReadRepository instance.
func NewMediaReadRepository(db *sqlx.DB) *MediaReadRepository {
	return &MediaReadRepository{db: db}
}

// ListByUser returns all media records owned by the given user.
func (r *MediaReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MediaDB, error) {
	const query = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	items := []models.MediaDB{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logger.Log.Infow("media query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

// ListByUserAndType returns the user's media records of the given type.
func (r *MediaReadRepository) ListByUserAndType(ctx context.Context, userID uuid.UUID, mediaType string) ([]models.MediaDB, error) {
	const query = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE user_id = $1 AND type = $2
		ORDER BY created_at DESC
	`

	items := []models.MediaDB{}
	err := r.db.SelectContext(ctx, &items, query, userID, mediaType)

	logger.Log.Infow("media query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, mediaType},
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetByIDAndUser returns the record with the given id owned by the given
// user, or (nil, nil) when no such record exists. A record owned by another
// user is indistinguishable from an absent one.
func (r *MediaReadRepository) GetByIDAndUser(ctx context.Context, mediaID, userID uuid.UUID) (*models.MediaDB, error) {
	const query = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE media_id = $1 AND user_id = $2
	`

	var item models.MediaDB
	err := r.db.GetContext(ctx, &item, query, mediaID, userID)

	logger.Log.Infow("media query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// MediaWriteRepository provides write access to media records.
type MediaWriteRepository struct {
	db *sqlx.DB
}

// NewMediaWriteRepository creates a new MediaWriteRepository instance.
func NewMediaWriteRepository(db *sqlx.DB) *MediaWriteRepository {
	return &MediaWriteRepository{db: db}
}

// Save inserts a new media record and returns the persisted row.
func (r *MediaWriteRepository) Save(ctx context.Context, m models.MediaDB) (*models.MediaDB, error) {
	const query = `
		INSERT INTO media (user_id, title, type, status, rating, episodes_watched, total_episodes, image, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + mediaColumns + `
	`
	args := []any{m.UserID, m.Title, m.Type, m.Status, m.Rating, m.EpisodesWatched, m.TotalEpisodes, m.Image, m.Notes}

	var saved models.MediaDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow("media insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Update persists the writable fields of an existing record, scoped by
// (id, owner), and returns the updated row.
func (r *MediaWriteRepository) Update(ctx context.Context, m models.MediaDB) (*models.MediaDB, error) {
	const query = `
		UPDATE media
		SET title = $3, type = $4, status = $5, rating = $6,
		    episodes_watched = $7, total_episodes = $8, image = $9, notes = $10
		WHERE media_id = $1 AND user_id = $2
		RETURNING ` + mediaColumns + `
	`
	args := []any{m.MediaID, m.UserID, m.Title, m.Type, m.Status, m.Rating, m.EpisodesWatched, m.TotalEpisodes, m.Image, m.Notes}

	var updated models.MediaDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logger.Log.Infow("media update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the record with the given id owned by the given user.
func (r *MediaWriteRepository) Delete(ctx context.Context, mediaID, userID uuid.UUID) error {
	const query = `
		DELETE FROM media
		WHERE media_id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, mediaID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("media delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
