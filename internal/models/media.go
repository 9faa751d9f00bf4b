package models

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Media types supported by the tracker.
const (
	MediaTypeAnime  = "anime"
	MediaTypeManga  = "manga"
	MediaTypeManhwa = "manhwa"
)

// ValidMediaType reports whether t is one of the supported media types.
func ValidMediaType(t string) bool {
	switch t {
	case MediaTypeAnime, MediaTypeManga, MediaTypeManhwa:
		return true
	}
	return false
}

// MediaDB represents a media record in the database. Every record is owned
// by exactly one user and all queries are scoped by that owner.
type MediaDB struct {
	MediaID         uuid.UUID `db:"media_id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"userId"`
	Title           string    `db:"title" json:"title"`
	Type            string    `db:"type" json:"type"`
	Status          string    `db:"status" json:"status"`
	Rating          *float64  `db:"rating" json:"rating,omitempty"`
	EpisodesWatched int       `db:"episodes_watched" json:"episodes_watched"`
	TotalEpisodes   *int      `db:"total_episodes" json:"total_episodes,omitempty"`
	Image           *string   `db:"image" json:"image,omitempty"`
	Notes           *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// MediaInput carries the writable media fields from a create or update
// request. The owner is never part of the input; it is always forced to the
// authenticated caller.
type MediaInput struct {
	Title           string
	Type            string
	Status          string
	Rating          *float64
	EpisodesWatched int
	TotalEpisodes   *int
	Notes           *string
}

// Upload is an incoming image payload as parsed from a multipart request.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// MediaEvent is published after a successful media mutation.
type MediaEvent struct {
	EventID   string    `json:"event_id"`
	Operation string    `json:"operation"`
	MediaID   uuid.UUID `json:"media_id"`
	UserID    uuid.UUID `json:"user_id"`
	Timestamp int64     `json:"timestamp"`
}
