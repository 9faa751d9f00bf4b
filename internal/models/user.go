package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Username     string    `db:"username"`      // Unique username
	Email        string    `db:"email"`         // Unique email
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never the raw password
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// UserPublic is the user shape returned to clients, password excluded.
type UserPublic struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Public converts a stored user into its client-facing shape.
func (u *UserDB) Public() UserPublic {
	return UserPublic{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
