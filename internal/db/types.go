package db

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored account. PasswordHash never leaves this package's callers
// toward the wire; API responses use a projection without it.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResumeRecord is a stored resume. The document body is opaque JSON owned by
// the client's editing model; the database only indexes id, owner and title.
type ResumeRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Document  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
