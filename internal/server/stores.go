package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/db"
)

// UserStore is the account storage the server depends on. *db.DB satisfies
// it; tests substitute in-memory fakes.
type UserStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// ResumeStore is the resume storage the server depends on.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, title string, document []byte) (*db.ResumeRecord, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]db.ResumeRecord, error)
	GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*db.ResumeRecord, error)
	UpdateResume(ctx context.Context, userID, resumeID uuid.UUID, title string, document []byte) (*db.ResumeRecord, error)
	DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) (bool, error)
}
