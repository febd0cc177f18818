package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores a new resume document for the owner and returns the record.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, title string, document []byte) (*ResumeRecord, error) {
	var rec ResumeRecord
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, document)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, document, created_at, updated_at`,
		userID, title, document,
	).Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Document, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &rec, nil
}

// ListResumes retrieves all resumes owned by the user, most recently updated first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, document, created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		var rec ResumeRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Document, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetResume retrieves one resume by id, scoped to the owner.
// Returns nil without error when absent.
func (db *DB) GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*ResumeRecord, error) {
	var rec ResumeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, document, created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Document, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &rec, nil
}

// UpdateResume replaces a resume's title and document body, scoped to the owner.
// Returns nil without error when the resume does not exist.
func (db *DB) UpdateResume(ctx context.Context, userID, resumeID uuid.UUID, title string, document []byte) (*ResumeRecord, error) {
	var rec ResumeRecord
	err := db.pool.QueryRow(ctx,
		`UPDATE resumes SET title = $1, document = $2, updated_at = NOW()
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, user_id, title, document, created_at, updated_at`,
		title, document, resumeID, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Document, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return &rec, nil
}

// DeleteResume removes a resume, scoped to the owner. Reports whether a row
// was deleted.
func (db *DB) DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
