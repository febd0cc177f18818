package server

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserView is the wire projection of an account, without credentials.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse carries the minted token and the account it belongs to.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// CreateResumeRequest is the body for POST /resume.
type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// GenerateRequest is the body for POST /ai/generate.
type GenerateRequest struct {
	Prompt     string   `json:"prompt"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Projects   []string `json:"projects"`
}

// GenerateResponse wraps the AI draft. The payload stays raw JSON: the
// client's merge engine owns shape recovery.
type GenerateResponse struct {
	Success  bool            `json:"success"`
	AIResume json.RawMessage `json:"aiResume"`
}

// AnalyzeRequest is the body for POST /ai/analyze.
type AnalyzeRequest struct {
	ResumeData json.RawMessage `json:"resumeData" validate:"required"`
}

// Analysis is the structured critique produced by the analyze endpoint.
type Analysis struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	ToneSummary string   `json:"toneSummary"`
}

// AnalyzeResponse wraps an analysis result.
type AnalyzeResponse struct {
	Success  bool     `json:"success"`
	Analysis Analysis `json:"analysis"`
}

// UploadImagesResponse carries stored image links after an upload.
type UploadImagesResponse struct {
	Thumbnail    string `json:"thumbnailLink"`
	ProfileImage string `json:"profileImageLink"`
}
