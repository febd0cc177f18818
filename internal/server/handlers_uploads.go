package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/model"
)

// maxUploadBytes bounds one multipart upload request.
const maxUploadBytes = 10 << 20

// handleUploadImages replaces the thumbnail and/or profile image for a
// resume. Files are stored under a per-resume name, so a re-upload overwrites
// the previous file for the slot. The stored document's link fields are
// updated to the served paths.
func (s *Server) handleUploadImages(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	resumeID, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	rec, err := s.resumes.GetResume(r.Context(), userID, resumeID)
	if err != nil {
		s.logger.Error("get resume for upload failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resume")
		return
	}
	if rec == nil {
		nf := &ErrResumeNotFound{ResumeID: resumeID.String()}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var links UploadImagesResponse
	thumb, err := s.saveUpload(r, resumeID, "thumbnail")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store thumbnail")
		return
	}
	links.Thumbnail = thumb

	profile, err := s.saveUpload(r, resumeID, "profileImage")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store profile image")
		return
	}
	links.ProfileImage = profile

	if links.Thumbnail == "" && links.ProfileImage == "" {
		s.errorResponse(w, http.StatusBadRequest, "no image files in request")
		return
	}

	doc, err := recordToDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to decode document")
		return
	}
	if links.Thumbnail != "" {
		doc.Thumbnail = links.Thumbnail
	}
	if links.ProfileImage != "" {
		doc.ProfileImage = links.ProfileImage
	}
	if err := s.persistDocument(r, userID, resumeID, doc); err != nil {
		s.logger.Error("persist image links failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to save image links")
		return
	}

	s.jsonResponse(w, http.StatusOK, links)
}

// saveUpload writes one multipart file field to the upload directory and
// returns its served path. Returns "" when the field is absent.
func (s *Server) saveUpload(r *http.Request, resumeID uuid.UUID, field string) (string, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.png", resumeID, field)
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

func (s *Server) persistDocument(r *http.Request, userID, resumeID uuid.UUID, doc model.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.resumes.UpdateResume(r.Context(), userID, resumeID, doc.Title, body)
	return err
}
