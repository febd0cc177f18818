package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/model"
)

// recordToDocument projects a stored row onto the editor's wire document.
// The row's id and title are authoritative over whatever the stored JSON says.
func recordToDocument(rec *db.ResumeRecord) (model.Document, error) {
	var doc model.Document
	if len(rec.Document) > 0 {
		if err := json.Unmarshal(rec.Document, &doc); err != nil {
			return model.Document{}, err
		}
	}
	doc.ID = rec.ID.String()
	doc.Title = rec.Title
	return doc, nil
}

// handleCreateResume creates a new resume seeded with placeholder content.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	doc := model.New(req.Title)
	body, err := json.Marshal(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode document")
		return
	}

	rec, err := s.resumes.CreateResume(r.Context(), userID, req.Title, body)
	if err != nil {
		s.logger.Error("create resume failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create resume")
		return
	}

	created, err := recordToDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to decode document")
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListResumes returns every resume owned by the caller.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	records, err := s.resumes.ListResumes(r.Context(), userID)
	if err != nil {
		s.logger.Error("list resumes failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	docs := make([]model.Document, 0, len(records))
	for i := range records {
		doc, err := recordToDocument(&records[i])
		if err != nil {
			s.logger.Error("skipping undecodable resume", "id", records[i].ID, "err", err)
			continue
		}
		docs = append(docs, doc)
	}
	s.jsonResponse(w, http.StatusOK, docs)
}

// handleGetResume returns one resume by id.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
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
		s.logger.Error("get resume failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resume")
		return
	}
	if rec == nil {
		err := &ErrResumeNotFound{ResumeID: resumeID.String()}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc, err := recordToDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to decode document")
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleUpdateResume replaces the stored document with the submitted snapshot.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	resumeID, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var doc model.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if doc.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "validation error: title - required")
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode document")
		return
	}

	rec, err := s.resumes.UpdateResume(r.Context(), userID, resumeID, doc.Title, body)
	if err != nil {
		s.logger.Error("update resume failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to update resume")
		return
	}
	if rec == nil {
		err := &ErrResumeNotFound{ResumeID: resumeID.String()}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	saved, err := recordToDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to decode document")
		return
	}
	s.jsonResponse(w, http.StatusOK, saved)
}

// handleDeleteResume removes a resume by id.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	resumeID, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	deleted, err := s.resumes.DeleteResume(r.Context(), userID, resumeID)
	if err != nil {
		s.logger.Error("delete resume failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	if !deleted {
		err := &ErrResumeNotFound{ResumeID: resumeID.String()}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// resumeID parses the {id} path segment, rejecting malformed ids early.
func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return uuid.Nil, false
	}
	return id, true
}
