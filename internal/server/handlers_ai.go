package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/schemas"
)

// handleGenerate drafts resume content with the model and returns it raw.
// A draft that fails schema validation is still returned; the client's merge
// engine degrades to raw-text mode on anything unusable. The failure is
// logged for prompt tuning.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentUser(w, r); !ok {
		return
	}
	if s.ai == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI drafting is not configured")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prompt := llm.BuildDraftPrompt(llm.DraftInput{
		Prompt:     req.Prompt,
		Name:       req.Name,
		Role:       req.Role,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		Projects:   req.Projects,
	})

	draft, err := s.ai.GenerateJSON(r.Context(), prompt)
	if err != nil {
		s.logger.Error("draft generation failed", "err", err)
		s.errorResponse(w, http.StatusBadGateway, "draft generation failed")
		return
	}

	if verr := schemas.ValidateDraft(draft); verr != nil {
		s.logger.Warn("draft failed schema validation", "err", verr)
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Success:  true,
		AIResume: json.RawMessage(draft),
	})
}

// handleAnalyze critiques the submitted resume snapshot.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentUser(w, r); !ok {
		return
	}
	if s.ai == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI analysis is not configured")
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.ResumeData) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "validation error: resumeData - required")
		return
	}

	raw, err := s.ai.GenerateJSON(r.Context(), llm.BuildAnalysisPrompt(string(req.ResumeData)))
	if err != nil {
		s.logger.Error("analysis failed", "err", err)
		s.errorResponse(w, http.StatusBadGateway, "analysis failed")
		return
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		s.logger.Error("analysis response was not valid JSON", "err", err)
		s.errorResponse(w, http.StatusBadGateway, "analysis response malformed")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{Success: true, Analysis: analysis})
}
