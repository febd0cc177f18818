package netclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/model"
)

// GenerateRequest is the candidate summary sent to the AI draft endpoint.
type GenerateRequest struct {
	Prompt     string   `json:"prompt"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Projects   []string `json:"projects"`
}

// GenerateResponse wraps the AI-drafted partial resume. AIResume is kept
// raw: the merge engine owns shape recovery, not the transport.
type GenerateResponse struct {
	Success  bool            `json:"success"`
	AIResume json.RawMessage `json:"aiResume"`
}

// Analysis is the structured critique returned by the analyze endpoint.
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

// GenerateResume asks the AI backend to draft resume content. At most one
// generate call per document is in flight: concurrent triggers for the same
// document share the first call's result instead of racing two merges into
// the same snapshot.
func (c *Client) GenerateResume(ctx context.Context, docID string, req GenerateRequest) (GenerateResponse, error) {
	v, err, _ := c.flight.Do("generate:"+docID, func() (any, error) {
		var resp GenerateResponse
		if err := c.do(ctx, "ai generate", http.MethodPost, "/ai/generate", req, &resp); err != nil {
			return GenerateResponse{}, err
		}
		return resp, nil
	})
	if err != nil {
		return GenerateResponse{}, err
	}
	return v.(GenerateResponse), nil
}

// AnalyzeResume asks the AI backend to critique the document. Duplicate
// in-flight analyze calls per document are suppressed the same way as
// generate calls.
func (c *Client) AnalyzeResume(ctx context.Context, doc model.Document) (AnalyzeResponse, error) {
	key := "analyze:" + doc.ID
	v, err, _ := c.flight.Do(key, func() (any, error) {
		var resp AnalyzeResponse
		body := map[string]model.Document{"resumeData": doc}
		if err := c.do(ctx, "ai analyze", http.MethodPost, "/ai/analyze", body, &resp); err != nil {
			return AnalyzeResponse{}, err
		}
		return resp, nil
	})
	if err != nil {
		return AnalyzeResponse{}, err
	}
	return v.(AnalyzeResponse), nil
}
