package netclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jonathan/resume-studio/internal/cache"
	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/session"
)

// ListResult carries the resume list plus its provenance: Stale marks a
// cache fallback after a failed live fetch.
type ListResult struct {
	Resumes []model.Document
	Stale   bool
}

// CreateResume starts a new document on the backend.
func (c *Client) CreateResume(ctx context.Context, title string) (model.Document, error) {
	var doc model.Document
	err := c.do(ctx, "create resume", http.MethodPost, "/resume", map[string]string{"title": title}, &doc)
	return doc, err
}

// ListResumes fetches the caller's documents. On a network failure it falls
// back to the cached list, marked stale; auth failures never fall back since
// the session is gone.
func (c *Client) ListResumes(ctx context.Context) (ListResult, error) {
	var resumes []model.Document
	err := c.do(ctx, "list resumes", http.MethodGet, "/resume", nil, &resumes)
	if err == nil {
		if c.opts.Cache != nil {
			if cerr := c.opts.Cache.Put(c.cacheKey(), resumes); cerr != nil {
				c.logger.Warn("failed to cache resume list", "err", cerr)
			}
		}
		return ListResult{Resumes: resumes}, nil
	}

	if category, ok := CategoryOf(err); ok && category != CategoryAuth && c.opts.Cache != nil {
		entry, cerr := c.opts.Cache.Get(c.cacheKey())
		if cerr == nil {
			c.logger.Warn("list fetch failed, serving cached copy", "savedAt", entry.SavedAt, "err", err)
			return ListResult{Resumes: entry.Resumes, Stale: true}, nil
		}
		if !errors.Is(cerr, cache.ErrMiss) {
			c.logger.Error("cache read failed", "err", cerr)
		}
	}
	return ListResult{}, err
}

// GetResume fetches one document by id.
func (c *Client) GetResume(ctx context.Context, id string) (model.Document, error) {
	var doc model.Document
	err := c.do(ctx, "get resume", http.MethodGet, "/resume/"+id, nil, &doc)
	return doc, err
}

// UpdateResume saves the full document. The in-memory snapshot is the
// caller's regardless of the outcome; a failed save loses nothing.
func (c *Client) UpdateResume(ctx context.Context, doc model.Document) (model.Document, error) {
	if doc.ID == "" {
		return model.Document{}, fmt.Errorf("update resume: document has no id")
	}
	var saved model.Document
	err := c.do(ctx, "update resume", http.MethodPut, "/resume/"+doc.ID, doc, &saved)
	return saved, err
}

// DeleteResume removes a document by id.
func (c *Client) DeleteResume(ctx context.Context, id string) error {
	return c.do(ctx, "delete resume", http.MethodDelete, "/resume/"+id, nil, nil)
}

// UploadImagesResponse carries the stored image links after an upload.
type UploadImagesResponse struct {
	Thumbnail    string `json:"thumbnailLink"`
	ProfileImage string `json:"profileImageLink"`
}

// UploadImages replaces the thumbnail and/or profile image for a resume.
// Either reader may be nil. On success the returned document snapshot has
// its link fields updated; the upload replaces any previously stored file
// for the slot server-side.
func (c *Client) UploadImages(ctx context.Context, doc model.Document, thumbnail, profile io.Reader) (model.Document, error) {
	if doc.ID == "" {
		return model.Document{}, fmt.Errorf("upload images: document has no id")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, part := range []struct {
		field  string
		reader io.Reader
	}{
		{"thumbnail", thumbnail},
		{"profileImage", profile},
	} {
		if part.reader == nil {
			continue
		}
		fw, err := writer.CreateFormFile(part.field, part.field+".png")
		if err != nil {
			return model.Document{}, fmt.Errorf("upload images: %w", err)
		}
		if _, err := io.Copy(fw, part.reader); err != nil {
			return model.Document{}, fmt.Errorf("upload images: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return model.Document{}, fmt.Errorf("upload images: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resume/"+doc.ID+"/upload-images", &buf)
	if err != nil {
		return model.Document{}, &Error{Category: CategoryDecode, Op: "upload images", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.attachBearer(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Document{}, &Error{Category: transportCategory(err), Op: "upload images", Cause: err}
	}
	var links UploadImagesResponse
	if err := c.finish("upload images", resp, &links); err != nil {
		return model.Document{}, err
	}

	next := doc
	if links.Thumbnail != "" {
		next.Thumbnail = links.Thumbnail
	}
	if links.ProfileImage != "" {
		next.ProfileImage = links.ProfileImage
	}
	return next, nil
}

func (c *Client) cacheKey() string {
	s, err := c.sessions.Current()
	if err != nil || errors.Is(err, session.ErrNoSession) {
		return ""
	}
	return s.User.ID
}
