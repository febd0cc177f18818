package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImages_StoresFileAndUpdatesLinks(t *testing.T) {
	ts := newTestServer(t, newFakeStore(), nil)
	token := registerAndLogin(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/resume", token, CreateResumeRequest{Title: "With picture"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	id := created["id"].(string)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fw, err := writer.CreateFormFile("thumbnail", "thumbnail.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/resume/"+id+"/upload-images", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	uploadResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer uploadResp.Body.Close()
	require.Equal(t, http.StatusOK, uploadResp.StatusCode)

	var links UploadImagesResponse
	require.NoError(t, json.NewDecoder(uploadResp.Body).Decode(&links))
	assert.Equal(t, "/uploads/"+id+"-thumbnail.png", links.Thumbnail)
	assert.Empty(t, links.ProfileImage)

	// The stored document now carries the link.
	resp, body = doJSON(t, http.MethodGet, ts.URL+"/resume/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched map[string]any
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, links.Thumbnail, fetched["thumbnailLink"])
}

func TestUploadImages_EmptyFormRejected(t *testing.T) {
	ts := newTestServer(t, newFakeStore(), nil)
	token := registerAndLogin(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/resume", token, CreateResumeRequest{Title: "Bare"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	id := created["id"].(string)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/resume/"+id+"/upload-images", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	uploadResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	uploadResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, uploadResp.StatusCode)
}
