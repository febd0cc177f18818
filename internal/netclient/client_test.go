package netclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/cache"
	"github.com/jonathan/resume-studio/internal/model"
	"github.com/jonathan/resume-studio/internal/session"
)

func loggedInStore(t *testing.T) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Refresh(session.Session{
		Token: "test-token",
		User:  session.User{ID: "u1", Email: "ada@example.com"},
	}))
	return store
}

func TestDo_TimesOutTwiceThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			time.Sleep(300 * time.Millisecond)
			return
		}
		_ = json.NewEncoder(w).Encode(model.New("ok"))
	}))
	defer srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{Timeout: 100 * time.Millisecond})

	doc, err := c.GetResume(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "ok", doc.Title)
	assert.Equal(t, int32(3), attempts.Load(), "call must be attempted exactly 3 times")
}

func TestDo_ExhaustedRetriesYieldOneTimeoutFailure(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{Timeout: 50 * time.Millisecond})

	_, err := c.GetResume(context.Background(), "abc")

	require.Error(t, err)
	category, ok := CategoryOf(err)
	require.True(t, ok)
	assert.Equal(t, CategoryTimeout, category)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestDo_ServerErrorIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{})

	_, err := c.GetResume(context.Background(), "abc")

	category, ok := CategoryOf(err)
	require.True(t, ok)
	assert.Equal(t, CategoryServer, category)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestDo_AuthFailurePurgesSessionAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := loggedInStore(t)
	var expired atomic.Bool
	c := New(srv.URL, store, Options{OnSessionExpired: func() { expired.Store(true) }})

	_, err := c.GetResume(context.Background(), "abc")

	category, ok := CategoryOf(err)
	require.True(t, ok)
	assert.Equal(t, CategoryAuth, category)
	assert.True(t, expired.Load())
	_, serr := store.Current()
	assert.ErrorIs(t, serr, session.ErrNoSession, "credentials must be purged")
}

func TestDo_NotFoundCategorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{})

	_, err := c.GetResume(context.Background(), "missing")

	category, ok := CategoryOf(err)
	require.True(t, ok)
	assert.Equal(t, CategoryNotFound, category)
}

func TestDo_BearerAttachedWhenSessionPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(model.New("ok"))
	}))
	defer srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{})
	_, err := c.GetResume(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestDo_MissingSessionStillProceeds(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(model.New("ok"))
	}))
	defer srv.Close()

	c := New(srv.URL, session.NewMemoryStore(), Options{})
	doc, err := c.GetResume(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "ok", doc.Title)
	assert.Empty(t, gotAuth, "call proceeds without a credential")
}

func TestListResumes_FallsBackToCacheWhenUnreachable(t *testing.T) {
	listCache, err := cache.NewListCache(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, listCache.Put("u1", []model.Document{model.New("Cached copy")}))

	// A closed server makes every attempt unreachable.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{Attempts: 1, Cache: listCache})

	result, err := c.ListResumes(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Stale, "cache fallback must be visibly stale")
	require.Len(t, result.Resumes, 1)
	assert.Equal(t, "Cached copy", result.Resumes[0].Title)
}

func TestListResumes_SuccessRefreshesCache(t *testing.T) {
	listCache, err := cache.NewListCache(t.TempDir())
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Document{model.New("Fresh")})
	}))
	defer srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{Cache: listCache})

	result, err := c.ListResumes(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Stale)

	entry, err := listCache.Get("u1")
	require.NoError(t, err)
	require.Len(t, entry.Resumes, 1)
	assert.Equal(t, "Fresh", entry.Resumes[0].Title)
}

func TestGenerations_StaleResponseDiscarded(t *testing.T) {
	c := New("http://unused", session.NewMemoryStore(), Options{})

	first := c.BeginGeneration("resume-list")
	second := c.BeginGeneration("resume-list")

	assert.False(t, c.Current(first), "superseded generation must be discarded")
	assert.True(t, c.Current(second))

	// Slots are independent.
	other := c.BeginGeneration("document:42")
	assert.True(t, c.Current(other))
	assert.True(t, c.Current(second))
}

func TestGenerateResume_DuplicateInFlightSuppressed(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		_ = json.NewEncoder(w).Encode(GenerateResponse{Success: true, AIResume: json.RawMessage(`{"summary":"S"}`)})
	}))
	defer srv.Close()

	c := New(srv.URL, loggedInStore(t), Options{})

	var wg sync.WaitGroup
	results := make([]GenerateResponse, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.GenerateResume(context.Background(), "doc1", GenerateRequest{Name: "Ada"})
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	assert.Equal(t, int32(1), calls.Load(), "concurrent generate triggers must share one request")
	assert.True(t, results[0].Success)
	assert.Equal(t, results[0].AIResume, results[1].AIResume)
}
