package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Current()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Refresh(Session{Token: "tok", User: User{ID: "u1", Email: "ada@example.com"}}))

	s, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)

	require.NoError(t, store.Invalidate())
	_, err = store.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Refresh(Session{Token: "tok", User: User{ID: "u1"}}))

	// A second store over the same path sees the session.
	again, err := NewFileStore(path)
	require.NoError(t, err)
	s, err := again.Current()
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestFileStore_InvalidateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Invalidate())
	require.NoError(t, store.Refresh(Session{Token: "tok"}))
	require.NoError(t, store.Invalidate())
	require.NoError(t, store.Invalidate())

	_, err = store.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_CorruptFileTreatedAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}
