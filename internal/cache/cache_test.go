package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/model"
)

func TestListCache_RoundTrip(t *testing.T) {
	c, err := NewListCache(t.TempDir())
	require.NoError(t, err)

	docs := []model.Document{model.New("First"), model.New("Second")}
	require.NoError(t, c.Put("u1", docs))

	entry, err := c.Get("u1")
	require.NoError(t, err)
	require.Len(t, entry.Resumes, 2)
	assert.Equal(t, "First", entry.Resumes[0].Title)
	assert.False(t, entry.SavedAt.IsZero())
}

func TestListCache_MissForUnknownUser(t *testing.T) {
	c, err := NewListCache(t.TempDir())
	require.NoError(t, err)

	_, err = c.Get("nobody")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestListCache_EntriesAreScopedPerUser(t *testing.T) {
	c, err := NewListCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Put("u1", []model.Document{model.New("Mine")}))

	_, err = c.Get("u2")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestListCache_Clear(t *testing.T) {
	c, err := NewListCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Put("u1", []model.Document{model.New("Mine")}))
	require.NoError(t, c.Clear("u1"))
	require.NoError(t, c.Clear("u1"))

	_, err = c.Get("u1")
	assert.ErrorIs(t, err, ErrMiss)
}
