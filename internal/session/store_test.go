package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(filepath.Join(dir, "token"), filepath.Join(dir, "notice"))
}

func TestFileStore_TokenRoundTrip(t *testing.T) {
	store := newTestFileStore(t)

	_, ok := store.Token()
	assert.False(t, ok)

	require.NoError(t, store.SaveToken("abc123"))

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "abc123", token)

	// A new store over the same paths sees the token - this is what
	// lets a restarted client skip the login screen.
	reopened := NewFileStore(store.tokenPath, store.noticePath)
	token, ok = reopened.Token()
	require.True(t, ok)
	assert.Equal(t, "abc123", token)
}

func TestFileStore_Clear(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.SaveToken("abc123"))
	require.NoError(t, store.SetNotice("welcome"))

	require.NoError(t, store.Clear())

	_, ok := store.Token()
	assert.False(t, ok)

	// Clearing the token must not eat a pending notice.
	notice, ok := store.TakeNotice()
	require.True(t, ok)
	assert.Equal(t, "welcome", notice)

	// Clearing an already-clear store is not an error.
	require.NoError(t, store.Clear())
}

func TestFileStore_NoticeIsOneShot(t *testing.T) {
	store := newTestFileStore(t)

	_, ok := store.TakeNotice()
	assert.False(t, ok)

	require.NoError(t, store.SetNotice("registration successful"))

	notice, ok := store.TakeNotice()
	require.True(t, ok)
	assert.Equal(t, "registration successful", notice)

	_, ok = store.TakeNotice()
	assert.False(t, ok, "a taken notice must never be returned again")
}

func TestFileStore_NoticeReplaced(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.SetNotice("first"))
	require.NoError(t, store.SetNotice("second"))

	notice, ok := store.TakeNotice()
	require.True(t, ok)
	assert.Equal(t, "second", notice)
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	_, ok := store.Token()
	assert.False(t, ok)

	require.NoError(t, store.SaveToken("tok"))
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok)

	require.NoError(t, store.SetNotice("hi"))
	notice, ok := store.TakeNotice()
	require.True(t, ok)
	assert.Equal(t, "hi", notice)

	_, ok = store.TakeNotice()
	assert.False(t, ok)
}
