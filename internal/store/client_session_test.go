package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

func newFileStore(t *testing.T) (SessionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewSessionStore(path), path
}

var testSession = models.Session{Token: "T", UserID: 1, Email: "a@b.com"}

func TestFileSessionStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newFileStore(t)

	require.NoError(t, store.Save(testSession))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "T", loaded.Token)
	assert.Equal(t, int64(1), loaded.UserID)
	assert.Equal(t, "a@b.com", loaded.Email)
}

func TestFileSessionStore_LoadAbsent(t *testing.T) {
	store, _ := newFileStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.Empty(t, store.Token())
}

func TestFileSessionStore_LoadCorruptData(t *testing.T) {
	store, path := newFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	loaded, err := store.Load()
	assert.Nil(t, loaded)
	assert.True(t, errors.Is(err, ErrSessionMalformed))
	assert.Empty(t, store.Token())
}

func TestFileSessionStore_EmptyTokenTreatedAsMalformed(t *testing.T) {
	store, path := newFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"","user_id":1}`), 0o600))

	loaded, err := store.Load()
	assert.Nil(t, loaded)
	assert.True(t, errors.Is(err, ErrSessionMalformed))
}

func TestFileSessionStore_SaveReplacesPriorValue(t *testing.T) {
	store, _ := newFileStore(t)

	require.NoError(t, store.Save(testSession))
	require.NoError(t, store.Save(models.Session{Token: "T2", UserID: 2, Email: "c@d.com"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "T2", loaded.Token)
}

func TestFileSessionStore_ClearIsIdempotent(t *testing.T) {
	store, _ := newFileStore(t)
	require.NoError(t, store.Save(testSession))

	require.NoError(t, store.Clear())
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing the already-empty store is a no-op.
	require.NoError(t, store.Clear())
}

func TestFileSessionStore_NoTempFileLeftBehind(t *testing.T) {
	store, path := newFileStore(t)
	require.NoError(t, store.Save(testSession))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestNewSessionStore_MemoryVariants(t *testing.T) {
	for _, path := range []string{"", InMemorySessionPath} {
		store := NewSessionStore(path)
		require.IsType(t, &memorySessionStore{}, store)
	}
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore(InMemorySessionPath)

	require.NoError(t, store.Save(testSession))
	assert.Equal(t, "T", store.Token())

	require.NoError(t, store.Clear())
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
	require.NoError(t, store.Clear())
}
