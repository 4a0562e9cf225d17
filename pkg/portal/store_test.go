package portal

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLoadEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	saved := &Session{
		Token:   "tok-123",
		Profile: Profile{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: "client"},
		SavedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Token, loaded.Token)
	assert.Equal(t, saved.Profile, loaded.Profile)
	assert.True(t, saved.SavedAt.Equal(loaded.SavedAt))
}

func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(&Session{Token: "tok"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	// clearing an empty store is fine
	require.NoError(t, store.Clear())

	require.NoError(t, store.Save(&Session{Token: "tok"}))
	require.NoError(t, store.Clear())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFileStore(path)
	_, err := store.Load()
	assert.Error(t, err)
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(&Session{Token: "tok", Profile: Profile{Name: "Alice"}}))

	loaded, err := store.Load()
	require.NoError(t, err)

	// mutating the loaded copy must not leak back into the store
	loaded.Profile.Name = "Mallory"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Profile.Name)
}
