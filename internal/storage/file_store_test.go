package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/models"
)

func TestLoadMissingFileReturnsEmptySnapshot(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Sessions)
	assert.Empty(t, snap.Communities)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jackut.json")
	store := NewFileStore(path)

	snap := NewSnapshot()
	user := models.NewUser("jp", "secret", "Jacques")
	user.Friends = []string{"ana"}
	user.Messages = []string{"m1", "m2"}
	snap.Users["jp"] = user
	snap.Users["ana"] = models.NewUser("ana", "secret", "Ana")
	snap.Sessions["sess-1"] = "jp"
	snap.Communities["go"] = models.NewCommunity("go", "gophers", "jp")

	require.NoError(t, store.Save(snap))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestSaveAfterLoadIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jackut.json")
	store := NewFileStore(path)

	snap := NewSnapshot()
	snap.Users["jp"] = models.NewUser("jp", "secret", "Jacques")
	snap.Communities["go"] = models.NewCommunity("go", "gophers", "jp")
	require.NoError(t, store.Save(snap))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
