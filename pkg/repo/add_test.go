package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoundTrip(t *testing.T) {
	r, fs := setupRepo(t)
	writeFile(t, fs, "/in/fileA.txt", "the quick brown fox")

	id, err := r.Add(context.Background(), "/in/fileA.txt")
	require.NoError(t, err)
	assert.Equal(t, model.DocumentID(1), id)

	copied, err := r.Get(context.Background(), id, ToDestination("/out"))
	require.NoError(t, err)
	require.Len(t, copied, 1)
	assert.Equal(t, filepath.Join("/out", "fileA.txt"), copied[0])

	b, err := afero.ReadFile(fs, copied[0])
	require.NoError(t, err)
	assert.Equal(t, "the quick brown fox", string(b))
}

func TestAddMonotonicIDs(t *testing.T) {
	r, fs := setupRepo(t)
	writeFile(t, fs, "/in/a.txt", "a")

	last := model.DocumentID(0)
	for i := 0; i < 5; i++ {
		id, err := r.Add(context.Background(), "/in/a.txt")
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestAddMissingSource(t *testing.T) {
	r, memFs := setupRepo(t)

	_, err := r.Add(context.Background(), "/in/missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidInput)

	// a failed add must not burn an id
	writeFile(t, memFs, "/in/ok.txt", "payload")
	id, err := r.Add(context.Background(), "/in/ok.txt")
	require.NoError(t, err)
	assert.Equal(t, model.DocumentID(1), id)
}

func TestAddDirectorySource(t *testing.T) {
	r, memFs := setupRepo(t)
	require.NoError(t, memFs.MkdirAll("/in/dir", 0700))

	_, err := r.Add(context.Background(), "/in/dir")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidInput)
}

func TestAddStartingRevision(t *testing.T) {
	r, memFs := setupRepo(t)
	writeFile(t, memFs, "/in/a.txt", "a")

	id, err := r.Add(context.Background(), "/in/a.txt", StartingRevision(7))
	require.NoError(t, err)

	revs, err := r.Revisions(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []model.RevisionID{7}, revs)

	_, err = r.Add(context.Background(), "/in/a.txt", StartingRevision(1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidRevision)
}

func TestAddLandsOnShardPath(t *testing.T) {
	r, memFs := setupRepo(t)
	writeFile(t, memFs, "/in/a.txt", "a")

	// push the allocator into the kilo bucket range
	r.mu.Lock()
	r.nextID = 1500
	r.mu.Unlock()

	id, err := r.Add(context.Background(), "/in/a.txt")
	require.NoError(t, err)
	assert.Equal(t, model.DocumentID(1500), id)

	exists, err := afero.Exists(memFs, filepath.Join(testRoot, "k001", "500", "001", "a.txt"))
	require.NoError(t, err)
	assert.True(t, exists)
}
