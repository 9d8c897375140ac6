package repo

import (
	"context"
	"testing"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAscendingRevisions(t *testing.T) {
	r, memFs := setupRepo(t)
	writeFile(t, memFs, "/in/a.txt", "v1")

	id, err := r.Add(context.Background(), "/in/a.txt")
	require.NoError(t, err)

	rev, err := r.Put(context.Background(), id, "/in/a.txt")
	require.NoError(t, err)
	assert.Equal(t, model.RevisionID(2), rev)

	rev, err = r.Put(context.Background(), id, "/in/a.txt")
	require.NoError(t, err)
	assert.Equal(t, model.RevisionID(3), rev)

	revs, err := r.Revisions(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []model.RevisionID{1, 2, 3}, revs)
}

func TestPutToleratesRevisionGaps(t *testing.T) {
	r, memFs := setupRepo(t)
	writeFile(t, memFs, "/in/a.txt", "payload")

	id, err := r.Add(context.Background(), "/in/a.txt", StartingRevision(5))
	require.NoError(t, err)

	rev, err := r.Put(context.Background(), id, "/in/a.txt")
	require.NoError(t, err)
	assert.Equal(t, model.RevisionID(6), rev)
}

func TestPutOnNewDocument(t *testing.T) {
	r, memFs := setupRepo(t)
	writeFile(t, memFs, "/in/a.txt", "payload")

	rev, err := r.Put(context.Background(), 42, "/in/a.txt")
	require.NoError(t, err)
	assert.Equal(t, model.FirstRevision, rev)

	ids, err := r.Documents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.DocumentID{42}, ids)
}

func TestPutMultipleFiles(t *testing.T) {
	r, memFs := setupRepo(t)
	writeFile(t, memFs, "/in/a.txt", "a")
	writeFile(t, memFs, "/in/b.txt", "b")

	id, err := r.Add(context.Background(), "/in/a.txt")
	require.NoError(t, err)
	_, err = r.Put(context.Background(), id, "/in/a.txt", "/in/b.txt")
	require.NoError(t, err)

	copied, err := r.Get(context.Background(), id, ToDestination("/out"))
	require.NoError(t, err)
	assert.Len(t, copied, 2)
}

func TestPutInvalidInput(t *testing.T) {
	r, _ := setupRepo(t)

	_, err := r.Put(context.Background(), 0, "/in/a.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidInput)

	_, err = r.Put(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidInput)

	// a missing source file is an I/O failure at copy time
	_, err = r.Put(context.Background(), 1, "/in/missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrIO)
}

func TestPutRevisionOverflow(t *testing.T) {
	r, memFs := setupRepo(t)
	writeFile(t, memFs, "/in/a.txt", "payload")

	id, err := r.Add(context.Background(), "/in/a.txt", StartingRevision(999))
	require.NoError(t, err)

	_, err = r.Put(context.Background(), id, "/in/a.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidRevision)
}
