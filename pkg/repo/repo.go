// Package repo implements a filesystem-backed store for revision-numbered
// documents. A document is a monotonically allocated integer id mapping to an
// ordered set of immutable revisions, each revision a flat directory of files.
//
// Document ids map to disk locations through a pure sharding function (see
// pkg/model): no index or manifest is persisted, and the full id space is
// reconstructed by walking the directory tree.
//
// Partial side effects of failed operations (created bucket directories,
// partially copied file sets in the staging area) are left as-is: this layer
// never rolls back, and never retries. Revisions themselves are published
// atomically by renaming a staged directory into place.
package repo

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// stage area for in-flight revisions, dot-prefixed so read operations skip it
const stageDirName = ".stage"

// Repository is a filesystem-backed document store rooted at a single
// directory. Construct one per process with New.
//
// All operations are safe for concurrent use: published revisions are
// immutable, and the id allocation plus directory-claim step of Add is
// serialized under a single mutex.
type Repository struct {
	root     string
	base     afero.Fs // filesystem hosting the repository root
	external afero.Fs // resolves caller-supplied source and destination paths
	fs       afero.Fs // base, rooted at root
	dirMode  os.FileMode
	startRev model.RevisionID
	l        *zap.Logger

	// mu guards nextID and the claim of new document and revision directories
	mu     sync.Mutex
	nextID model.DocumentID
}

// New opens the repository rooted at root.
//
// The root directory must exist and be accessible. The id allocator is seeded
// by enumerating existing documents: the next id is one greater than the
// maximum found, or 1 for an empty tree.
func New(root string, opts ...Option) (*Repository, error) {
	r := &Repository{
		root:     root,
		base:     afero.NewOsFs(),
		dirMode:  0700,
		startRev: model.FirstRevision,
		l:        zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}
	if r.external == nil {
		r.external = r.base
	}

	fi, err := r.base.Stat(root)
	if err != nil {
		return nil, status.ErrRepoUnavailable.WrapMessage(err, root)
	}
	if !fi.IsDir() {
		return nil, status.ErrRepoUnavailable.WrapMessage(
			fmt.Errorf("%s is not a directory", root), root)
	}
	r.fs = afero.NewBasePathFs(r.base, root)

	maxID := model.DocumentID(0)
	if err = r.walkDocuments(".", 0, func(id model.DocumentID) error {
		if id > maxID {
			maxID = id
		}
		return nil
	}); err != nil {
		// a tree that cannot be enumerated cannot seed the allocator
		return nil, status.ErrRepoUnavailable.WrapMessage(err, root)
	}
	r.nextID = maxID + 1

	r.l.Info("repository opened",
		zap.String("root", root),
		zap.Int64("next_id", int64(r.nextID)),
	)
	return r, nil
}

// claimNextDocument allocates the next document id by exclusively creating
// its leaf shard directory. Creation is the authoritative claim: on
// collision (e.g. the tree was modified behind our back) the candidate id is
// incremented and the claim retried. The caller must hold r.mu.
func (r *Repository) claimNextDocument() (model.DocumentID, string, error) {
	for id := r.nextID; ; id++ {
		if id <= 0 || id == math.MaxInt64 {
			return 0, "", status.ErrExhausted
		}
		dir := model.ShardPath(id)
		if parent := parentDir(dir); parent != "" {
			if err := r.fs.MkdirAll(parent, r.dirMode); err != nil {
				return 0, "", status.ErrIO.WrapMessage(err, "creating bucket directories for "+dir)
			}
		}
		err := r.fs.Mkdir(dir, r.dirMode)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return 0, "", status.ErrIO.WrapMessage(err, "claiming "+dir)
		}
	}
}
