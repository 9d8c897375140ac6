package repo

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/spf13/afero"
)

// Revisions returns the numerically sorted revision numbers of a document.
// A document without a shard directory simply has no revisions: this is not
// an error.
func (r *Repository) Revisions(ctx context.Context, id model.DocumentID) ([]model.RevisionID, error) {
	if err := id.Validate(); err != nil {
		return nil, status.ErrInvalidInput.WrapMessage(err, "document id")
	}
	return r.listRevisions(model.ShardPath(id))
}

func (r *Repository) listRevisions(docDir string) ([]model.RevisionID, error) {
	entries, err := afero.ReadDir(r.fs, docDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, status.ErrIO.WrapMessage(err, "listing "+docDir)
	}
	revs := make([]model.RevisionID, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		rev, ok := model.ParseRevisionDirName(e.Name())
		if !ok || rev.Validate() != nil {
			// e.g. a stray 000 directory
			continue
		}
		revs = append(revs, rev)
	}
	sort.Slice(revs, func(i, j int) bool { return revs[i] < revs[j] })
	return revs, nil
}

// resolveRevision determines which revision directory of a document to
// operate on. An explicit revision is used verbatim after validation. With
// none supplied, the highest numbered revision wins.
//
// NOTE: the historical behavior selected the lowest numbered revision here.
// Picking the highest one is a deliberate deviation: "the" revision of a
// document with no number supplied is its most recent one.
func (r *Repository) resolveRevision(docDir string, rev model.RevisionID) (string, error) {
	if rev != 0 {
		if err := rev.Validate(); err != nil {
			return "", status.ErrInvalidRevision.WrapMessage(err, "requested revision")
		}
		return filepath.Join(docDir, rev.DirName()), nil
	}
	revs, err := r.listRevisions(docDir)
	if err != nil {
		return "", err
	}
	if len(revs) == 0 {
		return "", status.ErrNotFound.WrapMessage(nil, "no revision in "+docDir)
	}
	return filepath.Join(docDir, revs[len(revs)-1].DirName()), nil
}
