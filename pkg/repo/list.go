package repo

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/spf13/afero"
)

// ApplyDocumentFunc is a function to be applied on an enumerated document id
type ApplyDocumentFunc func(model.DocumentID) error

// DocumentsApply streams every document id in the repository to the applied
// function, in filesystem walk order. An error from the applied function
// interrupts the walk and is returned as-is.
func (r *Repository) DocumentsApply(ctx context.Context, apply ApplyDocumentFunc) error {
	return r.walkDocuments(".", 0, apply)
}

// Documents returns the sorted set of document ids in the repository,
// reconstructed purely from the sharded directory structure.
func (r *Repository) Documents(ctx context.Context) ([]model.DocumentID, error) {
	ids := make([]model.DocumentID, 0, 64)
	if err := r.DocumentsApply(ctx, func(id model.DocumentID) error {
		ids = append(ids, id)
		return nil
	}); err != nil {
		return nil, err
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// walkDocuments recurses over bucket directories, accumulating the id prefix
// contributed by each level. A directory that cannot be listed aborts the
// whole walk: callers never see partial results alongside an error.
func (r *Repository) walkDocuments(dir string, prefix int64, apply ApplyDocumentFunc) error {
	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return status.ErrEnumeration.WrapMessage(err, "listing "+dir)
	}
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if p, ok := model.ParseBucketName(name); ok {
			if err = r.walkDocuments(filepath.Join(dir, name), prefix+p, apply); err != nil {
				return err
			}
			continue
		}
		if leaf, ok := model.ParseLeafName(name); ok {
			id := model.DocumentID(prefix + leaf)
			if err = id.Validate(); err != nil {
				// e.g. a stray 000 directory at the root
				continue
			}
			if err = apply(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func parentDir(p string) string {
	if d := filepath.Dir(p); d != "." {
		return d
	}
	return ""
}
