package repo

import (
	"context"
	"path/filepath"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"go.uber.org/zap"
)

// Put installs a new revision of a document from the given source files and
// returns its number: one greater than the current maximum, or the
// repository's starting revision when the document holds no revision yet.
//
// Revisions are immutable once published: Put never overwrites an existing
// revision directory.
func (r *Repository) Put(ctx context.Context, id model.DocumentID, files ...string) (model.RevisionID, error) {
	if err := id.Validate(); err != nil {
		return 0, status.ErrInvalidInput.WrapMessage(err, "document id")
	}
	if len(files) == 0 {
		return 0, status.ErrInvalidInput.WrapMessage(nil, "at least one file is required")
	}

	stage, byteCount, err := r.stageFiles(files...)
	defer r.discardStage(stage)
	if err != nil {
		return 0, err
	}

	docDir := model.ShardPath(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	revs, err := r.listRevisions(docDir)
	if err != nil {
		return 0, err
	}
	next := r.startRev
	if len(revs) > 0 {
		next = revs[len(revs)-1] + 1
	}
	if err = next.Validate(); err != nil {
		return 0, status.ErrInvalidRevision.WrapMessage(err, "document "+id.String())
	}

	if err = r.fs.MkdirAll(docDir, r.dirMode); err != nil {
		return 0, status.ErrIO.WrapMessage(err, "creating "+docDir)
	}
	if err = r.fs.Rename(stage, filepath.Join(docDir, next.DirName())); err != nil {
		return 0, status.ErrIO.WrapMessage(err, "publishing revision "+next.String()+" of document "+id.String())
	}

	record(ctx, opPut, byteCount)
	r.l.Info("revision added",
		zap.Int64("document", int64(id)),
		zap.Int64("revision", int64(next)),
		zap.Int("files", len(files)),
		zap.Int64("bytes", byteCount),
	)
	return next, nil
}
