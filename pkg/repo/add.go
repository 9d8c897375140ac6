package repo

import (
	"context"
	"path/filepath"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"go.uber.org/zap"
)

// AddOption alters a single Add operation
type AddOption func(*addSettings)

type addSettings struct {
	startRev model.RevisionID
}

// StartingRevision numbers the new document's first revision explicitly,
// overriding the repository default
func StartingRevision(rev model.RevisionID) AddOption {
	return func(s *addSettings) {
		s.startRev = rev
	}
}

// Add installs a new document made of a single source file and returns its
// freshly allocated id.
//
// The id counter only advances once the document is fully installed, so a
// failed Add does not burn an id. The document's leaf directory is claimed
// with an exclusive create, making concurrent Adds safe.
func (r *Repository) Add(ctx context.Context, source string, opts ...AddOption) (model.DocumentID, error) {
	settings := addSettings{startRev: r.startRev}
	for _, apply := range opts {
		apply(&settings)
	}
	if err := settings.startRev.Validate(); err != nil {
		return 0, status.ErrInvalidRevision.WrapMessage(err, "starting revision")
	}

	fi, err := r.external.Stat(source)
	if err != nil {
		return 0, status.ErrInvalidInput.WrapMessage(err, "source file "+source)
	}
	if fi.IsDir() {
		return 0, status.ErrInvalidInput.WrapMessage(nil, source+" is a directory")
	}

	stage, byteCount, err := r.stageFiles(source)
	defer r.discardStage(stage)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, docDir, err := r.claimNextDocument()
	if err != nil {
		return 0, err
	}
	if err = r.fs.Rename(stage, filepath.Join(docDir, settings.startRev.DirName())); err != nil {
		return 0, status.ErrIO.WrapMessage(err, "publishing first revision of document "+id.String())
	}
	r.nextID = id + 1

	record(ctx, opAdd, byteCount)
	r.l.Info("document added",
		zap.Int64("document", int64(id)),
		zap.Int64("revision", int64(settings.startRev)),
		zap.String("source", source),
		zap.Int64("bytes", byteCount),
	)
	return id, nil
}
