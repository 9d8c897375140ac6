package repo

import (
	"io"
	"os"
	"path/filepath"

	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/segmentio/ksuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// stageFiles copies the given source files into a fresh staging directory
// under the repository's dot-prefixed stage area, and reports the staged
// byte count. The staging directory is later published as a whole with a
// single rename, or discarded.
func (r *Repository) stageFiles(files ...string) (string, int64, error) {
	stage := filepath.Join(stageDirName, ksuid.New().String())
	if err := r.fs.MkdirAll(stage, r.dirMode); err != nil {
		return "", 0, status.ErrIO.WrapMessage(err, "creating staging directory")
	}
	var total int64
	for _, f := range files {
		n, err := r.stageOne(f, stage)
		if err != nil {
			return stage, total, err
		}
		total += n
	}
	return stage, total, nil
}

// stageOne copies a single source file into the staging directory under its
// base name. Two sources with the same base name collide: last write wins.
func (r *Repository) stageOne(source, stage string) (int64, error) {
	in, err := r.external.Open(source)
	if err != nil {
		return 0, status.ErrIO.WrapMessage(err, "opening "+source)
	}
	defer in.Close()

	target := filepath.Join(stage, filepath.Base(source))
	out, err := r.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return 0, status.ErrIO.WrapMessage(err, "creating "+target)
	}
	n, err := io.Copy(out, in)
	if err = multierr.Append(err, out.Close()); err != nil {
		return n, status.ErrIO.WrapMessage(err, "staging "+source)
	}
	return n, nil
}

// discardStage removes staging leftovers. A published stage has already been
// renamed away, in which case this is a no-op.
func (r *Repository) discardStage(stage string) {
	if stage == "" {
		return
	}
	if err := r.fs.RemoveAll(stage); err != nil && !os.IsNotExist(err) {
		r.l.Debug("could not clean staging directory",
			zap.String("stage", stage), zap.Error(err))
	}
}
