package repo

import (
	"os"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option is a functor to build a repository with some options
type Option func(*Repository)

// WithLogger injects a logging facility into repository operations
func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.l = l
		}
	}
}

// WithDirMode sets the permission mode applied to every directory level
// created by the repository (default 0700)
func WithDirMode(mode os.FileMode) Option {
	return func(r *Repository) {
		r.dirMode = mode
	}
}

// WithStartRevision sets the revision number given to the first revision of
// new documents (default 1)
func WithStartRevision(rev model.RevisionID) Option {
	return func(r *Repository) {
		r.startRev = rev
	}
}

// WithFS sets the backing filesystem hosting the repository tree as well as
// caller-supplied source and destination paths. Defaults to the OS
// filesystem; tests typically pass afero.NewMemMapFs().
func WithFS(fs afero.Fs) Option {
	return func(r *Repository) {
		r.base = fs
	}
}

// WithExternalFS sets the filesystem resolving caller-supplied source and
// destination paths, when distinct from the repository's backing filesystem
func WithExternalFS(fs afero.Fs) Option {
	return func(r *Repository) {
		r.external = fs
	}
}
