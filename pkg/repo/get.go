package repo

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FileSelector filters the files of a revision by base name
type FileSelector func(name string) bool

// File describes a single file of a resolved revision, handed to copy
// strategies.
type File struct {
	// Name is the file's base name within its revision directory
	Name string
	// Size in bytes
	Size int64

	fs   afero.Fs
	path string
}

// Open the file for reading
func (f File) Open() (io.ReadCloser, error) {
	return f.fs.Open(f.path)
}

// CopyStrategy materializes the resolved file list of a revision at a
// destination. The default strategy performs a plain filesystem copy;
// callers may substitute their own to stream over a network, bundle into an
// archive, and so on.
type CopyStrategy interface {
	Copy(ctx context.Context, files []File, destination string) ([]string, error)
}

// GetOption alters a single Get operation
type GetOption func(*getSettings)

type getSettings struct {
	revision    model.RevisionID
	destination string
	selector    FileSelector
	strategy    CopyStrategy
}

// WithRevision retrieves an explicit revision instead of the most recent one
func WithRevision(rev model.RevisionID) GetOption {
	return func(s *getSettings) {
		s.revision = rev
	}
}

// ToDestination sets the directory files are copied to
func ToDestination(dir string) GetOption {
	return func(s *getSettings) {
		s.destination = dir
	}
}

// Matching keeps only files accepted by the selector
func Matching(selector FileSelector) GetOption {
	return func(s *getSettings) {
		s.selector = selector
	}
}

// WithStrategy substitutes the copy strategy receiving the resolved files
func WithStrategy(strategy CopyStrategy) GetOption {
	return func(s *getSettings) {
		s.strategy = strategy
	}
}

// Get retrieves the files of a document revision and returns the list of
// copied files as reported by the copy strategy.
//
// Without an explicit revision the most recent (highest numbered) one is
// retrieved. Hidden (dot-prefixed) entries and subdirectories are never part
// of a revision's file set. A copy failure aborts remaining copies;
// already-copied files are not rolled back.
func (r *Repository) Get(ctx context.Context, id model.DocumentID, opts ...GetOption) ([]string, error) {
	if err := id.Validate(); err != nil {
		return nil, status.ErrInvalidInput.WrapMessage(err, "document id")
	}
	var settings getSettings
	for _, apply := range opts {
		apply(&settings)
	}
	if settings.strategy == nil {
		if settings.destination == "" {
			return nil, status.ErrInvalidInput.WrapMessage(nil, "a destination is required with the default copy strategy")
		}
		settings.strategy = &localCopy{fs: r.external}
	}

	revDir, err := r.resolveRevision(model.ShardPath(id), settings.revision)
	if err != nil {
		return nil, err
	}
	files, byteCount, err := r.listFiles(revDir, settings.selector)
	if err != nil {
		return nil, err
	}

	copied, err := settings.strategy.Copy(ctx, files, settings.destination)
	if err != nil {
		return copied, err
	}

	record(ctx, opGet, byteCount)
	r.l.Info("document retrieved",
		zap.Int64("document", int64(id)),
		zap.String("revision_dir", revDir),
		zap.Int("files", len(copied)),
		zap.Int64("bytes", byteCount),
	)
	return copied, nil
}

// listFiles resolves the file set of a revision directory: non-hidden
// regular files, optionally filtered by a selector.
func (r *Repository) listFiles(revDir string, selector FileSelector) ([]File, int64, error) {
	entries, err := afero.ReadDir(r.fs, revDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, status.ErrNotFound.WrapMessage(err, revDir)
		}
		return nil, 0, status.ErrIO.WrapMessage(err, "listing "+revDir)
	}
	files := make([]File, 0, len(entries))
	var total int64
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if selector != nil && !selector(e.Name()) {
			continue
		}
		files = append(files, File{
			Name: e.Name(),
			Size: e.Size(),
			fs:   r.fs,
			path: filepath.Join(revDir, e.Name()),
		})
		total += e.Size()
	}
	return files, total, nil
}
