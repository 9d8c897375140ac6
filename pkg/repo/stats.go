package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/docker/go-units"
	"github.com/spf13/afero"
)

// Stats aggregates maintenance counters over a whole repository
type Stats struct {
	// Documents is the number of documents in the repository
	Documents int64
	// Revisions is the total number of revisions across all documents
	Revisions int64
	// Files is the number of non-hidden files in the tree
	Files int64
	// DiskBytes is the cumulated size of those files
	DiskBytes int64
	// NextID is the id the next Add will attempt to claim
	NextID model.DocumentID
}

func (s Stats) String() string {
	return fmt.Sprintf("%d documents, %d revisions, %d files, %s on disk, next id %d",
		s.Documents, s.Revisions, s.Files,
		units.HumanSize(float64(s.DiskBytes)), int64(s.NextID))
}

// Stats scans the whole repository and aggregates document, revision and
// file counts plus disk usage. This is a maintenance operation: its cost is
// proportional to the total number of files.
func (r *Repository) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	if err := r.DocumentsApply(ctx, func(id model.DocumentID) error {
		s.Documents++
		revs, err := r.listRevisions(model.ShardPath(id))
		if err != nil {
			return err
		}
		s.Revisions += int64(len(revs))
		return nil
	}); err != nil {
		return Stats{}, err
	}

	if err := afero.Walk(r.fs, ".", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		base := filepath.Base(p)
		if strings.HasPrefix(base, ".") && base != "." {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() {
			s.Files++
			s.DiskBytes += info.Size()
		}
		return nil
	}); err != nil {
		return Stats{}, status.ErrIO.WrapMessage(err, "scanning repository")
	}

	r.mu.Lock()
	s.NextID = r.nextID
	r.mu.Unlock()

	record(ctx, opStats, 0)
	return s, nil
}
