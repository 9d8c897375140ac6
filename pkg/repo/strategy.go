package repo

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/docdepot/docdepot/pkg/repo/status"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// localCopy is the default CopyStrategy: a plain filesystem copy of every
// file into the destination directory, under its revision base name.
type localCopy struct {
	fs afero.Fs
}

func (c *localCopy) Copy(ctx context.Context, files []File, destination string) ([]string, error) {
	if err := c.fs.MkdirAll(destination, 0755); err != nil {
		return nil, status.ErrIO.WrapMessage(err, "creating destination "+destination)
	}
	copied := make([]string, 0, len(files))
	for _, f := range files {
		target := filepath.Join(destination, f.Name)
		if err := c.copyOne(f, target); err != nil {
			// remaining copies aborted, completed ones stay
			return copied, err
		}
		copied = append(copied, target)
	}
	return copied, nil
}

func (c *localCopy) copyOne(f File, target string) error {
	in, err := f.Open()
	if err != nil {
		return status.ErrIO.WrapMessage(err, "opening "+f.Name)
	}
	defer in.Close()

	out, err := c.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return status.ErrIO.WrapMessage(err, "creating "+target)
	}
	_, err = io.Copy(out, in)
	if err = multierr.Append(err, out.Close()); err != nil {
		return status.ErrIO.WrapMessage(err, "copying "+f.Name+" to "+target)
	}
	return nil
}
