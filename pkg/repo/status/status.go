// Package status exports errors produced by the repo package.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between the repository and
// packages consuming it.
package status

import (
	"github.com/docdepot/docdepot/pkg/errors"
)

var (
	// ErrRepoUnavailable indicates that the repository root is missing, not a
	// directory, or not accessible. This is fatal to repository construction.
	ErrRepoUnavailable = errors.New("repository root unavailable")

	// ErrInvalidInput indicates a malformed document id or a missing source file
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRevision indicates a revision number outside the representable
	// range (revision directory names are zero-padded to 3 digits)
	ErrInvalidRevision = errors.New("invalid revision number")

	// ErrNotFound indicates that the document or revision directory is absent
	ErrNotFound = errors.New("not found")

	// ErrIO indicates a copy, mkdir or readdir failure at the OS boundary.
	// Partial side effects (created directories, partially copied file sets)
	// are left as-is and are not rolled back by this layer.
	ErrIO = errors.New("I/O error")

	// ErrEnumeration indicates a directory in the repository tree could not be
	// listed during a walk. The walk is aborted and no partial results are
	// returned.
	ErrEnumeration = errors.New("enumeration error")

	// ErrExhausted indicates the id allocator counter would overflow
	ErrExhausted = errors.New("document id space exhausted")
)
