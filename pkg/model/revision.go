package model

import (
	"fmt"
	"strconv"
)

// RevisionID identifies a revision within a document.
//
// Revision directory names are zero-padded to 3 decimal digits, so valid
// revision numbers range from 1 to 999: larger numbers would produce
// directory names ambiguous with the padded form.
type RevisionID int64

// FirstRevision is the conventional number of the first revision of a document
const FirstRevision RevisionID = 1

const maxRevision = 999

// Validate checks that the revision number fits the directory name convention
func (r RevisionID) Validate() error {
	if r <= 0 {
		return fmt.Errorf("invalid revision %d: must be positive", int64(r))
	}
	if r > maxRevision {
		return fmt.Errorf("invalid revision %d: exceeds %d", int64(r), maxRevision)
	}
	return nil
}

// DirName yields the revision's directory name, zero-padded to 3 digits
func (r RevisionID) DirName() string {
	return fmt.Sprintf("%03d", int64(r))
}

func (r RevisionID) String() string {
	return strconv.FormatInt(int64(r), 10)
}

// ParseRevisionDirName interprets a directory entry name as a revision
// number. Only purely numeric names qualify; anything else reports false.
func ParseRevisionDirName(name string) (RevisionID, bool) {
	if name == "" || len(name) > 9 {
		return 0, false
	}
	var v int64
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
		v = v*10 + int64(name[i]-'0')
	}
	return RevisionID(v), true
}
