package model

import (
	"fmt"
	"strconv"
)

// DocumentID identifies a document within a repository.
//
// Valid ids are positive integers. A document exists purely by presence of
// its shard directory on disk.
type DocumentID int64

// ParseDocumentID parses a document id from its canonical decimal form.
// Non-canonical forms (empty, signed, leading zeros, zero) are rejected.
func ParseDocumentID(s string) (DocumentID, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid document id: empty")
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("invalid document id %q: leading zeros", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid document id %q: not a decimal number", s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid document id %q: %v", s, err)
	}
	id := DocumentID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the id is a positive integer
func (id DocumentID) Validate() error {
	if id <= 0 {
		return fmt.Errorf("invalid document id %d: must be positive", int64(id))
	}
	return nil
}

func (id DocumentID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
