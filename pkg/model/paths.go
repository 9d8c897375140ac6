package model

import (
	"fmt"
	"path/filepath"
)

// The shard scheme bounds per-directory fan-out to at most 1000 entries by
// introducing intermediate bucket levels:
//
//	[M<ddd>/][k<ddd>/]<ddd>
//
// where the M bucket is present only for ids above 999,999 and the k bucket
// only for ids above 999. The mapping is a pure function of the id: no
// id-to-path table is persisted anywhere.
const (
	bucketMega = 1_000_000
	bucketKilo = 1_000
)

// ShardPath returns the repository-relative directory holding the document's
// revisions. It performs no disk access: callers must verify accessibility of
// the result themselves.
func ShardPath(id DocumentID) string {
	n := int64(id)
	parts := make([]string, 0, 3)
	if n > bucketMega-1 {
		parts = append(parts, fmt.Sprintf("M%03d", n/bucketMega))
	}
	if n > bucketKilo-1 {
		parts = append(parts, fmt.Sprintf("k%03d", (n/bucketKilo)%bucketKilo))
	}
	parts = append(parts, fmt.Sprintf("%03d", n%bucketKilo))
	return filepath.Join(parts...)
}

// ParseBucketName interprets a directory entry name as a bucket level and
// returns the id prefix it contributes to documents found below it.
func ParseBucketName(name string) (int64, bool) {
	if len(name) < 4 {
		return 0, false
	}
	var mult int64
	switch name[0] {
	case 'M':
		mult = bucketMega
	case 'k':
		mult = bucketKilo
	default:
		return 0, false
	}
	v, ok := parseDigits(name[1:])
	if !ok {
		return 0, false
	}
	return v * mult, true
}

// ParseLeafName interprets a directory entry name as the leaf component of a
// document id: a bare 1 to 3 digit number.
func ParseLeafName(name string) (int64, bool) {
	if name == "" || len(name) > 3 {
		return 0, false
	}
	return parseDigits(name)
}

func parseDigits(s string) (int64, bool) {
	var v int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		v = v*10 + int64(s[i]-'0')
	}
	return v, true
}
