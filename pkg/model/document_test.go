package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentID(t *testing.T) {
	for _, fixture := range []struct {
		input      string
		expected   DocumentID
		wantsError bool
	}{
		{input: "1", expected: 1},
		{input: "1003", expected: 1003},
		{input: "1002004", expected: 1002004},
		{input: "0", wantsError: true},
		{input: "007", wantsError: true},
		{input: "-3", wantsError: true},
		{input: "+3", wantsError: true},
		{input: "12ab", wantsError: true},
		{input: "", wantsError: true},
	} {
		id, err := ParseDocumentID(fixture.input)
		if fixture.wantsError {
			require.Errorf(t, err, "input %q", fixture.input)
			continue
		}
		require.NoErrorf(t, err, "input %q", fixture.input)
		assert.Equal(t, fixture.expected, id)
	}
}

func TestDocumentIDValidate(t *testing.T) {
	assert.NoError(t, DocumentID(1).Validate())
	assert.Error(t, DocumentID(0).Validate())
	assert.Error(t, DocumentID(-12).Validate())
}

func TestRevisionID(t *testing.T) {
	assert.NoError(t, RevisionID(1).Validate())
	assert.NoError(t, RevisionID(999).Validate())
	assert.Error(t, RevisionID(0).Validate())
	assert.Error(t, RevisionID(1000).Validate())
	assert.Error(t, RevisionID(-1).Validate())

	assert.Equal(t, "001", FirstRevision.DirName())
	assert.Equal(t, "042", RevisionID(42).DirName())
}

func TestParseRevisionDirName(t *testing.T) {
	for _, fixture := range []struct {
		name     string
		expected RevisionID
		ok       bool
	}{
		{name: "001", expected: 1, ok: true},
		{name: "042", expected: 42, ok: true},
		{name: "999", expected: 999, ok: true},
		{name: "12", expected: 12, ok: true},
		{name: ".hidden", ok: false},
		{name: "rev1", ok: false},
		{name: "", ok: false},
	} {
		rev, ok := ParseRevisionDirName(fixture.name)
		assert.Equalf(t, fixture.ok, ok, "name %q", fixture.name)
		if fixture.ok {
			assert.Equalf(t, fixture.expected, rev, "name %q", fixture.name)
		}
	}
}
