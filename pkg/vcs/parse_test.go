package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepo(t *testing.T) {
	tests := []struct {
		in    string
		owner string
		repo  string
	}{
		{"octo/hello", "octo", "hello"},
		{"https://github.com/octo/hello", "octo", "hello"},
		{"https://github.com/octo/hello.git", "octo", "hello"},
		{"git@github.com:octo/hello.git", "octo", "hello"},
		{"ssh://git@gitlab.com/group/sub/proj.git", "group/sub", "proj"},
		{"group/sub/proj", "group/sub", "proj"},
		{"https://gitlab.example.com:8443/group/proj/", "group", "proj"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, repo, err := ParseRepo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestParseRepo_Invalid(t *testing.T) {
	for _, in := range []string{"", "justname", "owner/", "https://github.com/"} {
		_, _, err := ParseRepo(in)
		assert.Error(t, err, in)
	}
}
