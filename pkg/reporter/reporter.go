package reporter

import (
	"io"

	"github.com/tag-range-reporter/pkg/vcs"
)

// Section is everything needed to render the report for one compare range.
type Section struct {
	Provider   string
	Owner      string
	Repo       string
	From       string
	To         string
	CompareURL string
	Result     vcs.CompareResult

	// AvailableTags is the tag preview shown when the range has no commits.
	AvailableTags string
}

// Empty reports whether the compare returned no commits.
func (s Section) Empty() bool {
	return len(s.Result.Commits) == 0
}

type Reporter interface {
	Report(w io.Writer, s Section) error
	// Ext is the file extension used for step-mode output files.
	Ext() string
}

func New(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	default:
		return &TextReporter{}
	}
}
