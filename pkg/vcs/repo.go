package vcs

import (
	"context"
	"fmt"
	"net/http"
)

// Provider names accepted by NewProvider.
const (
	GitHub = "github"
	GitLab = "gitlab"
)

// FileStatus is the provider-neutral state of a changed file.
type FileStatus string

const (
	StatusAdded    FileStatus = "added"
	StatusModified FileStatus = "modified"
	StatusRemoved  FileStatus = "removed"
	StatusRenamed  FileStatus = "renamed"
)

type CommitSummary struct {
	ShortID string   `json:"short_id"`
	Author  string   `json:"author"`
	Date    string   `json:"date,omitempty"`
	Title   string   `json:"title"`
	Body    []string `json:"body,omitempty"`
}

type FileChange struct {
	Path      string     `json:"path"`
	Status    FileStatus `json:"status"`
	Additions int        `json:"additions"`
	Deletions int        `json:"deletions"`
	Patch     string     `json:"patch,omitempty"`
}

// CompareResult is a compare payload reduced to what the report needs.
// ReportedTotal is zero when the provider does not report a total.
type CompareResult struct {
	Commits       []CommitSummary `json:"commits"`
	Changes       []FileChange    `json:"changes"`
	ReportedTotal int             `json:"reported_total,omitempty"`
}

// Provider fetches tags and compare results for a single repository.
type Provider interface {
	Name() string

	// ListTags returns every tag name of the repository in provider order.
	ListTags(ctx context.Context) ([]string, error)

	// Compare returns the commits and file changes between two refs.
	// An empty commit list is not an error.
	Compare(ctx context.Context, from, to string) (CompareResult, error)

	// CompareURL is the browser URL for the from...to comparison.
	CompareURL(from, to string) string
}

type Options struct {
	Provider string
	Owner    string
	Repo     string
	Token    string

	// GitLabHost is the GitLab origin, e.g. https://gitlab.example.com.
	GitLabHost string
	// GitHubAPIURL points at a GitHub Enterprise API; empty means github.com.
	GitHubAPIURL string

	HTTPClient *http.Client
}

// NewProvider builds the adapter for opts.Provider.
func NewProvider(opts Options) (Provider, error) {
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	switch opts.Provider {
	case GitHub:
		return NewGitHubProvider(opts)
	case GitLab:
		return NewGitLabProvider(opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %q", opts.Provider)
	}
}
