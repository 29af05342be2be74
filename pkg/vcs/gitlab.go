package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/xanzy/go-gitlab"
)

// DefaultGitLabHost is used when no self-hosted origin is configured.
const DefaultGitLabHost = "https://gitlab.com"

type GitLabClient struct {
	client *gitlab.Client
	host   string
	owner  string
	repo   string
}

func NewGitLabClient(client *gitlab.Client, host, owner, repo string) *GitLabClient {
	if host == "" {
		host = DefaultGitLabHost
	}
	return &GitLabClient{
		client: client,
		host:   strings.TrimSuffix(host, "/"),
		owner:  owner,
		repo:   repo,
	}
}

// NewGitLabProvider configures a go-gitlab client for opts.GitLabHost with
// retries disabled.
func NewGitLabProvider(opts Options) (*GitLabClient, error) {
	host := strings.TrimSuffix(opts.GitLabHost, "/")
	if host == "" {
		host = DefaultGitLabHost
	}

	client, err := gitlab.NewClient(opts.Token,
		gitlab.WithBaseURL(host+"/api/v4"),
		gitlab.WithHTTPClient(opts.HTTPClient),
		gitlab.WithoutRetries(),
	)
	if err != nil {
		return nil, fmt.Errorf("gitlab client for %s: %w", host, err)
	}
	return NewGitLabClient(client, host, opts.Owner, opts.Repo), nil
}

func (g *GitLabClient) Name() string { return GitLab }

func (g *GitLabClient) project() string {
	return g.owner + "/" + g.repo
}

func (g *GitLabClient) ListTags(ctx context.Context) ([]string, error) {
	var names []string
	opts := &gitlab.ListTagsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100, Page: 1},
	}

	for {
		tags, resp, err := g.client.Tags.ListTags(g.project(), opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("list tags for %s: %w", g.project(), err)
		}
		for _, t := range tags {
			names = append(names, t.Name)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

func (g *GitLabClient) Compare(ctx context.Context, from, to string) (CompareResult, error) {
	cmp, _, err := g.client.Repositories.Compare(g.project(), &gitlab.CompareOptions{
		From: gitlab.Ptr(from),
		To:   gitlab.Ptr(to),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return CompareResult{}, fmt.Errorf("compare %s...%s in %s: %w", from, to, g.project(), err)
	}
	return normalizeGitLabCompare(cmp), nil
}

func (g *GitLabClient) CompareURL(from, to string) string {
	return fmt.Sprintf("%s/%s/-/compare/%s...%s", g.host, g.project(), from, to)
}

func normalizeGitLabCompare(c *gitlab.Compare) CompareResult {
	result := CompareResult{}
	for _, commit := range c.Commits {
		result.Commits = append(result.Commits, normalizeGitLabCommit(commit))
	}
	for _, d := range c.Diffs {
		result.Changes = append(result.Changes, normalizeGitLabDiff(d))
	}
	return result
}

func normalizeGitLabCommit(c *gitlab.Commit) CommitSummary {
	name := c.AuthorName
	if name == "" {
		name = UnknownAuthor
	}

	summary := CommitSummary{
		ShortID: ShortID(c.ID, c.ShortID),
		Author:  name,
	}
	if c.CreatedAt != nil {
		summary.Date = FormatDate(*c.CreatedAt)
	}
	summary.Title, summary.Body = SplitMessage(c.Message)
	return summary
}

func normalizeGitLabDiff(d *gitlab.Diff) FileChange {
	adds, dels := CountDiffLines(d.Diff)
	return FileChange{
		Path:      d.NewPath,
		Status:    gitLabStatus(d),
		Additions: adds,
		Deletions: dels,
		Patch:     d.Diff,
	}
}

func gitLabStatus(d *gitlab.Diff) FileStatus {
	switch {
	case d.NewFile:
		return StatusAdded
	case d.DeletedFile:
		return StatusRemoved
	case d.RenamedFile:
		return StatusRenamed
	default:
		return StatusModified
	}
}
