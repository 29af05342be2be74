package vcs

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
)

const defaultGitHubWeb = "https://github.com"

type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
	webURL string
}

func NewGitHubClient(client *github.Client, owner, repo string) *GitHubClient {
	return &GitHubClient{
		client: client,
		owner:  owner,
		repo:   repo,
		webURL: defaultGitHubWeb,
	}
}

// NewGitHubProvider configures a go-github client from opts, including
// token auth and GitHub Enterprise endpoints.
func NewGitHubProvider(opts Options) (*GitHubClient, error) {
	client := github.NewClient(opts.HTTPClient)
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}

	webURL := defaultGitHubWeb
	if opts.GitHubAPIURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(opts.GitHubAPIURL, opts.GitHubAPIURL)
		if err != nil {
			return nil, fmt.Errorf("github enterprise url %q: %w", opts.GitHubAPIURL, err)
		}
		webURL = enterpriseWebURL(opts.GitHubAPIURL)
	}

	g := NewGitHubClient(client, opts.Owner, opts.Repo)
	g.webURL = webURL
	return g, nil
}

func (g *GitHubClient) Name() string { return GitHub }

func (g *GitHubClient) ListTags(ctx context.Context) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}

	for {
		tags, resp, err := g.client.Repositories.ListTags(ctx, g.owner, g.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", g.owner, g.repo, err)
		}
		for _, t := range tags {
			names = append(names, t.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

func (g *GitHubClient) Compare(ctx context.Context, from, to string) (CompareResult, error) {
	comparison, _, err := g.client.Repositories.CompareCommits(ctx, g.owner, g.repo, from, to, nil)
	if err != nil {
		return CompareResult{}, fmt.Errorf("compare %s...%s in %s/%s: %w", from, to, g.owner, g.repo, err)
	}
	return normalizeGitHubComparison(comparison), nil
}

func (g *GitHubClient) CompareURL(from, to string) string {
	return fmt.Sprintf("%s/%s/%s/compare/%s...%s", g.webURL, g.owner, g.repo, from, to)
}

func normalizeGitHubComparison(c *github.CommitsComparison) CompareResult {
	result := CompareResult{}
	for _, rc := range c.Commits {
		result.Commits = append(result.Commits, normalizeGitHubCommit(rc))
	}
	for _, f := range c.Files {
		result.Changes = append(result.Changes, normalizeGitHubFile(f))
	}

	result.ReportedTotal = len(result.Commits)
	if c.TotalCommits != nil {
		result.ReportedTotal = c.GetTotalCommits()
	}
	return result
}

func normalizeGitHubCommit(rc *github.RepositoryCommit) CommitSummary {
	author := rc.GetCommit().GetAuthor()

	name := author.GetName()
	if name == "" {
		name = rc.GetCommitter().GetLogin()
	}
	if name == "" {
		name = UnknownAuthor
	}

	title, body := SplitMessage(rc.GetCommit().GetMessage())
	return CommitSummary{
		ShortID: ShortID(rc.GetSHA(), ""),
		Author:  name,
		Date:    FormatDate(author.GetDate().Time),
		Title:   title,
		Body:    body,
	}
}

func normalizeGitHubFile(f *github.CommitFile) FileChange {
	return FileChange{
		Path:      f.GetFilename(),
		Status:    FileStatus(f.GetStatus()),
		Additions: f.GetAdditions(),
		Deletions: f.GetDeletions(),
		Patch:     f.GetPatch(),
	}
}

// enterpriseWebURL turns https://ghe.example.com/api/v3/ into https://ghe.example.com.
func enterpriseWebURL(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return defaultGitHubWeb
	}
	u.Path = strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), "/api/v3")
	return strings.TrimSuffix(u.String(), "/")
}
