package vcs

import (
	"fmt"
	"strings"
)

// ParseRepo splits a repository reference into owner and repo. It accepts
// "owner/repo", web and clone URLs, and nested GitLab groups, where the
// owner is everything before the last path segment.
func ParseRepo(ref string) (owner, repo string, err error) {
	raw := normalizeGitURL(strings.TrimSpace(ref))

	parts := strings.Split(raw, "/")
	if len(parts) > 2 && strings.Contains(parts[0], ".") {
		parts = parts[1:] // host
	}
	if len(parts) < 2 {
		return "", "", fmt.Errorf("cannot parse repository from %q", ref)
	}
	for _, p := range parts {
		if p == "" {
			return "", "", fmt.Errorf("cannot parse repository from %q", ref)
		}
	}

	return strings.Join(parts[:len(parts)-1], "/"), parts[len(parts)-1], nil
}

func normalizeGitURL(raw string) string {
	scpLike := !strings.Contains(raw, "://")

	raw = strings.TrimPrefix(raw, "git+")
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")
	raw = strings.TrimPrefix(raw, "ssh://")
	raw = strings.TrimPrefix(raw, "git://")
	raw = strings.TrimPrefix(raw, "git@")
	raw = strings.TrimSuffix(raw, "/")
	raw = strings.TrimSuffix(raw, ".git")

	// scp-like clone URLs: host:owner/repo
	if host, path, ok := strings.Cut(raw, ":"); ok && scpLike && !strings.Contains(host, "/") {
		raw = host + "/" + path
	}
	return raw
}
