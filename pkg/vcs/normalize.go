package vcs

import (
	"strings"
	"time"
)

// UnknownAuthor is reported when a commit carries no usable author name.
const UnknownAuthor = "Unknown"

// DateLayout is the commit date format used in reports.
const DateLayout = "2006-01-02 15:04"

// ShortID returns the first seven characters of id, or fallback when id is
// empty.
func ShortID(id, fallback string) string {
	if id == "" {
		id = fallback
	}
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

// FormatDate renders t with DateLayout; the zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// SplitMessage splits a commit message into its first line and the
// remaining non-blank lines, each trimmed.
func SplitMessage(message string) (string, []string) {
	lines := strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n")

	title := strings.TrimSpace(lines[0])
	var body []string
	for _, line := range lines[1:] {
		if line = strings.TrimSpace(line); line != "" {
			body = append(body, line)
		}
	}
	return title, body
}

// CountDiffLines counts added and removed lines in a unified diff, skipping
// the "+++" and "---" file headers.
func CountDiffLines(diff string) (additions, deletions int) {
	for _, line := range strings.Split(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			additions++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			deletions++
		}
	}
	return additions, deletions
}
