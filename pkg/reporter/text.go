package reporter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tag-range-reporter/pkg/vcs"
)

var (
	divider      = strings.Repeat("-", 80)
	patchDivider = strings.Repeat("-", 40)
)

type TextReporter struct{}

func (r *TextReporter) Ext() string { return "txt" }

func (r *TextReporter) Report(w io.Writer, s Section) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Provider: %s\n", s.Provider)
	fmt.Fprintf(bw, "Repository: %s/%s\n", s.Owner, s.Repo)
	fmt.Fprintf(bw, "From: %s\n", s.From)
	fmt.Fprintf(bw, "To: %s\n\n", s.To)

	if s.Empty() {
		fmt.Fprintf(bw, "No commits found between %s and %s (no commits in range or invalid tag pair).\n", s.From, s.To)
		fmt.Fprintf(bw, "Available tags: %s\n", s.AvailableTags)
		return bw.Flush()
	}

	writeCommits(bw, s.Result)
	writeFileChanges(bw, s.Result.Changes)

	prompt, err := RenderPrompt(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(bw, "\n%s\n%s", divider, prompt)

	return bw.Flush()
}

func writeCommits(w io.Writer, result vcs.CompareResult) {
	for _, c := range result.Commits {
		fmt.Fprintf(w, "[%s] %s\n", c.ShortID, c.Title)
		if c.Date != "" {
			fmt.Fprintf(w, "    by %s on %s\n", c.Author, c.Date)
		} else {
			fmt.Fprintf(w, "    by %s\n", c.Author)
		}
		for _, line := range c.Body {
			fmt.Fprintf(w, "    %s\n", line)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Commit count: %d", len(result.Commits))
	if result.ReportedTotal > 0 {
		fmt.Fprintf(w, " (total reported: %d)", result.ReportedTotal)
	}
	fmt.Fprintln(w)
}

// Removed files are left out of this section.
func writeFileChanges(w io.Writer, changes []vcs.FileChange) {
	fmt.Fprintf(w, "\nFile changes (%d files)\n\n", len(changes))

	for _, f := range changes {
		if f.Status == vcs.StatusRemoved {
			continue
		}
		fmt.Fprintf(w, "%s (%s, +%d/-%d)\n", f.Path, f.Status, f.Additions, f.Deletions)
		if f.Patch != "" {
			fmt.Fprintln(w, patchDivider)
			fmt.Fprintln(w, strings.TrimRight(f.Patch, "\n"))
			fmt.Fprintln(w, patchDivider)
		}
		fmt.Fprintln(w)
	}
}
