package reporter

import (
	"encoding/json"
	"io"

	"github.com/tag-range-reporter/pkg/vcs"
)

type JSONReporter struct{}

func (r *JSONReporter) Ext() string { return "json" }

func (r *JSONReporter) Report(w io.Writer, s Section) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	type output struct {
		Provider      string              `json:"provider"`
		Owner         string              `json:"owner"`
		Repo          string              `json:"repo"`
		From          string              `json:"from"`
		To            string              `json:"to"`
		CompareURL    string              `json:"compare_url"`
		CommitCount   int                 `json:"commit_count"`
		ReportedTotal int                 `json:"reported_total,omitempty"`
		Commits       []vcs.CommitSummary `json:"commits"`
		Changes       []vcs.FileChange    `json:"changes"`
		AvailableTags string              `json:"available_tags,omitempty"`
		Prompt        string              `json:"prompt,omitempty"`
	}

	out := output{
		Provider:      s.Provider,
		Owner:         s.Owner,
		Repo:          s.Repo,
		From:          s.From,
		To:            s.To,
		CompareURL:    s.CompareURL,
		CommitCount:   len(s.Result.Commits),
		ReportedTotal: s.Result.ReportedTotal,
		Commits:       s.Result.Commits,
		Changes:       s.Result.Changes,
	}

	if s.Empty() {
		out.AvailableTags = s.AvailableTags
	} else {
		prompt, err := RenderPrompt(s)
		if err != nil {
			return err
		}
		out.Prompt = prompt
	}

	return enc.Encode(out)
}
