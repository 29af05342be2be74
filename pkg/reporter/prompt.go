package reporter

import (
	"bytes"
	"fmt"
	"text/template"
)

var promptTmpl = template.Must(template.New("release_notes").Parse(`Write release notes for {{ .To }}.

You are given the commit log and file changes of the {{ .Provider }} repository
{{ .Owner }}/{{ .Repo }} between {{ .From }} and {{ .To }} above.

Instructions:
- Start with a one-paragraph summary of the release.
- Group changes under: New Features, Improvements, Bug Fixes, Internal Changes.
- Describe user-visible behavior, not implementation details.
- Mention breaking changes first, in their own section, when there are any.
- Keep each bullet to one sentence and reference the short commit id.
- Skip merge commits, version bumps, and changes that only touch CI.

End the notes with a link to the full comparison:
{{ .CompareURL }}
`))

type promptData struct {
	Provider   string
	Owner      string
	Repo       string
	From       string
	To         string
	CompareURL string
}

// RenderPrompt renders the release-notes authoring prompt for s.
func RenderPrompt(s Section) (string, error) {
	data := promptData{
		Provider:   s.Provider,
		Owner:      s.Owner,
		Repo:       s.Repo,
		From:       s.From,
		To:         s.To,
		CompareURL: s.CompareURL,
	}

	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render release notes prompt: %w", err)
	}
	return buf.String(), nil
}
