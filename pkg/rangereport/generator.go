// Package rangereport drives one invocation: resolve the requested tag
// range, plan the compare ranges, then fetch, render, and write a report
// for each of them in order.
package rangereport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/tag-range-reporter/pkg/config"
	"github.com/tag-range-reporter/pkg/logging"
	"github.com/tag-range-reporter/pkg/rangeplan"
	"github.com/tag-range-reporter/pkg/reporter"
	"github.com/tag-range-reporter/pkg/tags"
	"github.com/tag-range-reporter/pkg/vcs"
)

// Plan is the outcome of resolution and planning, computed before any
// compare is fetched.
type Plan struct {
	Tags     []string
	Resolved tags.Range
	Ranges   []tags.Range
}

type Generator struct {
	provider vcs.Provider
	reporter reporter.Reporter
	config   config.Config
	owner    string
	repo     string
	log      zerolog.Logger
}

func New(provider vcs.Provider, rep reporter.Reporter, cfg config.Config, log zerolog.Logger) (*Generator, error) {
	owner, repo, err := cfg.Repository()
	if err != nil {
		return nil, err
	}
	return &Generator{
		provider: provider,
		reporter: rep,
		config:   cfg,
		owner:    owner,
		repo:     repo,
		log:      logging.Component(log, "rangereport"),
	}, nil
}

// Plan fetches the tag list and resolves it into the ranges to report.
func (g *Generator) Plan(ctx context.Context) (Plan, error) {
	all, err := g.provider.ListTags(ctx)
	if err != nil {
		return Plan{}, err
	}

	resolved, err := tags.ResolveEndpoints(g.config.From, g.config.To, all)
	if err != nil {
		var unresolved *tags.UnresolvedError
		if errors.As(err, &unresolved) {
			unresolved.Preview = tags.Preview(all, g.config.PreviewLimit)
		}
		return Plan{}, err
	}

	g.log.Debug().
		Str("from_request", g.config.From).
		Str("to_request", g.config.To).
		Str("from", resolved.From).
		Str("to", resolved.To).
		Int("tags", len(all)).
		Msg("resolved tag range")

	ranges, err := rangeplan.Plan(all, resolved, g.config.Step)
	if err != nil {
		return Plan{}, fmt.Errorf("%s..%s: %w", resolved.From, resolved.To, err)
	}

	return Plan{Tags: all, Resolved: resolved, Ranges: ranges}, nil
}

// Run plans the invocation and writes one report per planned range,
// returning the written paths. A range without commits still gets a report
// holding the diagnostic; any fetch or write failure aborts the run.
func (g *Generator) Run(ctx context.Context) ([]string, error) {
	plan, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, r := range plan.Ranges {
		path := g.config.OutputFile()
		if g.config.Step {
			path = OutputPath(path, r.From, r.To, g.reporter.Ext())
		}

		if err := g.report(ctx, plan, r, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func (g *Generator) report(ctx context.Context, plan Plan, r tags.Range, path string) error {
	result, err := g.provider.Compare(ctx, r.From, r.To)
	if err != nil {
		return err
	}

	section := reporter.Section{
		Provider:   g.provider.Name(),
		Owner:      g.owner,
		Repo:       g.repo,
		From:       r.From,
		To:         r.To,
		CompareURL: g.provider.CompareURL(r.From, r.To),
		Result:     result,
	}

	if section.Empty() {
		section.AvailableTags = tags.Preview(plan.Tags, g.config.PreviewLimit)
		g.log.Warn().
			Str("from", r.From).
			Str("to", r.To).
			Str("available", section.AvailableTags).
			Msg("no commits in range or invalid tag pair")
	}

	if err := g.write(path, section); err != nil {
		return err
	}

	g.log.Info().
		Str("from", r.From).
		Str("to", r.To).
		Int("commits", len(result.Commits)).
		Str("path", path).
		Msg("report written")
	return nil
}

func (g *Generator) write(path string, s reporter.Section) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	if err := g.reporter.Report(f, s); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SafeName replaces every character outside [A-Za-z0-9._-] with "-".
func SafeName(s string) string {
	return unsafeChars.ReplaceAllString(s, "-")
}

// OutputPath names the report file of one step: {output}.{from}..{to}.{ext}.
func OutputPath(output, from, to, ext string) string {
	return fmt.Sprintf("%s.%s..%s.%s", output, SafeName(from), SafeName(to), ext)
}
