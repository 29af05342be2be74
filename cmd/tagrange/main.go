package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/tag-range-reporter/pkg/config"
	"github.com/tag-range-reporter/pkg/logging"
	"github.com/tag-range-reporter/pkg/rangereport"
	"github.com/tag-range-reporter/pkg/reporter"
	"github.com/tag-range-reporter/pkg/vcs"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagrange [owner/repo]",
		Short: "Report the commits and changes between two tags",
		Long: `Resolves a tag range on a GitHub or GitLab repository ("first", "latest", or a
version prefix such as 1.4), fetches the comparison, and writes a commit and
diff report followed by a release-notes prompt. With --step, one report is
written per pair of consecutive tags in the range.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.String("config", ".tagrange.yml", "Path to config file (YAML or JSON)")
	flags.String("provider", "", "Repository provider: github | gitlab")
	flags.String("repo", "", "Repository as owner/repo or URL")
	flags.String("token", "", "API token (defaults to GITHUB_TOKEN or GITLAB_TOKEN)")
	flags.String("gitlab-host", "", "GitLab origin for self-hosted instances")
	flags.String("github-api-url", "", "GitHub Enterprise API URL")
	flags.String("from", "first", `Start tag: "first", a tag, or a version prefix`)
	flags.String("to", "latest", `End tag: "latest", "current", a tag, or a version prefix`)
	flags.Bool("step", false, "Write one report per consecutive tag pair")
	flags.StringP("output", "o", "", "Report path (default release-range.<ext>; step mode appends .<from>..<to>.<ext>)")
	flags.String("format", "", "Report format: text | json")
	flags.Duration("timeout", 0, "Per-request timeout (default 15s)")
	flags.Int("max-redirects", 0, "Maximum redirects followed per request (default 5)")
	flags.String("log-level", "", "Log level: debug | info | warn | error")
	flags.Bool("plan", false, "Print the resolved ranges without fetching compares")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, loadErr := config.Load(cfgPath)
	if loadErr != nil {
		if !errors.Is(loadErr, fs.ErrNotExist) {
			return fmt.Errorf("load config: %w", loadErr)
		}
		cfg = config.Default()
	}

	cfg = config.MergeFlags(cfg, cmd.Flags())
	if len(args) == 1 {
		cfg.Repo = args[0]
		cfg.Owner, cfg.Name = "", ""
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if loadErr != nil {
		log.Debug().Str("path", cfgPath).Msg("config file not found, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts, err := cfg.ProviderOptions()
	if err != nil {
		return err
	}
	provider, err := vcs.NewProvider(opts)
	if err != nil {
		return err
	}

	gen, err := rangereport.New(provider, reporter.New(cfg.Format), cfg, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if planOnly, _ := cmd.Flags().GetBool("plan"); planOnly {
		plan, err := gen.Plan(ctx)
		if err != nil {
			return err
		}
		printPlan(cmd, plan)
		return nil
	}

	written, err := gen.Run(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("reports", len(written)).Msg("done")
	return nil
}

func printPlan(cmd *cobra.Command, plan rangereport.Plan) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "resolved: %s..%s (%d tags)\n", plan.Resolved.From, plan.Resolved.To, len(plan.Tags))
	for i, r := range plan.Ranges {
		fmt.Fprintf(out, "%d. %s...%s\n", i+1, r.From, r.To)
	}
}
