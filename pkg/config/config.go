package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tag-range-reporter/pkg/tags"
	"github.com/tag-range-reporter/pkg/vcs"
)

// Config is built once at startup and passed by value from then on.
type Config struct {
	Provider     string        `yaml:"provider"`
	Repo         string        `yaml:"repo"`
	Owner        string        `yaml:"owner"`
	Name         string        `yaml:"name"`
	GitLabHost   string        `yaml:"gitlab_host"`
	GitHubAPIURL string        `yaml:"github_api_url"`
	Token        string        `yaml:"-"`
	From         string        `yaml:"from"`
	To           string        `yaml:"to"`
	Step         bool          `yaml:"step"`
	Output       string        `yaml:"output"`
	Format       string        `yaml:"format"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRedirects int           `yaml:"max_redirects"`
	LogLevel     string        `yaml:"log_level"`
	PreviewLimit int           `yaml:"tag_preview_limit"`
}

func Default() Config {
	return Config{
		Provider:     vcs.GitHub,
		GitLabHost:   vcs.DefaultGitLabHost,
		From:         "first",
		To:           "latest",
		Format:       "text",
		Timeout:      15 * time.Second,
		MaxRedirects: 5,
		LogLevel:     "info",
		PreviewLimit: tags.PreviewLimit,
	}
}

// Load reads a YAML (or JSON) config file over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// MergeFlags overlays explicitly set flags onto cfg. A token missing from
// both flags and file falls back to GITHUB_TOKEN or GITLAB_TOKEN.
func MergeFlags(cfg Config, flags *pflag.FlagSet) Config {
	if v, err := flags.GetString("provider"); err == nil && v != "" {
		cfg.Provider = v
	}
	if v, err := flags.GetString("repo"); err == nil && v != "" {
		cfg.Repo = v
		cfg.Owner, cfg.Name = "", ""
	}
	if v, err := flags.GetString("token"); err == nil && v != "" {
		cfg.Token = v
	}
	if v, err := flags.GetString("gitlab-host"); err == nil && v != "" {
		cfg.GitLabHost = v
	}
	if v, err := flags.GetString("github-api-url"); err == nil && v != "" {
		cfg.GitHubAPIURL = v
	}
	if v, err := flags.GetString("from"); err == nil && flags.Changed("from") {
		cfg.From = v
	}
	if v, err := flags.GetString("to"); err == nil && flags.Changed("to") {
		cfg.To = v
	}
	if v, err := flags.GetBool("step"); err == nil && flags.Changed("step") {
		cfg.Step = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetString("format"); err == nil && v != "" {
		cfg.Format = v
	}
	if v, err := flags.GetDuration("timeout"); err == nil && flags.Changed("timeout") {
		cfg.Timeout = v
	}
	if v, err := flags.GetInt("max-redirects"); err == nil && flags.Changed("max-redirects") {
		cfg.MaxRedirects = v
	}
	if v, err := flags.GetString("log-level"); err == nil && v != "" {
		cfg.LogLevel = v
	}

	if cfg.Token == "" {
		cfg.Token = tokenFromEnv(cfg.Provider)
	}
	return cfg
}

func tokenFromEnv(provider string) string {
	if provider == vcs.GitLab {
		return os.Getenv("GITLAB_TOKEN")
	}
	return os.Getenv("GITHUB_TOKEN")
}

// DefaultOutputBase names the report file when no output path is set.
const DefaultOutputBase = "release-range"

// OutputFile is the configured output path, or DefaultOutputBase with an
// extension matching the report format.
func (c Config) OutputFile() string {
	if c.Output != "" {
		return c.Output
	}
	if c.Format == "json" {
		return DefaultOutputBase + ".json"
	}
	return DefaultOutputBase + ".txt"
}

// Repository returns the owner and repository name, taken from owner/name
// when both are set and parsed from repo otherwise.
func (c Config) Repository() (owner, repo string, err error) {
	if c.Owner != "" && c.Name != "" {
		return c.Owner, c.Name, nil
	}
	return vcs.ParseRepo(c.Repo)
}

// ProviderOptions translates the config into adapter options.
func (c Config) ProviderOptions() (vcs.Options, error) {
	owner, repo, err := c.Repository()
	if err != nil {
		return vcs.Options{}, err
	}
	return vcs.Options{
		Provider:     c.Provider,
		Owner:        owner,
		Repo:         repo,
		Token:        c.Token,
		GitLabHost:   c.GitLabHost,
		GitHubAPIURL: c.GitHubAPIURL,
		HTTPClient:   vcs.NewHTTPClient(c.Timeout, c.MaxRedirects),
	}, nil
}
