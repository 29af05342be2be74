package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/tag-range-reporter/pkg/vcs"
)

// Validate checks the merged configuration before anything is fetched.
// Failures are returned as criterio.FieldErrors.
func (c Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("provider", c.Provider, oneOf(vcs.GitHub, vcs.GitLab)),
		criterio.Run("format", c.Format, oneOf("text", "json")),
		c.validateRepository(),
		c.validateLimits(),
	)
}

func (c Config) validateRepository() error {
	if _, _, err := c.Repository(); err != nil {
		return criterio.NewFieldErrors("repo", err)
	}
	return nil
}

func (c Config) validateLimits() error {
	var errs criterio.FieldErrorsBuilder
	if c.Timeout <= 0 {
		errs = errs.Append("timeout", fmt.Errorf("must be positive, got %s", c.Timeout))
	}
	if c.MaxRedirects < 0 {
		errs = errs.Append("max_redirects", fmt.Errorf("must not be negative, got %d", c.MaxRedirects))
	}
	if c.PreviewLimit < 1 {
		errs = errs.Append("tag_preview_limit", fmt.Errorf("must be at least 1, got %d", c.PreviewLimit))
	}
	return errs.ToError()
}

func oneOf(allowed ...string) func(string) error {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of %v, got %q", allowed, v)
	}
}
