package vcs

import (
	"fmt"
	"net/http"
	"time"
)

// NewHTTPClient returns the client shared by both providers: a fixed
// per-request timeout and at most maxRedirects redirects.
func NewHTTPClient(timeout time.Duration, maxRedirects int) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}
