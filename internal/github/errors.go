package github

import (
	"fmt"

	"github.com/redteamtools/trufflehub/internal/config"
)

// EnumerationError indicates the repository list for a target could not be
// determined. Without a repository list nothing can be scanned, so callers
// treat this as fatal for the run.
type EnumerationError struct {
	Target     string
	StatusCode int
	Err        error
}

func (e *EnumerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to enumerate repositories for '%s': HTTP %d", e.Target, e.StatusCode)
	}
	return fmt.Sprintf("failed to enumerate repositories for '%s': %v", e.Target, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// NewEnumerationError creates an EnumerationError wrapping a transport error.
func NewEnumerationError(target string, err error) *EnumerationError {
	return &EnumerationError{Target: target, Err: err}
}

// RateLimitedError is a distinguished enumeration failure caused by API rate
// limiting, so callers can report token guidance instead of a generic
// network error.
type RateLimitedError struct {
	Target     string
	StatusCode int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("GitHub API rate limit hit while enumerating '%s' (HTTP %d): set %s to raise the limit",
		e.Target, e.StatusCode, config.GitHubTokenEnvVar)
}
