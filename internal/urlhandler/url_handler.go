package urlhandler

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/redteamtools/trufflehub/internal/models"
)

// Regex for cleaning filenames derived from repository names.
var (
	unsafeFilenameCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)
	multipleUnderscoresRegex = regexp.MustCompile(`_+`)
)

// NormalizeRepoURL normalizes a repository URL by trimming whitespace, adding
// a https scheme if missing and lowercasing the host.
func NormalizeRepoURL(rawURL string) (string, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return "", fmt.Errorf("repository URL is empty")
	}

	if !strings.HasPrefix(trimmedURL, "http://") && !strings.HasPrefix(trimmedURL, "https://") {
		trimmedURL = "https://" + trimmedURL
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return "", fmt.Errorf("could not parse repository URL '%s': %w", trimmedURL, err)
	}
	parsedURL.Host = strings.ToLower(parsedURL.Host)

	return parsedURL.String(), nil
}

// ParseRepoURL resolves a clone URL into a RepositoryRef. The owner is the
// second-to-last path segment, the name is the last one with any .git suffix
// trimmed. No API call is involved.
func ParseRepoURL(rawURL string) (models.RepositoryRef, error) {
	normalized, err := NormalizeRepoURL(rawURL)
	if err != nil {
		return models.RepositoryRef{}, err
	}

	parsedURL, err := url.Parse(normalized)
	if err != nil {
		return models.RepositoryRef{}, fmt.Errorf("could not parse repository URL '%s': %w", normalized, err)
	}

	segments := strings.Split(strings.Trim(parsedURL.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-1] == "" || segments[len(segments)-2] == "" {
		return models.RepositoryRef{}, fmt.Errorf("repository URL '%s' does not contain an owner and a name", rawURL)
	}

	name := strings.TrimSuffix(segments[len(segments)-1], ".git")

	return models.RepositoryRef{
		Owner:    segments[len(segments)-2],
		Name:     name,
		CloneURL: normalized,
	}, nil
}

// SanitizeFilename converts a string into a form safe for use as a filename.
func SanitizeFilename(input string) string {
	sanitized := unsafeFilenameCharsRegex.ReplaceAllString(input, "_")
	sanitized = multipleUnderscoresRegex.ReplaceAllString(sanitized, "_")
	return strings.Trim(sanitized, "_")
}
