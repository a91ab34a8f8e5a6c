package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/redteamtools/trufflehub/internal/config"
	"github.com/redteamtools/trufflehub/internal/httpclient"
	"github.com/redteamtools/trufflehub/internal/models"
)

// Client talks to the GitHub REST API: paginated repository listings for
// organizations and users, and organization member listings. An optional
// bearer token is attached to every request.
type Client struct {
	baseURL    string
	token      string
	perPage    int
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// NewClient creates a GitHub API client from the enumerator configuration.
// token may be empty; unauthenticated requests work but are rate limited
// aggressively.
func NewClient(cfg config.GitHubConfig, token string, logger zerolog.Logger) *Client {
	httpClient := httpclient.NewClient(httpclient.ClientConfig{
		Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		Retry: httpclient.RetryHandlerConfig{
			MaxRetries:       cfg.MaxRetries,
			BaseDelay:        time.Duration(cfg.RetryBaseDelayMs) * time.Millisecond,
			MaxDelay:         time.Duration(cfg.RetryMaxDelayMs) * time.Millisecond,
			EnableJitter:     true,
			RetryStatusCodes: httpclient.DefaultRetryStatusCodes,
		},
	}, logger)

	return &Client{
		baseURL:    cfg.APIBaseURL,
		token:      token,
		perPage:    cfg.PerPage,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "GitHubClient").Logger(),
	}
}

// apiRepository is the subset of the repository listing payload we consume.
type apiRepository struct {
	Name     string `json:"name"`
	CloneURL string `json:"clone_url"`
	Fork     bool   `json:"fork"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
}

// apiMember is one entry of the organization member listing payload.
type apiMember struct {
	Login string `json:"login"`
}

// ListOrgRepositories lists all repositories of an organization, following
// pagination until an empty page.
func (c *Client) ListOrgRepositories(ctx context.Context, org string) ([]models.RepositoryRef, error) {
	return c.listRepositories(ctx, org, fmt.Sprintf("%s/orgs/%s/repos", c.baseURL, org))
}

// ListUserRepositories lists all repositories of a user, following pagination
// until an empty page.
func (c *Client) ListUserRepositories(ctx context.Context, user string) ([]models.RepositoryRef, error) {
	return c.listRepositories(ctx, user, fmt.Sprintf("%s/users/%s/repos", c.baseURL, user))
}

func (c *Client) listRepositories(ctx context.Context, target, endpoint string) ([]models.RepositoryRef, error) {
	var repos []models.RepositoryRef

	for page := 1; ; page++ {
		var pageRepos []apiRepository
		if err := c.getPage(ctx, target, endpoint, page, &pageRepos); err != nil {
			return nil, err
		}
		if len(pageRepos) == 0 {
			break
		}

		for _, repo := range pageRepos {
			repos = append(repos, models.RepositoryRef{
				Owner:    repo.Owner.Login,
				Name:     repo.Name,
				CloneURL: repo.CloneURL,
				Fork:     repo.Fork,
			})
		}
	}

	c.logger.Debug().Str("target", target).Int("count", len(repos)).Msg("Repository listing complete")
	return repos, nil
}

// ListOrgMembers lists the login names of all members of an organization.
func (c *Client) ListOrgMembers(ctx context.Context, org string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/orgs/%s/members", c.baseURL, org)
	var members []string

	for page := 1; ; page++ {
		var pageMembers []apiMember
		if err := c.getPage(ctx, org, endpoint, page, &pageMembers); err != nil {
			return nil, err
		}
		if len(pageMembers) == 0 {
			break
		}
		for _, member := range pageMembers {
			members = append(members, member.Login)
		}
	}

	c.logger.Debug().Str("org", org).Int("count", len(members)).Msg("Member listing complete")
	return members, nil
}

// getPage fetches one page of a listing endpoint and decodes it into out.
func (c *Client) getPage(ctx context.Context, target, endpoint string, page int, out any) error {
	url := fmt.Sprintf("%s?per_page=%d&page=%d", endpoint, c.perPage, page)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return NewEnumerationError(target, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return NewEnumerationError(target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		if isRateLimited(resp) {
			return &RateLimitedError{Target: target, StatusCode: resp.StatusCode}
		}
		return &EnumerationError{Target: target, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewEnumerationError(target, fmt.Errorf("failed to decode page %d: %w", page, err))
	}
	return nil
}

// isRateLimited distinguishes rate limiting from other API failures. GitHub
// answers primary rate limits with 403 and X-RateLimit-Remaining: 0, and
// secondary limits with 429.
func isRateLimited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
}
