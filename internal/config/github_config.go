package config

// GitHubTokenEnvVar is the environment variable holding the optional bearer
// token attached to API calls. Absence is not an error but unauthenticated
// requests hit much lower rate limits.
const GitHubTokenEnvVar = "GITHUB_TOKEN"

// GitHubConfig holds the configuration for the repository enumerator.
type GitHubConfig struct {
	APIBaseURL            string `json:"api_base_url" yaml:"api_base_url" validate:"omitempty,url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" yaml:"request_timeout_seconds" validate:"gt=0"`
	MaxRetries            int    `json:"max_retries" yaml:"max_retries" validate:"gte=0"`
	RetryBaseDelayMs      int    `json:"retry_base_delay_ms" yaml:"retry_base_delay_ms" validate:"gt=0"`
	RetryMaxDelayMs       int    `json:"retry_max_delay_ms" yaml:"retry_max_delay_ms" validate:"gt=0"`
	PerPage               int    `json:"per_page" yaml:"per_page" validate:"gt=0,lte=100"`
}

// NewDefaultGitHubConfig creates a new GitHubConfig with default values.
func NewDefaultGitHubConfig() GitHubConfig {
	return GitHubConfig{
		APIBaseURL:            "https://api.github.com",
		RequestTimeoutSeconds: 30,
		MaxRetries:            3,
		RetryBaseDelayMs:      1000,
		RetryMaxDelayMs:       30000,
		PerPage:               100,
	}
}
