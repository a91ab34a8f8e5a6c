package config

// NotificationConfig holds the optional Discord webhook settings. A run that
// discovered findings posts a summary embed when the webhook URL is set.
type NotificationConfig struct {
	DiscordWebhookURL     string `json:"discord_webhook_url" yaml:"discord_webhook_url" validate:"omitempty,url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" yaml:"request_timeout_seconds" validate:"gt=0"`
}

// NewDefaultNotificationConfig creates a new NotificationConfig with default values.
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		DiscordWebhookURL:     "",
		RequestTimeoutSeconds: 20,
	}
}
