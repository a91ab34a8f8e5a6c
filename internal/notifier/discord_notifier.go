package notifier

import (
	"bytes"
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

const (
	embedColorCritical = 0xE74C3C
	embedColorMedium   = 0xE67E22
)

// DiscordNotifier posts a run summary embed to a Discord webhook when a run
// discovered findings. It is entirely optional: an empty webhook URL turns
// every call into a no-op, and delivery failures are logged, never fatal.
type DiscordNotifier struct {
	webhookURL string
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(cfg config.NotificationConfig, logger zerolog.Logger) *DiscordNotifier {
	httpClient := httpclient.NewClient(httpclient.ClientConfig{
		Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		Retry: httpclient.RetryHandlerConfig{
			MaxRetries:       2,
			BaseDelay:        5 * time.Second,
			MaxDelay:         30 * time.Second,
			RetryStatusCodes: httpclient.DefaultRetryStatusCodes,
		},
	}, logger)

	return &DiscordNotifier{
		webhookURL: cfg.DiscordWebhookURL,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "DiscordNotifier").Logger(),
	}
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Color       int                 `json:"color"`
	Fields      []discordEmbedField `json:"fields"`
	Timestamp   string              `json:"timestamp"`
}

type discordPayload struct {
	Username string         `json:"username"`
	Embeds   []discordEmbed `json:"embeds"`
}

// NotifyRunSummary sends the summary embed. Runs without findings and
// notifiers without a webhook URL skip silently.
func (dn *DiscordNotifier) NotifyRunSummary(ctx context.Context, summary models.RunSummary) {
	if dn.webhookURL == "" || summary.TotalFindings() == 0 {
		return
	}

	payload := dn.buildPayload(summary)
	body, err := json.Marshal(payload)
	if err != nil {
		dn.logger.Warn().Err(err).Msg("Failed to marshal notification payload")
		return
	}

	req, err := http.NewRequest(http.MethodPost, dn.webhookURL, bytes.NewReader(body))
	if err != nil {
		dn.logger.Warn().Err(err).Msg("Failed to build notification request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := dn.httpClient.Do(ctx, req)
	if err != nil {
		dn.logger.Warn().Err(err).Msg("Failed to deliver notification")
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		dn.logger.Warn().Int("status_code", resp.StatusCode).Msg("Notification webhook rejected the payload")
		return
	}
	dn.logger.Debug().Msg("Run summary notification delivered")
}

func (dn *DiscordNotifier) buildPayload(summary models.RunSummary) discordPayload {
	color := embedColorMedium
	if summary.CriticalFindings > 0 {
		color = embedColorCritical
	}

	return discordPayload{
		Username: "trufflehub",
		Embeds: []discordEmbed{{
			Title: "Secrets detected",
			Description: fmt.Sprintf("Scan of %s `%s` finished in %.1fs",
				summary.Target.Kind, summary.Target.Value, summary.Duration.Seconds()),
			Color: color,
			Fields: []discordEmbedField{
				{Name: "Critical", Value: fmt.Sprintf("%d", summary.CriticalFindings), Inline: true},
				{Name: "Medium", Value: fmt.Sprintf("%d", summary.MediumFindings), Inline: true},
				{Name: "Repositories", Value: fmt.Sprintf("%d scanned, %d failed", summary.TotalRepositories, summary.FailedScans), Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
}
