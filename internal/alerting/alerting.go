package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// AlertConfig holds alerting configuration.
type AlertConfig struct {
	// WebhookURL is a generic webhook endpoint (Slack, Discord, or custom)
	WebhookURL string
	// WebhookType determines the payload format: "slack", "discord", or "generic"
	WebhookType string
	// Enabled controls whether alerts are sent
	Enabled bool
	// Timeout for HTTP requests
	Timeout time.Duration
}

// DefaultAlertConfig returns config from environment variables.
func DefaultAlertConfig() AlertConfig {
	cfg := AlertConfig{
		WebhookURL:  os.Getenv("ALERT_WEBHOOK_URL"),
		WebhookType: os.Getenv("ALERT_WEBHOOK_TYPE"),
		Timeout:     10 * time.Second,
	}

	cfg.Enabled = cfg.WebhookURL != ""

	if cfg.WebhookType == "" {
		// Auto-detect from URL
		if strings.Contains(cfg.WebhookURL, "slack.com") {
			cfg.WebhookType = "slack"
		} else if strings.Contains(cfg.WebhookURL, "discord.com") {
			cfg.WebhookType = "discord"
		} else {
			cfg.WebhookType = "generic"
		}
	}

	return cfg
}

// Alerter sends alerts to configured webhooks.
type Alerter struct {
	cfg    AlertConfig
	client *http.Client
}

// NewAlerter creates a new alerter instance.
func NewAlerter(cfg AlertConfig) *Alerter {
	return &Alerter{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// CatalogAlert reports a catalog refresh that produced unusable data: a
// supplier list that failed to parse, or a merged catalog that failed
// validation. Quotes keep serving from the last good catalog, so these
// need an operator, not a page.
type CatalogAlert struct {
	JobName        string
	Source         string
	ValidationErr  string
	SupplierErrors map[string]string
	Timestamp      time.Time
}

func (a CatalogAlert) summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "catalog refresh %q needs attention", a.JobName)
	if a.ValidationErr != "" {
		fmt.Fprintf(&sb, ": %s", a.ValidationErr)
	}
	for supplier, errMsg := range a.SupplierErrors {
		fmt.Fprintf(&sb, "; supplier %s: %s", supplier, errMsg)
	}
	return sb.String()
}

// SendCatalogAlert sends a catalog-refresh alert to the configured webhook.
func (a *Alerter) SendCatalogAlert(ctx context.Context, alert CatalogAlert) error {
	if !a.cfg.Enabled {
		log.Printf("alerting: alerts disabled, skipping")
		return nil
	}
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now().UTC()
	}

	var payload any
	switch a.cfg.WebhookType {
	case "slack":
		payload = map[string]any{
			"text": ":warning: " + alert.summary(),
		}
	case "discord":
		payload = map[string]any{
			"content": "⚠️ " + alert.summary(),
		}
	default:
		payload = map[string]any{
			"job":             alert.JobName,
			"source":          alert.Source,
			"validation_err":  alert.ValidationErr,
			"supplier_errors": alert.SupplierErrors,
			"timestamp":       alert.Timestamp.Format(time.RFC3339),
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("alert webhook returned %d", resp.StatusCode)
	}

	log.Printf("alerting: sent %s alert for job %s", a.cfg.WebhookType, alert.JobName)
	return nil
}
