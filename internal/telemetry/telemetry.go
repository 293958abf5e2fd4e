// Package telemetry posts run summaries to an optional webhook. Delivery is
// fire-and-forget side-channel reporting: failures are logged and swallowed
// and never affect the cleaning result.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/listclean-cli/internal/clean"
	"github.com/sells-group/listclean-cli/internal/config"
)

// Event is the payload posted to the webhook.
type Event struct {
	Source    string        `json:"source"`
	Summary   clean.Summary `json:"summary"`
	Timestamp time.Time     `json:"timestamp"`
}

// Client sends usage events. A nil or unconfigured client is a no-op.
type Client struct {
	url     string
	http    *http.Client
	limiter *rate.Limiter
}

// New builds a telemetry client. An empty webhook URL disables sending.
func New(cfg config.TelemetryConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		url:     cfg.WebhookURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

// Report posts a run summary. Time-bounded by the client timeout; all
// failures are swallowed.
func (c *Client) Report(ctx context.Context, source string, summary clean.Summary) {
	if c == nil || c.url == "" {
		return
	}
	if !c.limiter.Allow() {
		return
	}

	payload, err := json.Marshal(Event{
		Source:    source,
		Summary:   summary,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		zap.L().Debug("telemetry: marshal event", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		zap.L().Debug("telemetry: build request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Debug("telemetry: post failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		zap.L().Debug("telemetry: webhook rejected event", zap.Int("status", resp.StatusCode))
	}
}
