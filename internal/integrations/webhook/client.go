package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/igextreme/agenda-service/internal/domain"
)

// Client posts event notifications to admin-configured webhook URLs.
// Like the WhatsApp gateway, the target and format are runtime settings
// and are passed per call.
type Client struct {
	httpClient   *http.Client
	requireHTTPS bool
	log          Logger
}

func NewClient(timeout time.Duration, requireHTTPS bool, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requireHTTPS: requireHTTPS,
		log:          log,
	}
}

// Send delivers msg to targetURL using the body layout selected by
// cfg.Format. An empty targetURL is a no-op: the integration is simply
// not wired for this event kind.
func (c *Client) Send(ctx context.Context, cfg domain.WebhookConfig, targetURL string, msg Message) error {
	targetURL = strings.TrimSpace(targetURL)
	if targetURL == "" {
		return nil
	}

	if strings.HasPrefix(targetURL, "http://") {
		if c.requireHTTPS {
			return fmt.Errorf("%w: %s", ErrInsecureURL, targetURL)
		}
	} else if !strings.HasPrefix(targetURL, "https://") {
		targetURL = "https://" + targetURL
	}

	body, err := c.buildBody(cfg.Format, msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRequestFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	// Admin-configured headers win over the defaults. This is how API keys
	// for the receiving side get injected.
	for name, value := range cfg.Headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("Webhook delivered to %s (format=%s)", targetURL, cfg.Format)
	return nil
}

func (c *Client) buildBody(format domain.WebhookFormat, msg Message) ([]byte, error) {
	switch format {
	case domain.FormatEvolutionAPIText:
		phone := normalizePhone(msg.Phone)
		body := evolutionTextBody{
			Number: phone,
			Options: evolutionOptions{
				Delay:       1000,
				Presence:    "composing",
				LinkPreview: false,
			},
			TextMessage: evolutionText{Text: msg.Text},
		}
		out, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal evolution body: %v", ErrRequestFailed, err)
		}
		return out, nil
	default:
		out, err := json.Marshal(msg.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrRequestFailed, err)
		}
		return out, nil
	}
}

// normalizePhone keeps digits only and prefixes the country code for bare
// national numbers, matching what the WhatsApp gateway expects.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 || len(digits) == 11 {
		digits = domain.CountryCode + digits
	}
	return digits
}
