package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/igextreme/agenda-service/internal/domain"
)

// Client sends text messages through an Evolution API compatible gateway.
// The gateway coordinates (URL, token, instance) are admin-managed settings
// and can change at runtime, so they are passed per call instead of being
// baked into the client.
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

// SendText delivers text to phone via POST {base}/message/sendText/{instance}.
// Returns ErrNotConfigured when the integration is incomplete; callers treat
// that as a skip, not a failure.
func (c *Client) SendText(ctx context.Context, cfg domain.WhatsappConfig, phone, text string) error {
	if !cfg.IsComplete() {
		return ErrNotConfigured
	}

	baseURL, err := NormalizeBaseURL(cfg.URL, c.requireHTTPS)
	if err != nil {
		return err
	}

	number, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	payload := sendTextRequest{
		Number: number,
		Options: sendOptions{
			Delay:       1200,
			Presence:    "composing",
			LinkPreview: false,
		},
		TextMessage: textMessage{Text: text},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrRequestFailed, err)
	}

	url := fmt.Sprintf("%s/message/sendText/%s", baseURL, cfg.Instance)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("WhatsApp message sent to %s via instance %s", number, cfg.Instance)
	return nil
}

// NormalizeBaseURL trims whitespace and trailing slashes and defaults the
// scheme to https. An explicit http URL is rejected when requireHTTPS is
// set; a TLS-fronted deployment cannot call plain-http targets.
func NormalizeBaseURL(raw string, requireHTTPS bool) (string, error) {
	url := strings.TrimRight(strings.TrimSpace(raw), "/")
	if url == "" {
		return "", ErrNotConfigured
	}
	if strings.HasPrefix(url, "http://") {
		if requireHTTPS {
			return "", fmt.Errorf("%w: %s", ErrInsecureURL, url)
		}
		return url, nil
	}
	if !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url, nil
}

// NormalizePhone strips everything but digits and prefixes the country code
// for bare national numbers (10 or 11 digits: DDD + local number).
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	if len(digits) == 10 || len(digits) == 11 {
		digits = domain.CountryCode + digits
	}
	return digits, nil
}
