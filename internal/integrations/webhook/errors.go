package webhook

import "errors"

var (
	// ErrInsecureURL means the webhook target uses plain http, which the
	// delivery path refuses in the same way the WhatsApp gateway does.
	ErrInsecureURL = errors.New("webhook.client: webhook URL must use https")

	ErrRequestFailed   = errors.New("webhook.client: failed to execute request")
	ErrInvalidResponse = errors.New("webhook.client: unexpected response")
)
