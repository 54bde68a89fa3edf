package whatsapp

import "errors"

var (
	// ErrNotConfigured means one of URL, token or instance is missing.
	// Sends are silently skipped in that state rather than failed.
	ErrNotConfigured = errors.New("whatsapp.client: integration not configured")

	// ErrInsecureURL means the API base resolves to plain http. Browsers
	// served over https refuse such calls, so we reject them up front
	// with an explanation instead of letting the request die opaquely.
	ErrInsecureURL = errors.New("whatsapp.client: API URL must use https")

	ErrInvalidPhone    = errors.New("whatsapp.client: phone has no digits")
	ErrRequestFailed   = errors.New("whatsapp.client: failed to execute request")
	ErrInvalidResponse = errors.New("whatsapp.client: unexpected response")
)
