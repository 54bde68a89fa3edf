package notifications

import (
	"context"

	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/internal/integrations/webhook"
)

// Logger defines the logging interface the dispatcher depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// WhatsappSender delivers a text message through the gateway.
type WhatsappSender interface {
	SendText(ctx context.Context, cfg domain.WhatsappConfig, phone, text string) error
}

// WebhookSender posts an event body to a configured URL.
type WebhookSender interface {
	Send(ctx context.Context, cfg domain.WebhookConfig, targetURL string, msg webhook.Message) error
}

// SettingsProvider resolves the current integration settings. Implementations
// fall back to defaults when nothing is stored, so these never fail.
type SettingsProvider interface {
	WhatsappConfig(ctx context.Context) domain.WhatsappConfig
	MessageTemplates(ctx context.Context) domain.MessageTemplates
	WebhookConfig(ctx context.Context) domain.WebhookConfig
}

// MetricsRecorder counts channel sends by outcome.
type MetricsRecorder interface {
	ObserveNotification(channel string, err error)
}
