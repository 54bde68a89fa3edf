package update_settings

import (
	"context"

	"github.com/igextreme/agenda-service/internal/domain"
)

type SettingsService interface {
	UpdateWhatsappConfig(ctx context.Context, cfg domain.WhatsappConfig) error
	UpdateMessageTemplates(ctx context.Context, templates domain.MessageTemplates) error
	UpdateWebhookConfig(ctx context.Context, cfg domain.WebhookConfig) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
