package get_settings

import (
	"context"

	"github.com/igextreme/agenda-service/internal/domain"
)

type SettingsService interface {
	WhatsappConfig(ctx context.Context) domain.WhatsappConfig
	MessageTemplates(ctx context.Context) domain.MessageTemplates
	WebhookConfig(ctx context.Context) domain.WebhookConfig
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
