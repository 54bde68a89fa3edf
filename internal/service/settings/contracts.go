package settings

import (
	"context"
	"encoding/json"
)

// SettingsRepository is the jsonb key/value store behind integration settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}

// Logger defines the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
