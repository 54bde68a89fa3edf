package create_professional

import (
	"context"

	"github.com/igextreme/agenda-service/internal/domain"
)

type ProfessionalsService interface {
	Create(ctx context.Context, name, avatarURL string) (*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
