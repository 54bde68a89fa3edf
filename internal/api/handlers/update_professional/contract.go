package update_professional

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

type ProfessionalsService interface {
	Update(ctx context.Context, id uuid.UUID, name, avatarURL string) (*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
