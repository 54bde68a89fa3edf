package list_professionals

import (
	"context"

	"github.com/igextreme/agenda-service/internal/domain"
)

type ProfessionalsService interface {
	List(ctx context.Context) ([]*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
