package get_client

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/service/clients/models"
)

type ClientsService interface {
	GetWithHistory(ctx context.Context, id uuid.UUID) (*models.ClientHistory, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
