package list_clients

import (
	"context"

	"github.com/igextreme/agenda-service/internal/service/clients/models"
)

type ClientsService interface {
	ListWithHistory(ctx context.Context) ([]*models.ClientHistory, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
