package add_client_file

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

type ClientsService interface {
	AddFile(ctx context.Context, clientID uuid.UUID, name, url string, fileType domain.FileType) (*domain.ClientFile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
