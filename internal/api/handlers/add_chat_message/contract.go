package add_chat_message

import (
	"context"

	"github.com/google/uuid"

	"github.com/igextreme/agenda-service/internal/domain"
)

type ClientsService interface {
	AddMessage(ctx context.Context, clientID uuid.UUID, sender domain.ChatSender, text string) (*domain.ChatMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
