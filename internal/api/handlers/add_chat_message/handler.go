package add_chat_message

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/internal/service/clients"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "identificador de cliente inválido"
	msgInvalidMessage     = "mensagem inválida"
	msgClientNotFound     = "cliente não encontrado"
)

type AddMessageRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	ClientID  string `json:"clientId"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/clients/{clientId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		h.logger.Warn("POST /admin/clients/messages - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req AddMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/clients/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	msg, err := h.service.AddMessage(r.Context(), clientID, domain.ChatSender(req.Sender), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /admin/clients/messages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMessage)
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("POST /admin/clients/messages - Client not found: id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)
		default:
			h.logger.Error("POST /admin/clients/messages - Failed for client=%s: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, &MessageResponse{
		ID:        msg.ID.String(),
		ClientID:  msg.ClientID.String(),
		Sender:    string(msg.Sender),
		Text:      msg.Text,
		Timestamp: msg.Timestamp.Format(time.RFC3339),
	})
}
