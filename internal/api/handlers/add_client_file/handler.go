package add_client_file

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/internal/service/clients"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "identificador de cliente inválido"
	msgInvalidFile        = "arquivo inválido"
	msgClientNotFound     = "cliente não encontrado"
)

type AddFileRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type FileResponse struct {
	ID         string `json:"id"`
	ClientID   string `json:"clientId"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Type       string `json:"type"`
	UploadedAt string `json:"uploadedAt"`
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

// Handle POST /api/v1/admin/clients/{clientId}/files
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		h.logger.Warn("POST /admin/clients/files - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req AddFileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/clients/files - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	file, err := h.service.AddFile(r.Context(), clientID, req.Name, req.URL, domain.FileType(req.Type))
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /admin/clients/files - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFile)
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("POST /admin/clients/files - Client not found: id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)
		default:
			h.logger.Error("POST /admin/clients/files - Failed for client=%s: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, &FileResponse{
		ID:         file.ID.String(),
		ClientID:   file.ClientID.String(),
		Name:       file.Name,
		URL:        file.URL,
		Type:       string(file.Type),
		UploadedAt: file.UploadedAt,
	})
}
