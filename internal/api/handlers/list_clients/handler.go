package list_clients

import (
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
)

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

// Handle GET /api/v1/admin/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	histories, err := h.service.ListWithHistory(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromHistories(histories))
}
