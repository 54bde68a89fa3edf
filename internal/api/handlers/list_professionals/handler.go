package list_professionals

import (
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
)

type Handler struct {
	service ProfessionalsService
	logger  Logger
}

func NewHandler(service ProfessionalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(profs))
}
