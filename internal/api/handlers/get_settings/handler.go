package get_settings

import (
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/domain"
)

type SettingsResponse struct {
	Whatsapp  domain.WhatsappConfig   `json:"whatsapp"`
	Templates domain.MessageTemplates `json:"templates"`
	Webhook   domain.WebhookConfig    `json:"webhook"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/settings
// Reads never fail; missing or malformed records come back as defaults.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	handlers.RespondJSON(w, http.StatusOK, &SettingsResponse{
		Whatsapp:  h.service.WhatsappConfig(ctx),
		Templates: h.service.MessageTemplates(ctx),
		Webhook:   h.service.WebhookConfig(ctx),
	})
}
