package update_settings

import (
	"errors"
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/domain"
	"github.com/igextreme/agenda-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNothingToUpdate    = "nenhuma configuração informada"
	msgInvalidSettings    = "configuração inválida"
)

// UpdateSettingsRequest carries any subset of the three settings records.
// Only the sections present in the body are written.
type UpdateSettingsRequest struct {
	Whatsapp  *domain.WhatsappConfig   `json:"whatsapp,omitempty"`
	Templates *domain.MessageTemplates `json:"templates,omitempty"`
	Webhook   *domain.WebhookConfig    `json:"webhook,omitempty"`
}

type UpdateSettingsResponse struct {
	Updated []string `json:"updated"`
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

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Whatsapp == nil && req.Templates == nil && req.Webhook == nil {
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	updated := make([]string, 0, 3)

	if req.Whatsapp != nil {
		if err := h.service.UpdateWhatsappConfig(r.Context(), *req.Whatsapp); err != nil {
			h.respondError(w, "whatsapp", err)
			return
		}
		updated = append(updated, "whatsapp")
	}
	if req.Templates != nil {
		if err := h.service.UpdateMessageTemplates(r.Context(), *req.Templates); err != nil {
			h.respondError(w, "templates", err)
			return
		}
		updated = append(updated, "templates")
	}
	if req.Webhook != nil {
		if err := h.service.UpdateWebhookConfig(r.Context(), *req.Webhook); err != nil {
			h.respondError(w, "webhook", err)
			return
		}
		updated = append(updated, "webhook")
	}

	h.logger.Info("PUT /admin/settings - Updated: %v", updated)
	handlers.RespondJSON(w, http.StatusOK, &UpdateSettingsResponse{Updated: updated})
}

func (h *Handler) respondError(w http.ResponseWriter, section string, err error) {
	switch {
	case errors.Is(err, settings.ErrInvalidInput):
		h.logger.Warn("PUT /admin/settings - Invalid %s settings: %v", section, err)
		handlers.RespondBadRequest(w, msgInvalidSettings)
	default:
		h.logger.Error("PUT /admin/settings - Failed to update %s: %v", section, err)
		handlers.RespondInternalError(w)
	}
}
