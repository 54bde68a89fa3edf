package test_webhook

import (
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/notifications"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgUnknownEvent       = "evento de teste desconhecido"
)

type TestWebhookRequest struct {
	Event string `json:"event"` // test_booking | test_cancellation
}

type TestWebhookResponse struct {
	Queued bool   `json:"queued"`
	Event  string `json:"event"`
}

type Handler struct {
	notifier Notifier
	logger   Logger
}

func NewHandler(notifier Notifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/settings/webhook/test
// Fires a mock delivery at the configured webhook so the admin can verify
// the receiving side without creating a real booking.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TestWebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/settings/webhook/test - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var kind notifications.EventKind
	switch req.Event {
	case string(notifications.EventTestBooking):
		kind = notifications.EventTestBooking
	case string(notifications.EventTestCancellation):
		kind = notifications.EventTestCancellation
	default:
		h.logger.Warn("POST /admin/settings/webhook/test - Unknown event %q", req.Event)
		handlers.RespondBadRequest(w, msgUnknownEvent)
		return
	}

	h.notifier.Enqueue(notifications.Event{Kind: kind})

	h.logger.Info("POST /admin/settings/webhook/test - Queued %s", kind)
	handlers.RespondJSON(w, http.StatusAccepted, &TestWebhookResponse{Queued: true, Event: string(kind)})
}
