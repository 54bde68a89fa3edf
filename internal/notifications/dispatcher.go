package notifications

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/igextreme/agenda-service/internal/integrations/webhook"
	"github.com/igextreme/agenda-service/internal/integrations/whatsapp"
)

// Dispatcher delivers notification events off the request path. Events are
// queued on a bounded channel; a worker fans each one out to the message
// gateway and the webhook target on independent goroutines, so a slow or
// broken channel never delays the other. Delivery errors are logged and
// counted, never surfaced to the operation that produced the event.
type Dispatcher struct {
	whatsapp WhatsappSender
	webhook  WebhookSender
	settings SettingsProvider
	metrics  MetricsRecorder
	log      Logger

	queue       chan Event
	sendTimeout time.Duration

	mu      sync.Mutex
	closed  bool
	workers sync.WaitGroup
	sends   sync.WaitGroup
}

func NewDispatcher(
	whatsappSender WhatsappSender,
	webhookSender WebhookSender,
	settings SettingsProvider,
	metrics MetricsRecorder,
	log Logger,
	queueSize int,
	sendTimeout time.Duration,
) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		whatsapp:    whatsappSender,
		webhook:     webhookSender,
		settings:    settings,
		metrics:     metrics,
		log:         log,
		queue:       make(chan Event, queueSize),
		sendTimeout: sendTimeout,
	}
}

// Start launches the worker. Call once.
func (d *Dispatcher) Start() {
	d.workers.Add(1)
	go func() {
		defer d.workers.Done()
		for event := range d.queue {
			d.dispatch(event)
		}
	}()
}

// Stop drains queued events and waits for in-flight sends to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.workers.Wait()
	d.sends.Wait()
}

// Enqueue queues the event without blocking. A full queue drops the event
// with a warning; notification delivery is best-effort by design of the
// booking flow, which must never wait on it.
func (d *Dispatcher) Enqueue(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.log.Warn("Notification dispatcher stopped, dropping %s event", event.Kind)
		return
	}

	select {
	case d.queue <- event:
	default:
		d.log.Warn("Notification queue full, dropping %s event for %s", event.Kind, event.ClientName)
	}
}

func (d *Dispatcher) dispatch(event Event) {
	if text, ok := d.whatsappText(event); ok {
		d.sends.Add(1)
		go func() {
			defer d.sends.Done()
			d.sendWhatsapp(event, text)
		}()
	}

	if targetURL, ok := d.webhookTarget(event); ok {
		d.sends.Add(1)
		go func() {
			defer d.sends.Done()
			d.sendWebhook(event, targetURL)
		}()
	}
}

// whatsappText picks the template for the event kind and renders it.
// Test events exercise the webhook path only.
func (d *Dispatcher) whatsappText(event Event) (string, bool) {
	templates := d.settings.MessageTemplates(context.Background())

	var template string
	switch event.Kind {
	case EventBookingCreated:
		if event.ProfessionalMissing {
			return "", false
		}
		template = templates.Confirmation
	case EventBookingCancelled:
		template = templates.Cancellation
	case EventReminderRequested:
		template = templates.Reminder
	default:
		return "", false
	}

	text := RenderTemplate(template, TemplateData{
		ClientName:       event.ClientName,
		ProfessionalName: event.ProfessionalName,
		DisplayDate:      event.DisplayDate(),
		Time:             event.Time.String(),
	})
	return text, true
}

// webhookTarget maps the event kind to the configured URL. Reminders are a
// message-channel-only feature.
func (d *Dispatcher) webhookTarget(event Event) (string, bool) {
	cfg := d.settings.WebhookConfig(context.Background())

	switch event.Kind {
	case EventBookingCreated, EventTestBooking:
		return cfg.BookingURL, cfg.BookingURL != ""
	case EventBookingCancelled, EventTestCancellation:
		return cfg.CancellationURL, cfg.CancellationURL != ""
	default:
		return "", false
	}
}

func (d *Dispatcher) sendWhatsapp(event Event, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	cfg := d.settings.WhatsappConfig(ctx)
	err := d.whatsapp.SendText(ctx, cfg, event.ClientPhone, text)
	switch {
	case err == nil:
		d.metrics.ObserveNotification("whatsapp", nil)
	case errors.Is(err, whatsapp.ErrNotConfigured):
		// Not an error: the admin simply has not wired the gateway.
		d.log.Info("WhatsApp not configured, skipping %s message for %s", event.Kind, event.ClientName)
	default:
		d.metrics.ObserveNotification("whatsapp", err)
		d.log.Error("WhatsApp send failed for %s event: %v", event.Kind, err)
	}
}

func (d *Dispatcher) sendWebhook(event Event, targetURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	cfg := d.settings.WebhookConfig(ctx)
	phone, text := event.webhookText()
	err := d.webhook.Send(ctx, cfg, targetURL, webhook.Message{
		Payload: event.webhookPayload(),
		Phone:   phone,
		Text:    text,
	})
	d.metrics.ObserveNotification("webhook", err)
	if err != nil {
		d.log.Error("Webhook delivery failed for %s event: %v", event.Kind, err)
	}
}
