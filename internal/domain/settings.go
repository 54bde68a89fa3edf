package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidWebhookFormat = errors.New("domain: invalid webhook format")

// WhatsappConfig holds the credentials for the message-channel gateway.
// A send is attempted only when all three fields are populated.
type WhatsappConfig struct {
	URL      string `json:"url"`
	Token    string `json:"token"`
	Instance string `json:"instance"`
}

// IsComplete reports whether the config carries everything a send needs.
func (c WhatsappConfig) IsComplete() bool {
	return c.URL != "" && c.Token != "" && c.Instance != ""
}

// MessageTemplates holds the four outbound message templates. Placeholders
// {cliente}, {profissional}, {data} and {hora} are substituted verbatim at
// render time.
type MessageTemplates struct {
	Booking      string `json:"booking"`
	Confirmation string `json:"confirmation"`
	Reminder     string `json:"reminder"`
	Cancellation string `json:"cancellation"`
}

// DefaultMessageTemplates returns the stock pt-BR templates used until an
// admin saves their own.
func DefaultMessageTemplates() MessageTemplates {
	return MessageTemplates{
		Booking:      "Olá {cliente}, seu agendamento com {profissional} para o dia {data} às {hora} está pré-reservado. Confirme para garantir seu horário.",
		Confirmation: "Olá {cliente}! Seu agendamento com {profissional} no dia {data} às {hora} foi confirmado com sucesso.",
		Reminder:     "Olá {cliente}, este é um lembrete do seu treino com {profissional} amanhã ({data}) às {hora}. Te esperamos!",
		Cancellation: "Olá {cliente}, informamos que seu agendamento com {profissional} para o dia {data} às {hora} foi cancelado. Entre em contato para remarcar.",
	}
}

// WebhookFormat selects the payload shape for outbound webhooks.
type WebhookFormat string

const (
	FormatStandardJSON     WebhookFormat = "STANDARD_JSON"
	FormatEvolutionAPIText WebhookFormat = "EVOLUTION_API_TEXT"
)

// WebhookConfig holds the outbound webhook targets. Headers are merged over
// the JSON content-type header on every send (e.g. an API key header).
type WebhookConfig struct {
	BookingURL      string            `json:"bookingUrl"`
	CancellationURL string            `json:"cancellationUrl"`
	Headers         map[string]string `json:"headers"`
	Format          WebhookFormat     `json:"format"`
}

// Validate checks the configured format is a known value.
func (c WebhookConfig) Validate() error {
	switch c.Format {
	case FormatStandardJSON, FormatEvolutionAPIText:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidWebhookFormat, c.Format)
	}
}

// DefaultWebhookConfig returns the empty config with the standard format.
func DefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{Headers: map[string]string{}, Format: FormatStandardJSON}
}
