package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/igextreme/agenda-service/internal/domain"
	settingsRepo "github.com/igextreme/agenda-service/internal/infra/storage/settings"
)

// Service reads and writes integration settings. Reads never fail: a
// missing or malformed row falls back to the built-in default so the
// notification path always has something to work with.
type Service struct {
	repo   SettingsRepository
	logger Logger
}

func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// WhatsappConfig returns the stored gateway credentials, or the empty
// (unconfigured) config when nothing usable is stored.
func (s *Service) WhatsappConfig(ctx context.Context) domain.WhatsappConfig {
	var cfg domain.WhatsappConfig
	loadSetting(s, ctx, domain.SettingsKeyWhatsapp, &cfg)
	return cfg
}

// MessageTemplates returns the stored templates, or the stock pt-BR set.
func (s *Service) MessageTemplates(ctx context.Context) domain.MessageTemplates {
	templates := domain.DefaultMessageTemplates()
	loadSetting(s, ctx, domain.SettingsKeyTemplates, &templates)
	return templates
}

// WebhookConfig returns the stored webhook targets, or the empty default.
// An unknown stored format is coerced back to STANDARD_JSON.
func (s *Service) WebhookConfig(ctx context.Context) domain.WebhookConfig {
	cfg := domain.DefaultWebhookConfig()
	loadSetting(s, ctx, domain.SettingsKeyWebhook, &cfg)
	if cfg.Headers == nil {
		cfg.Headers = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("WebhookConfig: stored format invalid, using %s: %v", domain.FormatStandardJSON, err)
		cfg.Format = domain.FormatStandardJSON
	}
	return cfg
}

// loadSetting decodes the stored document for key into dst, leaving dst
// untouched when the row is missing or unreadable. The document is decoded
// into a scratch value first: json.Unmarshal can partially fill its target
// before failing, and a half-applied row must not leak into dst.
func loadSetting[T any](s *Service, ctx context.Context, key string, dst *T) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Warn("loadSetting: failed to read setting %s, using defaults: %v", key, err)
		}
		return
	}
	var scratch T
	if err := json.Unmarshal(raw, &scratch); err != nil {
		s.logger.Warn("loadSetting: setting %s is malformed, using defaults: %v", key, err)
		return
	}
	// The document decoded cleanly, so applying it over dst cannot fail.
	_ = json.Unmarshal(raw, dst)
}

// UpdateWhatsappConfig stores the gateway credentials as-is. Partial
// configs are allowed; sends stay skipped until all fields are filled.
func (s *Service) UpdateWhatsappConfig(ctx context.Context, cfg domain.WhatsappConfig) error {
	return s.store(ctx, domain.SettingsKeyWhatsapp, cfg)
}

// UpdateMessageTemplates replaces the whole template set.
func (s *Service) UpdateMessageTemplates(ctx context.Context, templates domain.MessageTemplates) error {
	return s.store(ctx, domain.SettingsKeyTemplates, templates)
}

// UpdateWebhookConfig validates and stores the webhook targets.
func (s *Service) UpdateWebhookConfig(ctx context.Context, cfg domain.WebhookConfig) error {
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("UpdateWebhookConfig: rejected: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if cfg.Headers == nil {
		cfg.Headers = map[string]string{}
	}
	return s.store(ctx, domain.SettingsKeyWebhook, cfg)
}

func (s *Service) store(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: store - marshal %s: %v", ErrInternal, key, err)
	}
	if err := s.repo.Upsert(ctx, key, raw); err != nil {
		s.logger.Error("store: failed to persist setting %s: %v", key, err)
		return fmt.Errorf("%w: store - persist %s: %v", ErrInternal, key, err)
	}
	s.logger.Info("Setting %s updated", key)
	return nil
}
